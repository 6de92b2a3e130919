package service

import (
    "context"
    "encoding/json"
    "time"

    "github.com/charmbracelet/log"
    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/cinema-seat-layout/internal/config"
    q "github.com/iliyamo/cinema-seat-layout/internal/queue"
)

// EventPublisher delivers layout events.  LayoutService treats failures as
// non-fatal.
type EventPublisher interface {
    PublishLayoutSaved(ctx context.Context, event q.LayoutSavedEvent) error
}

// AMQPPublisher publishes events to RabbitMQ.  A connection is dialed per
// publish; saves are rare enough that pooling is not worth the lifecycle.
type AMQPPublisher struct {
    cfg    config.AMQPConfig
    logger *log.Logger
}

func NewAMQPPublisher(cfg config.AMQPConfig, logger *log.Logger) *AMQPPublisher {
    return &AMQPPublisher{cfg: cfg, logger: logger}
}

// PublishLayoutSaved publishes event to the configured queue as a
// persistent JSON message.  Every error is logged and returned so the
// caller can choose to ignore it.
func (p *AMQPPublisher) PublishLayoutSaved(ctx context.Context, event q.LayoutSavedEvent) error {
    conn, err := amqp.Dial(p.cfg.URL)
    if err != nil {
        p.logger.Warn("rabbitmq: dial failed", "err", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.logger.Warn("rabbitmq: channel open failed", "err", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        p.cfg.Queue, // name
        true,        // durable
        false,       // autoDelete
        false,       // exclusive
        false,       // noWait
        nil,         // args
    ); err != nil {
        p.logger.Warn("rabbitmq: queue declare failed", "queue", p.cfg.Queue, "err", err)
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        p.logger.Warn("rabbitmq: marshal event failed", "err", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        MessageId:    event.EventID,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",          // default exchange
        p.cfg.Queue, // routing key = queue name
        false,       // mandatory
        false,       // immediate
        pub,
    ); err != nil {
        p.logger.Warn("rabbitmq: publish failed", "queue", p.cfg.Queue, "err", err)
        return err
    }
    return nil
}

// NopPublisher drops events.  Used when AMQP is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishLayoutSaved(context.Context, q.LayoutSavedEvent) error { return nil }
