package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    "github.com/charmbracelet/log"
    amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer listens on the layout events queue and appends one line per
// saved layout to <Dir>/layout.log.
type Consumer struct {
    URL    string
    Queue  string
    Dir    string
    Logger *log.Logger
}

// Run connects to RabbitMQ, declares the queue (durable) and consumes until
// ctx is cancelled.  Dial failures and closed channels are retried with
// backoff; a message that cannot be handled is rejected without requeue
// so the loop keeps going.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        conn, err := amqp.Dial(c.URL)
        if err != nil {
            c.Logger.Warn("layout-consumer: dial failed", "err", err, "retry_in", backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        err = c.consumeLoop(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.Logger.Warn("layout-consumer: consume loop ended; reconnecting", "err", err)
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        c.Logger.Warn("layout-consumer: set QoS failed", "err", err)
    }
    if _, err := ch.QueueDeclare(c.Queue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(c.Queue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := c.Handle(d.Body); err != nil {
                c.Logger.Error("layout-consumer: handle message failed", "err", err)
                _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// Handle decodes one LayoutSavedEvent and appends it to the audit log.
func (c *Consumer) Handle(body []byte) error {
    var ev LayoutSavedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.HallID == 0 || ev.Revision == "" {
        return errors.New("event missing hall_id or revision")
    }
    if err := os.MkdirAll(c.Dir, 0o755); err != nil {
        return fmt.Errorf("mkdir %s: %w", c.Dir, err)
    }
    f, err := os.OpenFile(filepath.Join(c.Dir, "layout.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    line := fmt.Sprintf("[%s] Layout saved | hall_id=%d | hall=%q | owner_id=%d | revision=%s | grid=%dx%d | seats=%d | disabled=%d | premium=%d | accessible=%d\n",
        ev.SavedAt, ev.HallID, ev.HallName, ev.OwnerID, ev.Revision, ev.Rows, ev.SeatsPerRow,
        ev.TotalSeats, ev.DisabledSeats, ev.PremiumSeats, ev.AccessibleSeats)
    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
