// Package service orchestrates the layout engine and the stores behind the
// hall layout API.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/iliyamo/cinema-seat-layout/internal/config"
	"github.com/iliyamo/cinema-seat-layout/internal/layout"
	"github.com/iliyamo/cinema-seat-layout/internal/model"
	q "github.com/iliyamo/cinema-seat-layout/internal/queue"
	"github.com/iliyamo/cinema-seat-layout/internal/repository"
)

type HallStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Hall, error)
	UpdateDimensions(ctx context.Context, id uint64, rows, cols int) error
}

type LayoutStore interface {
	GetByHall(ctx context.Context, hallID uint64) (*model.HallLayout, error)
	Upsert(ctx context.Context, l *model.HallLayout) error
}

type SeatStore interface {
	ReplaceForHall(ctx context.Context, hallID uint64, seats []model.Seat) error
	GetByHall(ctx context.Context, hallID uint64) ([]model.Seat, error)
}

// TxRunner runs fn in one transaction; stores called with the ctx passed
// to fn take part in it.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LayoutView is a config with its generated grid, as returned to clients.
// HallID, Revision and Saved are only set for hall-bound layouts.
type LayoutView struct {
	HallID   uint64         `json:"hall_id,omitempty"`
	Revision string         `json:"revision,omitempty"`
	Saved    bool           `json:"saved"`
	Config   layout.Config  `json:"config"`
	Grid     layout.Grid    `json:"grid"`
	Summary  layout.Summary `json:"summary"`
}

// LayoutService loads, edits and saves hall layouts.
type LayoutService struct {
	engine   *layout.Engine
	halls    HallStore
	layouts  LayoutStore
	seats    SeatStore
	tx       TxRunner
	events   EventPublisher
	defaults config.LayoutDefaults
	logger   *log.Logger

	now   func() time.Time
	newID func() string
}

// NewLayoutService panics if a store is nil.  A nil publisher disables
// events and a nil engine uses the default one.
func NewLayoutService(engine *layout.Engine, halls HallStore, layouts LayoutStore, seats SeatStore, tx TxRunner, events EventPublisher, defaults config.LayoutDefaults, logger *log.Logger) *LayoutService {
	if halls == nil || layouts == nil || seats == nil || tx == nil {
		panic("nil store passed to NewLayoutService")
	}
	if engine == nil {
		engine = layout.NewEngine()
	}
	if events == nil {
		events = NopPublisher{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &LayoutService{
		engine:   engine,
		halls:    halls,
		layouts:  layouts,
		seats:    seats,
		tx:       tx,
		events:   events,
		defaults: defaults,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
}

// Engine exposes the engine so callers can parse seat ids with the same
// labeler the service generates with.
func (s *LayoutService) Engine() *layout.Engine { return s.engine }

// Default returns the configured default layout.
func (s *LayoutService) Default() (*LayoutView, error) {
	return s.Preview(s.defaults.Config())
}

// Preview validates and generates cfg without storing anything.
func (s *LayoutService) Preview(cfg layout.Config) (*LayoutView, error) {
	cfg = cfg.Normalize()
	grid, err := s.engine.Generate(cfg)
	if err != nil {
		return nil, err
	}
	return &LayoutView{Config: cfg, Grid: grid, Summary: grid.Summary()}, nil
}

// Toggle flips the disabled state of one seat and regenerates.
func (s *LayoutService) Toggle(cfg layout.Config, row, seat int) (*LayoutView, error) {
	next, err := s.engine.Toggle(cfg, row, seat)
	if err != nil {
		return nil, err
	}
	return s.Preview(next)
}

// ToggleBySeatID is Toggle addressed by a seat id such as "C5".
func (s *LayoutService) ToggleBySeatID(cfg layout.Config, id string) (*LayoutView, error) {
	next, err := s.engine.ToggleSeatID(cfg, id)
	if err != nil {
		return nil, err
	}
	return s.Preview(next)
}

func (s *LayoutService) Resize(cfg layout.Config, rows, seatsPerRow int) (*LayoutView, error) {
	next, err := s.engine.Resize(cfg, rows, seatsPerRow)
	if err != nil {
		return nil, err
	}
	return s.Preview(next)
}

func (s *LayoutService) TogglePremiumRow(cfg layout.Config, rowNumber int) (*LayoutView, error) {
	next, err := s.engine.TogglePremiumRow(cfg, rowNumber)
	if err != nil {
		return nil, err
	}
	return s.Preview(next)
}

// Load returns the saved layout of a hall owned by ownerID.  A hall that
// was never saved gets the configured default, resized to the hall's
// recorded dimensions when it has them.
func (s *LayoutService) Load(ctx context.Context, ownerID, hallID uint64) (*LayoutView, error) {
	hall, err := s.ownedHall(ctx, ownerID, hallID)
	if err != nil {
		return nil, err
	}
	saved, err := s.layouts.GetByHall(ctx, hallID)
	switch {
	case err == nil:
		view, err := s.Preview(saved.Config)
		if err != nil {
			return nil, fmt.Errorf("stored layout of hall %d: %w", hallID, err)
		}
		view.HallID, view.Revision, view.Saved = hallID, saved.Revision, true
		return view, nil
	case errors.Is(err, repository.ErrLayoutNotFound):
		view, err := s.Preview(s.hallDefault(hall))
		if err != nil {
			return nil, err
		}
		view.HallID = hallID
		return view, nil
	default:
		return nil, err
	}
}

func (s *LayoutService) hallDefault(h *model.Hall) layout.Config {
	cfg := s.defaults.Config()
	if h.SeatRows == nil || h.SeatCols == nil {
		return cfg
	}
	resized, err := s.engine.Resize(cfg, *h.SeatRows, *h.SeatCols)
	if err != nil {
		s.logger.Warn("hall dimensions outside layout limits; using defaults",
			"hall_id", h.ID, "rows", *h.SeatRows, "cols", *h.SeatCols, "err", err)
		return cfg
	}
	return resized
}

// Seats returns the seat records materialized by the last save.
func (s *LayoutService) Seats(ctx context.Context, ownerID, hallID uint64) ([]model.Seat, error) {
	if _, err := s.ownedHall(ctx, ownerID, hallID); err != nil {
		return nil, err
	}
	return s.seats.GetByHall(ctx, hallID)
}

// Save validates cfg and stores it as the hall's layout.  The config, the
// hall's seat records and its dimensions are written in one transaction;
// the last save wins.  A layout.saved event is published afterwards and
// publish failures are only logged.
func (s *LayoutService) Save(ctx context.Context, ownerID, hallID uint64, cfg layout.Config) (*LayoutView, error) {
	hall, err := s.ownedHall(ctx, ownerID, hallID)
	if err != nil {
		return nil, err
	}
	view, err := s.Preview(cfg)
	if err != nil {
		return nil, err
	}

	rec := &model.HallLayout{
		HallID:    hallID,
		Config:    view.Config,
		Revision:  s.newID(),
		UpdatedBy: ownerID,
		UpdatedAt: s.now(),
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.layouts.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("upsert layout: %w", err)
		}
		if err := s.seats.ReplaceForHall(ctx, hallID, model.SeatsFromGrid(hallID, view.Grid)); err != nil {
			return fmt.Errorf("replace seats: %w", err)
		}
		if err := s.halls.UpdateDimensions(ctx, hallID, view.Config.RowCount, view.Config.SeatsPerRow); err != nil {
			return fmt.Errorf("update hall dimensions: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("save layout failed", "hall_id", hallID, "err", err)
		return nil, err
	}
	s.logger.Info("layout saved", "hall_id", hallID, "revision", rec.Revision,
		"rows", view.Config.RowCount, "seats_per_row", view.Config.SeatsPerRow)

	sum := view.Summary
	ev := q.LayoutSavedEvent{
		EventID:         s.newID(),
		HallID:          hallID,
		HallName:        hall.Name,
		OwnerID:         ownerID,
		Revision:        rec.Revision,
		Rows:            view.Config.RowCount,
		SeatsPerRow:     view.Config.SeatsPerRow,
		TotalSeats:      sum.Total,
		DisabledSeats:   sum.Disabled,
		PremiumSeats:    sum.Premium,
		AccessibleSeats: sum.Accessible,
		SavedAt:         rec.UpdatedAt.Format(time.RFC3339),
	}
	if err := s.events.PublishLayoutSaved(ctx, ev); err != nil {
		s.logger.Warn("publish layout.saved failed", "hall_id", hallID, "revision", rec.Revision, "err", err)
	}

	view.HallID, view.Revision, view.Saved = hallID, rec.Revision, true
	return view, nil
}

func (s *LayoutService) ownedHall(ctx context.Context, ownerID, hallID uint64) (*model.Hall, error) {
	hall, err := s.halls.GetByID(ctx, hallID)
	if err != nil {
		return nil, err
	}
	if hall.OwnerID != ownerID {
		return nil, repository.ErrForbidden
	}
	return hall, nil
}
