package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iliyamo/cinema-seat-layout/internal/model"
)

// ErrLayoutNotFound is returned when a hall has no saved layout yet.
var ErrLayoutNotFound = errors.New("layout not found")

// LayoutRepo persists one layout config per hall as JSON.
type LayoutRepo struct {
	db *sql.DB
}

func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// GetByHall returns the saved layout of hallID or ErrLayoutNotFound.
func (r *LayoutRepo) GetByHall(ctx context.Context, hallID uint64) (*model.HallLayout, error) {
	const q = `SELECT hall_id, config, revision, updated_by, updated_at
	           FROM hall_layouts WHERE hall_id = ?`
	var (
		l   model.HallLayout
		raw []byte
	)
	err := conn(ctx, r.db).QueryRowContext(ctx, q, hallID).
		Scan(&l.HallID, &raw, &l.Revision, &l.UpdatedBy, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLayoutNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &l.Config); err != nil {
		return nil, fmt.Errorf("decode layout config for hall %d: %w", hallID, err)
	}
	return &l, nil
}

// Upsert inserts or overwrites the hall's layout.  There is no version
// check: the last save wins.
func (r *LayoutRepo) Upsert(ctx context.Context, l *model.HallLayout) error {
	raw, err := json.Marshal(l.Config)
	if err != nil {
		return fmt.Errorf("encode layout config: %w", err)
	}
	const q = `INSERT INTO hall_layouts (hall_id, config, revision, updated_by, updated_at)
	           VALUES (?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	               config = VALUES(config),
	               revision = VALUES(revision),
	               updated_by = VALUES(updated_by),
	               updated_at = VALUES(updated_at)`
	_, err = conn(ctx, r.db).ExecContext(ctx, q, l.HallID, raw, l.Revision, l.UpdatedBy, l.UpdatedAt)
	return err
}
