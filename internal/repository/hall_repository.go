package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions

	"github.com/iliyamo/cinema-seat-layout/internal/model"
)

// ErrHallNotFound is returned when a hall lookup fails.
var ErrHallNotFound = errors.New("hall not found")

// HallRepo reads halls and keeps their seat_rows/seat_cols columns in
// step with the saved layout.
type HallRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewHallRepo constructs a HallRepo with the given DB handle.
func NewHallRepo(db *sql.DB) *HallRepo {
	return &HallRepo{db: db}
}

const hallColumns = `id, owner_id, cinema_id, name, seat_rows, seat_cols, is_active, created_at, updated_at`

func scanHall(row interface{ Scan(...any) error }) (*model.Hall, error) {
	var (
		h        model.Hall
		cinemaID sql.NullInt64
		rows     sql.NullInt32
		cols     sql.NullInt32
	)
	if err := row.Scan(&h.ID, &h.OwnerID, &cinemaID, &h.Name, &rows, &cols, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	if cinemaID.Valid {
		id := uint64(cinemaID.Int64)
		h.CinemaID = &id
	}
	if rows.Valid {
		n := int(rows.Int32)
		h.SeatRows = &n
	}
	if cols.Valid {
		n := int(cols.Int32)
		h.SeatCols = &n
	}
	return &h, nil
}

// GetByID retrieves a hall by its ID regardless of owner.  It returns
// ErrHallNotFound when no row is found.
func (r *HallRepo) GetByID(ctx context.Context, id uint64) (*model.Hall, error) {
	const q = `SELECT ` + hallColumns + ` FROM halls WHERE id = ?`
	h, err := scanHall(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}
	return h, nil
}

// UpdateDimensions records the saved layout's row and seat counts on the
// hall.  Returns ErrHallNotFound when the hall does not exist.
func (r *HallRepo) UpdateDimensions(ctx context.Context, id uint64, rows, cols int) error {
	const q = `UPDATE halls
               SET seat_rows = ?, seat_cols = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	res, err := conn(ctx, r.db).ExecContext(ctx, q, rows, cols, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports 0 affected rows when values are unchanged, so
		// confirm the hall exists before reporting it missing.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
