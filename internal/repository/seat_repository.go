package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"strings"      // strings builds the bulk insert statement

	"github.com/iliyamo/cinema-seat-layout/internal/model"
)

// SeatRepo stores the seats materialized from a hall's saved layout.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// CreateBulk inserts multiple seats in a single statement.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(`INSERT INTO seats (hall_id, row_label, seat_number, seat_type, is_active) VALUES `)
	args := make([]any, 0, len(seats)*5)
	for i, seat := range seats {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, seat.HallID, seat.RowLabel, seat.SeatNumber, seat.SeatType, seat.IsActive)
	}
	_, err := conn(ctx, r.db).ExecContext(ctx, b.String(), args...)
	return err
}

// DeleteByHall removes all seats associated with a given hall ID.  It does
// not perform any ownership checks – callers should verify the hall
// belongs to the current owner prior to calling this method.
func (r *SeatRepo) DeleteByHall(ctx context.Context, hallID uint64) error {
	const q = `DELETE FROM seats WHERE hall_id = ?`
	_, err := conn(ctx, r.db).ExecContext(ctx, q, hallID)
	return err
}

// ReplaceForHall swaps the hall's seats for the given set.  Run it inside
// TxManager.WithinTx so readers never observe a hall without seats.
func (r *SeatRepo) ReplaceForHall(ctx context.Context, hallID uint64, seats []model.Seat) error {
	if err := r.DeleteByHall(ctx, hallID); err != nil {
		return err
	}
	return r.CreateBulk(ctx, seats)
}

// GetByHall retrieves all seats of a hall ordered by row_label then seat_number.
func (r *SeatRepo) GetByHall(ctx context.Context, hallID uint64) ([]model.Seat, error) {
	const q = `SELECT id, hall_id, row_label, seat_number, seat_type, is_active
	           FROM seats
	           WHERE hall_id = ?
	           ORDER BY row_label, seat_number`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Seat{}
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.HallID, &s.RowLabel, &s.SeatNumber, &s.SeatType, &s.IsActive); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
