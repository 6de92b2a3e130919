package layout

import "fmt"

// Validate checks cfg and returns the first violation, in this order:
// row_count, seats_per_row, label capacity, aisle_after_seat, premium_rows,
// accessible_rows, disabled_seats.  It never modifies cfg.
func (e *Engine) Validate(cfg Config) error {
	if cfg.RowCount < 1 || cfg.RowCount > e.limits.MaxRows {
		return &ValidationError{
			Field:  "row_count",
			Value:  cfg.RowCount,
			Reason: fmt.Sprintf("must be between 1 and %d", e.limits.MaxRows),
		}
	}
	if cfg.SeatsPerRow < 1 || cfg.SeatsPerRow > e.limits.MaxSeatsPerRow {
		return &ValidationError{
			Field:  "seats_per_row",
			Value:  cfg.SeatsPerRow,
			Reason: fmt.Sprintf("must be between 1 and %d", e.limits.MaxSeatsPerRow),
		}
	}
	if capacity := e.labeler.Capacity(); cfg.RowCount > capacity {
		return &LabelSpaceError{Rows: cfg.RowCount, Capacity: capacity}
	}
	for _, a := range cfg.AisleAfterSeat {
		if a < 1 || a >= cfg.SeatsPerRow {
			return &ValidationError{
				Field:  "aisle_after_seat",
				Value:  a,
				Reason: fmt.Sprintf("must be between 1 and %d", cfg.SeatsPerRow-1),
			}
		}
	}
	if err := checkRowNumbers("premium_rows", cfg.PremiumRows, cfg.RowCount); err != nil {
		return err
	}
	if err := checkRowNumbers("accessible_rows", cfg.AccessibleRows, cfg.RowCount); err != nil {
		return err
	}
	for _, p := range cfg.DisabledSeats {
		if p.Row < 0 || p.Row >= cfg.RowCount {
			return &ValidationError{
				Field:  "disabled_seats",
				Value:  p.Row,
				Reason: fmt.Sprintf("row index must be between 0 and %d", cfg.RowCount-1),
				Seat:   &p,
			}
		}
		if p.Seat < 1 || p.Seat > cfg.SeatsPerRow {
			return &ValidationError{
				Field:  "disabled_seats",
				Value:  p.Seat,
				Reason: fmt.Sprintf("seat number must be between 1 and %d", cfg.SeatsPerRow),
				Seat:   &p,
			}
		}
	}
	return nil
}

func checkRowNumbers(field string, rows []int, rowCount int) error {
	for _, r := range rows {
		if r < 1 || r > rowCount {
			return &ValidationError{
				Field:  field,
				Value:  r,
				Reason: fmt.Sprintf("must be between 1 and %d", rowCount),
			}
		}
	}
	return nil
}
