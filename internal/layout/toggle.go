package layout

import "slices"

// Toggle flips the disabled flag of the seat at (row, seat) and returns the
// edited copy.  Applying it twice with the same arguments yields a config
// Equal to the original.  Out-of-range addresses return cfg unchanged with
// a *BoundsError.  The caller regenerates the grid from the result.
func (e *Engine) Toggle(cfg Config, row, seat int) (Config, error) {
	if row < 0 || row >= cfg.RowCount || seat < 1 || seat > cfg.SeatsPerRow {
		return cfg, &BoundsError{Row: row, Seat: seat, RowCount: cfg.RowCount, SeatsPerRow: cfg.SeatsPerRow}
	}
	next := cfg.Normalize()
	p := Position{Row: row, Seat: seat}
	if i, found := slices.BinarySearchFunc(next.DisabledSeats, p, comparePositions); found {
		next.DisabledSeats = slices.Delete(next.DisabledSeats, i, i+1)
	} else {
		next.DisabledSeats = slices.Insert(next.DisabledSeats, i, p)
	}
	return next, nil
}

// ToggleSeatID is Toggle addressed by a seat id such as "A3".
func (e *Engine) ToggleSeatID(cfg Config, id string) (Config, error) {
	p, err := e.ParseSeatID(id)
	if err != nil {
		return cfg, err
	}
	return e.Toggle(cfg, p.Row, p.Seat)
}

// TogglePremiumRow adds or removes the 1-based rowNumber from PremiumRows.
func (e *Engine) TogglePremiumRow(cfg Config, rowNumber int) (Config, error) {
	if rowNumber < 1 || rowNumber > cfg.RowCount {
		return cfg, &BoundsError{Row: rowNumber - 1, Seat: 1, RowCount: cfg.RowCount, SeatsPerRow: cfg.SeatsPerRow}
	}
	next := cfg.Normalize()
	if i, found := slices.BinarySearch(next.PremiumRows, rowNumber); found {
		next.PremiumRows = slices.Delete(next.PremiumRows, i, i+1)
	} else {
		next.PremiumRows = slices.Insert(next.PremiumRows, i, rowNumber)
	}
	return next, nil
}
