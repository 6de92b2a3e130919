package layout

import "slices"

// Resize replaces the grid dimensions.  References that fall outside the
// new bounds (disabled seats, aisles, premium and accessible rows) are
// pruned; everything else is kept as is.  The result is validated and, on
// failure, cfg is returned unchanged with the error.
func (e *Engine) Resize(cfg Config, rows, seatsPerRow int) (Config, error) {
	next := cfg.Normalize()
	next.RowCount = rows
	next.SeatsPerRow = seatsPerRow
	next.AisleAfterSeat = slices.DeleteFunc(next.AisleAfterSeat, func(a int) bool { return a >= seatsPerRow })
	next.PremiumRows = slices.DeleteFunc(next.PremiumRows, func(r int) bool { return r > rows })
	next.AccessibleRows = slices.DeleteFunc(next.AccessibleRows, func(r int) bool { return r > rows })
	next.DisabledSeats = slices.DeleteFunc(next.DisabledSeats, func(p Position) bool {
		return p.Row >= rows || p.Seat > seatsPerRow
	})
	return e.checked(cfg, next)
}

// SetAisles replaces AisleAfterSeat.
func (e *Engine) SetAisles(cfg Config, after []int) (Config, error) {
	next := cfg.Clone()
	next.AisleAfterSeat = cloneInts(after)
	return e.checked(cfg, next.Normalize())
}

// SetPremiumRows replaces PremiumRows.
func (e *Engine) SetPremiumRows(cfg Config, rows []int) (Config, error) {
	next := cfg.Clone()
	next.PremiumRows = cloneInts(rows)
	return e.checked(cfg, next.Normalize())
}

// SetAccessibleRows replaces AccessibleRows.
func (e *Engine) SetAccessibleRows(cfg Config, rows []int) (Config, error) {
	next := cfg.Clone()
	next.AccessibleRows = cloneInts(rows)
	return e.checked(cfg, next.Normalize())
}

func (e *Engine) checked(orig, next Config) (Config, error) {
	if err := e.Validate(next); err != nil {
		return orig, err
	}
	return next, nil
}
