// Package layout derives seating charts for cinema halls.
//
// A Config describes a hall's seating shape: row and seat counts, aisle
// positions, premium and accessible rows, and seats withdrawn from sale.
// Generate turns a valid Config into a Grid.  Toggle and the Set/Resize
// edits return new Config values and never modify their input, so a caller
// can keep earlier snapshots for undo.  Nothing in this package performs
// I/O or logs; every function is safe for concurrent use on shared values.
package layout

import (
	"cmp"
	"slices"
)

// Position addresses one seat: Row is zero-based, Seat is one-based.
type Position struct {
	Row  int `json:"row" toml:"row"`
	Seat int `json:"seat" toml:"seat"`
}

func comparePositions(a, b Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Seat, b.Seat)
}

// Config is the declarative input for one hall's seating chart.
// The slice fields are sets; Normalize sorts and de-duplicates them.
type Config struct {
	RowCount       int        `json:"row_count" toml:"row_count"`
	SeatsPerRow    int        `json:"seats_per_row" toml:"seats_per_row"`
	AisleAfterSeat []int      `json:"aisle_after_seat" toml:"aisle_after_seat"`
	PremiumRows    []int      `json:"premium_rows" toml:"premium_rows"`       // 1-based
	AccessibleRows []int      `json:"accessible_rows" toml:"accessible_rows"` // 1-based
	DisabledSeats  []Position `json:"disabled_seats" toml:"disabled_seats"`
}

// Default row and seat counts for a hall without a saved layout.
const (
	DefaultRows        = 10
	DefaultSeatsPerRow = 15
)

// Default returns the stock layout: 10 rows of 15 seats with aisles after
// seats 5 and 10.
func Default() Config {
	return Config{
		RowCount:       DefaultRows,
		SeatsPerRow:    DefaultSeatsPerRow,
		AisleAfterSeat: []int{5, 10},
		PremiumRows:    []int{},
		AccessibleRows: []int{},
		DisabledSeats:  []Position{},
	}
}

// Option sets an optional field on a Config built by New.
type Option func(*Config)

func WithAisles(after ...int) Option {
	return func(c *Config) { c.AisleAfterSeat = append(c.AisleAfterSeat, after...) }
}

func WithPremiumRows(rows ...int) Option {
	return func(c *Config) { c.PremiumRows = append(c.PremiumRows, rows...) }
}

func WithAccessibleRows(rows ...int) Option {
	return func(c *Config) { c.AccessibleRows = append(c.AccessibleRows, rows...) }
}

func WithDisabledSeats(seats ...Position) Option {
	return func(c *Config) { c.DisabledSeats = append(c.DisabledSeats, seats...) }
}

// New builds a normalized Config and validates it with the default engine.
func New(rows, seatsPerRow int, opts ...Option) (Config, error) {
	return defaultEngine.NewConfig(rows, seatsPerRow, opts...)
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	return Config{
		RowCount:       c.RowCount,
		SeatsPerRow:    c.SeatsPerRow,
		AisleAfterSeat: cloneInts(c.AisleAfterSeat),
		PremiumRows:    cloneInts(c.PremiumRows),
		AccessibleRows: cloneInts(c.AccessibleRows),
		DisabledSeats:  clonePositions(c.DisabledSeats),
	}
}

// Normalize returns a copy whose sets are sorted, free of duplicates and
// non-nil.
func (c Config) Normalize() Config {
	n := c.Clone()
	n.AisleAfterSeat = sortedInts(n.AisleAfterSeat)
	n.PremiumRows = sortedInts(n.PremiumRows)
	n.AccessibleRows = sortedInts(n.AccessibleRows)
	slices.SortFunc(n.DisabledSeats, comparePositions)
	n.DisabledSeats = slices.Compact(n.DisabledSeats)
	return n
}

// Equal reports whether both configs describe the same layout, comparing
// the slice fields as sets.
func (c Config) Equal(o Config) bool {
	a, b := c.Normalize(), o.Normalize()
	return a.RowCount == b.RowCount &&
		a.SeatsPerRow == b.SeatsPerRow &&
		slices.Equal(a.AisleAfterSeat, b.AisleAfterSeat) &&
		slices.Equal(a.PremiumRows, b.PremiumRows) &&
		slices.Equal(a.AccessibleRows, b.AccessibleRows) &&
		slices.Equal(a.DisabledSeats, b.DisabledSeats)
}

// IsDisabled reports whether p is listed in DisabledSeats.
func (c Config) IsDisabled(p Position) bool {
	return slices.Contains(c.DisabledSeats, p)
}

func cloneInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return slices.Clone(s)
}

func clonePositions(s []Position) []Position {
	if s == nil {
		return []Position{}
	}
	return slices.Clone(s)
}

func sortedInts(s []int) []int {
	slices.Sort(s)
	return slices.Compact(s)
}

func intSet(s []int) map[int]struct{} {
	m := make(map[int]struct{}, len(s))
	for _, v := range s {
		m[v] = struct{}{}
	}
	return m
}
