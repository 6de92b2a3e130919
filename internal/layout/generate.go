package layout

import "strconv"

// Tier is a seat's price class.
type Tier string

const (
	TierRegular Tier = "REGULAR"
	TierPremium Tier = "PREMIUM"
)

// Status tells whether a seat is offered for sale.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusDisabled  Status = "DISABLED"
)

// Seat is one generated cell of a Grid.
type Seat struct {
	ID              string `json:"id"`
	RowIndex        int    `json:"row_index"`
	SeatNumber      int    `json:"seat_number"`
	RowLabel        string `json:"row_label"`
	Tier            Tier   `json:"tier"`
	Status          Status `json:"status"`
	IsAisleBoundary bool   `json:"is_aisle_boundary"`
	IsAccessible    bool   `json:"is_accessible"`
}

// Position returns the seat's address.
func (s Seat) Position() Position { return Position{Row: s.RowIndex, Seat: s.SeatNumber} }

// Grid holds rows in row index order, each holding seats in seat number
// order.  A Grid is always complete: RowCount rows of SeatsPerRow seats.
type Grid [][]Seat

// Generate validates cfg and derives its grid.  On a validation failure it
// returns a nil grid and the error; no partial grid is ever returned.
// Premium, disabled, aisle and accessible flags are independent per seat.
func (e *Engine) Generate(cfg Config) (Grid, error) {
	if err := e.Validate(cfg); err != nil {
		return nil, err
	}
	premium := intSet(cfg.PremiumRows)
	accessible := intSet(cfg.AccessibleRows)
	aisles := intSet(cfg.AisleAfterSeat)
	disabled := make(map[Position]struct{}, len(cfg.DisabledSeats))
	for _, p := range cfg.DisabledSeats {
		disabled[p] = struct{}{}
	}

	grid := make(Grid, 0, cfg.RowCount)
	for r := 0; r < cfg.RowCount; r++ {
		label, err := e.labeler.Label(r)
		if err != nil {
			return nil, err
		}
		_, isPremium := premium[r+1]
		_, isAccessible := accessible[r+1]
		tier := TierRegular
		if isPremium {
			tier = TierPremium
		}
		row := make([]Seat, 0, cfg.SeatsPerRow)
		for n := 1; n <= cfg.SeatsPerRow; n++ {
			status := StatusAvailable
			if _, ok := disabled[Position{Row: r, Seat: n}]; ok {
				status = StatusDisabled
			}
			_, isAisle := aisles[n]
			row = append(row, Seat{
				ID:              label + strconv.Itoa(n),
				RowIndex:        r,
				SeatNumber:      n,
				RowLabel:        label,
				Tier:            tier,
				Status:          status,
				IsAisleBoundary: isAisle,
				IsAccessible:    isAccessible,
			})
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// Seat returns the seat at (row, seat) or a *BoundsError.
func (g Grid) Seat(row, seat int) (Seat, error) {
	if row < 0 || row >= len(g) || seat < 1 || seat > len(g[row]) {
		return Seat{}, &BoundsError{Row: row, Seat: seat, RowCount: len(g), SeatsPerRow: g.seatsPerRow()}
	}
	return g[row][seat-1], nil
}

func (g Grid) seatsPerRow() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Summary counts seats by attribute.
type Summary struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	Disabled   int `json:"disabled"`
	Premium    int `json:"premium"`
	Accessible int `json:"accessible"`
}

func (g Grid) Summary() Summary {
	var s Summary
	for _, row := range g {
		for _, seat := range row {
			s.Total++
			if seat.Status == StatusDisabled {
				s.Disabled++
			} else {
				s.Available++
			}
			if seat.Tier == TierPremium {
				s.Premium++
			}
			if seat.IsAccessible {
				s.Accessible++
			}
		}
	}
	return s
}
