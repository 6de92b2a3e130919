package layout

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
		wantValue int
	}{
		{name: "valid", cfg: Config{RowCount: 3, SeatsPerRow: 5, AisleAfterSeat: []int{2}, PremiumRows: []int{1}}},
		{name: "max bounds", cfg: Config{RowCount: 20, SeatsPerRow: 30, AisleAfterSeat: []int{29}, PremiumRows: []int{20}, DisabledSeats: []Position{{Row: 19, Seat: 30}}}},
		{name: "zero rows", cfg: Config{RowCount: 0, SeatsPerRow: 5}, wantField: "row_count", wantValue: 0},
		{name: "21 rows", cfg: Config{RowCount: 21, SeatsPerRow: 5}, wantField: "row_count", wantValue: 21},
		{name: "scenario D", cfg: Config{RowCount: 25, SeatsPerRow: 15}, wantField: "row_count", wantValue: 25},
		{name: "zero seats", cfg: Config{RowCount: 3, SeatsPerRow: 0}, wantField: "seats_per_row", wantValue: 0},
		{name: "31 seats", cfg: Config{RowCount: 3, SeatsPerRow: 31}, wantField: "seats_per_row", wantValue: 31},
		{name: "aisle equals seats per row", cfg: Config{RowCount: 3, SeatsPerRow: 5, AisleAfterSeat: []int{5}}, wantField: "aisle_after_seat", wantValue: 5},
		{name: "aisle zero", cfg: Config{RowCount: 3, SeatsPerRow: 5, AisleAfterSeat: []int{0}}, wantField: "aisle_after_seat", wantValue: 0},
		{name: "premium zero", cfg: Config{RowCount: 3, SeatsPerRow: 5, PremiumRows: []int{0}}, wantField: "premium_rows", wantValue: 0},
		{name: "premium past last row", cfg: Config{RowCount: 3, SeatsPerRow: 5, PremiumRows: []int{4}}, wantField: "premium_rows", wantValue: 4},
		{name: "accessible past last row", cfg: Config{RowCount: 3, SeatsPerRow: 5, AccessibleRows: []int{4}}, wantField: "accessible_rows", wantValue: 4},
		{name: "disabled row out of range", cfg: Config{RowCount: 3, SeatsPerRow: 5, DisabledSeats: []Position{{Row: 3, Seat: 1}}}, wantField: "disabled_seats", wantValue: 3},
		{name: "disabled seat zero", cfg: Config{RowCount: 3, SeatsPerRow: 5, DisabledSeats: []Position{{Row: 0, Seat: 0}}}, wantField: "disabled_seats", wantValue: 0},
		{name: "disabled seat past row end", cfg: Config{RowCount: 3, SeatsPerRow: 5, DisabledSeats: []Position{{Row: 0, Seat: 6}}}, wantField: "disabled_seats", wantValue: 6},
		{
			name:      "first violation wins",
			cfg:       Config{RowCount: 3, SeatsPerRow: 5, AisleAfterSeat: []int{9}, PremiumRows: []int{9}},
			wantField: "aisle_after_seat",
			wantValue: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Fatalf("expected ErrInvalidLayout in chain")
			}
			if verr.Field != tt.wantField || verr.Value != tt.wantValue {
				t.Fatalf("expected %s=%d, got %s=%d", tt.wantField, tt.wantValue, verr.Field, verr.Value)
			}
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := Config{RowCount: 3, SeatsPerRow: 5, AisleAfterSeat: []int{4, 2, 2}}
	_ = Validate(cfg)
	if len(cfg.AisleAfterSeat) != 3 || cfg.AisleAfterSeat[0] != 4 {
		t.Fatalf("validate modified input: %v", cfg.AisleAfterSeat)
	}
}

func TestValidate_LabelSpaceExceeded(t *testing.T) {
	e := NewEngine(WithLimits(Limits{MaxRows: 40, MaxSeatsPerRow: 30}))
	if err := e.Validate(Config{RowCount: 26, SeatsPerRow: 10}); err != nil {
		t.Fatalf("26 rows should fit single letters: %v", err)
	}
	err := e.Validate(Config{RowCount: 27, SeatsPerRow: 10})
	var lerr *LabelSpaceError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LabelSpaceError, got %v", err)
	}
	if !errors.Is(err, ErrLabelSpaceExceeded) {
		t.Fatalf("expected ErrLabelSpaceExceeded in chain")
	}
	if lerr.Rows != 27 || lerr.Capacity != LetterCapacity {
		t.Fatalf("unexpected error fields: %+v", lerr)
	}
}

func TestDefaultLimitsFitLabelSpace(t *testing.T) {
	if DefaultLimits.MaxRows > (LetterLabeler{}).Capacity() {
		t.Fatalf("default max rows %d exceed label capacity", DefaultLimits.MaxRows)
	}
}

func TestNew(t *testing.T) {
	cfg, err := New(3, 5, WithAisles(4, 2, 2), WithDisabledSeats(Position{Row: 2, Seat: 1}, Position{Row: 0, Seat: 5}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(cfg.AisleAfterSeat) != 2 || cfg.AisleAfterSeat[0] != 2 {
		t.Fatalf("expected normalized aisles, got %v", cfg.AisleAfterSeat)
	}
	if cfg.DisabledSeats[0] != (Position{Row: 0, Seat: 5}) {
		t.Fatalf("expected sorted disabled seats, got %v", cfg.DisabledSeats)
	}
	if _, err := New(0, 5); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected invalid layout, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.RowCount != 10 || cfg.SeatsPerRow != 15 {
		t.Fatalf("unexpected dimensions %dx%d", cfg.RowCount, cfg.SeatsPerRow)
	}
}
