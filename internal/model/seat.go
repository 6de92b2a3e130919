package model

import "github.com/iliyamo/cinema-seat-layout/internal/layout"

// Seat types stored in seats.seat_type.
const (
    SeatTypeStandard   = "STANDARD"
    SeatTypeVIP        = "VIP"
    SeatTypeAccessible = "ACCESSIBLE"
)

// Seat is a physical seat row materialized from a saved layout so the
// booking side can reference seats by id.  Seats are uniquely identified
// by their hall, row label and seat number.
//
// Fields:
//  ID         – primary key identifier.
//  HallID     – hall to which this seat belongs.
//  RowLabel   – letter designating the row.
//  SeatNumber – number of the seat within the row.
//  SeatType   – STANDARD, VIP or ACCESSIBLE.
//  IsActive   – false for seats withdrawn from sale.
type Seat struct {
    ID         uint64 `json:"id"`          // seats.id
    HallID     uint64 `json:"hall_id"`     // seats.hall_id
    RowLabel   string `json:"row_label"`   // seats.row_label
    SeatNumber int    `json:"seat_number"` // seats.seat_number
    SeatType   string `json:"seat_type"`   // seats.seat_type
    IsActive   bool   `json:"is_active"`   // seats.is_active
}

// SeatsFromGrid flattens a generated grid into seat records for hallID.
// Premium rows become VIP; accessible rows become ACCESSIBLE, which takes
// precedence because it restricts who may book the seat.
func SeatsFromGrid(hallID uint64, grid layout.Grid) []Seat {
    total := 0
    for _, row := range grid {
        total += len(row)
    }
    out := make([]Seat, 0, total)
    for _, row := range grid {
        for _, s := range row {
            typ := SeatTypeStandard
            switch {
            case s.IsAccessible:
                typ = SeatTypeAccessible
            case s.Tier == layout.TierPremium:
                typ = SeatTypeVIP
            }
            out = append(out, Seat{
                HallID:     hallID,
                RowLabel:   s.RowLabel,
                SeatNumber: s.SeatNumber,
                SeatType:   typ,
                IsActive:   s.Status == layout.StatusAvailable,
            })
        }
    }
    return out
}
