package model

import "time"

// Hall is a screening hall whose seating chart is edited through the
// layout service.  Halls belong to an owner; only that owner may load or
// save the hall's layout.
//
// Fields:
//  ID          – primary key identifier.
//  OwnerID     – user ID of the hall owner.
//  CinemaID    – ID of the containing cinema (nil if not assigned).
//  Name        – hall name, unique per owner.
//  SeatRows    – number of seating rows (nil until a layout is saved).
//  SeatCols    – number of seats per row (nil until a layout is saved).
//  IsActive    – whether the hall is active.
type Hall struct {
    ID        uint64    `json:"id"`         // halls.id
    OwnerID   uint64    `json:"owner_id"`   // halls.owner_id
    CinemaID  *uint64   `json:"cinema_id"`  // halls.cinema_id (nullable)
    Name      string    `json:"name"`       // halls.name
    SeatRows  *int      `json:"seat_rows"`  // halls.seat_rows (nullable)
    SeatCols  *int      `json:"seat_cols"`  // halls.seat_cols (nullable)
    IsActive  bool      `json:"is_active"`  // halls.is_active
    CreatedAt time.Time `json:"created_at"` // halls.created_at
    UpdatedAt time.Time `json:"updated_at"` // halls.updated_at
}
