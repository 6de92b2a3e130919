// Package queue defines message payloads exchanged over the message broker.
package queue

// LayoutSavedEvent is published after a hall's layout has been stored.  It
// carries the summary counts so consumers can audit or notify without
// querying the primary database.
type LayoutSavedEvent struct {
    EventID         string `json:"event_id"`
    HallID          uint64 `json:"hall_id"`
    HallName        string `json:"hall_name"`
    OwnerID         uint64 `json:"owner_id"`
    Revision        string `json:"revision"`
    Rows            int    `json:"rows"`
    SeatsPerRow     int    `json:"seats_per_row"`
    TotalSeats      int    `json:"total_seats"`
    DisabledSeats   int    `json:"disabled_seats"`
    PremiumSeats    int    `json:"premium_seats"`
    AccessibleSeats int    `json:"accessible_seats"`
    SavedAt         string `json:"saved_at"`
}
