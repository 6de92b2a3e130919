package model

import (
    "time"

    "github.com/iliyamo/cinema-seat-layout/internal/layout"
)

// HallLayout is the saved layout config of one hall.  Saves overwrite the
// previous row (last write wins); Revision changes on every save so
// clients can tell which write they are looking at.
type HallLayout struct {
    HallID    uint64        `json:"hall_id"`    // hall_layouts.hall_id
    Config    layout.Config `json:"config"`     // hall_layouts.config (JSON)
    Revision  string        `json:"revision"`   // hall_layouts.revision (uuid)
    UpdatedBy uint64        `json:"updated_by"` // hall_layouts.updated_by
    UpdatedAt time.Time     `json:"updated_at"` // hall_layouts.updated_at
}
