package handler // handler package contains seat listing handlers

import (
    "net/http" // http defines status code constants
    "strings"  // strings manipulates text and case

    "github.com/labstack/echo/v4" // echo provides request context and JSON helpers

    "github.com/iliyamo/cinema-seat-layout/internal/model"
)

// ListSeats handles GET /v1/halls/:id/seats and returns the seats materialized
// by the hall's last saved layout, optionally filtered with ?active=true|false.
func (h *LayoutHandler) ListSeats(c echo.Context) error {
    ownerID, hallID, ok := hallParams(c)
    if !ok {
        return nil
    }
    seats, err := h.svc.Seats(c.Request().Context(), ownerID, hallID)
    if err != nil {
        return h.writeError(c, err)
    }
    // optional filtering by active status
    if v := strings.ToLower(strings.TrimSpace(c.QueryParam("active"))); v == "true" || v == "1" || v == "false" || v == "0" {
        want := v == "true" || v == "1"
        filtered := make([]model.Seat, 0, len(seats))
        for _, s := range seats {
            if s.IsActive == want {
                filtered = append(filtered, s)
            }
        }
        seats = filtered
    }
    if seats == nil {
        seats = []model.Seat{}
    }
    return c.JSON(http.StatusOK, map[string]any{
        "hall_id": hallID,
        "count":   len(seats),
        "items":   seats,
    })
}
