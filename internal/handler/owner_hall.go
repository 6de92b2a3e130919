package handler // handler package contains owner-specific hall layout handlers

import (
    "net/http" // http defines status code constants

    "github.com/labstack/echo/v4" // echo framework supplies request context

    "github.com/iliyamo/cinema-seat-layout/internal/layout"
)

// GetHallLayout handles GET /v1/halls/:id/layout and returns the hall's saved
// layout, or the default layout sized to the hall when nothing was saved yet.
func (h *LayoutHandler) GetHallLayout(c echo.Context) error {
    ownerID, hallID, ok := hallParams(c)
    if !ok {
        return nil
    }
    view, err := h.svc.Load(c.Request().Context(), ownerID, hallID)
    if err != nil {
        return h.writeError(c, err)
    }
    return c.JSON(http.StatusOK, view)
}

// SaveHallLayout handles PUT /v1/halls/:id/layout.  The body is a bare config;
// it replaces the stored one (last write wins) and the hall's seats are
// rebuilt from it.  The response carries the new revision.
func (h *LayoutHandler) SaveHallLayout(c echo.Context) error {
    ownerID, hallID, ok := hallParams(c)
    if !ok {
        return nil
    }
    var cfg layout.Config
    if err := c.Bind(&cfg); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    view, err := h.svc.Save(c.Request().Context(), ownerID, hallID, cfg)
    if err != nil {
        return h.writeError(c, err)
    }
    return c.JSON(http.StatusOK, view)
}
