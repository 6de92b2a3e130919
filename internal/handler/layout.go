package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-seat-layout/internal/layout"
	"github.com/iliyamo/cinema-seat-layout/internal/service"
)

// Editor endpoints work on the config sent by the client and never touch
// the database.  Each answers with the edited config and its grid.

type toggleRequest struct {
	Config     *layout.Config `json:"config" validate:"required"`
	RowIndex   *int           `json:"row_index" validate:"required_without=SeatID"`
	SeatNumber *int           `json:"seat_number" validate:"required_with=RowIndex"`
	SeatID     string         `json:"seat_id" validate:"required_without=RowIndex"`
}

type resizeRequest struct {
	Config      *layout.Config `json:"config" validate:"required"`
	Rows        *int           `json:"rows" validate:"required"`
	SeatsPerRow *int           `json:"seats_per_row" validate:"required"`
}

type premiumRowRequest struct {
	Config    *layout.Config `json:"config" validate:"required"`
	RowNumber *int           `json:"row_number" validate:"required"`
}

// Default handles GET /v1/layouts/default.
func (h *LayoutHandler) Default(c echo.Context) error {
	view, err := h.svc.Default()
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Preview handles POST /v1/layouts/preview.  The body is a bare config.
func (h *LayoutHandler) Preview(c echo.Context) error {
	var cfg layout.Config
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	view, err := h.svc.Preview(cfg)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Toggle handles POST /v1/layouts/toggle.  The seat is addressed either by
// row_index and seat_number or by seat_id ("C5"); seat_id wins when both
// are sent.
func (h *LayoutHandler) Toggle(c echo.Context) error {
	var req toggleRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	var (
		view *service.LayoutView
		err  error
	)
	if req.SeatID != "" {
		view, err = h.svc.ToggleBySeatID(*req.Config, req.SeatID)
	} else {
		view, err = h.svc.Toggle(*req.Config, *req.RowIndex, *req.SeatNumber)
	}
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Resize handles POST /v1/layouts/resize.
func (h *LayoutHandler) Resize(c echo.Context) error {
	var req resizeRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	view, err := h.svc.Resize(*req.Config, *req.Rows, *req.SeatsPerRow)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// TogglePremiumRow handles POST /v1/layouts/premium-row.
func (h *LayoutHandler) TogglePremiumRow(c echo.Context) error {
	var req premiumRowRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	view, err := h.svc.TogglePremiumRow(*req.Config, *req.RowNumber)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
