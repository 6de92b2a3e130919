package handler // handler defines http handlers

import (
    "context"
    "errors"   // errors matches sentinel and typed errors
    "net/http" // http defines status code constants
    "strconv"  // strconv converts path parameters to numbers

    "github.com/charmbracelet/log"
    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/iliyamo/cinema-seat-layout/internal/layout"
    "github.com/iliyamo/cinema-seat-layout/internal/middleware"
    "github.com/iliyamo/cinema-seat-layout/internal/model"
    "github.com/iliyamo/cinema-seat-layout/internal/repository"
    "github.com/iliyamo/cinema-seat-layout/internal/service"
)

// LayoutService is what the layout handlers need from the service layer.
type LayoutService interface {
    Default() (*service.LayoutView, error)
    Preview(cfg layout.Config) (*service.LayoutView, error)
    Toggle(cfg layout.Config, row, seat int) (*service.LayoutView, error)
    ToggleBySeatID(cfg layout.Config, id string) (*service.LayoutView, error)
    Resize(cfg layout.Config, rows, seatsPerRow int) (*service.LayoutView, error)
    TogglePremiumRow(cfg layout.Config, rowNumber int) (*service.LayoutView, error)
    Load(ctx context.Context, ownerID, hallID uint64) (*service.LayoutView, error)
    Save(ctx context.Context, ownerID, hallID uint64, cfg layout.Config) (*service.LayoutView, error)
    Seats(ctx context.Context, ownerID, hallID uint64) ([]model.Seat, error)
}

// LayoutHandler serves the layout editor and hall layout endpoints.
type LayoutHandler struct {
    svc    LayoutService
    logger *log.Logger
}

// NewLayoutHandler panics if svc is nil.
func NewLayoutHandler(svc LayoutService, logger *log.Logger) *LayoutHandler {
    if svc == nil {
        panic("nil service passed to NewLayoutHandler")
    }
    if logger == nil {
        logger = log.Default()
    }
    return &LayoutHandler{svc: svc, logger: logger}
}

// getUserID extracts the authenticated owner's id set by JWTAuth.
func getUserID(c echo.Context) (uint64, error) {
    if id, ok := middleware.UserID(c); ok {
        return id, nil
    }
    return 0, errors.New("invalid user_id in context")
}

// hallParams resolves the caller and the :id path parameter, writing the
// error response itself when either is missing.
func hallParams(c echo.Context) (ownerID, hallID uint64, ok bool) {
    ownerID, err := getUserID(c)
    if err != nil {
        _ = c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
        return 0, 0, false
    }
    hallID, err = strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || hallID == 0 {
        _ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
        return 0, 0, false
    }
    return ownerID, hallID, true
}

// writeError maps service and engine errors to responses.  Invalid
// configs are 422 with the offending field, bad seat addresses 400.
func (h *LayoutHandler) writeError(c echo.Context, err error) error {
    var (
        verr *layout.ValidationError
        lerr *layout.LabelSpaceError
        berr *layout.BoundsError
    )
    switch {
    case errors.As(err, &verr):
        body := map[string]any{"error": verr.Error(), "field": verr.Field, "value": verr.Value}
        if verr.Seat != nil {
            body["seat"] = verr.Seat
        }
        return c.JSON(http.StatusUnprocessableEntity, body)
    case errors.As(err, &lerr):
        return c.JSON(http.StatusUnprocessableEntity, map[string]any{
            "error": lerr.Error(), "field": "row_count", "value": lerr.Rows,
        })
    case errors.As(err, &berr):
        return c.JSON(http.StatusBadRequest, map[string]any{
            "error": berr.Error(), "row_index": berr.Row, "seat_number": berr.Seat,
        })
    case errors.Is(err, layout.ErrInvalidSeatID):
        return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
    case errors.Is(err, repository.ErrHallNotFound):
        return c.JSON(http.StatusNotFound, map[string]string{"error": "hall not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
    default:
        h.logger.Error("layout request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
    }
}
