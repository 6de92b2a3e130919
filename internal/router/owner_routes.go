package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-seat-layout/internal/handler"    // layout handlers
	"github.com/iliyamo/cinema-seat-layout/internal/middleware" // JWT + role middlewares
)

// OwnerMiddleware groups the optional Redis-backed middleware.  Nil
// entries are skipped.
type OwnerMiddleware struct {
	RateLimit  echo.MiddlewareFunc // edit routes
	Cache      echo.MiddlewareFunc // GET hall layout
	CachePurge echo.MiddlewareFunc // PUT hall layout
}

// RegisterOwner registers OWNER-scoped layout endpoints under /v1.
// All routes require a valid JWT and OWNER role.
func RegisterOwner(e *echo.Echo, h *handler.LayoutHandler, jwtSecret string, mw OwnerMiddleware) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)
	edit := optional(mw.RateLimit)

	// ---- Layout editor (stateless) ----
	g.GET("/layouts/default", h.Default)
	g.POST("/layouts/preview", h.Preview, edit...)
	g.POST("/layouts/toggle", h.Toggle, edit...)
	g.POST("/layouts/resize", h.Resize, edit...)
	g.POST("/layouts/premium-row", h.TogglePremiumRow, edit...)

	// ---- Hall layouts ----
	g.GET("/halls/:id/layout", h.GetHallLayout, optional(mw.Cache)...)
	g.PUT("/halls/:id/layout", h.SaveHallLayout, append(edit, optional(mw.CachePurge)...)...)
	g.GET("/halls/:id/seats", h.ListSeats)
}

func optional(m echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if m == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m}
}
