package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/cinema-seat-layout/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance: liveness and readiness probes.  It also installs
// the request validator the layout handlers rely on.
func RegisterRoutes(e *echo.Echo, checks map[string]handler.Check) {
	e.Validator = handler.NewRequestValidator()
	e.GET("/healthz", handler.Health)
	e.GET("/readyz", handler.Readiness(checks))
}
