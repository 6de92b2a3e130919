package handler // declare the package name; contains HTTP handlers

import (
    "context"
    "net/http" // net/http provides status codes and response helpers
    "sort"
    "time"

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple liveness endpoint used by load balancers and
// monitoring systems to verify that the process is running.  It returns a
// plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

// Readiness returns a handler that runs every check with a short timeout.
// It answers 200 when all pass and 503 listing the failures otherwise.
func Readiness(checks map[string]Check) echo.HandlerFunc {
    names := make([]string, 0, len(checks))
    for name := range checks {
        names = append(names, name)
    }
    sort.Strings(names)

    return func(c echo.Context) error {
        ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
        defer cancel()
        status := http.StatusOK
        result := make(map[string]string, len(names))
        for _, name := range names {
            if err := checks[name](ctx); err != nil {
                result[name] = err.Error()
                status = http.StatusServiceUnavailable
                continue
            }
            result[name] = "ok"
        }
        return c.JSON(status, result)
    }
}
