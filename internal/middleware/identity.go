package middleware

// identity.go reads the caller identity that JWTAuth stored in the Echo
// context.  Handlers, the rate limiter and the response cache all key on it.

import (
    "net/http"
    "slices"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"
)

// UserID returns the authenticated user's id.  JWT numeric claims decode
// as float64, so every numeric form and decimal strings are accepted.
func UserID(c echo.Context) (uint64, bool) {
    switch t := c.Get("user_id").(type) {
    case uint64:
        return t, true
    case int:
        return uint64(t), t >= 0
    case int64:
        return uint64(t), t >= 0
    case float64:
        return uint64(t), t >= 0
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, true
        }
    }
    return 0, false
}

// identityKey renders the user id for cache and rate limit keys; "anon"
// when nobody is authenticated.
func identityKey(c echo.Context) string {
    if id, ok := UserID(c); ok {
        return strconv.FormatUint(id, 10)
    }
    return "anon"
}

// Role returns the role claim stored by JWTAuth.
func Role(c echo.Context) string {
    r, _ := c.Get("role").(string)
    return r
}

// RequireRole answers 403 unless the caller's role is one of roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !slices.Contains(roles, Role(c)) {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "layout editing requires one of roles " + strings.Join(roles, ", ")})
            }
            return next(c)
        }
    }
}
