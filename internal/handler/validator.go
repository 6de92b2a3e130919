package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo.  Field names
// in errors are the JSON names.
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.v.Struct(i)
}

// bindAndValidate binds the JSON body into dst and validates it.  It
// writes the 400 response itself and returns false on failure.
func bindAndValidate(c echo.Context, dst any) bool {
	if err := c.Bind(dst); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	if err := c.Validate(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			_ = c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()),
				"field": fe.Field(),
			})
			return false
		}
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}
