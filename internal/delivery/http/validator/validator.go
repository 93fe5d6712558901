// Package validator wires go-playground/validator into echo's request
// validation hook.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// customValidator implements echo.Validator.
type customValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the echo servers.
func New() echo.Validator {
	return &customValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-tag validation and converts failures into echo errors.
func (v *customValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
