package mocks

import (
	"wallet_gateway/internal/config/log"
	errs "wallet_gateway/internal/errors"
	"wallet_gateway/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Router returns an echo router configured the way the server builds
// it, for API tests.
func Router(logger log.Logger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(errs.GetStatusCodeMap()).Handler(logger)
	e.Validator = &middleware.CustomValidator{Validator: validator.New()}

	return e
}
