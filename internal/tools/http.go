package tools

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	Success string = "SUCCESS"
	Fail    string = "FAIL"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON writes the envelope every gateway endpoint answers with.
func JSON(c echo.Context, code int, status string, data interface{}) error {
	return c.JSON(code, Response{
		Status: status,
		Data:   data,
	})
}

// BindValidate binds the request into req and runs the registered
// validator over it.
func BindValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
