package middleware

import (
	"errors"
	"net/http"

	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/tools"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler turns domain errors into HTTP responses using a
// status code map.
type HTTPErrorHandler struct {
	statusCodes map[error]int
}

func NewHTTPErrorHandler(statusCodes map[error]int) *HTTPErrorHandler {
	return &HTTPErrorHandler{statusCodes: statusCodes}
}

func (h *HTTPErrorHandler) Handler(logger log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := err.Error()

		var httpError *echo.HTTPError
		if errors.As(err, &httpError) {
			code = httpError.Code
			if msg, ok := httpError.Message.(string); ok {
				message = msg
			}
		} else {
			for domainErr, status := range h.statusCodes {
				if errors.Is(err, domainErr) {
					code = status
					message = domainErr.Error()
					break
				}
			}
		}

		if code == http.StatusInternalServerError {
			logger.With(c.Request().Context()).Errorf("unhandled error: %s", err)
			message = "internal server error"
		}

		if writeErr := c.JSON(code, tools.Response{
			Status:  tools.Fail,
			Message: message,
		}); writeErr != nil {
			logger.With(c.Request().Context()).Errorf("fail to write error response: %s", writeErr)
		}
	}
}
