package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterHandlers registers the healthcheck route. The version string
// ends up in the response so deployments are visible from the probe.
func RegisterHandlers(g *echo.Group, version string) {
	g.GET("/healthcheck", healthcheck(version))
}

func healthcheck(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK "+version)
	}
}
