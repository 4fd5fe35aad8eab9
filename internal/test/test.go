package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// APITestCase represents the data needed to describe an API test case.
type APITestCase struct {
	Name         string
	Method       string
	URL          string
	Body         string
	Header       http.Header
	WantStatus   int
	WantResponse string
}

// Endpoint tests an HTTP endpoint using the given APITestCase spec.
func Endpoint(t *testing.T, router *echo.Echo, tc APITestCase) {
	t.Run(tc.Name, func(t *testing.T) {
		var reader *strings.Reader
		if tc.Body != "" {
			reader = strings.NewReader(tc.Body)
		} else {
			reader = strings.NewReader("")
		}

		req := httptest.NewRequest(tc.Method, tc.URL, reader)
		if tc.Header != nil {
			req.Header = tc.Header
		}
		if req.Header.Get(echo.HeaderContentType) == "" {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, tc.WantStatus, rec.Code, "status mismatch")

		if tc.WantResponse != "" {
			pattern := strings.Trim(tc.WantResponse, "*")
			if pattern != tc.WantResponse {
				assert.Contains(t, rec.Body.String(), pattern, "response mismatch")
			} else {
				assert.JSONEq(t, tc.WantResponse, rec.Body.String(), "response mismatch")
			}
		}
	})
}
