package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `panelVersion` HTTP query parameter was provided
*/
func MandatePanelVersionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for panelVersion query parameter
		panelVersionQP := c.QueryParam("panelVersion")
		if len(panelVersionQP) == 0 {
			// if no version was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'panelVersion' query parameter for querying!")
		}

		// verify: versions are opaque strings, but path traversal
		// tokens would escape the panel directory
		if strings.Contains(panelVersionQP, "..") || strings.ContainsAny(panelVersionQP, "/\\") {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'panelVersion' query parameter! Check your input")
		}

		return next(c)
	}
}
