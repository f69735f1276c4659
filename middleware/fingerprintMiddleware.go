package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo"
)

var fingerprintPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

/*
	Echo middleware to ensure a valid `fingerprint` HTTP query parameter was provided
*/
func MandateFingerprintAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for fingerprint query parameter
		fingerprintQP := c.QueryParam("fingerprint")
		if len(fingerprintQP) == 0 {
			// if no fingerprint was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'fingerprint' query parameter for querying!")
		}

		// verify: provenance fingerprints are lowercase hex sha-256 digests
		if !fingerprintPattern.MatchString(fingerprintQP) {
			return echo.NewHTTPError(http.StatusBadRequest, "Error validating 'fingerprint' query parameter! Check your input")
		}

		return next(c)
	}
}
