package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func setUpEcho(path string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestMandatePanelVersionAttribute(t *testing.T) {
	t.Run("should pass through with a well-formed version", func(t *testing.T) {
		c := setUpEcho("/panels/overview?panelVersion=v2024-06")

		err := MandatePanelVersionAttribute(okHandler)(c)

		assert.Nil(t, err)
	})

	t.Run("should reject a missing version", func(t *testing.T) {
		c := setUpEcho("/panels/overview")

		err := MandatePanelVersionAttribute(okHandler)(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("should reject path traversal tokens", func(t *testing.T) {
		for _, version := range []string{"..", "a/..", "a%2Fb"} {
			c := setUpEcho("/panels/overview?panelVersion=" + version)

			err := MandatePanelVersionAttribute(okHandler)(c)

			assert.NotNil(t, err)
		}
	})
}

func TestMandateFingerprintAttribute(t *testing.T) {
	t.Run("should pass through with a lowercase hex sha-256 digest", func(t *testing.T) {
		c := setUpEcho("/reports/archive/by/fingerprint?fingerprint=" + strings.Repeat("ab", 32))

		err := MandateFingerprintAttribute(okHandler)(c)

		assert.Nil(t, err)
	})

	t.Run("should reject missing, short and non-hex digests", func(t *testing.T) {
		for _, fingerprint := range []string{"", "abc123", strings.Repeat("XY", 32)} {
			c := setUpEcho("/reports/archive/by/fingerprint?fingerprint=" + fingerprint)

			err := MandateFingerprintAttribute(okHandler)(c)

			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		}
	})
}

func TestValidateOptionalAncestryAttribute(t *testing.T) {
	t.Run("should never reject, known or not", func(t *testing.T) {
		for _, path := range []string{
			"/reports/run?panelVersion=v1",
			"/reports/run?panelVersion=v1&ancestry=EUR",
			"/reports/run?panelVersion=v1&ancestry=martian",
		} {
			c := setUpEcho(path)

			err := ValidateOptionalAncestryAttribute(okHandler)(c)

			assert.Nil(t, err)
		}
	})
}
