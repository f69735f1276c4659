package disclaimers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"genoinsight/engine/contexts"
	"genoinsight/engine/models"
	"genoinsight/engine/models/constants/ancestry"
	"genoinsight/engine/models/constants/disclaimer"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestGetDisclaimerSelection(t *testing.T) {
	cfg := &models.Config{}

	setUpEcho := func(method string, path string) (*contexts.GenoContext, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(method, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		gc := &contexts.GenoContext{
			Context:   c,
			Es7Client: nil,
			Config:    cfg,
		}
		return gc, rec
	}

	getJsonBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		// - extract body bytes from response
		body, _ := io.ReadAll(rec.Body)
		// - unmarshal or decode the JSON to a declared empty interface.
		var bodyJson map[string]interface{}
		json.Unmarshal(body, &bodyJson)

		return bodyJson
	}

	t.Run("should return 200 and the population-average identifier for EUR", func(t *testing.T) {
		// set up
		gc, rec := setUpEcho(http.MethodGet, "/disclaimers/selection?ancestry=EUR")

		// perform
		GetDisclaimerSelection(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		json := getJsonBody(rec)
		assert.Equal(t, string(ancestry.European), json["ancestryCode"].(string))
		assert.Equal(t, string(disclaimer.PopulationAverage), json["disclaimerId"].(string))
	})

	t.Run("should return 200 and fail closed on junk input", func(t *testing.T) {
		// set up
		gc, rec := setUpEcho(http.MethodGet, "/disclaimers/selection?ancestry=xx")

		// perform
		GetDisclaimerSelection(gc)

		// verify: junk never errors, it lands on the conservative identifier
		assert.Equal(t, http.StatusOK, rec.Code)

		json := getJsonBody(rec)
		assert.Equal(t, string(ancestry.Unknown), json["ancestryCode"].(string))
		assert.Equal(t, string(disclaimer.UnspecifiedConservative), json["disclaimerId"].(string))
	})

	t.Run("should return 200 and the conservative identifier without a parameter", func(t *testing.T) {
		// set up
		gc, rec := setUpEcho(http.MethodGet, "/disclaimers/selection")

		// perform
		GetDisclaimerSelection(gc)

		assert.Equal(t, http.StatusOK, rec.Code)

		json := getJsonBody(rec)
		assert.Equal(t, string(disclaimer.UnspecifiedConservative), json["disclaimerId"].(string))
	})
}
