package disclaimers

import (
	"fmt"
	"net/http"
	"time"

	"genoinsight/engine/models/constants/ancestry"
	"genoinsight/engine/models/constants/disclaimer"
	"genoinsight/engine/models/dtos"

	"github.com/labstack/echo"
)

// GetDisclaimerSelection exposes the ancestry -> disclaimer mapping to
// the renderer. Unknown codes fail closed to the conservative
// identifier, so this endpoint never errors on user input.
func GetDisclaimerSelection(c echo.Context) error {
	fmt.Printf("[%s] - GetDisclaimerSelection hit!\n", time.Now())

	ancestryCode := ancestry.CastToAncestryCode(c.QueryParam("ancestry"))

	return c.JSON(http.StatusOK, dtos.DisclaimerResponse{
		Status:       http.StatusOK,
		Message:      "Success",
		AncestryCode: ancestryCode,
		DisclaimerId: disclaimer.Select(ancestryCode),
	})
}
