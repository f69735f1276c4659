package middleware

import (
	"fmt"

	"genoinsight/engine/models/constants/ancestry"

	"github.com/labstack/echo"
)

/*
	Echo middleware to inspect an optional `ancestry` HTTP query parameter.
	Unknown codes are never rejected here: the disclaimer selector fails
	closed on them, so the run proceeds with the conservative fallback.
*/
func ValidateOptionalAncestryAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ancestryQP := c.QueryParam("ancestry")
		if len(ancestryQP) > 0 && !ancestry.IsKnownAncestryCode(ancestryQP) {
			// log and proceed
			fmt.Printf("Unrecognized ancestry code '%s' - falling back to the conservative disclaimer\n", ancestryQP)
		}

		return next(c)
	}
}
