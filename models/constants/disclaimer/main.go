package disclaimer

import (
	"genoinsight/engine/models/constants"
	"genoinsight/engine/models/constants/ancestry"
)

/*
	Disclaimer text identifiers consumed by the report renderer.
	The engine only selects an identifier; the renderer owns the
	actual wording and templating.
*/
const (
	// population-average interpretation applies as-is
	PopulationAverage constants.DisclaimerId = "disclaimer.population-average"

	// declared ancestry is under-represented in the source literature
	AncestryLimited constants.DisclaimerId = "disclaimer.ancestry-limited"

	// unspecified ancestry, population-average interpretation may not apply
	UnspecifiedConservative constants.DisclaimerId = "disclaimer.unspecified-conservative"
)

// Select maps a declared ancestry code to the disclaimer identifier the
// renderer should attach. Unrecognized codes fail closed: they always land
// on the most conservative identifier rather than erroring.
func Select(code constants.AncestryCode) constants.DisclaimerId {
	switch code {
	case ancestry.European:
		// the bulk of panel literature is derived from european-ancestry
		// cohorts, so the population-average framing applies directly
		return PopulationAverage

	case ancestry.African, ancestry.EastAsian, ancestry.SouthAsian,
		ancestry.Admixed, ancestry.Mixed, ancestry.Other:
		return AncestryLimited

	case ancestry.Unknown:
		return UnspecifiedConservative

	default:
		// fallback arm for codes outside the closed enumeration
		return UnspecifiedConservative
	}
}

// SelectFromRaw casts free-form input before selecting, so callers
// holding an unvalidated string get the same fail-closed behaviour.
func SelectFromRaw(text string) constants.DisclaimerId {
	return Select(ancestry.CastToAncestryCode(text))
}
