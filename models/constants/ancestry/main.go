package ancestry

import (
	"genoinsight/engine/models/constants"
	"strings"
)

const (
	Unknown constants.AncestryCode = "UNK"

	European   constants.AncestryCode = "EUR"
	African    constants.AncestryCode = "AFR"
	EastAsian  constants.AncestryCode = "EAS"
	SouthAsian constants.AncestryCode = "SAS"
	Admixed    constants.AncestryCode = "AMR"
	Mixed      constants.AncestryCode = "MIX"
	Other      constants.AncestryCode = "OTH"
)

func CastToAncestryCode(text string) constants.AncestryCode {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "EUR", "EU":
		return European
	case "AFR":
		return African
	case "EAS", "ASN":
		return EastAsian
	case "SAS":
		return SouthAsian
	case "AMR":
		return Admixed
	case "MIX":
		return Mixed
	case "OTH":
		return Other
	default:
		// fail closed on anything unrecognized
		return Unknown
	}
}

func IsKnownAncestryCode(text string) bool {
	// attempt to cast to ancestryCode and
	// return if unknown ancestryCode
	return CastToAncestryCode(text) != Unknown
}
