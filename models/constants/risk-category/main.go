package riskCategory

import (
	"genoinsight/engine/models/constants"
)

/*
	Ordered risk categories derived from a trait's
	population percentile. Order matters: a higher
	value always means a higher percentile band.
*/
const (
	Unknown constants.RiskCategory = iota - 1
	Average
	AboveAverage
	High
	VeryHigh
)

func Label(category constants.RiskCategory) string {
	switch category {
	case Average:
		return "Average"
	case AboveAverage:
		return "Above Average"
	case High:
		return "High"
	case VeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}
