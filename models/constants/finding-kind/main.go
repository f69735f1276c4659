package findingKind

import (
	"genoinsight/engine/models/constants"
)

const (
	DirectionConflict         constants.FindingKind = "DirectionConflict"
	MissingConfidenceInterval constants.FindingKind = "MissingConfidenceInterval"
)
