package indexes

import (
	"time"

	"genoinsight/engine/models"
	c "genoinsight/engine/models/constants"
)

// ReportDocument is the elasticsearch shape of an archived report
// bundle. Flat provenance fields keep fingerprint and version
// lookups cheap keyword matches.
type ReportDocument struct {
	Id string `json:"id"`

	InputFingerprint string `json:"inputFingerprint"`
	PanelVersion     string `json:"panelVersion"`
	CodeVersion      string `json:"codeVersion"`
	AncestryCode     string `json:"ancestryCode"`

	DisclaimerId c.DisclaimerId `json:"disclaimerId"`

	Results  []models.ScoreResult       `json:"results"`
	Findings []models.ValidationFinding `json:"findings"`

	GeneratedAt time.Time `json:"generatedAt"`
	CreatedTime time.Time `json:"createdTime"`
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_LONG = map[string]interface{}{"type": "long"}
var MAPPING_FLOAT64 = map[string]interface{}{"type": "double"}
var MAPPING_BOOL = map[string]interface{}{"type": "boolean"}
var MAPPING_DATE = map[string]interface{}{"type": "date"}

var REPORT_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"id":               MAPPING_TEXT,
		"inputFingerprint": MAPPING_TEXT,
		"panelVersion":     MAPPING_TEXT,
		"codeVersion":      MAPPING_TEXT,
		"ancestryCode":     MAPPING_TEXT,
		"disclaimerId":     MAPPING_TEXT,
		"results": map[string]interface{}{
			"properties": map[string]interface{}{
				"traitName":         MAPPING_TEXT,
				"rawScore":          MAPPING_FLOAT64,
				"variantsMatched":   MAPPING_LONG,
				"variantsTotal":     MAPPING_LONG,
				"coverageRatio":     MAPPING_FLOAT64,
				"lowConfidence":     MAPPING_BOOL,
				"percentile":        MAPPING_FLOAT64,
				"riskCategory":      MAPPING_LONG,
				"riskCategoryLabel": MAPPING_TEXT,
				"contributingVariants": map[string]interface{}{
					"properties": map[string]interface{}{
						"variantId":    MAPPING_TEXT,
						"gene":         MAPPING_TEXT,
						"genotype":     MAPPING_TEXT,
						"alleleCopies": MAPPING_LONG,
						"contribution": MAPPING_FLOAT64,
					},
				},
			},
		},
		"findings": map[string]interface{}{
			"properties": map[string]interface{}{
				"variantId": MAPPING_TEXT,
				"traitName": MAPPING_TEXT,
				"kind":      MAPPING_TEXT,
				"detail":    MAPPING_TEXT,
			},
		},
		"generatedAt": MAPPING_DATE,
		"createdTime": MAPPING_DATE,
	},
}
