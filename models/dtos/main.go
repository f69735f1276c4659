package dtos

import (
	"time"

	"genoinsight/engine/models"
	"genoinsight/engine/models/constants"
	"genoinsight/engine/models/report"
)

type ReportResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type ReportRunResponse struct {
	ReportResponse
	Bundle report.Bundle `json:"bundle"`
}

type PanelOverviewResponse struct {
	Status       int                    `json:"status"`
	Message      string                 `json:"message"`
	PanelVersion string                 `json:"panelVersion"`
	Traits       []PanelTraitOverview   `json:"traits"`
	Overview     map[string]interface{} `json:"overview"`
}

type PanelTraitOverview struct {
	TraitName       string `json:"traitName"`
	VariantCount    int    `json:"variantCount"`
	MissingCICount  int    `json:"missingCICount"`
	PercentileSteps int    `json:"percentileSteps"`
}

type PanelValidationResponse struct {
	Status            int                        `json:"status"`
	Message           string                     `json:"message"`
	PanelVersion      string                     `json:"panelVersion"`
	OtherPanelVersion string                     `json:"otherPanelVersion,omitempty"`
	Findings          []models.ValidationFinding `json:"findings"`
}

type GenotypeIngestResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	File    string `json:"file"`
	Calls   int    `json:"calls"`
	NoCalls int    `json:"noCalls"`
}

type GenotypeOverviewResponse struct {
	Status   int                    `json:"status"`
	Message  string                 `json:"message"`
	Overview map[string]interface{} `json:"overview"`
}

type ArchivedReportsResponse struct {
	Status      int                      `json:"status"`
	Message     string                   `json:"message"`
	Fingerprint string                   `json:"fingerprint"`
	Count       int                      `json:"count"`
	Results     []map[string]interface{} `json:"results"` // []indexes.ReportDocument
}

type DisclaimerResponse struct {
	Status       int                    `json:"status"`
	Message      string                 `json:"message"`
	AncestryCode constants.AncestryCode `json:"ancestryCode"`
	DisclaimerId constants.DisclaimerId `json:"disclaimerId"`
}

// -- general errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
