package report

import (
	"genoinsight/engine/models"
	"genoinsight/engine/models/constants"

	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running       = "Running"
	Done          = "Done"
	Error         = "Error"
)

// RunRequest tracks one report run through the engine, from the
// moment the HTTP surface accepts it until its bundle is assembled.
type RunRequest struct {
	Id           uuid.UUID `json:"id"`
	PanelVersion string    `json:"panelVersion"`
	Ancestry     string    `json:"ancestry"`
	State        State     `json:"state"`
	Message      string    `json:"message"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// Bundle is the complete, immutable output of one report run,
// handed to the renderer and (optionally) archived.
type Bundle struct {
	Id uuid.UUID `json:"id"`

	Results    []models.ScoreResult       `json:"results"`  // one per trait, fixed trait order
	Findings   []models.ValidationFinding `json:"findings"` // advisory, never blocking
	Provenance models.ProvenanceRecord    `json:"provenance"`

	DisclaimerId constants.DisclaimerId `json:"disclaimerId"`
}
