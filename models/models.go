package models

import (
	"time"

	"genoinsight/engine/models/constants"
)

// allele characters accepted from the genotype collaborator
var ValidAlleles = []string{"A", "C", "G", "T"}

// no-call markers as emitted by consumer genotyping arrays
var NoCallMarkers = []string{"--", "..", "NN"}

type AllelePair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// GenotypeCall is one observed genotype for one reference SNP.
// Immutable once created; owned by the genotype index for the
// lifetime of a run. The allele pair keeps its input order for
// display, while matching treats it as unordered.
type GenotypeCall struct {
	VariantId  string     `json:"variantId"`
	Chromosome string     `json:"chromosome"`
	Position   int        `json:"position"`
	Alleles    AllelePair `json:"alleles"`
	NoCall     bool       `json:"noCall"`
}

type ConfidenceInterval struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// VariantPanelEntry is one literature-sourced variant within a trait
// panel: the risk allele, its per-copy weight and direction of effect,
// plus citation metadata used by the consistency validator.
type VariantPanelEntry struct {
	VariantId          string              `json:"variantId"`
	Gene               string              `json:"gene"` // empty when the locus is unlabelled
	RiskAllele         string              `json:"riskAllele"`
	Weight             float64             `json:"weight"`
	Direction          int                 `json:"direction"` // +1 risk-increasing, -1 risk-decreasing
	SourceCitation     string              `json:"sourceCitation"`
	ConfidenceInterval *ConfidenceInterval `json:"confidenceInterval,omitempty"` // nil = not reported
}

// PercentilePoint is one step of a trait's empirical score
// distribution. Points are kept sorted ascending by score and the
// mapped percentile is required to be monotonic non-decreasing.
type PercentilePoint struct {
	Score      float64 `json:"score"`
	Percentile float64 `json:"percentile"`
}

type TraitPanel struct {
	TraitName           string              `json:"traitName"`
	Entries             []VariantPanelEntry `json:"entries"`
	PercentileReference []PercentilePoint   `json:"percentileReference"`
}

type ContributingVariant struct {
	VariantId    string  `json:"variantId"`
	Gene         string  `json:"gene"`
	Genotype     string  `json:"genotype"`
	AlleleCopies int     `json:"alleleCopies"` // 0, 1 or 2
	Contribution float64 `json:"contribution"` // alleleCopies x weight x direction
}

// ScoreResult is the per-trait outcome of a scoring run. Produced
// fresh per run, never mutated afterwards.
type ScoreResult struct {
	TraitName       string  `json:"traitName"`
	RawScore        float64 `json:"rawScore"`
	VariantsMatched int     `json:"variantsMatched"`
	VariantsTotal   int     `json:"variantsTotal"`
	CoverageRatio   float64 `json:"coverageRatio"`
	LowConfidence   bool    `json:"lowConfidence"`

	Percentile        float64                `json:"percentile"`
	RiskCategory      constants.RiskCategory `json:"riskCategory"`
	RiskCategoryLabel string                 `json:"riskCategoryLabel"`

	// sorted descending by absolute contribution, ties broken by
	// ascending variant id; truncated to the configured top-K while
	// the raw score still reflects every matched variant
	ContributingVariants []ContributingVariant `json:"contributingVariants"`
}

type ValidationFinding struct {
	VariantId string                `json:"variantId"`
	TraitName string                `json:"traitName"`
	Kind      constants.FindingKind `json:"kind"`
	Detail    string                `json:"detail"`
}

// ProvenanceRecord binds a report to its exact inputs. Two runs with
// identical fingerprint, panel version and code version must yield
// byte-identical score result sets.
type ProvenanceRecord struct {
	InputFingerprint string                 `json:"inputFingerprint"`
	PanelVersion     string                 `json:"panelVersion"`
	CodeVersion      string                 `json:"codeVersion"`
	AncestryCode     constants.AncestryCode `json:"ancestryCode"`
	GeneratedAt      time.Time              `json:"generatedAt"`
}
