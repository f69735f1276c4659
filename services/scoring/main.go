package scoringService

import (
	"math"

	"genoinsight/engine/models"
	"genoinsight/engine/models/constants"
	riskCategory "genoinsight/engine/models/constants/risk-category"
	genotypesService "genoinsight/engine/services/genotypes"

	linq "github.com/ahmetb/go-linq"
	"golang.org/x/sync/errgroup"
)

type (
	// ScoringPolicy carries the configurable policy values of a run:
	// risk-category cut points, the minimum coverage ratio and the
	// number of contributing variants retained for display. These are
	// deployment configuration, never hard-coded in the scorer.
	ScoringPolicy struct {
		MinCoverageRatio float64
		TopContributors  int

		VeryHighCutPercentile     float64
		HighCutPercentile         float64
		AboveAverageCutPercentile float64
	}
)

func PolicyFromConfig(cfg *models.Config) ScoringPolicy {
	return ScoringPolicy{
		MinCoverageRatio:          cfg.Scoring.MinCoverageRatio,
		TopContributors:           cfg.Scoring.TopContributors,
		VeryHighCutPercentile:     cfg.Scoring.VeryHighCutPercentile,
		HighCutPercentile:         cfg.Scoring.HighCutPercentile,
		AboveAverageCutPercentile: cfg.Scoring.AboveAverageCutPercentile,
	}
}

// Score computes one trait's polygenic score against the run's
// genotype index. It is a pure function of its inputs: no clock, no
// randomness, no hidden state, so two calls with identical inputs
// yield bit-identical results.
func Score(panel models.TraitPanel, index *genotypesService.GenotypeIndex, policy ScoringPolicy) models.ScoreResult {
	var (
		rawScore      float64 = 0
		matched       int     = 0
		contributions         = []models.ContributingVariant{}
	)

	for _, entry := range panel.Entries {
		call, found := index.Lookup(entry.VariantId)
		if !found || call.NoCall {
			// expected lookup miss: counts toward the panel total
			// only, never toward the matched tally
			continue
		}

		// count risk-allele copies: case-sensitive, exact character
		// match on each side of the unordered pair
		alleleCopies := 0
		if call.Alleles.Left == entry.RiskAllele {
			alleleCopies++
		}
		if call.Alleles.Right == entry.RiskAllele {
			alleleCopies++
		}

		contribution := float64(alleleCopies) * entry.Weight * float64(entry.Direction)
		rawScore += contribution
		matched++

		contributions = append(contributions, models.ContributingVariant{
			VariantId:    entry.VariantId,
			Gene:         entry.Gene,
			Genotype:     call.Alleles.Left + call.Alleles.Right,
			AlleleCopies: alleleCopies,
			Contribution: contribution,
		})
	}

	total := len(panel.Entries)
	coverageRatio := 0.0
	if total > 0 {
		coverageRatio = float64(matched) / float64(total)
	}

	percentile := MapPercentile(panel.PercentileReference, rawScore)
	category := Categorize(percentile, policy)

	return models.ScoreResult{
		TraitName:       panel.TraitName,
		RawScore:        rawScore,
		VariantsMatched: matched,
		VariantsTotal:   total,
		CoverageRatio:   coverageRatio,
		LowConfidence:   coverageRatio < policy.MinCoverageRatio,

		Percentile:        percentile,
		RiskCategory:      category,
		RiskCategoryLabel: riskCategory.Label(category),

		ContributingVariants: topContributors(contributions, policy.TopContributors),
	}
}

// ScoreAll fans per-trait scoring out across goroutines. Each panel is
// scored independently against the same read-only index; results land
// in panel order, so the output trait order stays fixed.
func ScoreAll(panels []models.TraitPanel, index *genotypesService.GenotypeIndex, policy ScoringPolicy) []models.ScoreResult {
	results := make([]models.ScoreResult, len(panels))

	g := new(errgroup.Group)
	for i, panel := range panels {
		i, panel := i, panel
		g.Go(func() error {
			results[i] = Score(panel, index, policy)
			return nil
		})
	}
	// scoring itself never errors; the group is used purely as a fan-out
	_ = g.Wait()

	return results
}

// MapPercentile looks a raw score up in the trait's empirical step
// table: the percentile of the highest step whose score does not
// exceed the raw score, or 0 below the first step. Monotonic
// non-decreasing in the raw score by construction.
func MapPercentile(reference []models.PercentilePoint, rawScore float64) float64 {
	percentile := 0.0
	for _, point := range reference {
		if rawScore < point.Score {
			break
		}
		percentile = point.Percentile
	}
	return percentile
}

// Categorize applies the configured percentile cut points.
func Categorize(percentile float64, policy ScoringPolicy) constants.RiskCategory {
	switch {
	case percentile >= policy.VeryHighCutPercentile:
		return riskCategory.VeryHigh
	case percentile >= policy.HighCutPercentile:
		return riskCategory.High
	case percentile >= policy.AboveAverageCutPercentile:
		return riskCategory.AboveAverage
	default:
		return riskCategory.Average
	}
}

// sort descending by absolute contribution, tie-break by ascending
// variant id, then retain the top-K for display
func topContributors(contributions []models.ContributingVariant, topK int) []models.ContributingVariant {
	sorted := []models.ContributingVariant{}
	linq.From(contributions).
		OrderByDescendingT(func(cv models.ContributingVariant) float64 { return math.Abs(cv.Contribution) }).
		ThenByT(func(cv models.ContributingVariant) string { return cv.VariantId }).
		ToSlice(&sorted)

	if topK >= 0 && len(sorted) > topK {
		sorted = sorted[:topK]
	}

	return sorted
}
