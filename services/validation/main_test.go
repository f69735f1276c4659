package validationService

import (
	"testing"

	"genoinsight/engine/models"
	findingKind "genoinsight/engine/models/constants/finding-kind"

	"github.com/stretchr/testify/assert"
)

func ciPtr(lower float64, upper float64) *models.ConfidenceInterval {
	return &models.ConfidenceInterval{Lower: lower, Upper: upper}
}

func TestValidatePanel(t *testing.T) {
	t.Run("one finding per entry without a confidence interval", func(t *testing.T) {
		panel := models.TraitPanel{
			TraitName: "Cardiovascular Disease",
			Entries: []models.VariantPanelEntry{
				{VariantId: "rs10757278", RiskAllele: "G", Weight: 0.24, Direction: 1,
					SourceCitation: "Helgadottir et al. 2007, Science", ConfidenceInterval: ciPtr(0.19, 0.29)},
				{VariantId: "rs10953541", RiskAllele: "C", Weight: 0.14, Direction: 1,
					SourceCitation: "CARDIoGRAM Consortium 2011, Nat Genet"},
				{VariantId: "rs5219", RiskAllele: "T", Weight: 0.10, Direction: 1,
					SourceCitation: "Gloyn et al. 2003, Diabetes"},
			},
		}

		findings := ValidatePanel(panel, nil)

		assert.Len(t, findings, 2)
		for _, finding := range findings {
			assert.Equal(t, findingKind.MissingConfidenceInterval, finding.Kind)
			assert.Equal(t, "Cardiovascular Disease", finding.TraitName)
		}
		assert.Equal(t, "rs10953541", findings[0].VariantId)
		assert.Equal(t, "rs5219", findings[1].VariantId)
	})

	t.Run("opposite directions across versions raise exactly one conflict", func(t *testing.T) {
		current := models.TraitPanel{
			TraitName: "Cardiovascular Disease",
			Entries: []models.VariantPanelEntry{
				{VariantId: "rs10953541", RiskAllele: "C", Weight: 0.14, Direction: 1,
					SourceCitation: "CARDIoGRAM Consortium 2011, Nat Genet", ConfidenceInterval: ciPtr(0.09, 0.19)},
			},
		}
		updated := models.TraitPanel{
			TraitName: "Cardiovascular Disease",
			Entries: []models.VariantPanelEntry{
				{VariantId: "rs10953541", RiskAllele: "C", Weight: 0.14, Direction: -1,
					SourceCitation: "van der Harst et al. 2018, Circ Res", ConfidenceInterval: ciPtr(-0.19, -0.09)},
			},
		}

		findings := ValidatePanel(current, &updated)

		assert.Len(t, findings, 1)
		assert.Equal(t, findingKind.DirectionConflict, findings[0].Kind)
		assert.Equal(t, "rs10953541", findings[0].VariantId)

		// - both sources are named so a curator can resolve the conflict
		assert.Contains(t, findings[0].Detail, "CARDIoGRAM Consortium 2011, Nat Genet")
		assert.Contains(t, findings[0].Detail, "van der Harst et al. 2018, Circ Res")
	})

	t.Run("agreeing directions raise no conflict", func(t *testing.T) {
		current := models.TraitPanel{
			TraitName: "Type 2 Diabetes",
			Entries: []models.VariantPanelEntry{
				{VariantId: "rs7903146", RiskAllele: "T", Weight: 0.31, Direction: 1,
					SourceCitation: "Grant et al. 2006, Nat Genet", ConfidenceInterval: ciPtr(0.26, 0.36)},
			},
		}
		updated := current
		updated.Entries = []models.VariantPanelEntry{
			{VariantId: "rs7903146", RiskAllele: "T", Weight: 0.29, Direction: 1,
				SourceCitation: "Mahajan et al. 2018, Nat Genet", ConfidenceInterval: ciPtr(0.24, 0.34)},
		}

		findings := ValidatePanel(current, &updated)

		assert.Empty(t, findings)
	})

	t.Run("variants absent from the other version are skipped", func(t *testing.T) {
		current := models.TraitPanel{
			TraitName: "Type 2 Diabetes",
			Entries: []models.VariantPanelEntry{
				{VariantId: "rs5219", RiskAllele: "T", Weight: 0.10, Direction: 1,
					SourceCitation: "Gloyn et al. 2003, Diabetes", ConfidenceInterval: ciPtr(0.05, 0.15)},
			},
		}
		updated := models.TraitPanel{TraitName: "Type 2 Diabetes"}

		findings := ValidatePanel(current, &updated)

		assert.Empty(t, findings)
	})
}

func TestValidateAll(t *testing.T) {
	t.Run("traits are matched by name across versions", func(t *testing.T) {
		current := []models.TraitPanel{
			{
				TraitName: "Cardiovascular Disease",
				Entries: []models.VariantPanelEntry{
					{VariantId: "rs10953541", RiskAllele: "C", Weight: 0.14, Direction: 1,
						SourceCitation: "CARDIoGRAM Consortium 2011, Nat Genet", ConfidenceInterval: ciPtr(0.09, 0.19)},
				},
			},
			{
				TraitName: "Type 2 Diabetes",
				Entries: []models.VariantPanelEntry{
					{VariantId: "rs7903146", RiskAllele: "T", Weight: 0.31, Direction: 1,
						SourceCitation: "Grant et al. 2006, Nat Genet"},
				},
			},
		}
		updated := []models.TraitPanel{
			{
				TraitName: "Cardiovascular Disease",
				Entries: []models.VariantPanelEntry{
					{VariantId: "rs10953541", RiskAllele: "C", Weight: 0.14, Direction: -1,
						SourceCitation: "van der Harst et al. 2018, Circ Res", ConfidenceInterval: ciPtr(-0.19, -0.09)},
				},
			},
		}

		findings := ValidateAll(current, updated)

		// - one direction conflict plus one missing ci on the diabetes trait
		assert.Len(t, findings, 2)

		conflicts := 0
		missing := 0
		for _, finding := range findings {
			switch finding.Kind {
			case findingKind.DirectionConflict:
				conflicts++
			case findingKind.MissingConfidenceInterval:
				missing++
			}
		}
		assert.Equal(t, 1, conflicts)
		assert.Equal(t, 1, missing)
	})
}
