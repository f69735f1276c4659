package validationService

import (
	"fmt"

	"genoinsight/engine/models"
	findingKind "genoinsight/engine/models/constants/finding-kind"
)

/*
	Advisory cross-checks over panel literature metadata.
	Findings are data, never errors: a corrupted citation or a
	missing confidence interval must never block score computation,
	so the validator is fully decoupled from the scorer.
*/

// ValidatePanel examines one trait panel, optionally against the same
// trait from a second (e.g. updated) panel version.
func ValidatePanel(panel models.TraitPanel, other *models.TraitPanel) []models.ValidationFinding {
	findings := []models.ValidationFinding{}

	// -- missing confidence intervals (informational)
	for _, entry := range panel.Entries {
		if entry.ConfidenceInterval == nil {
			findings = append(findings, models.ValidationFinding{
				VariantId: entry.VariantId,
				TraitName: panel.TraitName,
				Kind:      findingKind.MissingConfidenceInterval,
				Detail:    fmt.Sprintf("%s (%s) carries no confidence interval", entry.VariantId, entry.SourceCitation),
			})
		}
	}

	// -- direction conflicts across the two panels
	if other != nil {
		otherEntries := map[string]models.VariantPanelEntry{}
		for _, entry := range other.Entries {
			otherEntries[entry.VariantId] = entry
		}

		for _, entry := range panel.Entries {
			otherEntry, shared := otherEntries[entry.VariantId]
			if !shared {
				continue
			}

			if entry.Direction*otherEntry.Direction < 0 {
				// name both sources so a curator can resolve the conflict
				findings = append(findings, models.ValidationFinding{
					VariantId: entry.VariantId,
					TraitName: panel.TraitName,
					Kind:      findingKind.DirectionConflict,
					Detail: fmt.Sprintf("%s reports direction %+d (%s) but %s reports direction %+d",
						entry.SourceCitation, entry.Direction, panel.TraitName, otherEntry.SourceCitation, otherEntry.Direction),
				})
			}
		}
	}

	return findings
}

// ValidateAll runs ValidatePanel over a whole panel version. When a
// second version is given, traits are matched by name; traits absent
// from the other version are validated standalone.
func ValidateAll(panels []models.TraitPanel, otherPanels []models.TraitPanel) []models.ValidationFinding {
	otherByTrait := map[string]models.TraitPanel{}
	for _, other := range otherPanels {
		otherByTrait[other.TraitName] = other
	}

	findings := []models.ValidationFinding{}
	for _, panel := range panels {
		var other *models.TraitPanel
		if matched, ok := otherByTrait[panel.TraitName]; ok {
			matchedCopy := matched
			other = &matchedCopy
		}

		findings = append(findings, ValidatePanel(panel, other)...)
	}

	return findings
}
