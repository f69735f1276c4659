package panels

import (
	"fmt"
	"net/http"
	"time"

	"genoinsight/engine/contexts"
	"genoinsight/engine/models"
	"genoinsight/engine/models/dtos"
	"genoinsight/engine/models/dtos/errors"
	validationService "genoinsight/engine/services/validation"

	"github.com/labstack/echo"
)

func GetPanelsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetPanelsOverview hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	panelVersion := c.QueryParam("panelVersion")

	panels, loadErr := gc.PanelStore.Load(panelVersion)
	if loadErr != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(loadErr.Error()))
	}

	traits := []dtos.PanelTraitOverview{}
	totalVariants := 0
	for _, panel := range panels {
		missingCi := 0
		for _, entry := range panel.Entries {
			if entry.ConfidenceInterval == nil {
				missingCi++
			}
		}

		traits = append(traits, dtos.PanelTraitOverview{
			TraitName:       panel.TraitName,
			VariantCount:    len(panel.Entries),
			MissingCICount:  missingCi,
			PercentileSteps: len(panel.PercentileReference),
		})
		totalVariants += len(panel.Entries)
	}

	return c.JSON(http.StatusOK, dtos.PanelOverviewResponse{
		Status:       http.StatusOK,
		Message:      "Success",
		PanelVersion: panelVersion,
		Traits:       traits,
		Overview: map[string]interface{}{
			"traitCount":   len(panels),
			"variantCount": totalVariants,
		},
	})
}

func PanelsValidate(c echo.Context) error {
	fmt.Printf("[%s] - PanelsValidate hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	panelVersion := c.QueryParam("panelVersion")

	panels, loadErr := gc.PanelStore.Load(panelVersion)
	if loadErr != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(loadErr.Error()))
	}

	// cross-version checks are an explicit caller-requested operation;
	// the store itself never merges versions
	var otherPanels []models.TraitPanel
	otherPanelVersion := c.QueryParam("otherPanelVersion")
	if otherPanelVersion != "" {
		var otherLoadErr error
		otherPanels, otherLoadErr = gc.PanelStore.Load(otherPanelVersion)
		if otherLoadErr != nil {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(otherLoadErr.Error()))
		}
	}

	findings := validationService.ValidateAll(panels, otherPanels)

	return c.JSON(http.StatusOK, dtos.PanelValidationResponse{
		Status:            http.StatusOK,
		Message:           "Success",
		PanelVersion:      panelVersion,
		OtherPanelVersion: otherPanelVersion,
		Findings:          findings,
	})
}
