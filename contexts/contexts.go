package contexts

import (
	"genoinsight/engine/models"
	archiveService "genoinsight/engine/services/archive"
	genotypesService "genoinsight/engine/services/genotypes"
	panelsService "genoinsight/engine/services/panels"
	reportsService "genoinsight/engine/services/reports"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the engine's service singletons and other variables
	GenoContext struct {
		echo.Context
		Es7Client *elasticsearch.Client
		Config    *models.Config

		PanelStore      *panelsService.PanelStoreService
		GenotypeService *genotypesService.GenotypeService
		ReportService   *reportsService.ReportService
		ArchiveService  *archiveService.ArchiveService
	}
)
