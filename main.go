package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"genoinsight/engine/contexts"
	gem "genoinsight/engine/middleware"
	"genoinsight/engine/models"
	serviceInfo "genoinsight/engine/models/constants/service-info"
	disclaimersMvc "genoinsight/engine/mvc/disclaimers"
	genotypesMvc "genoinsight/engine/mvc/genotypes"
	panelsMvc "genoinsight/engine/mvc/panels"
	reportsMvc "genoinsight/engine/mvc/reports"
	serviceInfoMvc "genoinsight/engine/mvc/service-info"
	archiveService "genoinsight/engine/services/archive"
	genotypesService "genoinsight/engine/services/genotypes"
	panelsService "genoinsight/engine/services/panels"
	reportsService "genoinsight/engine/services/reports"
	"genoinsight/engine/utils"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tGenotype Directory Path : %s \n"+
		"\tPanel Directory Path : %s \n"+
		"\tDefault Panel Version : %s \n\n"+

		"\tMinimum Coverage Ratio : %.2f\n"+
		"\tTop Contributing Variants : %d\n"+
		"\tRisk Category Cut Points (percentile) : >=%.0f Very High, >=%.0f High, >=%.0f Above Average\n\n"+

		"\tElasticsearch Archiving Enabled : %t\n"+
		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.GenotypePath,
		cfg.Api.PanelPath,
		cfg.Api.DefaultPanelVersion,
		cfg.Scoring.MinCoverageRatio,
		cfg.Scoring.TopContributors,
		cfg.Scoring.VeryHighCutPercentile, cfg.Scoring.HighCutPercentile, cfg.Scoring.AboveAverageCutPercentile,
		cfg.Elasticsearch.Enabled,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Elasticsearch (optional report archive)
	var es *elasticsearch.Client
	var az *archiveService.ArchiveService
	if cfg.Elasticsearch.Enabled {
		es = utils.CreateEsConnection(&cfg)
		az = archiveService.NewArchiveService(es, &cfg)
	}

	// Service Singletons
	ps := panelsService.NewPanelStoreService(&cfg)
	gs := genotypesService.NewGenotypeService(&cfg)
	rs := reportsService.NewReportService(&cfg, ps, gs, az)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with "custom GenoInsight" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.GenoContext{
				Context:         c,
				Es7Client:       es,
				Config:          &cfg,
				PanelStore:      ps,
				GenotypeService: gs,
				ReportService:   rs,
				ArchiveService:  az,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Genotypes
	e.GET("/genotypes/ingestion/run", genotypesMvc.GenotypesIngest)
	e.GET("/genotypes/overview", genotypesMvc.GetGenotypesOverview)

	// -- Panels
	e.GET("/panels/overview", panelsMvc.GetPanelsOverview,
		// middleware
		gem.MandatePanelVersionAttribute)
	e.GET("/panels/validate", panelsMvc.PanelsValidate,
		// middleware
		gem.MandatePanelVersionAttribute)

	// -- Reports
	e.GET("/reports/run", reportsMvc.ReportsRun,
		// middleware
		gem.MandatePanelVersionAttribute,
		gem.ValidateOptionalAncestryAttribute)
	e.GET("/reports/requests", reportsMvc.GetAllReportRunRequests)
	e.GET("/reports/archive/overview", reportsMvc.GetReportsArchiveOverview)
	e.GET("/reports/archive/by/fingerprint", reportsMvc.GetArchivedReportsByFingerprint,
		// middleware
		gem.MandateFingerprintAttribute)

	// -- Disclaimers
	e.GET("/disclaimers/selection", disclaimersMvc.GetDisclaimerSelection,
		// middleware
		gem.ValidateOptionalAncestryAttribute)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
