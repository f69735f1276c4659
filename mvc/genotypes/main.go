package genotypes

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"genoinsight/engine/contexts"
	"genoinsight/engine/models/dtos"
	"genoinsight/engine/models/dtos/errors"
	genotypesService "genoinsight/engine/services/genotypes"

	"github.com/labstack/echo"
)

func GenotypesIngest(c echo.Context) error {
	fmt.Printf("[%s] - GenotypesIngest hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)
	cfg := gc.Config

	fileName := strings.TrimSpace(c.QueryParam("file"))
	if fileName == "" {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Missing 'file' query parameter!"))
	}

	// keep ingestion inside the configured genotype directory
	if strings.Contains(fileName, "..") {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Invalid 'file' query parameter!"))
	}

	filePath := path.Join(cfg.Api.GenotypePath, fileName)

	calls, loadErr := genotypesService.LoadCallsFromFile(filePath)
	if loadErr != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(
			fmt.Sprintf("Failed to load genotype file %s : %v", fileName, loadErr)))
	}

	index, indexErr := genotypesService.BuildIndex(calls)
	if indexErr != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(
			fmt.Sprintf("Failed to index genotype file %s : %v", fileName, indexErr)))
	}

	// the index is immutable once built; a re-ingest replaces it wholesale
	gc.GenotypeService.SetIndex(index)

	noCalls := 0
	for _, call := range calls {
		if call.NoCall {
			noCalls++
		}
	}

	return c.JSON(http.StatusOK, dtos.GenotypeIngestResponse{
		Status:  http.StatusOK,
		Message: "Success",
		File:    fileName,
		Calls:   len(calls),
		NoCalls: noCalls,
	})
}

func GetGenotypesOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetGenotypesOverview hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	index := gc.GenotypeService.Index()
	if index == nil {
		return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound("No genotype data has been ingested yet!"))
	}

	return c.JSON(http.StatusOK, dtos.GenotypeOverviewResponse{
		Status:   http.StatusOK,
		Message:  "Success",
		Overview: index.Overview(),
	})
}
