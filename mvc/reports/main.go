package reports

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"genoinsight/engine/contexts"
	"genoinsight/engine/models"
	"genoinsight/engine/models/dtos"
	"genoinsight/engine/models/dtos/errors"
	esRepo "genoinsight/engine/repositories/elasticsearch"

	"github.com/Jeffail/gabs"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

func ReportsRun(c echo.Context) error {
	fmt.Printf("[%s] - ReportsRun hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	panelVersion := c.QueryParam("panelVersion")
	ancestryRaw := c.QueryParam("ancestry")

	bundle, runErr := gc.ReportService.Run(panelVersion, ancestryRaw)
	if runErr != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(runErr.Error()))
	}

	return c.JSON(http.StatusOK, dtos.ReportRunResponse{
		ReportResponse: dtos.ReportResponse{
			Status:  http.StatusOK,
			Message: "Success",
		},
		Bundle: bundle,
	})
}

func GetAllReportRunRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllReportRunRequests hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	return c.JSON(http.StatusOK, gc.ReportService.RunRequests())
}

func GetArchivedReportsByFingerprint(c echo.Context) error {
	fmt.Printf("[%s] - GetArchivedReportsByFingerprint hit!\n", time.Now())
	es, cfg := retrieveArchiveElements(c)
	if es == nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Report archiving is disabled!"))
	}

	fingerprint := c.QueryParam("fingerprint")

	searchResult, searchErr := esRepo.GetReportDocumentsByFingerprint(cfg, es, fingerprint)
	if searchErr != nil {
		return c.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError(
			"Something went wrong. Please contact the administrator!"))
	}

	// pull the total hit count out of the raw response
	count := 0
	if resultBytes, marshalErr := json.Marshal(searchResult); marshalErr == nil {
		if jsonParsed, parseErr := gabs.ParseJSON(resultBytes); parseErr == nil {
			if total, totalOk := jsonParsed.Path("hits.total.value").Data().(float64); totalOk {
				count = int(total)
			}
		}
	}

	return c.JSON(http.StatusOK, dtos.ArchivedReportsResponse{
		Status:      http.StatusOK,
		Message:     "Success",
		Fingerprint: fingerprint,
		Count:       count,
		Results:     esRepo.DecodeReportHits(searchResult),
	})
}

func GetReportsArchiveOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetReportsArchiveOverview hit!\n", time.Now())
	es, cfg := retrieveArchiveElements(c)
	if es == nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Report archiving is disabled!"))
	}

	resultsMap := map[string]interface{}{}

	for key, keyword := range map[string]string{
		"panelVersions": "panelVersion.keyword",
		"codeVersions":  "codeVersion.keyword",
		"ancestryCodes": "ancestryCode.keyword",
	} {
		results, bucketsError := esRepo.GetReportsBucketsByKeyword(cfg, es, keyword)
		if bucketsError != nil {
			resultsMap[key] = map[string]interface{}{
				"error": "Something went wrong. Please contact the administrator!",
			}
			continue
		}

		// retrieve aggregations.items.buckets
		bucketsMapped := []interface{}{}
		if aggs, aggsOk := results["aggregations"]; aggsOk {
			aggsMapped := aggs.(map[string]interface{})

			if items, itemsOk := aggsMapped["items"]; itemsOk {
				itemsMapped := items.(map[string]interface{})

				if buckets, bucketsOk := itemsMapped["buckets"]; bucketsOk {
					bucketsMapped = buckets.([]interface{})
				}
			}
		}

		individualKeyMap := map[string]interface{}{}
		// push results bucket to slice
		for _, bucket := range bucketsMapped {
			doc_key := fmt.Sprint(bucket.(map[string]interface{})["key"]) // ensure strings and numbers are expressed as strings
			doc_count := bucket.(map[string]interface{})["doc_count"]

			individualKeyMap[doc_key] = doc_count
		}

		resultsMap[key] = individualKeyMap
	}

	return c.JSON(http.StatusOK, resultsMap)
}

// returns a nil client when archiving is disabled for this deployment
func retrieveArchiveElements(c echo.Context) (*elasticsearch.Client, *models.Config) {
	gc := c.(*contexts.GenoContext)
	if gc.ArchiveService == nil {
		return nil, gc.Config
	}
	return gc.Es7Client, gc.Config
}
