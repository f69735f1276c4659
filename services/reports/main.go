package reportsService

import (
	"fmt"
	"sync"
	"time"

	"genoinsight/engine/models"
	"genoinsight/engine/models/constants/ancestry"
	"genoinsight/engine/models/constants/disclaimer"
	serviceInfo "genoinsight/engine/models/constants/service-info"
	"genoinsight/engine/models/report"
	archiveService "genoinsight/engine/services/archive"
	genotypesService "genoinsight/engine/services/genotypes"
	panelsService "genoinsight/engine/services/panels"
	provenanceService "genoinsight/engine/services/provenance"
	scoringService "genoinsight/engine/services/scoring"
	validationService "genoinsight/engine/services/validation"

	"github.com/google/uuid"
)

type (
	// ReportService drives one report run end to end: score every
	// trait panel of a version against the loaded genotype index,
	// attach advisory findings and a provenance record, and pick the
	// ancestry disclaimer for the renderer.
	ReportService struct {
		Config *models.Config

		PanelStore *panelsService.PanelStoreService
		Genotypes  *genotypesService.GenotypeService

		// nil when elasticsearch archiving is disabled
		Archive *archiveService.ArchiveService

		RunRequestMap    map[string]*report.RunRequest
		RunRequestMapMux sync.RWMutex
	}
)

func NewReportService(cfg *models.Config, panelStore *panelsService.PanelStoreService,
	genotypes *genotypesService.GenotypeService, archive *archiveService.ArchiveService) *ReportService {

	rs := &ReportService{
		Config:        cfg,
		PanelStore:    panelStore,
		Genotypes:     genotypes,
		Archive:       archive,
		RunRequestMap: map[string]*report.RunRequest{},
	}

	return rs
}

func (rs *ReportService) recordRunRequest(request *report.RunRequest) {
	request.UpdatedAt = time.Now().String()

	rs.RunRequestMapMux.Lock()
	rs.RunRequestMap[request.Id.String()] = request
	rs.RunRequestMapMux.Unlock()
}

// RunRequests returns a snapshot of every run request seen so far,
// whatever state it ended up in.
func (rs *ReportService) RunRequests() []*report.RunRequest {
	rs.RunRequestMapMux.RLock()
	defer rs.RunRequestMapMux.RUnlock()

	requests := make([]*report.RunRequest, 0, len(rs.RunRequestMap))
	for _, request := range rs.RunRequestMap {
		requests = append(requests, request)
	}
	return requests
}

// Run produces the complete, immutable bundle for one report run.
// Hard failures are limited to a missing genotype index and panel
// load errors; validation findings and low-confidence flags travel
// inside the bundle as data.
func (rs *ReportService) Run(panelVersion string, ancestryRaw string) (report.Bundle, error) {
	var bundle report.Bundle

	request := &report.RunRequest{
		Id:           uuid.New(),
		PanelVersion: panelVersion,
		Ancestry:     ancestryRaw,
		State:        report.Queued,
		CreatedAt:    time.Now().String(),
	}
	rs.recordRunRequest(request)

	index := rs.Genotypes.Index()
	if index == nil || index.Size() == 0 {
		request.State = report.Error
		request.Message = "no genotype data has been ingested for this run"
		rs.recordRunRequest(request)
		return bundle, fmt.Errorf("no genotype data has been ingested for this run")
	}

	request.State = report.Running
	rs.recordRunRequest(request)

	// panel load is the only retryable hard failure; the store does
	// not retry internally, the caller decides
	panels, loadErr := rs.PanelStore.Load(panelVersion)
	if loadErr != nil {
		request.State = report.Error
		request.Message = loadErr.Error()
		rs.recordRunRequest(request)
		return bundle, loadErr
	}

	policy := scoringService.PolicyFromConfig(rs.Config)
	results := scoringService.ScoreAll(panels, index, policy)

	// advisory only: findings never block the scores above
	findings := validationService.ValidateAll(panels, nil)

	ancestryCode := ancestry.CastToAncestryCode(ancestryRaw)

	// the bundle shares the run request's id, so a caller can tie an
	// archived report back to its request state
	bundle = report.Bundle{
		Id: request.Id,

		Results:  results,
		Findings: findings,
		Provenance: provenanceService.Record(
			index, panelVersion, string(serviceInfo.SERVICE_VERSION), ancestryCode),

		DisclaimerId: disclaimer.Select(ancestryCode),
	}

	if rs.Archive != nil {
		rs.Archive.ArchiveBundle(&bundle)
	}

	request.State = report.Done
	rs.recordRunRequest(request)

	return bundle, nil
}
