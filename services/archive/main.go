package archiveService

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"genoinsight/engine/models"
	"genoinsight/engine/models/indexes"
	"genoinsight/engine/models/report"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esutil"
)

const reportsIndex = "reports"

type (
	// queue item pairing an archived document with the waitgroup of
	// the run that produced it
	ArchiveQueueStructure struct {
		Document  *indexes.ReportDocument
		WaitGroup *sync.WaitGroup
	}

	// ArchiveService persists completed report bundles to
	// elasticsearch through a bulk indexer, so reruns can be verified
	// against their original fingerprints later on.
	ArchiveService struct {
		Initialized              bool
		ArchiveBulkIndexingQueue chan *ArchiveQueueStructure
		ArchiveBulkIndexer       esutil.BulkIndexer
		ElasticsearchClient      *elasticsearch.Client
	}
)

func NewArchiveService(es *elasticsearch.Client, cfg *models.Config) *ArchiveService {

	az := &ArchiveService{
		Initialized:              false,
		ArchiveBulkIndexingQueue: make(chan *ArchiveQueueStructure, cfg.Api.BulkIndexingCap),
		ElasticsearchClient:      es,
	}

	var numWorkers = cfg.Api.BulkIndexingCap / 100
	if numWorkers < 1 {
		numWorkers = 1
	}

	bi, _ := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      reportsIndex,
		Client:     az.ElasticsearchClient,
		NumWorkers: numWorkers,
	})
	az.ArchiveBulkIndexer = bi

	az.Init()

	return az
}

func (a *ArchiveService) Init() {
	// safeguard to prevent multiple initilizations
	if !a.Initialized {
		// spin up a go routine acting as a listener for
		// report documents awaiting bulk indexing
		go func() {
			for queuedItem := range a.ArchiveBulkIndexingQueue {

				queuedDocument := queuedItem.Document
				wg := queuedItem.WaitGroup

				// Prepare the data payload: encode document to JSON
				documentData, marshallErr := json.Marshal(queuedDocument)
				if marshallErr != nil {
					log.Fatalf("Cannot encode report document %s: %s\n", queuedDocument.Id, marshallErr)
				}

				// Add an item to the BulkIndexer
				marshallErr = a.ArchiveBulkIndexer.Add(
					context.Background(),
					esutil.BulkIndexerItem{
						Action: "index",
						Index:  reportsIndex,

						// Body is an `io.Reader` with the payload
						Body: bytes.NewReader(documentData),

						// OnSuccess is called for each successful operation
						OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
							defer wg.Done()
						},

						// OnFailure is called for each failed operation
						OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
							defer wg.Done()
							if err != nil {
								fmt.Printf("ERROR: %s", err)
							} else {
								fmt.Printf("ERROR: %s: %s", res.Error.Type, res.Error.Reason)
							}
						},
					},
				)
				if marshallErr != nil {
					fmt.Printf("Unexpected error: %s", marshallErr)
					wg.Done()
				}
			}
		}()

		a.Initialized = true
		fmt.Println("Archive Service Initialized ..")
	}
}

// ArchiveBundle queues one finished bundle for indexing and waits for
// the bulk indexer to acknowledge it.
func (a *ArchiveService) ArchiveBundle(bundle *report.Bundle) {
	document := &indexes.ReportDocument{
		Id: bundle.Id.String(),

		InputFingerprint: bundle.Provenance.InputFingerprint,
		PanelVersion:     bundle.Provenance.PanelVersion,
		CodeVersion:      bundle.Provenance.CodeVersion,
		AncestryCode:     string(bundle.Provenance.AncestryCode),

		DisclaimerId: bundle.DisclaimerId,

		Results:  bundle.Results,
		Findings: bundle.Findings,

		GeneratedAt: bundle.Provenance.GeneratedAt,
		CreatedTime: time.Now(),
	}

	var wg sync.WaitGroup
	wg.Add(1)

	a.ArchiveBulkIndexingQueue <- &ArchiveQueueStructure{
		Document:  document,
		WaitGroup: &wg,
	}

	wg.Wait()
}
