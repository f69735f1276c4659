package panelsService

import (
	"fmt"
	"math"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"genoinsight/engine/models"
	"genoinsight/engine/utils"

	"github.com/go-co-op/gocron"
	yaml "gopkg.in/yaml.v2"
)

// PanelLoadError marks a malformed or self-contradictory panel file.
// It is fatal for the affected panel version load; scoring never
// proceeds against a panel that failed validation.
type PanelLoadError struct {
	PanelVersion string
	TraitName    string
	Reason       string
}

func (e *PanelLoadError) Error() string {
	return fmt.Sprintf("panel load failed for version '%s' (trait '%s'): %s", e.PanelVersion, e.TraitName, e.Reason)
}

// on-disk yaml shape of one trait panel file
type panelFile struct {
	Trait    string `yaml:"trait"`
	Variants []struct {
		Id         string  `yaml:"id"`
		Gene       string  `yaml:"gene"`
		RiskAllele string  `yaml:"riskAllele"`
		Weight     float64 `yaml:"weight"`
		Direction  int     `yaml:"direction"`
		Citation   string  `yaml:"citation"`
		Ci         *struct {
			Lower float64 `yaml:"lower"`
			Upper float64 `yaml:"upper"`
		} `yaml:"ci"`
	} `yaml:"variants"`
	Percentiles []struct {
		Score      float64 `yaml:"score"`
		Percentile float64 `yaml:"percentile"`
	} `yaml:"percentiles"`
}

type (
	// PanelStoreService holds versioned, literature-sourced trait
	// panels read from disk. An explicit instance is injected into the
	// scorer and validator; versions are opaque strings and are never
	// merged implicitly.
	PanelStoreService struct {
		Initialized bool
		Config      *models.Config

		panelCache    map[string][]models.TraitPanel
		panelCacheMux sync.RWMutex
	}
)

func NewPanelStoreService(cfg *models.Config) *PanelStoreService {
	ps := &PanelStoreService{
		Initialized: false,
		Config:      cfg,
		panelCache:  map[string][]models.TraitPanel{},
	}

	ps.Init()

	return ps
}

func (ps *PanelStoreService) Init() {
	// safeguard to prevent multiple initilizations
	if !ps.Initialized {
		// - spin up a go routine that periodically drops the in-memory
		//   panel cache, so curator edits on disk are picked up without
		//   a service restart
		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			s.Every(1).Days().At("04:00:00").Do(func() {
				fmt.Printf("[%s] - Running panel cache refresh..\n", time.Now())
				ps.InvalidateCache()
			})

			// starts the scheduler in blocking mode, which blocks
			// the current execution path
			s.StartBlocking()
		}()

		ps.Initialized = true
		fmt.Println("Panel Store Service Initialized ..")
	}
}

func (ps *PanelStoreService) InvalidateCache() {
	ps.panelCacheMux.Lock()
	defer ps.panelCacheMux.Unlock()

	ps.panelCache = map[string][]models.TraitPanel{}
}

// Load returns every trait panel of one panel version, sorted by
// trait name so downstream score results always come back in the
// same trait order. Results are cached for the lifetime of the run.
func (ps *PanelStoreService) Load(panelVersion string) ([]models.TraitPanel, error) {
	if strings.TrimSpace(panelVersion) == "" {
		return nil, &PanelLoadError{PanelVersion: panelVersion, Reason: "empty panel version"}
	}

	// check cache first
	ps.panelCacheMux.RLock()
	if cached, ok := ps.panelCache[panelVersion]; ok {
		ps.panelCacheMux.RUnlock()
		return cached, nil
	}
	ps.panelCacheMux.RUnlock()

	versionDir := path.Join(ps.Config.Api.PanelPath, panelVersion)
	dirEntries, dirErr := os.ReadDir(versionDir)
	if dirErr != nil {
		return nil, &PanelLoadError{PanelVersion: panelVersion, Reason: fmt.Sprintf("cannot read panel directory : %v", dirErr)}
	}

	panels := []models.TraitPanel{}
	for _, entry := range dirEntries {
		if entry.IsDir() || !(strings.HasSuffix(entry.Name(), ".yml") || strings.HasSuffix(entry.Name(), ".yaml")) {
			fmt.Printf("Skipping %s\n", entry.Name())
			continue
		}

		panel, panelErr := ps.loadPanelFile(panelVersion, path.Join(versionDir, entry.Name()))
		if panelErr != nil {
			return nil, panelErr
		}

		panels = append(panels, panel)
	}

	if len(panels) == 0 {
		return nil, &PanelLoadError{PanelVersion: panelVersion, Reason: "panel version contains no trait panel files"}
	}

	// implementation-fixed trait order
	sort.Slice(panels, func(i, j int) bool {
		return panels[i].TraitName < panels[j].TraitName
	})

	ps.panelCacheMux.Lock()
	ps.panelCache[panelVersion] = panels
	ps.panelCacheMux.Unlock()

	return panels, nil
}

func (ps *PanelStoreService) loadPanelFile(panelVersion string, filePath string) (models.TraitPanel, error) {
	var panel models.TraitPanel

	fileBytes, readErr := os.ReadFile(filePath)
	if readErr != nil {
		return panel, &PanelLoadError{PanelVersion: panelVersion, Reason: fmt.Sprintf("cannot read panel file %s : %v", filePath, readErr)}
	}

	var pf panelFile
	if umErr := yaml.Unmarshal(fileBytes, &pf); umErr != nil {
		return panel, &PanelLoadError{PanelVersion: panelVersion, Reason: fmt.Sprintf("cannot parse panel file %s : %v", filePath, umErr)}
	}

	if strings.TrimSpace(pf.Trait) == "" {
		return panel, &PanelLoadError{PanelVersion: panelVersion, Reason: fmt.Sprintf("panel file %s is missing a trait name", filePath)}
	}

	panel.TraitName = pf.Trait

	if len(pf.Variants) == 0 {
		return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait, Reason: "panel defines no variants"}
	}

	seenVariantIds := map[string]bool{}
	for _, v := range pf.Variants {
		// ---- verify the entry's domain before accepting it
		if seenVariantIds[v.Id] {
			return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait,
				Reason: fmt.Sprintf("duplicate variant id %s", v.Id)}
		}
		seenVariantIds[v.Id] = true

		if !utils.StringInSlice(v.RiskAllele, models.ValidAlleles) {
			return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait,
				Reason: fmt.Sprintf("variant %s has invalid risk allele '%s'", v.Id, v.RiskAllele)}
		}

		if math.IsNaN(v.Weight) || math.IsInf(v.Weight, 0) {
			return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait,
				Reason: fmt.Sprintf("variant %s has a malformed weight", v.Id)}
		}

		if v.Direction != 1 && v.Direction != -1 {
			return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait,
				Reason: fmt.Sprintf("variant %s has direction %d outside of {+1,-1}", v.Id, v.Direction)}
		}

		panelEntry := models.VariantPanelEntry{
			VariantId:      v.Id,
			Gene:           v.Gene,
			RiskAllele:     v.RiskAllele,
			Weight:         v.Weight,
			Direction:      v.Direction,
			SourceCitation: v.Citation,
		}
		if v.Ci != nil {
			panelEntry.ConfidenceInterval = &models.ConfidenceInterval{
				Lower: v.Ci.Lower,
				Upper: v.Ci.Upper,
			}
		}

		panel.Entries = append(panel.Entries, panelEntry)
	}

	if len(pf.Percentiles) == 0 {
		return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait, Reason: "panel defines no percentile reference table"}
	}

	for i, p := range pf.Percentiles {
		if p.Percentile < 0 || p.Percentile > 100 {
			return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait,
				Reason: fmt.Sprintf("percentile reference step %d is outside of [0,100]", i)}
		}

		// the reference table must be a monotonic lookup structure
		if i > 0 {
			if p.Score <= pf.Percentiles[i-1].Score {
				return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait,
					Reason: fmt.Sprintf("percentile reference scores are not strictly ascending at step %d", i)}
			}
			if p.Percentile < pf.Percentiles[i-1].Percentile {
				return panel, &PanelLoadError{PanelVersion: panelVersion, TraitName: pf.Trait,
					Reason: fmt.Sprintf("percentile reference percentiles decrease at step %d", i)}
			}
		}

		panel.PercentileReference = append(panel.PercentileReference, models.PercentilePoint{
			Score:      p.Score,
			Percentile: p.Percentile,
		})
	}

	return panel, nil
}
