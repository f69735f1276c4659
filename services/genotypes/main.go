package genotypesService

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"genoinsight/engine/models"
	"genoinsight/engine/utils"
)

var variantIdPattern = regexp.MustCompile(`^rs[0-9]+$`)

type (
	// GenotypeIndex maps a reference SNP identifier to the subject's
	// observed genotype call. Built once per run from collaborator
	// data and read-only afterwards, so concurrent per-trait scoring
	// needs no locking.
	GenotypeIndex struct {
		calls map[string]models.GenotypeCall
	}

	// GenotypeService owns the current run's index on behalf of the
	// HTTP surface.
	GenotypeService struct {
		Config *models.Config

		index    *GenotypeIndex
		indexMux sync.RWMutex
	}
)

func NewGenotypeService(cfg *models.Config) *GenotypeService {
	gs := &GenotypeService{
		Config: cfg,
	}

	return gs
}

func (gs *GenotypeService) SetIndex(index *GenotypeIndex) {
	gs.indexMux.Lock()
	defer gs.indexMux.Unlock()

	gs.index = index
}

func (gs *GenotypeService) Index() *GenotypeIndex {
	gs.indexMux.RLock()
	defer gs.indexMux.RUnlock()

	return gs.index
}

// BuildIndex assembles the per-run lookup from already-parsed calls.
// A variant id is globally unique within a run; a repeated id is
// rejected rather than silently overwritten.
func BuildIndex(calls []models.GenotypeCall) (*GenotypeIndex, error) {
	index := &GenotypeIndex{
		calls: make(map[string]models.GenotypeCall, len(calls)),
	}

	for _, call := range calls {
		if _, exists := index.calls[call.VariantId]; exists {
			return nil, fmt.Errorf("duplicate genotype call for variant %s", call.VariantId)
		}
		index.calls[call.VariantId] = call
	}

	return index, nil
}

// Lookup returns the call for a variant id. Absence is an expected,
// silently skipped case for the scorer, never an error.
func (gi *GenotypeIndex) Lookup(variantId string) (models.GenotypeCall, bool) {
	call, ok := gi.calls[variantId]
	return call, ok
}

func (gi *GenotypeIndex) Size() int {
	return len(gi.calls)
}

// SortedCalls returns every call ordered by variant id: the canonical,
// input-order-independent sequence the provenance fingerprint is
// computed over.
func (gi *GenotypeIndex) SortedCalls() []models.GenotypeCall {
	sorted := make([]models.GenotypeCall, 0, len(gi.calls))
	for _, call := range gi.calls {
		sorted = append(sorted, call)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].VariantId < sorted[j].VariantId
	})

	return sorted
}

// Overview reports the basic statistics of the loaded genotype set:
// call counts, zygosity distribution, heterozygosity rate and
// per-chromosome counts.
func (gi *GenotypeIndex) Overview() map[string]interface{} {
	var (
		homozygous   = 0
		heterozygous = 0
		noCalls      = 0
	)

	chromosomeCounts := map[string]interface{}{}
	chromosomeTally := map[string]int{}

	for _, call := range gi.calls {
		if call.NoCall {
			noCalls++
			continue
		}

		if call.Alleles.Left == call.Alleles.Right {
			homozygous++
		} else {
			heterozygous++
		}

		chromosomeTally[call.Chromosome]++
	}

	for chrom, count := range chromosomeTally {
		chromosomeCounts[chrom] = count
	}

	totalAnalyzed := homozygous + heterozygous
	heterozygosityRate := 0.0
	if totalAnalyzed > 0 {
		heterozygosityRate = float64(heterozygous) / float64(totalAnalyzed)
	}

	return map[string]interface{}{
		"totalCalls":           len(gi.calls),
		"noCalls":              noCalls,
		"homozygousCalls":      homozygous,
		"heterozygousCalls":    heterozygous,
		"heterozygosityRate":   heterozygosityRate,
		"chromosomeCallCounts": chromosomeCounts,
	}
}

// LoadCallsFromFile reads a consumer genotyping export: tab-separated
// `rsid  chromosome  position  genotype` lines, '#' comments skipped.
// No-call markers are kept in the index (they count toward the run's
// fingerprint) but never match a risk allele.
func LoadCallsFromFile(filePath string) ([]models.GenotypeCall, error) {
	f, err := os.Open(filePath)
	if err != nil {
		fmt.Println("Failed to open file - ", err)
		return nil, err
	}
	defer f.Close()

	calls := []models.GenotypeCall{}

	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			// header/comment rows
			continue
		}

		call, parseErr := ParseCallLine(line)
		if parseErr != nil {
			return nil, fmt.Errorf("line %d: %v", lineNumber, parseErr)
		}

		calls = append(calls, call)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	return calls, nil
}

// ParseCallLine interprets a single export row. The allele pair keeps
// its input order for display; matching downstream treats it as
// unordered.
func ParseCallLine(line string) (models.GenotypeCall, error) {
	var call models.GenotypeCall

	rowComponents := strings.Split(line, "\t")
	if len(rowComponents) != 4 {
		return call, fmt.Errorf("expected 4 tab-separated fields, got %d", len(rowComponents))
	}

	variantId := strings.TrimSpace(rowComponents[0])
	if !variantIdPattern.MatchString(variantId) {
		return call, fmt.Errorf("invalid reference SNP identifier '%s'", variantId)
	}

	position, posErr := strconv.Atoi(strings.TrimSpace(rowComponents[2]))
	if posErr != nil {
		position = -1 // here to simulate a null value
	}

	call.VariantId = variantId
	call.Chromosome = strings.TrimSpace(rowComponents[1])
	call.Position = position

	genotype := strings.TrimSpace(rowComponents[3])
	if utils.StringInSlice(genotype, models.NoCallMarkers) {
		call.NoCall = true
		return call, nil
	}

	if len(genotype) != 2 {
		return call, fmt.Errorf("variant %s has malformed genotype '%s'", variantId, genotype)
	}

	left := string(genotype[0])
	right := string(genotype[1])
	if !utils.StringInSlice(left, models.ValidAlleles) || !utils.StringInSlice(right, models.ValidAlleles) {
		return call, fmt.Errorf("variant %s has non-nucleotide genotype '%s'", variantId, genotype)
	}

	call.Alleles = models.AllelePair{Left: left, Right: right}

	return call, nil
}
