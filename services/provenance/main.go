package provenanceService

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"genoinsight/engine/models"
	"genoinsight/engine/models/constants"
	genotypesService "genoinsight/engine/services/genotypes"
)

/*
	Reproducibility anchor of the engine: a report is bound to the
	exact genotype set, panel version and code version it was
	computed from, so an identical rerun can be verified byte by
	byte against its fingerprint.
*/

const noCallToken = "--"

// Fingerprint hashes a canonical, order-independent serialization of
// the genotype set: calls sorted by variant id, one `rsid=alleles`
// token each. Re-ordering the input file never changes the digest;
// changing a single allele call always does.
func Fingerprint(index *genotypesService.GenotypeIndex) string {
	hasher := sha256.New()

	for _, call := range index.SortedCalls() {
		alleles := noCallToken
		if !call.NoCall {
			alleles = call.Alleles.Left + call.Alleles.Right
		}

		// canonicalize the unordered pair so AG and GA hash alike
		if len(alleles) == 2 && alleles[0] > alleles[1] {
			alleles = string(alleles[1]) + string(alleles[0])
		}

		hasher.Write([]byte(fmt.Sprintf("%s=%s\n", call.VariantId, alleles)))
	}

	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Record assembles the run's audit record. The generation timestamp
// is part of the record but deliberately not part of the fingerprint.
func Record(index *genotypesService.GenotypeIndex, panelVersion string, codeVersion string,
	ancestryCode constants.AncestryCode) models.ProvenanceRecord {

	return models.ProvenanceRecord{
		InputFingerprint: Fingerprint(index),
		PanelVersion:     strings.TrimSpace(panelVersion),
		CodeVersion:      strings.TrimSpace(codeVersion),
		AncestryCode:     ancestryCode,
		GeneratedAt:      time.Now().UTC(),
	}
}
