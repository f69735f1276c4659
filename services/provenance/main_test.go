package provenanceService

import (
	"testing"

	"genoinsight/engine/models"
	"genoinsight/engine/models/constants/ancestry"
	genotypesService "genoinsight/engine/services/genotypes"

	"github.com/stretchr/testify/assert"
)

func buildIndex(t *testing.T, calls []models.GenotypeCall) *genotypesService.GenotypeIndex {
	index, err := genotypesService.BuildIndex(calls)
	assert.Nil(t, err)
	return index
}

func TestFingerprint(t *testing.T) {
	t.Run("input order never changes the digest", func(t *testing.T) {
		forward := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs10757278", Alleles: models.AllelePair{Left: "A", Right: "G"}},
			{VariantId: "rs10953541", Alleles: models.AllelePair{Left: "C", Right: "C"}},
			{VariantId: "rs5219", NoCall: true},
		})
		reversed := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs5219", NoCall: true},
			{VariantId: "rs10953541", Alleles: models.AllelePair{Left: "C", Right: "C"}},
			{VariantId: "rs10757278", Alleles: models.AllelePair{Left: "A", Right: "G"}},
		})

		assert.Equal(t, Fingerprint(forward), Fingerprint(reversed))
	})

	t.Run("allele pair order within a call does not matter", func(t *testing.T) {
		ag := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs10757278", Alleles: models.AllelePair{Left: "A", Right: "G"}},
		})
		ga := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs10757278", Alleles: models.AllelePair{Left: "G", Right: "A"}},
		})

		assert.Equal(t, Fingerprint(ag), Fingerprint(ga))
	})

	t.Run("a single changed allele changes the digest", func(t *testing.T) {
		original := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs10953541", Alleles: models.AllelePair{Left: "C", Right: "C"}},
		})
		mutated := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs10953541", Alleles: models.AllelePair{Left: "C", Right: "T"}},
		})

		assert.NotEqual(t, Fingerprint(original), Fingerprint(mutated))
	})

	t.Run("digest is a 64 character lowercase hex string", func(t *testing.T) {
		index := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs5219", NoCall: true},
		})

		fingerprint := Fingerprint(index)

		assert.Len(t, fingerprint, 64)
		assert.Regexp(t, "^[0-9a-f]{64}$", fingerprint)
	})
}

func TestRecord(t *testing.T) {
	t.Run("record carries the run binding and a utc timestamp", func(t *testing.T) {
		index := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs10757278", Alleles: models.AllelePair{Left: "A", Right: "G"}},
		})

		record := Record(index, "v2024-06", "3.2.0", ancestry.European)

		assert.Equal(t, Fingerprint(index), record.InputFingerprint)
		assert.Equal(t, "v2024-06", record.PanelVersion)
		assert.Equal(t, "3.2.0", record.CodeVersion)
		assert.Equal(t, ancestry.European, record.AncestryCode)
		assert.False(t, record.GeneratedAt.IsZero())
	})

	t.Run("regenerating a record keeps the fingerprint stable", func(t *testing.T) {
		index := buildIndex(t, []models.GenotypeCall{
			{VariantId: "rs10757278", Alleles: models.AllelePair{Left: "A", Right: "G"}},
		})

		first := Record(index, "v2024-06", "3.2.0", ancestry.Unknown)
		second := Record(index, "v2024-06", "3.2.0", ancestry.Unknown)

		// - the timestamp is part of the record, never the fingerprint
		assert.Equal(t, first.InputFingerprint, second.InputFingerprint)
	})
}
