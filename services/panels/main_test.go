package panelsService

import (
	"testing"

	"genoinsight/engine/models"

	"github.com/stretchr/testify/assert"
)

func testPanelStore() *PanelStoreService {
	cfg := &models.Config{}
	cfg.Api.PanelPath = "testdata"

	return NewPanelStoreService(cfg)
}

func TestLoad(t *testing.T) {
	t.Run("curated version loads with traits in fixed order", func(t *testing.T) {
		ps := testPanelStore()

		panels, err := ps.Load("v2024-06")

		assert.Nil(t, err)
		assert.Len(t, panels, 3)
		assert.Equal(t, "Alzheimer's Disease", panels[0].TraitName)
		assert.Equal(t, "Cardiovascular Disease", panels[1].TraitName)
		assert.Equal(t, "Type 2 Diabetes", panels[2].TraitName)

		// - spot-check one literature entry
		cardio := panels[1]
		assert.Len(t, cardio.Entries, 4)
		assert.Equal(t, "rs10757278", cardio.Entries[0].VariantId)
		assert.Equal(t, "A", cardio.Entries[0].RiskAllele)
		assert.Equal(t, 0.24, cardio.Entries[0].Weight)
		assert.NotNil(t, cardio.Entries[0].ConfidenceInterval)

		// - rs10953541 carries no confidence interval in this version
		assert.Nil(t, cardio.Entries[1].ConfidenceInterval)

		// - the APOE e2-defining variant is protective
		alzheimers := panels[0]
		assert.Len(t, alzheimers.Entries, 5)
		assert.Equal(t, "rs7412", alzheimers.Entries[1].VariantId)
		assert.Equal(t, -1, alzheimers.Entries[1].Direction)

		assert.Len(t, cardio.PercentileReference, 5)
	})

	t.Run("loads are cached per version", func(t *testing.T) {
		ps := testPanelStore()

		first, err := ps.Load("v2024-06")
		assert.Nil(t, err)

		second, err := ps.Load("v2024-06")
		assert.Nil(t, err)

		// - same backing slice, not a re-read
		assert.Same(t, &first[0], &second[0])

		ps.InvalidateCache()

		third, err := ps.Load("v2024-06")
		assert.Nil(t, err)
		assert.NotSame(t, &first[0], &third[0])
	})

	t.Run("unknown version is a load error", func(t *testing.T) {
		ps := testPanelStore()

		_, err := ps.Load("v1999-01")

		assert.NotNil(t, err)
		loadErr, ok := err.(*PanelLoadError)
		assert.True(t, ok)
		assert.Equal(t, "v1999-01", loadErr.PanelVersion)
	})

	t.Run("empty version string is rejected", func(t *testing.T) {
		ps := testPanelStore()

		_, err := ps.Load("  ")

		assert.NotNil(t, err)
	})

	t.Run("version directory without panel files is a load error", func(t *testing.T) {
		ps := testPanelStore()

		_, err := ps.Load("empty-version")

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "no trait panel files")
	})

	t.Run("duplicate variant ids fail the whole version", func(t *testing.T) {
		ps := testPanelStore()

		_, err := ps.Load("bad-duplicate")

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "duplicate variant id rs123")
	})

	t.Run("direction outside of plus or minus one fails the load", func(t *testing.T) {
		ps := testPanelStore()

		_, err := ps.Load("bad-direction")

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "direction 2")
	})

	t.Run("non-ascending percentile reference scores fail the load", func(t *testing.T) {
		ps := testPanelStore()

		_, err := ps.Load("bad-percentiles")

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "not strictly ascending")
	})
}
