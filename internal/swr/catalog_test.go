package swr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmateurBands(t *testing.T) {
	bands := AmateurBands()
	require.Len(t, bands, 12)
	assert.Equal(t, "160m", bands[0].Name)
	assert.Equal(t, "70cm", bands[len(bands)-1].Name)

	for _, b := range bands {
		assert.Less(t, b.StartFreq, b.EndFreq, b.Name)
	}

	// callers get their own copy
	bands[0].Name = "changed"
	assert.Equal(t, "160m", AmateurBands()[0].Name)
}

func TestRSGBBandPlans(t *testing.T) {
	plans := RSGBBandPlans()
	bands := AmateurBands()
	require.Len(t, plans, len(bands))

	for _, b := range bands {
		segs := plans[b.Name]
		require.NotEmpty(t, segs, b.Name)
		for _, s := range segs {
			assert.Less(t, s.StartFreq, s.EndFreq)
			assert.GreaterOrEqual(t, s.StartFreq, b.StartFreq, "%s %s", b.Name, s.Label)
			assert.LessOrEqual(t, s.EndFreq, b.EndFreq, "%s %s", b.Name, s.Label)
		}
	}

	plans["20m"][0].Label = "changed"
	assert.Equal(t, "CW", RSGBBandPlans()["20m"][0].Label)
	assert.NotContains(t, plans, "60m")
}

func TestSelectBands(t *testing.T) {
	selected, missing := SelectBands(AmateurBands(), []string{"10m", "40m", "11m", "40m"})
	require.Len(t, selected, 2)
	assert.Equal(t, "40m", selected[0].Name)
	assert.Equal(t, "10m", selected[1].Name)
	assert.Equal(t, []string{"11m"}, missing)
}
