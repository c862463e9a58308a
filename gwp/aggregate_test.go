// SPDX-License-Identifier: MIT
package gwp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exiogwp/gwp"
	"github.com/katalvlaran/exiogwp/mrio"
)

func TestAggregate_AllFlows(t *testing.T) {
	t.Parallel()

	sys := systemWithS(t, []string{gwp.FlowCO2, gwp.FlowCH4, gwp.FlowN2O, "Employment"},
		1, 2,
		0.5, 0.5,
		0.25, 0,
		100, 100,
	)
	agg, err := gwp.Aggregate(sys, "satellite", gwp.DefaultFactors(), discard())
	require.NoError(t, err)

	assert.Equal(t, gwp.RowName, agg.Name)
	assert.Equal(t, []float64{1 + 14 + 66.25, 2 + 14}, agg.Values)
	assert.True(t, agg.Index.Equal(twoRegions(t)), "columns of S")
}

func TestAggregate_CO2Only(t *testing.T) {
	t.Parallel()

	sys := systemWithS(t, []string{gwp.FlowCO2}, 0.1234, 5e-7)
	agg, err := gwp.Aggregate(sys, "satellite", gwp.DefaultFactors(), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1234, 5e-7}, agg.Values, "factor 1 keeps values exact")
}

func TestAggregate_PartialMatchSkipsMissing(t *testing.T) {
	t.Parallel()

	sys := systemWithS(t, []string{gwp.FlowN2O, gwp.FlowCO2}, 0.5, 0, 1, 2)
	log, buf := capture()
	agg, err := gwp.Aggregate(sys, "satellite", gwp.DefaultFactors(), log)
	require.NoError(t, err)

	assert.Equal(t, []float64{133.5, 2}, agg.Values)
	assert.NotContains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "adding flow")
}

func TestAggregate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing extension", func(t *testing.T) {
		sys := systemWithS(t, []string{gwp.FlowCO2}, 1, 2)
		log, buf := capture()
		_, err := gwp.Aggregate(sys, "impacts", gwp.DefaultFactors(), log)
		require.ErrorIs(t, err, gwp.ErrMissingMatrix)
		assert.Contains(t, err.Error(), `available extensions: ["satellite"]`)
		assert.Contains(t, buf.String(), "level=ERROR")
	})

	t.Run("extension without S", func(t *testing.T) {
		ext := mrio.NewExtension("satellite")
		ext.SetUnit(gwp.FlowCO2, "kg")
		sys := mrio.NewSystem()
		sys.AddExtension(ext)

		log, buf := capture()
		_, err := gwp.Aggregate(sys, "satellite", gwp.DefaultFactors(), log)
		require.ErrorIs(t, err, gwp.ErrMissingMatrix)
		assert.Contains(t, err.Error(), `["unit"]`, "lists available keys")
		assert.Contains(t, buf.String(), "level=ERROR")
	})

	t.Run("no matching flows", func(t *testing.T) {
		sys := systemWithS(t, []string{"Employment", "Land use"}, 1, 2, 3, 4)
		log, buf := capture()
		_, err := gwp.Aggregate(sys, "satellite", gwp.DefaultFactors(), log)
		require.ErrorIs(t, err, gwp.ErrNoMatchingFlows)
		assert.Contains(t, err.Error(), gwp.FlowCO2)
		assert.Contains(t, err.Error(), "Land use")
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestAggregate_SampleIsCapped(t *testing.T) {
	t.Parallel()

	names := make([]string, 60)
	vals := make([]float64, 0, 120)
	for i := range names {
		names[i] = "stressor " + string(rune('A'+i/26)) + string(rune('a'+i%26))
		vals = append(vals, 1, 1)
	}
	sys := systemWithS(t, names, vals...)
	_, err := gwp.Aggregate(sys, "satellite", gwp.DefaultFactors(), nil)
	require.ErrorIs(t, err, gwp.ErrNoMatchingFlows)
	assert.Contains(t, err.Error(), names[49])
	assert.NotContains(t, err.Error(), names[50])
}

func TestFactors(t *testing.T) {
	t.Parallel()

	f := gwp.DefaultFactors()
	assert.Equal(t, []string{gwp.FlowCO2, gwp.FlowCH4, gwp.FlowN2O}, f.Flows)
	assert.Equal(t, 28.0, f.Factor(gwp.FlowCH4))
	assert.Equal(t, 0.0, f.Factor("SF6 - air"))
	assert.Equal(t, "{CO2 - combustion - air: 1, CH4 - combustion - air: 28, N2O - combustion - air: 265}", f.String())

	f.Values[gwp.FlowCO2] = 2
	assert.Equal(t, 1.0, gwp.DefaultFactors().Factor(gwp.FlowCO2), "defaults are fresh")
}
