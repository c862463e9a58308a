// SPDX-License-Identifier: MIT
package gwp_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exiogwp/gwp"
	"github.com/katalvlaran/exiogwp/mrio"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{15, "15.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{123456789012345.6, "123456789012345.6"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{2.5e300, "2.5e+300"},
		{-42.125, "-42.125"},
		{math.NaN(), ""},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, gwp.FormatFloat(tc.in), "%v", tc.in)
	}
}

func multipliersOf(t *testing.T, keys [][]string, vals []float64) *mrio.Series {
	t.Helper()
	ix := mustIndex(t, gwp.IndexNames, keys...)
	s, err := mrio.NewSeries(gwp.ColumnName, ix, vals)
	require.NoError(t, err)

	return s
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	s := multipliersOf(t, [][]string{
		{"AT", "Electricity by coal"},
		{"BE", "Mining of coal and lignite; extraction of peat, (10)"},
		{"WA", `Re-processing of "secondary" wood`},
	}, []float64{15, 0.00001, math.NaN()})

	var buf bytes.Buffer
	require.NoError(t, gwp.WriteCSV(&buf, s))

	want := "Region,Sector,GWP100 [kg CO2-eq/unit output]\n" +
		"AT,Electricity by coal,15.0\n" +
		"BE,\"Mining of coal and lignite; extraction of peat, (10)\",1e-05\n" +
		"WA,\"Re-processing of \"\"secondary\"\" wood\",\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	s := multipliersOf(t, [][]string{{"AT", "Coal"}}, []float64{1.5})
	require.NoError(t, gwp.WriteFile(path, s))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Region,Sector,GWP100 [kg CO2-eq/unit output]\nAT,Coal,1.5\n", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.csv")
	s := multipliersOf(t, [][]string{{"AT", "Coal"}}, []float64{1.5})

	require.Error(t, gwp.WriteFile(path, s))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile_NilSeriesLeavesTargetAlone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	require.ErrorIs(t, gwp.WriteFile(path, nil), gwp.ErrMissingMatrix)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
