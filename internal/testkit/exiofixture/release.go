// SPDX-License-Identifier: MIT

// Package exiofixture writes small synthetic EXIOBASE 3 releases for tests,
// in the same tab-separated layout as the published text files.
package exiofixture

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// DefaultCategory is the single final-demand category written for Y.
const DefaultCategory = "Final consumption expenditure by households"

// Extension describes one satellite folder. Leave F or S nil to omit the file.
type Extension struct {
	Stressors []string
	F         [][]float64 // stressors × (region, sector)
	S         [][]float64 // stressors × (region, sector)
	Units     map[string]string
}

// Release describes a release. Matrices are row-major over the
// (region, sector) pairs in region-major order. Nil matrices are not written.
type Release struct {
	Regions    []string
	Sectors    []string
	Z          [][]float64
	A          [][]float64
	Y          [][]float64 // (region, sector) × regions, one category per region
	X          []float64
	Extensions map[string]Extension
}

// TwoRegionGHG is the 2-region × 1-sector release with A = 0 (so L = I) and
// S rows CO2 = [1, 2], CH4 = [0.5, 0.5].
func TwoRegionGHG() Release {
	return Release{
		Regions: []string{"AT", "BE"},
		Sectors: []string{"Electricity by coal"},
		A:       [][]float64{{0, 0}, {0, 0}},
		X:       []float64{100, 200},
		Extensions: map[string]Extension{
			"satellite": {
				Stressors: []string{"CO2 - combustion - air", "CH4 - combustion - air", "Employment: Low-skilled male"},
				S:         [][]float64{{1.0, 2.0}, {0.5, 0.5}, {3, 4}},
				Units: map[string]string{
					"CO2 - combustion - air":       "kg",
					"CH4 - combustion - air":       "kg",
					"Employment: Low-skilled male": "1000 p.",
				},
			},
		},
	}
}

// WriteDir writes the release into dir and returns dir.
func (r Release) WriteDir(t testing.TB, dir string) string {
	t.Helper()
	for name, content := range r.files(t) {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, content, 0o644))
	}

	return dir
}

// WriteZip writes the release into a zip archive at file, nested under
// folder (pass "" for a flat archive), and returns file.
func (r Release) WriteZip(t testing.TB, file, folder string) string {
	t.Helper()
	fh, err := os.Create(file)
	require.NoError(t, err)
	defer fh.Close()

	zw := zip.NewWriter(fh)
	files := r.files(t)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		w, err := zw.Create(path.Join(folder, name))
		require.NoError(t, err)
		_, err = w.Write(files[name])
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return file
}

func (r Release) files(t testing.TB) map[string][]byte {
	t.Helper()
	out := make(map[string][]byte)
	industry := r.industryKeys()
	rowNames := []string{"region", "sector"}
	colNames := []string{"region", "sector"}

	if r.Z != nil {
		out["Z.txt"] = render(t, rowNames, industry, colNames, industry, r.Z)
	}
	if r.A != nil {
		out["A.txt"] = render(t, rowNames, industry, colNames, industry, r.A)
	}
	if r.Y != nil {
		demand := make([][]string, len(r.Regions))
		for i, reg := range r.Regions {
			demand[i] = []string{reg, DefaultCategory}
		}
		out["Y.txt"] = render(t, rowNames, industry, []string{"region", "category"}, demand, r.Y)
	}
	if r.X != nil {
		out["x.txt"] = renderSeries(t, industry, r.X)
	}
	for name, ext := range r.Extensions {
		stressors := make([][]string, len(ext.Stressors))
		for i, s := range ext.Stressors {
			stressors[i] = []string{s}
		}
		if ext.F != nil {
			out[name+"/F.txt"] = render(t, []string{"stressor"}, stressors, colNames, industry, ext.F)
		}
		if ext.S != nil {
			out[name+"/S.txt"] = render(t, []string{"stressor"}, stressors, colNames, industry, ext.S)
		}
		if ext.Units != nil {
			out[name+"/unit.txt"] = renderUnits(t, ext.Stressors, ext.Units)
		}
	}

	return out
}

func (r Release) industryKeys() [][]string {
	keys := make([][]string, 0, len(r.Regions)*len(r.Sectors))
	for _, reg := range r.Regions {
		for _, sec := range r.Sectors {
			keys = append(keys, []string{reg, sec})
		}
	}

	return keys
}

func newTSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	return cw
}

// render writes header rows per column level, the index-name row, then data.
func render(t testing.TB, rowNames []string, rowKeys [][]string, colNames []string, colKeys [][]string, vals [][]float64) []byte {
	t.Helper()
	require.Len(t, vals, len(rowKeys), "row count")

	var buf bytes.Buffer
	cw := newTSVWriter(&buf)
	for h, level := range colNames {
		rec := make([]string, 0, len(rowNames)+len(colKeys))
		rec = append(rec, level)
		for i := 1; i < len(rowNames); i++ {
			rec = append(rec, "")
		}
		for _, k := range colKeys {
			rec = append(rec, k[h])
		}
		require.NoError(t, cw.Write(rec))
	}
	names := append(append([]string(nil), rowNames...), make([]string, len(colKeys))...)
	require.NoError(t, cw.Write(names))
	for i, key := range rowKeys {
		require.Len(t, vals[i], len(colKeys), "row %d width", i)
		rec := append([]string(nil), key...)
		for _, v := range vals[i] {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		require.NoError(t, cw.Write(rec))
	}
	cw.Flush()
	require.NoError(t, cw.Error())

	return buf.Bytes()
}

func renderSeries(t testing.TB, keys [][]string, vals []float64) []byte {
	t.Helper()
	require.Len(t, vals, len(keys))

	var buf bytes.Buffer
	cw := newTSVWriter(&buf)
	require.NoError(t, cw.Write([]string{"region", "sector", "indout"}))
	for i, k := range keys {
		require.NoError(t, cw.Write([]string{k[0], k[1], strconv.FormatFloat(vals[i], 'g', -1, 64)}))
	}
	cw.Flush()
	require.NoError(t, cw.Error())

	return buf.Bytes()
}

func renderUnits(t testing.TB, stressors []string, units map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	cw := newTSVWriter(&buf)
	require.NoError(t, cw.Write([]string{"stressor", "unit"}))
	for _, s := range stressors {
		if u, ok := units[s]; ok {
			require.NoError(t, cw.Write([]string{s, u}))
		}
	}
	cw.Flush()
	require.NoError(t, cw.Error())

	return buf.Bytes()
}
