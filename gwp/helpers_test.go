// SPDX-License-Identifier: MIT
package gwp_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exiogwp/matrix"
	"github.com/katalvlaran/exiogwp/mrio"
)

var regionSector = []string{"region", "sector"}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// capture returns a debug-level logger writing into the returned buffer.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func mustIndex(t *testing.T, names []string, keys ...[]string) mrio.Index {
	t.Helper()
	ix, err := mrio.NewIndex(names, keys)
	require.NoError(t, err)

	return ix
}

func mustTable(t *testing.T, name string, rows, cols mrio.Index, vals ...float64) *mrio.Table {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows.Len(), cols.Len(), vals)
	require.NoError(t, err)
	tbl, err := mrio.NewTable(name, rows, cols, d)
	require.NoError(t, err)

	return tbl
}

func twoRegions(t *testing.T) mrio.Index {
	t.Helper()
	return mustIndex(t, regionSector, []string{"AT", "Electricity by coal"}, []string{"BE", "Electricity by coal"})
}

// systemWithS builds a system with one extension "satellite" whose S rows are
// the given stressors over twoRegions.
func systemWithS(t *testing.T, stressors []string, vals ...float64) *mrio.System {
	t.Helper()
	keys := make([][]string, len(stressors))
	for i, s := range stressors {
		keys[i] = []string{s}
	}
	rows := mustIndex(t, []string{"stressor"}, keys...)

	ext := mrio.NewExtension("satellite")
	ext.SetMatrix(mrio.MatrixS, mustTable(t, mrio.MatrixS, rows, twoRegions(t), vals...))
	sys := mrio.NewSystem()
	sys.AddExtension(ext)

	return sys
}
