// SPDX-License-Identifier: MIT

package mrio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/exiogwp/matrix"
)

// layout describes how a tab-separated release file is shaped.
//
// A file with colLevels header rows and rowLevels label columns looks like:
//
//	region   <tab> ...          <tab> AT   <tab> AT
//	sector   <tab> ...          <tab> s1   <tab> s2
//	region   <tab> sector       <tab>      <tab>        (optional index-name row)
//	AT       <tab> s1           <tab> 0.1  <tab> 0.0
//
// With a single header row the row level names sit in the header itself
// (x.txt: "region<tab>sector<tab>indout").
type layout struct {
	rowLevels int
	colLevels int
	rowNames  []string // defaults when the file does not name its row levels
	colNames  []string // defaults when the file does not name its column levels
}

var (
	layoutIndustry = layout{rowLevels: 2, colLevels: 2, rowNames: []string{"region", "sector"}, colNames: []string{"region", "sector"}}
	layoutDemand   = layout{rowLevels: 2, colLevels: 2, rowNames: []string{"region", "sector"}, colNames: []string{"region", "category"}}
	layoutOutput   = layout{rowLevels: 2, colLevels: 1, rowNames: []string{"region", "sector"}, colNames: []string{"indout"}}
	layoutStressor = layout{rowLevels: 1, colLevels: 2, rowNames: []string{"stressor"}, colNames: []string{"region", "sector"}}
	layoutStressFD = layout{rowLevels: 1, colLevels: 2, rowNames: []string{"stressor"}, colNames: []string{"region", "category"}}
)

// layoutErrorf reports a structural problem at file:line.
func layoutErrorf(file string, line int, format string, args ...any) error {
	return fmt.Errorf("%w: %s:%d: %s", ErrInvalidLayout, file, line, fmt.Sprintf(format, args...))
}

func newTSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	return cr
}

// readTable parses one release file into a Table.
//
// Implementation:
//   - Stage 1: read colLevels header rows; level names from field 0, labels
//     from fields rowLevels..end.
//   - Stage 2: skip an optional index-name row (all value fields empty).
//   - Stage 3: parse data rows into a single row-major buffer.
//
// Errors:
//   - ErrInvalidLayout for short headers, ragged rows or unparsable numbers.
//   - ErrDuplicateLabel when labels repeat.
func readTable(r io.Reader, file, name string, lay layout) (*Table, error) {
	cr := newTSVReader(r)
	line := 0

	// Stage 1: column header rows.
	colNames := append([]string(nil), lay.colNames...)
	rowNames := append([]string(nil), lay.rowNames...)
	var colLabels [][]string
	for h := 0; h < lay.colLevels; h++ {
		rec, err := cr.Read()
		line++
		if err != nil {
			return nil, layoutErrorf(file, line, "header row %d: %v", h, err)
		}
		if len(rec) <= lay.rowLevels {
			return nil, layoutErrorf(file, line, "header row %d has no column labels", h)
		}
		if colLabels == nil {
			colLabels = make([][]string, len(rec)-lay.rowLevels)
			for j := range colLabels {
				colLabels[j] = make([]string, lay.colLevels)
			}
		}
		if len(rec)-lay.rowLevels != len(colLabels) {
			return nil, layoutErrorf(file, line, "header row %d has %d labels, want %d", h, len(rec)-lay.rowLevels, len(colLabels))
		}
		if lay.colLevels == 1 {
			// Single header row: leading fields name the row levels.
			for l := 0; l < lay.rowLevels; l++ {
				if v := strings.TrimSpace(rec[l]); v != "" {
					rowNames[l] = v
				}
			}
		} else if v := strings.TrimSpace(rec[0]); v != "" {
			colNames[h] = v
		}
		for j := range colLabels {
			colLabels[j][h] = strings.TrimSpace(rec[lay.rowLevels+j])
		}
	}
	ncols := len(colLabels)

	// Stage 2 and 3: optional index-name row, then data.
	var (
		rowLabels [][]string
		values    []float64
	)
	for {
		rec, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, layoutErrorf(file, line, "%v", err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue // blank line
		}
		if len(rec) < lay.rowLevels {
			return nil, layoutErrorf(file, line, "%d fields, want at least %d", len(rec), lay.rowLevels)
		}
		if rowLabels == nil && allBlank(rec[lay.rowLevels:]) {
			for l := 0; l < lay.rowLevels; l++ {
				if v := strings.TrimSpace(rec[l]); v != "" {
					rowNames[l] = v
				}
			}
			continue
		}
		if len(rec) != lay.rowLevels+ncols {
			return nil, layoutErrorf(file, line, "%d fields, want %d", len(rec), lay.rowLevels+ncols)
		}
		key := make([]string, lay.rowLevels)
		for l := range key {
			key[l] = strings.TrimSpace(rec[l])
		}
		rowLabels = append(rowLabels, key)
		for j, cell := range rec[lay.rowLevels:] {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, layoutErrorf(file, line, "column %d: %v", lay.rowLevels+j+1, perr)
			}
			values = append(values, v)
		}
	}
	if len(rowLabels) == 0 {
		return nil, layoutErrorf(file, line, "no data rows")
	}

	rows, err := NewIndex(rowNames, rowLabels)
	if err != nil {
		return nil, fmt.Errorf("%s rows: %w", file, err)
	}
	cols, err := NewIndex(colNames, colLabels)
	if err != nil {
		return nil, fmt.Errorf("%s columns: %w", file, err)
	}
	data, err := matrix.NewDenseNoCopy(len(rowLabels), ncols, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidLayout, file, err)
	}

	return NewTable(name, rows, cols, data)
}

// readSeries parses a single-column file (x.txt) into a Series.
func readSeries(r io.Reader, file, name string, lay layout) (*Series, error) {
	t, err := readTable(r, file, name, lay)
	if err != nil {
		return nil, err
	}
	if t.Cols.Len() != 1 {
		return nil, fmt.Errorf("%w: %s: %d value columns, want 1", ErrInvalidLayout, file, t.Cols.Len())
	}
	values, err := matrix.RowSums(t.Data) // n×1: each row sum is the value itself
	if err != nil {
		return nil, err
	}

	return NewSeries(name, t.Rows, values)
}

// readUnits parses unit.txt: a header row, then "label... <tab> unit" rows.
// The last field is the unit; the first field is the stressor name.
func readUnits(r io.Reader, file string, e *Extension) error {
	cr := newTSVReader(r)
	line := 0
	for {
		rec, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return layoutErrorf(file, line, "%v", err)
		}
		if line == 1 || len(rec) < 2 {
			continue
		}
		e.SetUnit(strings.TrimSpace(rec[0]), strings.TrimSpace(rec[len(rec)-1]))
	}
}

func allBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
