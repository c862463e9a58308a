// SPDX-License-Identifier: MIT

package mrio

import (
	"fmt"

	"github.com/katalvlaran/exiogwp/matrix"
)

// Table is a labeled dense matrix: Data[i,j] belongs to row key Rows.Key(i)
// and column key Cols.Key(j).
type Table struct {
	Name string
	Rows Index
	Cols Index
	Data *matrix.Dense
}

// NewTable checks that the labels match the data shape.
func NewTable(name string, rows, cols Index, data *matrix.Dense) (*Table, error) {
	if data == nil {
		return nil, fmt.Errorf("table %s: %w", name, matrix.ErrNilMatrix)
	}
	if data.Rows() != rows.Len() || data.Cols() != cols.Len() {
		return nil, fmt.Errorf("table %s: data %dx%d, labels %dx%d: %w",
			name, data.Rows(), data.Cols(), rows.Len(), cols.Len(), matrix.ErrDimensionMismatch)
	}

	return &Table{Name: name, Rows: rows, Cols: cols, Data: data}, nil
}

// Shape returns (rows, cols).
func (t *Table) Shape() (int, int) { return t.Data.Shape() }

// Row returns a copy of the row labeled key, and whether it exists.
func (t *Table) Row(key ...string) ([]float64, bool) {
	i, ok := t.Rows.Position(key...)
	if !ok {
		return nil, false
	}
	row, err := t.Data.Row(i)
	if err != nil {
		return nil, false
	}

	return row, true
}

// Series is a labeled vector.
type Series struct {
	Name   string
	Index  Index
	Values []float64
}

// NewSeries checks that the labels match the number of values.
func NewSeries(name string, index Index, values []float64) (*Series, error) {
	if index.Len() != len(values) {
		return nil, fmt.Errorf("series %s: %d values, %d labels: %w",
			name, len(values), index.Len(), matrix.ErrDimensionMismatch)
	}

	return &Series{Name: name, Index: index, Values: values}, nil
}

// Len returns the number of values.
func (s *Series) Len() int { return len(s.Values) }

// Get returns the value labeled key, and whether it exists.
func (s *Series) Get(key ...string) (float64, bool) {
	i, ok := s.Index.Position(key...)
	if !ok {
		return 0, false
	}

	return s.Values[i], true
}
