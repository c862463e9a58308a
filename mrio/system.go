// SPDX-License-Identifier: MIT

package mrio

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/exiogwp/matrix"
)

// Core table names.
const (
	NameZ = "Z"
	NameY = "Y"
	NameX = "x"
	NameA = "A"
	NameL = "L"
)

// System is an EE-MRIO system. Any of the core tables may be nil until
// loaded or derived by CalcAll.
type System struct {
	Z *Table  // inter-industry transactions
	Y *Table  // final demand
	X *Series // total output (indout)
	A *Table  // technical coefficients
	L *Table  // Leontief inverse

	extensions map[string]*Extension
	order      []string
	available  []string // extension folders seen, loaded or not
}

// NewSystem returns an empty system.
func NewSystem() *System {
	return &System{extensions: make(map[string]*Extension)}
}

// AddExtension registers e, replacing an extension with the same name.
func (s *System) AddExtension(e *Extension) {
	if _, seen := s.extensions[e.Name]; !seen {
		s.order = append(s.order, e.Name)
	}
	s.extensions[e.Name] = e
	s.noteAvailable(e.Name)
}

// noteAvailable records an extension name once, keeping first-seen order.
func (s *System) noteAvailable(name string) {
	for _, n := range s.available {
		if n == name {
			return
		}
	}
	s.available = append(s.available, name)
}

// Extension returns the named extension and whether it was loaded.
func (s *System) Extension(name string) (*Extension, bool) {
	e, ok := s.extensions[name]
	return e, ok
}

// ExtensionNames lists loaded extensions in load order.
func (s *System) ExtensionNames() []string { return append([]string(nil), s.order...) }

// AvailableExtensions lists every extension the dataset offers, including
// folders skipped by WithExtensions, in the order they were found.
func (s *System) AvailableExtensions() []string { return append([]string(nil), s.available...) }

// CalcAll derives every missing matrix that can be derived, keeping the ones
// already present. Running it twice is a no-op the second time.
//
// Implementation:
//   - Stage 1: x = Z·1 + Y·1 when x is missing and Z is present.
//   - Stage 2: A = Z·diag(1/x) when A is missing.
//   - Stage 3: L = (I − A)⁻¹ when L is missing.
//   - Stage 4: x = L·(Y·1) when x is still missing (A-only releases).
//   - Stage 5: S = F·diag(1/x) for every extension without S.
//
// Errors:
//   - ErrMissingMatrix when neither Z nor A is available, or when an
//     extension needs x and x cannot be derived.
//   - ErrMisaligned when labels of the operands disagree.
//   - matrix.ErrSingular (wrapped) when I − A cannot be inverted.
func (s *System) CalcAll() error {
	if s.Z == nil && s.A == nil {
		return fmt.Errorf("calc: %w: need %s or %s", ErrMissingMatrix, NameZ, NameA)
	}
	if s.X == nil && s.Z != nil {
		if err := s.calcXFromZ(); err != nil {
			return fmt.Errorf("calc %s: %w", NameX, err)
		}
	}
	if s.A == nil {
		if err := s.calcA(); err != nil {
			return fmt.Errorf("calc %s: %w", NameA, err)
		}
	}
	if s.L == nil {
		if err := s.calcL(); err != nil {
			return fmt.Errorf("calc %s: %w", NameL, err)
		}
	}
	if s.X == nil && s.Y != nil {
		if err := s.calcXFromL(); err != nil {
			return fmt.Errorf("calc %s: %w", NameX, err)
		}
	}
	for _, name := range s.order {
		if err := s.calcExtension(s.extensions[name]); err != nil {
			return fmt.Errorf("calc extension %s: %w", name, err)
		}
	}

	return nil
}

// finalDemandTotals returns Y·1 aligned to rows, or nil when Y is absent.
func (s *System) finalDemandTotals(rows Index) ([]float64, error) {
	if s.Y == nil {
		return nil, nil
	}
	if !s.Y.Rows.Equal(rows) {
		return nil, fmt.Errorf("%w: %s rows differ from %s rows", ErrMisaligned, NameY, NameZ)
	}

	return matrix.RowSums(s.Y.Data)
}

func (s *System) calcXFromZ() error {
	x, err := matrix.RowSums(s.Z.Data)
	if err != nil {
		return err
	}
	y, err := s.finalDemandTotals(s.Z.Rows)
	if err != nil {
		return err
	}
	if y != nil {
		floats.Add(x, y)
	}
	s.X, err = NewSeries(NameX, s.Z.Rows, x)

	return err
}

func (s *System) calcXFromL() error {
	y, err := s.finalDemandTotals(s.L.Rows)
	if err != nil {
		return err
	}
	x, err := matrix.MatVec(s.L.Data, y)
	if err != nil {
		return err
	}
	s.X, err = NewSeries(NameX, s.L.Rows, x)

	return err
}

func (s *System) calcA() error {
	if s.Z == nil {
		return fmt.Errorf("%w: %s", ErrMissingMatrix, NameZ)
	}
	if s.X == nil {
		return fmt.Errorf("%w: %s", ErrMissingMatrix, NameX)
	}
	if !s.X.Index.Equal(s.Z.Cols) {
		return fmt.Errorf("%w: %s index differs from %s columns", ErrMisaligned, NameX, NameZ)
	}
	a, err := matrix.ScaleCols(s.Z.Data, reciprocal(s.X.Values))
	if err != nil {
		return err
	}
	s.A, err = NewTable(NameA, s.Z.Rows, s.Z.Cols, a.(*matrix.Dense))

	return err
}

func (s *System) calcL() error {
	if !s.A.Rows.Equal(s.A.Cols) {
		return fmt.Errorf("%w: %s rows differ from its columns", ErrMisaligned, NameA)
	}
	l, err := matrix.LeontiefInverse(s.A.Data)
	if err != nil {
		return err
	}
	s.L, err = NewTable(NameL, s.A.Rows, s.A.Cols, l.(*matrix.Dense))

	return err
}

func (s *System) calcExtension(e *Extension) error {
	if _, ok := e.Matrix(MatrixS); ok {
		return nil
	}
	f, ok := e.Matrix(MatrixF)
	if !ok {
		// Nothing to derive from; the absence surfaces to whoever asks for S.
		return nil
	}
	if s.X == nil {
		return fmt.Errorf("%w: %s needed to derive %s", ErrMissingMatrix, NameX, MatrixS)
	}
	if !s.X.Index.Equal(f.Cols) {
		return fmt.Errorf("%w: %s columns differ from %s index", ErrMisaligned, MatrixF, NameX)
	}
	data, err := matrix.ScaleCols(f.Data, reciprocal(s.X.Values))
	if err != nil {
		return err
	}
	t, err := NewTable(MatrixS, f.Rows, f.Cols, data.(*matrix.Dense))
	if err != nil {
		return err
	}
	e.SetMatrix(MatrixS, t)

	return nil
}

// reciprocal returns 1/v element-wise with 1/0 taken as 0, so sectors
// without output get zero coefficients instead of Inf.
func reciprocal(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if x != 0 {
			out[i] = 1 / x
		}
	}

	return out
}
