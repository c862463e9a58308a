// SPDX-License-Identifier: MIT

package gwp

import (
	"fmt"

	"github.com/katalvlaran/exiogwp/matrix"
	"github.com/katalvlaran/exiogwp/mrio"
)

// Multipliers returns agg·L: the supply-chain multiplier of every column of
// L. The result is named ColumnName and indexed by L's column labels, with
// levels renamed to IndexNames.
//
// agg is matched to L's rows by label. Identical order multiplies directly;
// the same labels in another order are re-ordered to L's rows first.
//
// Errors:
//   - ErrMissingMatrix when agg or L is nil.
//   - ErrMisaligned when the label sets differ, or L's columns are not
//     (region, sector) pairs.
func Multipliers(agg *mrio.Series, L *mrio.Table) (*mrio.Series, error) {
	if agg == nil || L == nil {
		return nil, fmt.Errorf("multipliers: %w: need the aggregated row and %s", ErrMissingMatrix, mrio.NameL)
	}

	v := agg.Values
	if !agg.Index.Equal(L.Rows) {
		p, ok := agg.Index.Permutation(L.Rows)
		if !ok {
			return nil, fmt.Errorf("multipliers: %w: %s has %d labels, %s rows %d, label sets differ",
				ErrMisaligned, agg.Name, agg.Len(), mrio.NameL, L.Rows.Len())
		}
		v = make([]float64, len(p))
		for i, j := range p {
			v[i] = agg.Values[j]
		}
	}

	out, err := matrix.VecMul(v, L.Data)
	if err != nil {
		return nil, fmt.Errorf("multipliers: %w", err)
	}
	if L.Cols.Levels() != len(IndexNames) {
		return nil, fmt.Errorf("multipliers: %w: %s columns have %d levels, want %d",
			ErrMisaligned, mrio.NameL, L.Cols.Levels(), len(IndexNames))
	}
	index, err := L.Cols.Rename(IndexNames...)
	if err != nil {
		return nil, fmt.Errorf("multipliers: %w", err)
	}

	return mrio.NewSeries(ColumnName, index, out)
}
