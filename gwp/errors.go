// SPDX-License-Identifier: MIT

package gwp

import (
	"errors"

	"github.com/katalvlaran/exiogwp/mrio"
)

var (
	// ErrMissingMatrix is returned when the extension or its S matrix is absent.
	// It is the same sentinel as mrio.ErrMissingMatrix.
	ErrMissingMatrix = mrio.ErrMissingMatrix

	// ErrNoMatchingFlows is returned when none of the requested flows is a row of S.
	ErrNoMatchingFlows = errors.New("gwp: no matching flows")

	// ErrMisaligned is returned when the aggregated row and L do not share labels.
	// It is the same sentinel as mrio.ErrMisaligned.
	ErrMisaligned = mrio.ErrMisaligned
)
