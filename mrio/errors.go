// SPDX-License-Identifier: MIT
// Package mrio: sentinel error set. Callers match with errors.Is; messages
// carry file names, labels and available alternatives as wrapped context.

package mrio

import "errors"

var (
	// ErrDatasetNotFound is returned when the dataset path does not exist.
	ErrDatasetNotFound = errors.New("mrio: dataset not found")

	// ErrInvalidLayout covers every structural problem in the on-disk dataset:
	// no IO root, ragged rows, non-numeric cells, unsupported archive type.
	ErrInvalidLayout = errors.New("mrio: invalid dataset layout")

	// ErrMissingMatrix is returned when a matrix is required but neither
	// loaded nor derivable.
	ErrMissingMatrix = errors.New("mrio: missing matrix")

	// ErrDuplicateLabel is returned when an Index would contain the same key twice.
	ErrDuplicateLabel = errors.New("mrio: duplicate label")

	// ErrMisaligned is returned when two labeled operands do not share labels.
	ErrMisaligned = errors.New("mrio: labels not aligned")
)
