// SPDX-License-Identifier: MIT

package gwp

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/exiogwp/mrio"
)

// sampleRows bounds how many S row names an ErrNoMatchingFlows message lists.
const sampleRows = 50

// previewLen bounds the label previews written to the log.
const previewLen = 5

// Source gives access to extensions by name. *mrio.System satisfies it.
type Source interface {
	Extension(name string) (*mrio.Extension, bool)
}

// Intensities returns the S matrix of extension ext.
//
// Errors:
//   - ErrMissingMatrix when the extension is absent (the message lists the
//     extensions the dataset offers, if src can tell) or carries no S (the
//     message lists the extension keys).
func Intensities(src Source, ext string, log *slog.Logger) (*mrio.Table, error) {
	log = orDiscard(log)
	log.Debug("looking for S matrix", "extension", ext)

	e, ok := src.Extension(ext)
	if !ok {
		available := availableExtensions(src)
		log.Error("extension not found", "extension", ext, "available_extensions", available)
		return nil, fmt.Errorf("%w: no extension %q; available extensions: %q", ErrMissingMatrix, ext, available)
	}
	s, ok := e.Matrix(mrio.MatrixS)
	if !ok {
		keys := e.Keys()
		log.Error("no S matrix found", "extension", ext, "available_keys", keys)
		return nil, fmt.Errorf("%w: no %s matrix under %s; available keys: %q", ErrMissingMatrix, mrio.MatrixS, ext, keys)
	}

	rows, cols := s.Shape()
	log.Info("S matrix found", "rows", rows, "cols", cols)
	log.Info("first S rows", "labels", s.Rows.Head(previewLen))
	log.Info("first S columns", "labels", s.Cols.Head(previewLen))

	return s, nil
}

// availableExtensions asks src for every extension the dataset offers,
// falling back to the loaded ones.
func availableExtensions(src Source) []string {
	switch l := src.(type) {
	case interface{ AvailableExtensions() []string }:
		return l.AvailableExtensions()
	case interface{ ExtensionNames() []string }:
		return l.ExtensionNames()
	default:
		return nil
	}
}

// Aggregate folds the flows of f found in the S matrix of extension ext into
// one intensity row: Σ factor(flow)·S[flow]. Flows missing from S are
// skipped. The result shares S's column labels and order.
//
// Errors:
//   - ErrMissingMatrix, see Intensities.
//   - ErrNoMatchingFlows when none of f.Flows is a row of S.
//
// Complexity: O(len(f.Flows)·cols).
func Aggregate(src Source, ext string, f Factors, log *slog.Logger) (*mrio.Series, error) {
	agg, _, err := aggregate(src, ext, f, log)
	return agg, err
}

// aggregate is Aggregate that also reports the flows it summed.
func aggregate(src Source, ext string, f Factors, log *slog.Logger) (*mrio.Series, []string, error) {
	log = orDiscard(log)
	s, err := Intensities(src, ext, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("GHG flows to sum", "flows", f.Flows)
	log.Info("using GWP100 factors", "factors", f.String())

	found := make([]string, 0, len(f.Flows))
	for _, flow := range f.Flows {
		if s.Rows.Contains(flow) {
			found = append(found, flow)
		}
	}
	log.Debug("GHG flows found in S", "flows", found)
	if len(found) == 0 {
		sample := s.Rows.Flat()
		if len(sample) > sampleRows {
			sample = sample[:sampleRows]
		}
		log.Error("none of the specified GHG flows were found in S", "specified", f.Flows)
		return nil, nil, fmt.Errorf("%w: specified %q; actual index (sample): %q", ErrNoMatchingFlows, f.Flows, sample)
	}

	log.Debug("creating aggregated row", "name", RowName)
	sum := make([]float64, s.Cols.Len())
	for _, flow := range found {
		factor := f.Factor(flow)
		log.Debug("adding flow", "flow", flow, "factor", factor)
		row, _ := s.Row(flow)
		floats.AddScaled(sum, factor, row)
	}
	log.Info("finished summing GHG flows into a single row", "len", len(sum))

	agg, err := mrio.NewSeries(RowName, s.Cols, sum)
	if err != nil {
		return nil, nil, err
	}

	return agg, found, nil
}
