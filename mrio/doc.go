// SPDX-License-Identifier: MIT

// Package mrio holds an environmentally-extended multi-regional input-output
// (EE-MRIO) system in memory and derives the standard IO matrices from it.
//
// The package provides:
//
//   - Index, Table and Series: labeled matrices and vectors whose rows and
//     columns are identified by label tuples such as (region, sector).
//   - Extension: a satellite account (F, S, F_Y, S_Y and stressor units).
//   - System: transactions Z, final demand Y, output x, coefficients A, the
//     Leontief inverse L and the extensions, with CalcAll filling whatever
//     can be derived from what was loaded.
//   - ParseExiobase3: a reader for the EXIOBASE 3 text release, either an
//     extracted directory or the distributed .zip archive.
//
// Identities used by CalcAll:
//
//	x = Z·1 + Y·1          (or x = L·(Y·1) when only A is present)
//	A = Z·diag(1/x)
//	L = (I − A)⁻¹
//	S = F·diag(1/x)
//
// Label order is preserved end to end: derived tables share the row and
// column Index of the tables they come from.
package mrio
