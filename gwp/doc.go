// SPDX-License-Identifier: MIT

// Package gwp turns an EXIOBASE 3 system into aggregate GWP100
// supply-chain multipliers.
//
// The pipeline is:
//
//	Load → Solve → Validate(S) → Validate(flows) → Aggregate → Multiply → Export
//
// Aggregate folds the combustion-air emissions of CO2, CH4 and N2O into one
// intensity row using AR5 100-year factors (1, 28, 265). Multipliers
// propagates that row through the Leontief inverse, giving kg CO2-eq per unit
// of output for every (region, sector). WriteCSV and WriteFile export the
// result; Run chains everything and leaves the output untouched on failure.
package gwp
