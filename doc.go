// Package exiogwp computes aggregate GWP100 supply-chain multipliers from an
// EXIOBASE 3 environmentally-extended multi-regional input-output release.
//
// 🚀 What does it produce?
//
//	One number per (region, sector): kilograms of CO2-equivalent emitted
//	along the whole upstream supply chain per unit of that sector's output.
//
//		• Load: EXIOBASE 3 text release, extracted folder or .zip archive
//		• Solve: x, A = Z·diag(1/x), L = (I − A)⁻¹, S = F·diag(1/x)
//		• Aggregate: 1·CO2 + 28·CH4 + 265·N2O (combustion, air; AR5 GWP100)
//		• Multiply: S_agg · L
//		• Export: Region,Sector,GWP100 [kg CO2-eq/unit output]
//
// Under the hood, everything is organized under these packages:
//
//	matrix/            dense kernels: Mul, VecMul, ScaleCols, LU with pivoting, Inverse
//	mrio/              labeled Index/Table/Series, EXIOBASE 3 reader, System.CalcAll
//	gwp/               Aggregate, Multipliers, WriteCSV/WriteFile, Run
//	cmd/exiogwp/       command-line entry point (flags + EXIOGWP_* environment)
//	examples/          a runnable three-region walk-through
//
// Quick ASCII example (2 regions × 1 sector, A = 0 so L = I):
//
//	          AT    BE
//	    CO2   1.0   2.0
//	    CH4   0.5   0.5      →   AT 15.0, BE 16.0
//
//	go install github.com/katalvlaran/exiogwp/cmd/exiogwp@latest
package exiogwp
