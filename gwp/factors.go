// SPDX-License-Identifier: MIT

package gwp

import "fmt"

// Default stressor names of the EXIOBASE 3 satellite account.
const (
	FlowCO2 = "CO2 - combustion - air"
	FlowCH4 = "CH4 - combustion - air"
	FlowN2O = "N2O - combustion - air"
)

// Output labels.
const (
	RowName    = "Global Warming (GWP100)"
	ColumnName = "GWP100 [kg CO2-eq/unit output]"
)

// IndexNames are the level names of the exported index.
var IndexNames = []string{"Region", "Sector"}

// Factors is an ordered list of flows with their characterization factors.
// A flow without a factor counts with factor 0.
type Factors struct {
	Flows  []string
	Values map[string]float64
}

// DefaultFactors returns the AR5 GWP100 factors for CO2, CH4 and N2O.
func DefaultFactors() Factors {
	return Factors{
		Flows: []string{FlowCO2, FlowCH4, FlowN2O},
		Values: map[string]float64{
			FlowCO2: 1.0,
			FlowCH4: 28.0,
			FlowN2O: 265.0,
		},
	}
}

// Factor returns the factor of flow, or 0 when it has none.
func (f Factors) Factor(flow string) float64 { return f.Values[flow] }

// String renders the factors in flow order, e.g. "{CO2 - combustion - air: 1}".
func (f Factors) String() string {
	s := "{"
	for i, flow := range f.Flows {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %g", flow, f.Factor(flow))
	}

	return s + "}"
}
