// SPDX-License-Identifier: MIT

package mrio

import "sort"

// Matrix names inside an Extension, as used by the EXIOBASE 3 release.
const (
	MatrixF  = "F"   // stressor flows by industry
	MatrixS  = "S"   // stressor intensities (F per unit output)
	MatrixFY = "F_Y" // stressor flows by final demand
	MatrixSY = "S_Y" // stressor intensities of final demand
)

// Extension is one satellite account, e.g. "satellite" or "impacts".
type Extension struct {
	Name     string
	matrices map[string]*Table
	units    map[string]string
}

// NewExtension returns an empty extension.
func NewExtension(name string) *Extension {
	return &Extension{
		Name:     name,
		matrices: make(map[string]*Table),
		units:    make(map[string]string),
	}
}

// Matrix returns the named matrix and whether the extension carries it.
func (e *Extension) Matrix(name string) (*Table, bool) {
	t, ok := e.matrices[name]
	return t, ok && t != nil
}

// SetMatrix stores t under name, replacing any previous matrix.
func (e *Extension) SetMatrix(name string, t *Table) { e.matrices[name] = t }

// Keys lists the matrix names present, sorted. "unit" is included when
// units were loaded, matching the keys a user sees in the release folder.
func (e *Extension) Keys() []string {
	keys := make([]string, 0, len(e.matrices)+1)
	for k, t := range e.matrices {
		if t != nil {
			keys = append(keys, k)
		}
	}
	if len(e.units) > 0 {
		keys = append(keys, "unit")
	}
	sort.Strings(keys)

	return keys
}

// SetUnit records the physical unit of a stressor.
func (e *Extension) SetUnit(stressor, unit string) { e.units[stressor] = unit }

// Unit returns the unit of a stressor, and whether it is known.
func (e *Extension) Unit(stressor string) (string, bool) {
	u, ok := e.units[stressor]
	return u, ok
}
