// SPDX-License-Identifier: MIT

package mrio

import (
	"fmt"
	"strings"
)

// keySep joins label tuples into map keys. It cannot appear in EXIOBASE labels.
const keySep = "\x1f"

// Index is an ordered, duplicate-free list of label tuples with named levels,
// e.g. levels (region, sector) and keys (AT, Cultivation of paddy rice), ...
// An Index is immutable once built; copies share storage safely.
type Index struct {
	names []string
	keys  [][]string
	pos   map[string]int
}

// NewIndex validates and builds an Index. Every key must have exactly
// len(names) parts, and keys must be unique.
//
// Errors:
//   - ErrInvalidLayout for keys of the wrong arity.
//   - ErrDuplicateLabel for repeated keys.
//
// Complexity: O(n·levels).
func NewIndex(names []string, keys [][]string) (Index, error) {
	if len(names) == 0 {
		return Index{}, fmt.Errorf("%w: index needs at least one level", ErrInvalidLayout)
	}
	ix := Index{
		names: append([]string(nil), names...),
		keys:  make([][]string, len(keys)),
		pos:   make(map[string]int, len(keys)),
	}
	for i, k := range keys {
		if len(k) != len(names) {
			return Index{}, fmt.Errorf("%w: key %d has %d levels, want %d", ErrInvalidLayout, i, len(k), len(names))
		}
		joined := strings.Join(k, keySep)
		if prev, dup := ix.pos[joined]; dup {
			return Index{}, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateLabel, k, prev, i)
		}
		ix.pos[joined] = i
		ix.keys[i] = append([]string(nil), k...)
	}

	return ix, nil
}

// Len returns the number of keys.
func (ix Index) Len() int { return len(ix.keys) }

// Names returns a copy of the level names.
func (ix Index) Names() []string { return append([]string(nil), ix.names...) }

// Levels returns the number of levels per key.
func (ix Index) Levels() int { return len(ix.names) }

// Key returns a copy of the i-th key. It panics on an out-of-range i, like a
// slice access.
func (ix Index) Key(i int) []string { return append([]string(nil), ix.keys[i]...) }

// Position returns the ordinal of key, and whether it exists.
func (ix Index) Position(key ...string) (int, bool) {
	i, ok := ix.pos[strings.Join(key, keySep)]
	return i, ok
}

// Contains reports whether key is present.
func (ix Index) Contains(key ...string) bool {
	_, ok := ix.Position(key...)
	return ok
}

// Head returns copies of the first n keys (fewer if the index is shorter).
func (ix Index) Head(n int) [][]string {
	if n > len(ix.keys) {
		n = len(ix.keys)
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = ix.Key(i)
	}

	return out
}

// Flat returns single-level keys as plain strings, and multi-level keys
// joined with " | ". Used for diagnostics.
func (ix Index) Flat() []string {
	out := make([]string, len(ix.keys))
	for i, k := range ix.keys {
		out[i] = strings.Join(k, " | ")
	}

	return out
}

// Equal reports whether both indexes hold the same keys in the same order.
// Level names are not compared.
func (ix Index) Equal(other Index) bool {
	if len(ix.keys) != len(other.keys) {
		return false
	}
	for i := range ix.keys {
		if len(ix.keys[i]) != len(other.keys[i]) {
			return false
		}
		for l := range ix.keys[i] {
			if ix.keys[i][l] != other.keys[i][l] {
				return false
			}
		}
	}

	return true
}

// Permutation returns p with p[i] = position in ix of other's i-th key, when
// both indexes hold exactly the same key set. ok is false otherwise.
func (ix Index) Permutation(other Index) (p []int, ok bool) {
	if len(ix.keys) != len(other.keys) {
		return nil, false
	}
	p = make([]int, len(other.keys))
	for i, k := range other.keys {
		j, found := ix.Position(k...)
		if !found {
			return nil, false
		}
		p[i] = j
	}

	return p, true
}

// Rename returns a copy of the index with new level names.
func (ix Index) Rename(names ...string) (Index, error) {
	if len(names) != len(ix.names) {
		return Index{}, fmt.Errorf("%w: rename to %d levels, index has %d", ErrInvalidLayout, len(names), len(ix.names))
	}
	out := ix
	out.names = append([]string(nil), names...)

	return out, nil
}
