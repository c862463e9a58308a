// SPDX-License-Identifier: MIT
package mrio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exiogwp/mrio"
)

func mustIndex(t *testing.T, names []string, keys ...[]string) mrio.Index {
	t.Helper()
	ix, err := mrio.NewIndex(names, keys)
	require.NoError(t, err)

	return ix
}

func TestNewIndex_Validation(t *testing.T) {
	t.Parallel()

	_, err := mrio.NewIndex([]string{"region", "sector"}, [][]string{{"AT"}})
	require.ErrorIs(t, err, mrio.ErrInvalidLayout)

	_, err = mrio.NewIndex([]string{"region"}, [][]string{{"AT"}, {"AT"}})
	require.ErrorIs(t, err, mrio.ErrDuplicateLabel)

	_, err = mrio.NewIndex(nil, nil)
	require.ErrorIs(t, err, mrio.ErrInvalidLayout)
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	ix := mustIndex(t, []string{"region", "sector"},
		[]string{"AT", "Wheat"}, []string{"AT", "Coal"}, []string{"BE", "Wheat"})

	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, 2, ix.Levels())
	assert.Equal(t, []string{"region", "sector"}, ix.Names())

	pos, ok := ix.Position("BE", "Wheat")
	require.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.False(t, ix.Contains("BE", "Coal"))
	assert.Equal(t, []string{"AT", "Coal"}, ix.Key(1))
	assert.Equal(t, [][]string{{"AT", "Wheat"}, {"AT", "Coal"}}, ix.Head(2))
	assert.Len(t, ix.Head(10), 3)
	assert.Equal(t, "AT | Coal", ix.Flat()[1])
}

func TestIndex_EqualAndPermutation(t *testing.T) {
	t.Parallel()

	a := mustIndex(t, []string{"r"}, []string{"x"}, []string{"y"}, []string{"z"})
	b := mustIndex(t, []string{"other"}, []string{"x"}, []string{"y"}, []string{"z"})
	c := mustIndex(t, []string{"r"}, []string{"z"}, []string{"x"}, []string{"y"})
	d := mustIndex(t, []string{"r"}, []string{"x"}, []string{"y"}, []string{"w"})

	assert.True(t, a.Equal(b), "level names are not compared")
	assert.False(t, a.Equal(c))

	p, ok := a.Permutation(c)
	require.True(t, ok)
	assert.Equal(t, []int{2, 0, 1}, p)

	_, ok = a.Permutation(d)
	assert.False(t, ok)
}

func TestIndex_Rename(t *testing.T) {
	t.Parallel()

	ix := mustIndex(t, []string{"region", "sector"}, []string{"AT", "Wheat"})
	renamed, err := ix.Rename("Region", "Sector")
	require.NoError(t, err)
	assert.Equal(t, []string{"Region", "Sector"}, renamed.Names())
	assert.Equal(t, []string{"region", "sector"}, ix.Names(), "receiver untouched")
	assert.True(t, renamed.Equal(ix))

	_, err = ix.Rename("Region")
	require.ErrorIs(t, err, mrio.ErrInvalidLayout)
}
