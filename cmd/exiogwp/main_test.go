// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exiogwp/internal/testkit/exiofixture"
	"github.com/katalvlaran/exiogwp/mrio"
)

func TestRun_WritesMultipliers(t *testing.T) {
	dir := exiofixture.TwoRegionGHG().WriteDir(t, t.TempDir())
	out := filepath.Join(t.TempDir(), "gwp.csv")

	var logs bytes.Buffer
	require.NoError(t, run([]string{"-dataset", dir, "-output", out, "-log-format", "json"}, &logs))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "BE,Electricity by coal,16.0")
	assert.Contains(t, logs.String(), `"run_id"`)
}

// TestRun_FailureIsReturnedNotLogged keeps a failed run to a single report:
// the error comes back to main for Exitf and never reaches the log.
func TestRun_FailureIsReturnedNotLogged(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "IOT_2022_pxp")
	out := filepath.Join(t.TempDir(), "gwp.csv")

	var logs bytes.Buffer
	err := run([]string{"-dataset", missing, "-output", out}, &logs)
	require.ErrorIs(t, err, mrio.ErrDatasetNotFound)

	assert.NotContains(t, logs.String(), "level=ERROR")
	assert.Equal(t, 0, strings.Count(logs.String(), err.Error()))
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_HelpAndBadFlags(t *testing.T) {
	var logs bytes.Buffer
	require.NoError(t, run([]string{"-h"}, &logs))
	assert.Contains(t, logs.String(), "-dataset")

	require.Error(t, run([]string{"-log-level", "verbose"}, &logs))
}
