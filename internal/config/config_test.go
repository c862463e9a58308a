// SPDX-License-Identifier: MIT
package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exiogwp/gwp"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("exiogwp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Dataset:   gwp.DefaultDataset,
		Output:    gwp.DefaultOutput,
		Extension: gwp.DefaultExtension,
		LogLevel:  "debug",
		LogFormat: "text",
	}, cfg)
}

func TestParseConfig_EnvThenFlags(t *testing.T) {
	t.Setenv("EXIOGWP_DATASET", "/data/IOT_2021_ixi.zip")
	t.Setenv("EXIOGWP_OUTPUT", "env.csv")
	t.Setenv("EXIOGWP_LOG_FORMAT", "json")

	cfg, err := ParseConfig(newFlagSet(), []string{"-output", "flag.csv", "-log-level", "info"})
	require.NoError(t, err)

	assert.Equal(t, "/data/IOT_2021_ixi.zip", cfg.Dataset)
	assert.Equal(t, "flag.csv", cfg.Output, "flags override env")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, gwp.Config{Dataset: "/data/IOT_2021_ixi.zip", Output: "flag.csv", Extension: "satellite"}, cfg.Pipeline())
	assert.Equal(t, "info", cfg.Logging().Level)
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := map[string][]string{
		"empty output":    {"-output", ""},
		"unknown level":   {"-log-level", "verbose"},
		"unknown format":  {"-log-format", "xml"},
		"positional args": {"extra"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig(newFlagSet(), args)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseConfig_UnknownFlag(t *testing.T) {
	_, err := ParseConfig(newFlagSet(), []string{"-nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse flags:")
}

func TestParseEnvError(t *testing.T) {
	var cfg struct {
		Rows int `env:"EXIOGWP_TEST_ROWS" envDefault:"1"`
	}
	t.Setenv("EXIOGWP_TEST_ROWS", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
