// SPDX-License-Identifier: MIT

package gwp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/exiogwp/mrio"
)

// Defaults used when a Config field is empty.
const (
	DefaultDataset   = "./IOT_2022_pxp"
	DefaultOutput    = "exiobase_gwp_factors.csv"
	DefaultExtension = "satellite"
)

// Config selects the input release, the output file and the extension whose
// S matrix is aggregated.
type Config struct {
	Dataset   string
	Output    string
	Extension string
}

func (c Config) withDefaults() Config {
	if c.Dataset == "" {
		c.Dataset = DefaultDataset
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}

	return c
}

// Result describes a completed run.
type Result struct {
	Output string   // path written
	Rows   int      // number of (region, sector) rows
	Flows  []string // flows found in S and summed
}

// Run loads the release at cfg.Dataset, derives L and S, aggregates the GWP100
// flows, multiplies by L and writes the multipliers to cfg.Output. Any error
// aborts before the export step, leaving cfg.Output untouched.
func Run(cfg Config, log *slog.Logger) (*Result, error) {
	cfg = cfg.withDefaults()
	log = orDiscard(log)

	log.Info("starting GWP100 multiplier export")
	log.Info("parsing EXIOBASE 3", "dataset", cfg.Dataset)
	log.Info("output CSV", "path", cfg.Output)

	log.Debug("parsing EXIOBASE 3 data")
	sys, err := mrio.ParseExiobase3(cfg.Dataset, mrio.WithExtensions(cfg.Extension))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Dataset, err)
	}
	log.Debug("parsing complete", "extensions", sys.ExtensionNames())

	log.Debug("computing the IO system")
	if err := sys.CalcAll(); err != nil {
		return nil, fmt.Errorf("calc %s: %w", cfg.Dataset, err)
	}
	log.Debug("calculation of the IO system is done")

	agg, found, err := aggregate(sys, cfg.Extension, DefaultFactors(), log)
	if err != nil {
		return nil, err
	}

	log.Debug("retrieving the Leontief inverse")
	if sys.L == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingMatrix, mrio.NameL)
	}
	rows, cols := sys.L.Shape()
	log.Debug("L matrix shape", "rows", rows, "cols", cols)
	log.Debug("multiplying aggregated row by L")
	m, err := Multipliers(agg, sys.L)
	if err != nil {
		return nil, err
	}
	log.Info("supply-chain multipliers computed")

	log.Debug("writing results", "path", cfg.Output)
	if err := WriteFile(cfg.Output, m); err != nil {
		return nil, err
	}
	log.Info("saved GWP100 multipliers", "path", cfg.Output, "rows", m.Len(),
		"index", IndexNames, "column", ColumnName)
	log.Info("GWP100 multiplier export completed")

	return &Result{Output: cfg.Output, Rows: m.Len(), Flows: found}, nil
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return log
}
