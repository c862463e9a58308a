// SPDX-License-Identifier: MIT

// Command exiogwp writes aggregate GWP100 supply-chain multipliers for every
// (region, sector) of an EXIOBASE 3 release to a CSV file.
//
// Usage:
//
//	exiogwp [-dataset ./IOT_2022_pxp] [-output exiobase_gwp_factors.csv]
//	        [-extension satellite] [-log-level debug] [-log-format text]
//
// Every flag can also be set through the environment (EXIOGWP_DATASET,
// EXIOGWP_OUTPUT, EXIOGWP_EXTENSION, EXIOGWP_LOG_LEVEL, EXIOGWP_LOG_FORMAT).
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/katalvlaran/exiogwp/gwp"
	"github.com/katalvlaran/exiogwp/internal/config"
	"github.com/katalvlaran/exiogwp/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		config.Exitf("exiogwp: %v", err)
	}
}

// run parses args, logs to logOut and runs the pipeline. Failures are
// returned, not logged: main reports them once through Exitf.
func run(args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("exiogwp", flag.ContinueOnError)
	fs.SetOutput(logOut)
	cfg, err := config.ParseConfig(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, _ := logging.WithRunID(logging.New(cfg.Logging(), logOut))
	_, err = gwp.Run(cfg.Pipeline(), log)

	return err
}
