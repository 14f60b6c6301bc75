/*
 * main.go, part of goClash.
 *
 * Copyright 2026 The goClash authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//goclash scores the overlap and contacts between a protein and a ligand for
//each structure given, and appends one line per structure to a results file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rmera/goclash/batch"
	"github.com/rmera/goclash/config"
)

func main() {
	fs := pflag.NewFlagSet("goclash", pflag.ExitOnError)
	cfgFile := fs.StringP("config", "c", "", "YAML configuration file")
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] structure.pdb[.gz|.zst] ...\n\nFlags:\n", os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])
	paths := fs.Args()
	if len(paths) < 1 {
		fs.Usage()
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgFile, fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	r := &batch.Runner{Config: cfg, Logger: logger}
	outcomes, err := r.Run(ctx, paths)
	if err != nil {
		logger.Error("interrupted", zap.Error(err))
	}
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed > 0 || err != nil {
		logger.Error("some structures were not scored", zap.Int("failed", failed), zap.Int("total", len(paths)))
		logger.Sync()
		os.Exit(1)
	}
}
