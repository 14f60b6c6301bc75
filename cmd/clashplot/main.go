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

//clashplot prints summary statistics for a goClash results file and writes
//histograms of the per-atom scores.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rmera/goclash/chemplot"
	"github.com/rmera/goclash/results"
)

func main() {
	bins := pflag.IntP("bins", "b", 20, "Number of bins in the histograms")
	outdir := pflag.StringP("outdir", "d", ".", "Directory for the histograms")
	format := pflag.StringP("format", "f", "png", "Image format (png, svg, pdf)")
	columns := pflag.StringSlice("columns", []string{"intersection", "contacts", "hbonds", "vdw"}, "Columns to plot")
	summaryOnly := pflag.BoolP("summary", "s", false, "Only print the summary, don't plot")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] results.tsv\n\nFlags:\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	args := pflag.Args()
	if len(args) != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	rows, err := results.ReadFile(args[0])
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range chemplot.Summarize(rows) {
		fmt.Println(s)
	}
	if *summaryOnly {
		return
	}
	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	for _, name := range *columns {
		c, err := chemplot.ParseColumn(name)
		if err != nil {
			log.Fatal(err)
		}
		out := filepath.Join(*outdir, fmt.Sprintf("%s_%s.%s", base, name, *format))
		if err := chemplot.RatioHistogram(rows, c, *bins, fmt.Sprintf("%s: %s", base, c), out); err != nil {
			log.Printf("%s: %v", name, err)
		}
	}
}
