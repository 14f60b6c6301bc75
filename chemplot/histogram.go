/*
 * histogram.go, part of goClash.
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

//Package chemplot summarizes and plots the per-ligand-atom scores in a results file.
package chemplot

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/goclash/results"
)

// Column is a per-atom score in a results file.
type Column int

const (
	Intersection Column = iota
	Contacts
	HBonds
	VdW
)

var columnNames = map[Column]string{
	Intersection: "intersection/atom",
	Contacts:     "contacts/atom",
	HBonds:       "H-bonds/atom",
	VdW:          "VdW/atom",
}

func (c Column) String() string {
	if n, ok := columnNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// ParseColumn returns the column with the given name, as returned by String,
// or one of "intersection", "contacts", "hbonds", "vdw".
func ParseColumn(s string) (Column, error) {
	switch s {
	case "intersection", columnNames[Intersection]:
		return Intersection, nil
	case "contacts", columnNames[Contacts]:
		return Contacts, nil
	case "hbonds", columnNames[HBonds]:
		return HBonds, nil
	case "vdw", columnNames[VdW]:
		return VdW, nil
	}
	return 0, errors.Newf("chemplot: unknown column %q", s)
}

// Values returns the per-atom values of column c for the rows where it was
// computed. The intersection is always computed, the other columns
// only for rows where the contact pass was run.
func Values(rows []results.Row, c Column) []float64 {
	if c != Intersection {
		rows = lo.Filter(rows, func(r results.Row, _ int) bool { return r.Computed() })
	}
	rows = lo.Filter(rows, func(r results.Row, _ int) bool { return r.LigandAtoms > 0 })
	return lo.Map(rows, func(r results.Row, _ int) float64 {
		switch c {
		case Contacts:
			return r.PerAtom(float64(r.Contacts))
		case HBonds:
			return r.PerAtom(float64(r.HBonds))
		case VdW:
			return r.PerAtom(float64(r.VdW))
		}
		return r.PerAtom(r.Intersection)
	})
}

// Summary holds simple statistics for one column.
type Summary struct {
	Column Column
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%-18s n=%-6d mean=%8.3f sd=%8.3f min=%8.3f max=%8.3f", s.Column, s.N, s.Mean, s.StdDev, s.Min, s.Max)
}

// Summarize returns the statistics for every column. For columns without
// values, all the statistics but N are NaN.
func Summarize(rows []results.Row) []Summary {
	cols := []Column{Intersection, Contacts, HBonds, VdW}
	ret := make([]Summary, 0, len(cols))
	for _, c := range cols {
		v := Values(rows, c)
		s := Summary{Column: c, N: len(v), Mean: math.NaN(), StdDev: math.NaN(), Min: math.NaN(), Max: math.NaN()}
		if len(v) > 0 {
			s.Mean, s.StdDev = stat.MeanStdDev(v, nil)
			s.Min = floats.Min(v)
			s.Max = floats.Max(v)
		}
		if len(v) == 1 {
			s.StdDev = 0
		}
		ret = append(ret, s)
	}
	return ret
}

// RatioHistogram writes a histogram of column c with bins bins to filename. The
// format is taken from the extension of filename (png, svg, pdf...).
func RatioHistogram(rows []results.Row, c Column, bins int, title, filename string) error {
	v := Values(rows, c)
	if len(v) == 0 {
		return errors.Newf("chemplot: no values for %s", c)
	}
	if bins <= 0 {
		bins = 20
	}
	h, err := plotter.NewHist(plotter.Values(v), bins)
	if err != nil {
		return errors.Wrap(err, "chemplot.RatioHistogram")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = c.String()
	p.Y.Label.Text = "structures"
	p.Add(plotter.NewGrid())
	p.Add(h)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrap(err, "chemplot.RatioHistogram")
	}
	return nil
}
