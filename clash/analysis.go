/*
 * analysis.go, part of goClash.
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

package clash

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	chem "github.com/rmera/goclash"
	"github.com/rmera/goclash/hbond"
)

// NotComputed is the value of the contact counts of a Result when the
// contact pass was skipped.
const NotComputed = -1

//Defaults, in A for lengths.
const (
	DefaultStep      = 1.0
	DefaultCutoff    = 4.0
	DefaultGateRatio = 2.0
)

// Options contains the parameters for Analyze.
type Options struct {
	Step      float64 //edge of the grid cells
	Cutoff    float64 //contact distance
	MaxCells  int     //largest grid allowed. 0 means DefaultMaxCells
	GateRatio float64 //skip the contact pass if intersection/ligand atoms is at least this. 0 means DefaultGateRatio
	Logger    *zap.Logger
}

// DefaultOptions returns the default Options, with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Step:      DefaultStep,
		Cutoff:    DefaultCutoff,
		MaxCells:  DefaultMaxCells,
		GateRatio: DefaultGateRatio,
		Logger:    zap.NewNop(),
	}
}

// Result contains the scores for one structure.
type Result struct {
	LigandAtoms  int
	OverlapAtoms int     //protein atoms in cells occupied by the ligand
	Intersection float64 //estimated overlap volume, OverlapAtoms*step^3
	Contacts     int
	HBonds       int
	VdW          int
	Gated        bool //the contact pass was skipped, the 3 counts are NotComputed
	Warnings     []chem.Warning
}

// PerAtom returns v divided by the number of ligand atoms.
func (r *Result) PerAtom(v float64) float64 {
	return v / float64(r.LigandAtoms)
}

// Analyze scores the ligand against the protein. It estimates the intersection
// volume and, unless the intersection per ligand atom reaches opts.GateRatio,
// classifies the ligand atoms and counts contacts, hydrogen bonds and van der
// Waals contacts. A heavy overlap means the pose is not worth scoring further,
// so in that case the counts are set to NotComputed.
// Errors wrap chem.ErrEmptyInput for an empty ligand and chem.ErrConfiguration
// for bad options.
func Analyze(protein, ligand []chem.Atom, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if len(ligand) == 0 {
		return nil, errors.Wrap(chem.ErrEmptyInput, "Analyze")
	}
	if !(opts.Cutoff > 0) {
		return nil, errors.Wrapf(chem.ErrConfiguration, "contact cutoff must be positive, got %g", opts.Cutoff)
	}
	gate := opts.GateRatio
	if gate == 0 {
		gate = DefaultGateRatio
	}
	if !(gate > 0) {
		return nil, errors.Wrapf(chem.ErrConfiguration, "gate ratio must be positive, got %g", gate)
	}
	box, err := chem.ComputeBoundingBox(ligand)
	if err != nil {
		return nil, err
	}
	grid, err := BuildGrid(ligand, box, opts.Step, opts.MaxCells)
	if err != nil {
		return nil, errors.Wrap(err, "Analyze")
	}
	nx, ny, nz := grid.Dims()
	log.Debug("voxel grid built",
		zap.Int("nx", nx), zap.Int("ny", ny), zap.Int("nz", nz),
		zap.Int("occupied", grid.Occupied()), zap.Float64("step", opts.Step))

	r := &Result{LigandAtoms: len(ligand)}
	r.OverlapAtoms, r.Intersection, err = EstimateIntersection(protein, grid)
	if err != nil {
		return nil, errors.Wrap(err, "Analyze")
	}
	if r.PerAtom(r.Intersection) >= gate {
		log.Info("heavy overlap, contacts not computed",
			zap.Float64("intersection", r.Intersection), zap.Int("ligandAtoms", r.LigandAtoms))
		r.Gated = true
		r.Contacts, r.HBonds, r.VdW = NotComputed, NotComputed, NotComputed
		return r, nil
	}

	types, warnings, err := hbond.ClassifyLigandAtoms(ligand)
	if err != nil {
		return nil, errors.Wrap(err, "Analyze")
	}
	for _, w := range warnings {
		log.Warn(w.Kind.String(), zap.Stringer("atom", w.Atom), zap.Int("neighbors", w.Neighbors))
	}
	r.Warnings = warnings
	c, err := AccumulateContacts(protein, ligand, types, box, opts.Cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "Analyze")
	}
	r.Contacts, r.HBonds, r.VdW = c.Contacts, c.HBonds, c.VdW
	return r, nil
}
