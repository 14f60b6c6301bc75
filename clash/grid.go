/*
 * grid.go, part of goClash.
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
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/goclash"
)

// DefaultMaxCells is the largest grid BuildGrid will allocate when no other
// ceiling is given. At 1 byte per cell it amounts to 16 MiB.
const DefaultMaxCells = 1 << 24

// VoxelGrid is a regular grid of cubic cells of edge Step over the bounding box
// of a ligand. Each cell records whether some ligand atom falls in it.
// A grid is read-only once built.
type VoxelGrid struct {
	box        chem.BoundingBox
	step       float64
	nx, ny, nz int
	cells      []bool
	occupied   int
}

// GridDims returns the number of cells along each axis for a grid over box
// with cells of edge step. Each axis gets floor(size/step)+2 cells, so there is
// one cell of slack past each face of the box.
// It returns an error wrapping chem.ErrConfiguration if step is not a positive
// finite number or the total number of cells exceeds maxCells.
// A maxCells of 0 or less means DefaultMaxCells.
func GridDims(box chem.BoundingBox, step float64, maxCells int) (nx, ny, nz int, err error) {
	if !(step > 0) || math.IsInf(step, 1) {
		return 0, 0, 0, errors.Wrapf(chem.ErrConfiguration, "grid step must be positive, got %g", step)
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	size := box.Size()
	fx := math.Floor(size.X/step) + 2
	fy := math.Floor(size.Y/step) + 2
	fz := math.Floor(size.Z/step) + 2
	//done in floating point so huge grids can't overflow before we catch them.
	if total := fx * fy * fz; math.IsNaN(total) || total > float64(maxCells) {
		return 0, 0, 0, errors.Wrapf(chem.ErrConfiguration,
			"grid of %gx%gx%g cells with step %g exceeds the ceiling of %d cells", fx, fy, fz, step, maxCells)
	}
	return int(fx), int(fy), int(fz), nil
}

// BuildGrid builds the occupancy grid for the ligand atoms, over box (which
// should be the ligand's bounding box) with cells of edge step.
// See GridDims for the configuration errors. If a ligand atom maps outside
// the grid, the returned error wraps chem.ErrGridIndexOutOfRange.
func BuildGrid(ligand []chem.Atom, box chem.BoundingBox, step float64, maxCells int) (*VoxelGrid, error) {
	if len(ligand) == 0 {
		return nil, errors.Wrap(chem.ErrEmptyInput, "BuildGrid")
	}
	nx, ny, nz, err := GridDims(box, step, maxCells)
	if err != nil {
		return nil, err
	}
	g := &VoxelGrid{
		box:   box,
		step:  step,
		nx:    nx,
		ny:    ny,
		nz:    nz,
		cells: make([]bool, nx*ny*nz),
	}
	for _, a := range ligand {
		i, err := g.Index(a.Pos)
		if err != nil {
			return nil, errors.Wrapf(err, "BuildGrid: ligand atom %s", a)
		}
		if !g.cells[i] {
			g.occupied++
		}
		g.cells[i] = true
	}
	return g, nil
}

// Dims returns the number of cells along x, y and z.
func (g *VoxelGrid) Dims() (int, int, int) { return g.nx, g.ny, g.nz }

// Len returns the total number of cells in the grid.
func (g *VoxelGrid) Len() int { return len(g.cells) }

// Occupied returns the number of cells holding at least one ligand atom.
func (g *VoxelGrid) Occupied() int { return g.occupied }

// Step returns the edge of the grid cells.
func (g *VoxelGrid) Step() float64 { return g.step }

// Box returns the box the grid was built over.
func (g *VoxelGrid) Box() chem.BoundingBox { return g.box }

// Cell returns the cell coordinates for the point p. They may lie outside
// the grid.
func (g *VoxelGrid) Cell(p r3.Vec) (cx, cy, cz int) {
	return int(math.Floor((p.X - g.box.Min.X) / g.step)),
		int(math.Floor((p.Y - g.box.Min.Y) / g.step)),
		int(math.Floor((p.Z - g.box.Min.Z) / g.step))
}

// Index returns the position in the flat cell buffer of the cell containing p,
// given by (cz*ny+cy)*nx+cx. Each axis is checked separately, and an error
// wrapping chem.ErrGridIndexOutOfRange is returned if any of them falls outside the grid.
func (g *VoxelGrid) Index(p r3.Vec) (int, error) {
	cx, okx := axisCell(p.X, g.box.Min.X, g.step, g.nx)
	cy, oky := axisCell(p.Y, g.box.Min.Y, g.step, g.ny)
	cz, okz := axisCell(p.Z, g.box.Min.Z, g.step, g.nz)
	if !(okx && oky && okz) {
		return -1, errors.Wrapf(chem.ErrGridIndexOutOfRange, "point (%.3f, %.3f, %.3f) in a %dx%dx%d grid", p.X, p.Y, p.Z, g.nx, g.ny, g.nz)
	}
	return (cz*g.ny+cy)*g.nx + cx, nil
}

// QueryCell returns whether the cell containing p holds a ligand atom.
// It does not check that p is inside the ligand's box, but it will return an
// error wrapping chem.ErrGridIndexOutOfRange if p maps outside the grid.
func (g *VoxelGrid) QueryCell(p r3.Vec) (bool, error) {
	i, err := g.Index(p)
	if err != nil {
		return false, err
	}
	return g.cells[i], nil
}

//axisCell returns the cell along one axis for the coordinate v, and whether
//it is inside [0,n). The check is done before converting to int, so
//far away coordinates can't overflow.
func axisCell(v, origin, step float64, n int) (int, bool) {
	f := math.Floor((v - origin) / step)
	if !(f >= 0 && f < float64(n)) {
		return -1, false
	}
	return int(f), true
}
