/*
 * geometric.go, part of goClash.
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

package chem

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Distance2 returns the squared euclidean distance between two atoms.
func Distance2(a, b Atom) float64 {
	return r3.Norm2(r3.Sub(a.Pos, b.Pos))
}

// Distance returns the euclidean distance between two atoms.
func Distance(a, b Atom) float64 {
	return math.Sqrt(Distance2(a, b))
}

// BoundingBox is an axis-aligned box given by its minimum and maximum corners.
type BoundingBox struct {
	Min r3.Vec
	Max r3.Vec
}

// ComputeBoundingBox returns the smallest box containing all the given atoms.
// It returns an error wrapping ErrEmptyInput if atoms is empty.
func ComputeBoundingBox(atoms []Atom) (BoundingBox, error) {
	if len(atoms) == 0 {
		return BoundingBox{}, errors.Wrap(ErrEmptyInput, "ComputeBoundingBox")
	}
	b := BoundingBox{Min: atoms[0].Pos, Max: atoms[0].Pos}
	for _, a := range atoms[1:] {
		p := a.Pos
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b, nil
}

// StrictlyContains returns true if p lies inside the box and on none of its faces.
func (b BoundingBox) StrictlyContains(p r3.Vec) bool {
	return p.X > b.Min.X && p.X < b.Max.X &&
		p.Y > b.Min.Y && p.Y < b.Max.Y &&
		p.Z > b.Min.Z && p.Z < b.Max.Z
}

// Contains returns true if p lies inside the box or on its faces.
func (b BoundingBox) Contains(p r3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Expand returns a copy of the box grown by d on every side.
func (b BoundingBox) Expand(d float64) BoundingBox {
	off := r3.Vec{X: d, Y: d, Z: d}
	return BoundingBox{Min: r3.Sub(b.Min, off), Max: r3.Add(b.Max, off)}
}

// Size returns the edge lengths of the box.
func (b BoundingBox) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}
