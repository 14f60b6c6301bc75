/*
 * clash.go, part of goClash.
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

//Package clash estimates the steric overlap between a protein and a ligand
//and counts the close contacts between them.
//
//The overlap is estimated by marking, on a regular grid over the ligand's bounding
//box, the cells that contain ligand atoms, and then counting the protein atoms that
//fall in a marked cell. Each such atom contributes the volume of one cell. This
//costs O(1) per protein atom, and is only a coarse proxy for the actual overlap.
//The contact pass is a full pairwise scan, restricted to the protein atoms
//near the ligand.
package clash

import (
	"github.com/cockroachdb/errors"

	chem "github.com/rmera/goclash"
)

// EstimateIntersection counts the protein atoms that lie strictly inside the
// box of grid and in a cell occupied by a ligand atom. It returns that count
// and the corresponding volume, count*step^3.
func EstimateIntersection(protein []chem.Atom, grid *VoxelGrid) (int, float64, error) {
	box := grid.Box()
	count := 0
	for _, a := range protein {
		if !box.StrictlyContains(a.Pos) {
			continue
		}
		occ, err := grid.QueryCell(a.Pos)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "EstimateIntersection: protein atom %s", a)
		}
		if occ {
			count++
		}
	}
	s := grid.Step()
	return count, float64(count) * s * s * s, nil
}

// LowestDist returns the shortest distance between an atom in test and one in
// ref, and the indexes of those atoms. If either set is empty, the distance is
// -1 and the indexes are -1.
func LowestDist(test, ref []chem.Atom) (dist float64, indexes [2]int) {
	dist2 := -1.0
	indexes = [2]int{-1, -1}
	for i, a := range test {
		for j, b := range ref {
			d := chem.Distance2(a, b)
			if dist2 < 0 || d < dist2 {
				dist2 = d
				indexes[0] = i
				indexes[1] = j
			}
		}
	}
	if dist2 < 0 {
		return -1, indexes
	}
	return chem.Distance(test[indexes[0]], ref[indexes[1]]), indexes
}
