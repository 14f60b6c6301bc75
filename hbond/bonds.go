/*
 * bonds.go, part of goClash.
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

package hbond

import (
	"math"
	"sort"

	chem "github.com/rmera/goclash"
)

//Reference bond lengths, in A.
const (
	UpperLimit = 1.8 //any 2 ligand atoms closer than this are considered bonded.

	cO1       = 1.216 //C=O
	cO2       = 1.413 //C-OH
	coCarb    = 1.250 //carboxylate C-O
	n2O2      = 1.396 //N-OH
	no3Minus  = 1.239 //nitrate/nitro N-O
	cSp3N3    = 1.482 //C(sp3)-N(sp3)
	cArSp3N42 = 1.474 //C(ar)-N, C(sp3)-N+
)

// MaxRecordedBonds is the number of bonds kept for each heteroatom.
const MaxRecordedBonds = 3

//Elements for which the classifier trusts the reference bond lengths.
//A bond to anything else means the atom is left unclassified.
var typicalNeighbours = map[string]bool{
	" C": true,
	" N": true,
	" O": true,
	" P": true,
	" F": true,
	"CL": true,
	" I": true,
	"BR": true,
}

type bond struct {
	element string
	dist    float64
}

//neighbourhood holds what the classifier knows about the atoms bonded to
//one ligand atom. Bonds are inferred only from distances.
type neighbourhood struct {
	atom     chem.Atom
	bonds    []bond //the MaxRecordedBonds closest, shortest first
	found    int    //all the atoms within UpperLimit, recorded or not
	hydrogen bool   //some recorded bond is to a hydrogen
	strange  bool   //some recorded bond is to an element not in typicalNeighbours
}

//neighbours collects the bonds of the atom at position i in ligand. If more than
//MaxRecordedBonds atoms are within UpperLimit, only the closest are recorded,
//which makes the result independent of the order of ligand.
func neighbours(ligand []chem.Atom, i int) *neighbourhood {
	n := &neighbourhood{atom: ligand[i]}
	var all []bond
	for j, other := range ligand {
		if j == i {
			continue
		}
		d := chem.Distance(ligand[i], other)
		if d < UpperLimit {
			all = append(all, bond{element: other.Element, dist: d})
		}
	}
	sort.Slice(all, func(a, b int) bool {
		if all[a].dist != all[b].dist {
			return all[a].dist < all[b].dist
		}
		return all[a].element < all[b].element
	})
	n.found = len(all)
	if len(all) > MaxRecordedBonds {
		all = all[:MaxRecordedBonds]
	}
	n.bonds = all
	for _, b := range n.bonds {
		if b.element == " H" {
			n.hydrogen = true
		}
		if !typicalNeighbours[b.element] {
			n.strange = true
		}
	}
	return n
}

//single returns the element and length of the only recorded bond, and
//false if there is not exactly one.
func (n *neighbourhood) single() (string, float64, bool) {
	if len(n.bonds) != 1 {
		return "", 0, false
	}
	return n.bonds[0].element, n.bonds[0].dist, true
}

//closer returns true if d is closer to a than to b.
func closer(d, a, b float64) bool {
	return math.Abs(a-d) < math.Abs(d-b)
}
