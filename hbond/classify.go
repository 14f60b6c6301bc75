/*
 * classify.go, part of goClash.
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
	"github.com/cockroachdb/errors"

	chem "github.com/rmera/goclash"
)

//rule assigns a type to the atoms for which match returns true.
//Rules are tried in order and the first matching one wins.
type rule struct {
	name   string
	match  func(n *neighbourhood) bool
	assign func(n *neighbourhood) chem.AtomType
}

func fixed(t chem.AtomType) func(*neighbourhood) chem.AtomType {
	return func(*neighbourhood) chem.AtomType { return t }
}

func isN(n *neighbourhood) bool { return n.atom.Element == " N" }
func isO(n *neighbourhood) bool { return n.atom.Element == " O" }

//singleTo returns a matcher for atoms with exactly one recorded bond, to
//an atom with the element code el.
func singleTo(el string) func(*neighbourhood) bool {
	return func(n *neighbourhood) bool {
		e, _, ok := n.single()
		return ok && e == el
	}
}

func and(fs ...func(*neighbourhood) bool) func(*neighbourhood) bool {
	return func(n *neighbourhood) bool {
		for _, f := range fs {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

//byLength returns a if the single bond is closer to ref1 than to ref2,
//and b otherwise.
func byLength(ref1, ref2 float64, a, b chem.AtomType) func(*neighbourhood) chem.AtomType {
	return func(n *neighbourhood) chem.AtomType {
		_, d, _ := n.single()
		if closer(d, ref1, ref2) {
			return a
		}
		return b
	}
}

//The order and the thresholds matter, do not reorder.
var heteroRules = []rule{
	{
		name: "saturated",
		match: func(n *neighbourhood) bool {
			return !n.hydrogen && ((isN(n) && len(n.bonds) == 3) || (isO(n) && len(n.bonds) == 2))
		},
		assign: fixed(chem.None),
	},
	{
		name:   "isolated",
		match:  func(n *neighbourhood) bool { return len(n.bonds) == 0 },
		assign: fixed(chem.None),
	},
	{
		name:   "atypical neighbour",
		match:  func(n *neighbourhood) bool { return n.strange },
		assign: fixed(chem.None),
	},
	{
		name:   "O-C",
		match:  and(isO, singleTo(" C")),
		assign: byLength(cO2, coCarb, chem.Donor, chem.Acceptor),
	},
	{
		name:   "O-O",
		match:  and(isO, singleTo(" O")),
		assign: fixed(chem.None),
	},
	{
		name:   "O-N",
		match:  and(isO, singleTo(" N")),
		assign: byLength(n2O2, no3Minus, chem.Donor, chem.Acceptor),
	},
	{
		name:   "O-P",
		match:  and(isO, singleTo(" P")),
		assign: fixed(chem.Acceptor),
	},
	{
		name:   "N, 2 bonds",
		match:  func(n *neighbourhood) bool { return isN(n) && len(n.bonds) == 2 },
		assign: fixed(chem.Both),
	},
	{
		name:   "N-C",
		match:  and(isN, singleTo(" C")),
		assign: byLength(cSp3N3, cArSp3N42, chem.Donor, chem.Both),
	},
}

// ClassifyLigandAtoms infers the hydrogen-bonding role of each ligand atom
// from the distances to the other ligand atoms and their elements. The returned
// slice is parallel to ligand. Carbons are never donors or acceptors, halides
// are acceptors, and nitrogens and oxygens are classified by the number of
// atoms bonded to them and the length of those bonds. Everything else gets None.
//
// The function also returns a Warning for each N or O atom with no bonded
// atoms, and for each one with more than MaxRecordedBonds. An empty ligand
// gives an error wrapping chem.ErrEmptyInput.
func ClassifyLigandAtoms(ligand []chem.Atom) ([]chem.AtomType, []chem.Warning, error) {
	if len(ligand) == 0 {
		return nil, nil, errors.Wrap(chem.ErrEmptyInput, "ClassifyLigandAtoms")
	}
	types := make([]chem.AtomType, len(ligand))
	var warnings []chem.Warning
	for i, at := range ligand {
		switch {
		case at.IsCarbon():
			types[i] = chem.None
			continue
		case at.IsHalide():
			types[i] = chem.Acceptor
			continue
		case at.Element != " N" && at.Element != " O":
			types[i] = chem.None
			continue
		}
		n := neighbours(ligand, i)
		if n.found == 0 {
			warnings = append(warnings, chem.Warning{Kind: chem.IsolatedAtom, Atom: at})
		}
		if n.found > MaxRecordedBonds {
			warnings = append(warnings, chem.Warning{Kind: chem.TooManyBonds, Atom: at, Neighbors: n.found})
		}
		types[i] = classify(n)
	}
	return types, warnings, nil
}

func classify(n *neighbourhood) chem.AtomType {
	for _, r := range heteroRules {
		if r.match(n) {
			return r.assign(n)
		}
	}
	return chem.None
}
