/*
 * contacts.go, part of goClash.
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

	chem "github.com/rmera/goclash"
	"github.com/rmera/goclash/hbond"
)

// Contacts holds the counts from the contact pass.
type Contacts struct {
	Contacts int //protein-ligand pairs closer than the cutoff
	HBonds   int
	VdW      int //carbon-carbon contacts
	//the protein and ligand indexes of each hydrogen bond, in the
	//order they were found.
	HBondPairs [][2]int
}

// AccumulateContacts counts the protein-ligand atom pairs closer than cutoff.
// Only protein atoms strictly inside box (the ligand's bounding box) expanded
// by cutoff on every side are considered.
// A contact between 2 carbons is a van der Waals contact. Any other contact is
// a hydrogen bond candidate, and is checked with hbond.IsHydrogenBond, using
// ligandTypes, which must be parallel to ligand.
// Each atom takes part in at most one hydrogen bond: the first one found, scanning
// protein atoms in the outer loop and ligand atoms in the inner one. This can
// undercount atoms able to make more than one hydrogen bond.
func AccumulateContacts(protein, ligand []chem.Atom, ligandTypes []chem.AtomType, box chem.BoundingBox, cutoff float64) (Contacts, error) {
	var c Contacts
	if !(cutoff > 0) {
		return c, errors.Wrapf(chem.ErrConfiguration, "contact cutoff must be positive, got %g", cutoff)
	}
	if len(ligandTypes) != len(ligand) {
		return c, errors.Wrapf(chem.ErrConfiguration, "%d atom types given for %d ligand atoms", len(ligandTypes), len(ligand))
	}
	near := box.Expand(cutoff)
	cutoff2 := cutoff * cutoff
	ligBonded := make([]bool, len(ligand))
	for i, p := range protein {
		if !near.StrictlyContains(p.Pos) {
			continue
		}
		protBonded := false
		for j, l := range ligand {
			if chem.Distance2(p, l) >= cutoff2 {
				continue
			}
			c.Contacts++
			if p.IsCarbon() && l.IsCarbon() {
				c.VdW++
				continue
			}
			if protBonded || ligBonded[j] {
				continue
			}
			if hbond.IsHydrogenBond(ligandTypes[j], p.Name, p.Residue) {
				c.HBonds++
				c.HBondPairs = append(c.HBondPairs, [2]int{i, j})
				protBonded = true
				ligBonded[j] = true
			}
		}
	}
	return c, nil
}
