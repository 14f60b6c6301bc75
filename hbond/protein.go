/*
 * protein.go, part of goClash.
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
	"strings"

	chem "github.com/rmera/goclash"
)

type roleKey struct {
	name    string
	residue string //empty means any residue
}

//Hydrogen-bonding roles of protein N and O atoms, by PDB atom name and residue.
//Atoms not listed here are neither donors nor acceptors.
var proteinRoles = map[roleKey]chem.AtomType{
	//amide N-H
	{" N  ", ""}:    chem.Donor,
	{" NH1", "ARG"}: chem.Donor,
	{" NH2", "ARG"}: chem.Donor,
	{" ND2", "ASN"}: chem.Donor,
	{" NE2", "GLN"}: chem.Donor,
	//aromatic N, not protonated here
	{" NE1", "TRP"}: chem.None,
	{" NE2", "HIS"}: chem.None,
	//cationic N-H
	{" ND1", "HIS"}: chem.Donor,
	{" NZ ", "LYS"}: chem.Donor,
	{" NE ", "ARG"}: chem.Donor,
	//C=O
	{" O  ", ""}:    chem.Acceptor,
	{" OD1", "ASN"}: chem.Acceptor,
	{" OE1", "GLN"}: chem.Acceptor,
	//O-H
	{" OG ", "SER"}: chem.Donor,
	{" OG1", "THR"}: chem.Donor,
	{" OH ", "TYR"}: chem.Donor,
	//carboxylates
	{" OXT", ""}:    chem.Acceptor,
	{" OD1", "ASP"}: chem.Acceptor,
	{" OD2", "ASP"}: chem.Acceptor,
	{" OE1", "GLU"}: chem.Acceptor,
	{" OE2", "GLU"}: chem.Acceptor,
}

// ProteinRole returns the hydrogen-bonding role of the protein atom with the given
// PDB atom name and residue name. Carbons and sulfurs, and any atom not in the
// table of standard amino acid donors and acceptors, get None.
func ProteinRole(name, residue string) chem.AtomType {
	name = chem.PadAtomName(name)
	if name[1] == 'C' || name[1] == 'S' {
		return chem.None
	}
	residue = strings.ToUpper(strings.TrimSpace(residue))
	if t, ok := proteinRoles[roleKey{name, residue}]; ok {
		return t
	}
	return proteinRoles[roleKey{name, ""}]
}

// Complementary returns true if atoms with roles a and b can form a hydrogen
// bond: a donor with an acceptor, or Both with anything but None.
func Complementary(a, b chem.AtomType) bool {
	if a == chem.None || b == chem.None {
		return false
	}
	if a == chem.Both || b == chem.Both {
		return true
	}
	return a != b
}

// IsHydrogenBond returns true if a ligand atom of type ligandType can make a
// hydrogen bond with the protein atom called protName in a residue protResidue.
func IsHydrogenBond(ligandType chem.AtomType, protName, protResidue string) bool {
	return Complementary(ligandType, ProteinRole(protName, protResidue))
}
