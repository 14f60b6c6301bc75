/*
 * atom.go, part of goClash.
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// AtomType is the hydrogen-bonding role of an atom.
type AtomType int

const (
	None AtomType = iota
	Donor
	Acceptor
	Both
)

func (t AtomType) String() string {
	switch t {
	case None:
		return "NONE"
	case Donor:
		return "DONOR"
	case Acceptor:
		return "ACCEPTOR"
	case Both:
		return "BOTH"
	}
	return fmt.Sprintf("AtomType(%d)", int(t))
}

// Atom is one atom read from a structure file. Atoms are values and
// nothing in this package modifies them.
type Atom struct {
	Serial  int
	Name    string //4 characters, as in columns 13-16 of a PDB file, i.e. " CA ".
	Residue string //3-letter residue name.
	ResID   int
	Chain   byte
	AltLoc  byte
	Het     bool
	Element string //2 characters, right-justified, upper case, i.e. " C" or "CL".
	Pos     r3.Vec
}

// NewAtom returns an atom with name, residue and element normalized
// to the fixed-width forms used by the rest of the package.
func NewAtom(name, residue, element string, x, y, z float64) Atom {
	return Atom{
		Name:    PadAtomName(name),
		Residue: strings.ToUpper(strings.TrimSpace(residue)),
		Element: NormalizeElement(element),
		Pos:     r3.Vec{X: x, Y: y, Z: z},
	}
}

// IsCarbon returns true if the atom's element code is carbon.
func (a Atom) IsCarbon() bool { return a.Element == " C" }

// IsHydrogen returns true if the atom's element code is hydrogen.
func (a Atom) IsHydrogen() bool { return a.Element == " H" }

// IsHalide returns true for fluorine, chlorine, bromine and iodine.
func (a Atom) IsHalide() bool { return halides[a.Element] }

func (a Atom) String() string {
	return fmt.Sprintf("%d %s %s%d%c", a.Serial, strings.TrimSpace(a.Name), a.Residue, a.ResID, a.Chain)
}

// NormalizeElement returns the 2-character, right-justified, upper case
// form of an element symbol ("c" -> " C", "Cl" -> "CL"). Longer strings
// are cut to their first two non-blank characters.
func NormalizeElement(e string) string {
	e = strings.ToUpper(strings.TrimSpace(e))
	switch len(e) {
	case 0:
		return "  "
	case 1:
		return " " + e
	}
	return e[:2]
}

// PadAtomName returns the 4-character PDB form of an atom name. Names
// already 4 characters long are kept, shorter ones start at the second
// column, following the PDB convention for 1-letter elements.
func PadAtomName(name string) string {
	if len(name) == 4 {
		return name
	}
	name = strings.TrimSpace(name)
	if len(name) >= 4 {
		return name[:4]
	}
	return fmt.Sprintf(" %-3s", name)
}
