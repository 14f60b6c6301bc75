/*
 * hbond_test.go, part of goClash.
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/goclash"
)

func at(name, element string, x, y, z float64) chem.Atom {
	return chem.NewAtom(name, "LIG", element, x, y, z)
}

//classifyFirst classifies ligand and returns the type of its first atom.
func classifyFirst(Te *testing.T, ligand ...chem.Atom) chem.AtomType {
	types, _, err := ClassifyLigandAtoms(ligand)
	require.NoError(Te, err)
	return types[0]
}

func TestOxygenCarbonLengths(Te *testing.T) {
	assert.Equal(Te, chem.Donor, classifyFirst(Te, at("O1", "O", 0, 0, 0), at("C1", "C", cO2, 0, 0)))
	assert.Equal(Te, chem.Acceptor, classifyFirst(Te, at("O1", "O", 0, 0, 0), at("C1", "C", coCarb, 0, 0)))
	//carbonyl-like, shorter than both references
	assert.Equal(Te, chem.Acceptor, classifyFirst(Te, at("O1", "O", 0, 0, 0), at("C1", "C", 0, cO1, 0)))
}

func TestHeteroRules(Te *testing.T) {
	cases := []struct {
		name   string
		ligand []chem.Atom
		want   chem.AtomType
	}{
		{"O-O", []chem.Atom{at("O1", "O", 0, 0, 0), at("O2", "O", 1.45, 0, 0)}, chem.None},
		{"O-N hydroxylamine", []chem.Atom{at("O1", "O", 0, 0, 0), at("N1", "N", n2O2, 0, 0)}, chem.Donor},
		{"O-N nitro", []chem.Atom{at("O1", "O", 0, 0, 0), at("N1", "N", no3Minus, 0, 0)}, chem.Acceptor},
		{"O-P", []chem.Atom{at("O1", "O", 0, 0, 0), at("P1", "P", 1.52, 0, 0)}, chem.Acceptor},
		{"O bonded to S", []chem.Atom{at("O1", "O", 0, 0, 0), at("S1", "S", 1.45, 0, 0)}, chem.None},
		{"ether O", []chem.Atom{at("O1", "O", 0, 0, 0), at("C1", "C", 1.43, 0, 0), at("C2", "C", -1.43, 0, 0)}, chem.None},
		{"O-H with explicit hydrogen", []chem.Atom{at("O1", "O", 0, 0, 0), at("C1", "C", 1.43, 0, 0), at("H1", "H", 0, 0.96, 0)}, chem.None},
		{"N with 2 bonds", []chem.Atom{at("N1", "N", 0, 0, 0), at("C1", "C", 1.34, 0, 0), at("C2", "C", -1.34, 0, 0)}, chem.Both},
		{"tertiary N", []chem.Atom{at("N1", "N", 0, 0, 0), at("C1", "C", 1.47, 0, 0), at("C2", "C", -1.47, 0, 0), at("C3", "C", 0, 1.47, 0)}, chem.None},
		{"amine N", []chem.Atom{at("N1", "N", 0, 0, 0), at("C1", "C", cSp3N3, 0, 0)}, chem.Donor},
		{"aromatic amine N", []chem.Atom{at("N1", "N", 0, 0, 0), at("C1", "C", 1.40, 0, 0)}, chem.Both},
		{"N-O", []chem.Atom{at("N1", "N", 0, 0, 0), at("O1", "O", 1.40, 0, 0)}, chem.None},
		{"N-N", []chem.Atom{at("N1", "N", 0, 0, 0), at("N2", "N", 1.40, 0, 0)}, chem.None},
		{"halide", []chem.Atom{at("CL1", "CL", 0, 0, 0), at("C1", "C", 1.75, 0, 0)}, chem.Acceptor},
		{"carbon", []chem.Atom{at("C1", "C", 0, 0, 0), at("O1", "O", 1.43, 0, 0)}, chem.None},
		{"sulfur", []chem.Atom{at("S1", "S", 0, 0, 0), at("C1", "C", 1.8, 0, 0)}, chem.None},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			assert.Equal(Te, c.want, classifyFirst(Te, c.ligand...))
		})
	}
}

func TestClassifierWarnings(Te *testing.T) {
	ligand := []chem.Atom{at("N1", "N", 0, 0, 0), at("C1", "C", 3, 0, 0)}
	types, warnings, err := ClassifyLigandAtoms(ligand)
	require.NoError(Te, err)
	assert.Equal(Te, chem.None, types[0])
	require.Len(Te, warnings, 1)
	assert.Equal(Te, chem.IsolatedAtom, warnings[0].Kind)
	assert.Equal(Te, ligand[0], warnings[0].Atom)

	crowded := []chem.Atom{
		at("N1", "N", 0, 0, 0),
		at("C1", "C", 1.50, 0, 0),
		at("C2", "C", -1.51, 0, 0),
		at("C3", "C", 0, 1.52, 0),
		at("C4", "C", 0, -1.53, 0),
	}
	types, warnings, err = ClassifyLigandAtoms(crowded)
	require.NoError(Te, err)
	require.Len(Te, warnings, 1)
	assert.Equal(Te, chem.TooManyBonds, warnings[0].Kind)
	assert.Equal(Te, 4, warnings[0].Neighbors)
	assert.Equal(Te, chem.None, types[0], "3 recorded bonds, no hydrogen")

	_, _, err = ClassifyLigandAtoms(nil)
	assert.ErrorIs(Te, err, chem.ErrEmptyInput)
}

//A small ligand, roughly a hydroxy amide with a halide, just to have many
//atoms of different kinds close together.
func testLigand() []chem.Atom {
	return []chem.Atom{
		at("C1", "C", 0.000, 0.000, 0.000),
		at("O1", "O", 1.229, 0.000, 0.000),
		at("N1", "N", -0.700, 1.150, 0.000),
		at("C2", "C", -0.750, -1.300, 0.000),
		at("O2", "O", -2.160, -1.300, 0.100),
		at("C3", "C", -2.150, 1.200, 0.050),
		at("CL1", "CL", -2.900, 2.800, 0.000),
		at("N2", "N", -3.500, -0.300, 2.000),
	}
}

func TestClassifierOrderIndependence(Te *testing.T) {
	ligand := testLigand()
	ref, refWarn, err := ClassifyLigandAtoms(ligand)
	require.NoError(Te, err)
	byName := make(map[string]chem.AtomType)
	for i, a := range ligand {
		byName[a.Name] = ref[i]
	}
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 20; k++ {
		perm := make([]chem.Atom, len(ligand))
		copy(perm, ligand)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		types, warnings, err := ClassifyLigandAtoms(perm)
		require.NoError(Te, err)
		assert.Len(Te, warnings, len(refWarn))
		for i, a := range perm {
			assert.Equal(Te, byName[a.Name], types[i], "atom %s", a.Name)
		}
	}
	//and a few sanity checks on the reference itself
	assert.Equal(Te, chem.Acceptor, byName[" O1 "])
	assert.Equal(Te, chem.Donor, byName[" O2 "])
	assert.Equal(Te, chem.Acceptor, byName[" CL1"])
	assert.Equal(Te, chem.None, byName[" N2 "])
}

func TestProteinRole(Te *testing.T) {
	cases := []struct {
		name, residue string
		want          chem.AtomType
	}{
		{"N", "GLY", chem.Donor},
		{" N  ", "ALA", chem.Donor},
		{"NH1", "ARG", chem.Donor},
		{"NE", "ARG", chem.Donor},
		{"ND2", "ASN", chem.Donor},
		{"NE2", "GLN", chem.Donor},
		{"NE2", "HIS", chem.None},
		{"ND1", "HIS", chem.Donor},
		{"NE1", "TRP", chem.None},
		{"NZ", "LYS", chem.Donor},
		{"NZ", "ALA", chem.None},
		{"O", "LEU", chem.Acceptor},
		{"OD1", "ASN", chem.Acceptor},
		{"OE1", "GLN", chem.Acceptor},
		{"OG", "SER", chem.Donor},
		{"OG1", "THR", chem.Donor},
		{"OH", "TYR", chem.Donor},
		{"OXT", "VAL", chem.Acceptor},
		{"OD2", "ASP", chem.Acceptor},
		{"OE2", "GLU", chem.Acceptor},
		{"OD1", "LEU", chem.None},
		{"CA", "ALA", chem.None},
		{"SG", "CYS", chem.None},
		{"CB", "SER", chem.None},
	}
	for _, c := range cases {
		assert.Equal(Te, c.want, ProteinRole(c.name, c.residue), "%s %s", c.name, c.residue)
	}
}

func TestComplementary(Te *testing.T) {
	all := []chem.AtomType{chem.None, chem.Donor, chem.Acceptor, chem.Both}
	want := map[[2]chem.AtomType]bool{
		{chem.Donor, chem.Acceptor}: true,
		{chem.Acceptor, chem.Donor}: true,
		{chem.Both, chem.Donor}:     true,
		{chem.Both, chem.Acceptor}:  true,
		{chem.Both, chem.Both}:      true,
		{chem.Donor, chem.Both}:     true,
		{chem.Acceptor, chem.Both}:  true,
	}
	for _, a := range all {
		for _, b := range all {
			assert.Equal(Te, want[[2]chem.AtomType{a, b}], Complementary(a, b), "%s %s", a, b)
		}
	}
	assert.True(Te, IsHydrogenBond(chem.Donor, "O", "GLY"))
	assert.False(Te, IsHydrogenBond(chem.Donor, "N", "GLY"))
	assert.False(Te, IsHydrogenBond(chem.None, "O", "GLY"))
}
