/*
 * pdb.go, part of goClash.
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

//Package pdb reads the protein and ligand atoms of a structure from a PDB file.
package pdb

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/goclash"
)

// DefaultLigandChain is the chain identifier of the ligand if no other is given.
const DefaultLigandChain = 'B'

// ErrFormat is returned, wrapped, for ATOM and HETATM records that can't be parsed.
var ErrFormat = errors.New("goClash/pdb: malformed record")

// Options controls how atoms are split into protein and ligand.
type Options struct {
	LigandChain byte //0 means DefaultLigandChain
}

// Structure holds the atoms of one structure, split by role.
type Structure struct {
	Protein []chem.Atom
	Ligand  []chem.Atom
}

//resPos identifies a residue position, for the alternate location filter.
type resPos struct {
	chain byte
	resid int
	icode byte
}

// ReadFile reads a PDB file, which can be gzip or zstd compressed.
func ReadFile(name string, opts Options) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "pdb.ReadFile")
	}
	defer f.Close()
	r, err := Decompress(f)
	if err != nil {
		return nil, errors.Wrapf(err, "pdb.ReadFile: %s", name)
	}
	defer r.Close()
	s, err := Read(r, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "pdb.ReadFile: %s", name)
	}
	return s, nil
}

// Read reads the atoms of the first model in r. Atoms in the ligand chain,
// from ATOM or HETATM records, go to the ligand. ATOM records of any
// other chain go to the protein, and other HETATM records (waters, ions) are
// ignored. Only the first alternate location seen for each residue position is kept.
func Read(r io.Reader, opts Options) (*Structure, error) {
	ligChain := opts.LigandChain
	if ligChain == 0 {
		ligChain = DefaultLigandChain
	}
	s := new(Structure)
	altlocs := make(map[resPos]byte)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		isAtom := strings.HasPrefix(line, "ATOM")
		if !isAtom && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		at, err := parseAtomLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		if at.AltLoc != ' ' {
			pos := resPos{at.Chain, at.ResID, icode(line)}
			first, seen := altlocs[pos]
			if !seen {
				altlocs[pos] = at.AltLoc
			} else if first != at.AltLoc {
				continue
			}
		}
		switch {
		case at.Chain == ligChain:
			s.Ligand = append(s.Ligand, at)
		case isAtom:
			s.Protein = append(s.Protein, at)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "pdb.Read")
	}
	return s, nil
}

//parseAtomLine parses an ATOM or HETATM record. Coordinates are required,
//the serial and residue numbers are read if possible.
func parseAtomLine(line string) (chem.Atom, error) {
	var at chem.Atom
	if len(line) < 54 {
		return at, errors.Wrapf(ErrFormat, "record too short (%d characters)", len(line))
	}
	at.Het = strings.HasPrefix(line, "HETATM")
	at.Serial, _ = strconv.Atoi(strings.TrimSpace(line[6:11]))
	at.Name = line[12:16]
	at.AltLoc = line[16]
	at.Residue = strings.TrimSpace(line[17:20])
	at.Chain = line[21]
	at.ResID, _ = strconv.Atoi(strings.TrimSpace(line[22:26]))
	var err [3]error
	var c [3]float64
	c[0], err[0] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	c[1], err[1] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	c[2], err[2] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range err {
		if e != nil {
			return at, errors.Wrapf(ErrFormat, "bad coordinates: %v", e)
		}
	}
	at.Pos = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	at.Element = elementCode(line)
	return at, nil
}

//elementCode returns the element from columns 77-78 if they are there, or
//guesses it from the first 2 characters of the atom name otherwise.
func elementCode(line string) string {
	if len(line) >= 78 && strings.TrimSpace(line[76:78]) != "" {
		return chem.NormalizeElement(line[76:78])
	}
	name := line[12:14]
	if name[0] == ' ' || (name[0] >= '0' && name[0] <= '9') {
		return chem.NormalizeElement(name[1:])
	}
	return chem.NormalizeElement(name)
}

func icode(line string) byte {
	if len(line) > 26 {
		return line[26]
	}
	return ' '
}
