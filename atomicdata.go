/*
 * atomicdata.go, part of goClash.
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

import "strings"

//Halide element codes.
var halides = map[string]bool{
	" F": true,
	"CL": true,
	"BR": true,
	" I": true,
}

//A map between the 2-character element codes and the symbols
//as usually written. Only common "bio-elements" are present.
var codeSymbol = map[string]string{
	" H": "H",
	" C": "C",
	" N": "N",
	" O": "O",
	" P": "P",
	" S": "S",
	" F": "F",
	"CL": "Cl",
	"BR": "Br",
	" I": "I",
	"SE": "Se",
	" K": "K",
	"CA": "Ca",
	"MG": "Mg",
	"NA": "Na",
	"CU": "Cu",
	"ZN": "Zn",
	"CO": "Co",
	"FE": "Fe",
	"MN": "Mn",
}

// Symbol returns the element symbol for the atom ("Cl" for "CL"), or the
// trimmed element code if the element is not a common one.
func (a Atom) Symbol() string {
	if s, ok := codeSymbol[a.Element]; ok {
		return s
	}
	return strings.TrimSpace(a.Element)
}
