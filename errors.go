/*
 * errors.go, part of goClash.
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

import "github.com/cockroachdb/errors"

//Errors returned by the package. They are always wrapped with some
//context, so compare them with errors.Is.
var (
	//ErrEmptyInput is returned when an operation that requires ligand
	//atoms receives none.
	ErrEmptyInput = errors.New("goClash: empty ligand atom set")

	//ErrConfiguration is returned for non-positive step or cutoff values,
	//or when the voxel grid would exceed the configured cell ceiling.
	ErrConfiguration = errors.New("goClash: invalid configuration")

	//ErrGridIndexOutOfRange means a coordinate mapped outside the voxel grid.
	//For ligand atoms, this signals a box/step inconsistency.
	ErrGridIndexOutOfRange = errors.New("goClash: grid index out of range")
)

// Warning is a non-fatal anomaly found during the analysis of one structure.
type Warning struct {
	Kind      WarningKind
	Atom      Atom
	Neighbors int //bonds found within the cutoff, including the ones not recorded
}

// WarningKind tells what kind of anomaly a Warning reports.
type WarningKind int

const (
	//IsolatedAtom is a N or O ligand atom with no other ligand atom
	//within bonding distance.
	IsolatedAtom WarningKind = iota
	//TooManyBonds is a N or O ligand atom with more than 3 atoms within bonding distance.
	TooManyBonds
)

func (k WarningKind) String() string {
	switch k {
	case IsolatedAtom:
		return "isolated atom"
	case TooManyBonds:
		return "too many bonds"
	}
	return "unknown warning"
}
