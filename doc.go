/*
 * doc.go, part of goClash.
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

/*Package chem is the main package of goClash. It provides the atom records and the
geometric helpers (distances, bounding boxes) shared by the rest of the library.

goClash scores a single protein-ligand structure by:

    Estimating the steric overlap ("intersection") between ligand and protein
	on a voxel grid over the ligand (package clash).

    Inferring the hydrogen-bond donor/acceptor character of each ligand atom
	from interatomic distances only, as no bond table is available (package hbond).

    Counting protein-ligand contacts, hydrogen bonds and carbon-carbon (van der Waals)
	contacts within a distance cutoff (package clash).

Structures are read from PDB files, possibly compressed (package pdb), results are
appended to a tab-separated file shared by a whole batch (package results) and can be
summarized and plotted (package chemplot).

Atoms are values. Element codes are kept in the 2-character, right-justified
form of columns 77-78 of a PDB file (" C", "CL"), and atom names in the
4-character form of columns 13-16 (" CA ").
*/
package chem
