/*
 * pdb_test.go, part of goClash.
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

package pdb

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/goclash"
)

func pdbLine(rec string, serial int, name string, alt byte, res string, chain byte, resid int, x, y, z float64, elem string) string {
	return fmt.Sprintf("%-6s%5d %-4s%c%3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		rec, serial, name, alt, res, chain, resid, x, y, z, 1.0, 0.0, elem)
}

func testPDB() string {
	lines := []string{
		"HEADER    TEST STRUCTURE",
		"MODEL        1",
		pdbLine("ATOM", 1, " N  ", ' ', "ALA", 'A', 1, 0, 0, 0, " N"),
		pdbLine("ATOM", 2, " CA ", ' ', "ALA", 'A', 1, 1.458, 0, 0, " C"),
		pdbLine("ATOM", 3, " C  ", ' ', "ALA", 'A', 1, 2.009, 1.420, 0, " C"),
		pdbLine("ATOM", 4, " O  ", ' ', "ALA", 'A', 1, 1.251, 2.390, 0, " O"),
		pdbLine("ATOM", 5, " CB ", 'A', "SER", 'A', 2, 3.0, 1.0, 1.0, " C"),
		pdbLine("ATOM", 6, " CB ", 'B', "SER", 'A', 2, 3.1, 1.1, 1.1, " C"),
		pdbLine("ATOM", 7, " OG ", 'A', "SER", 'A', 2, 4.0, 1.0, 1.0, " O"),
		pdbLine("ATOM", 8, " OG ", 'B', "SER", 'A', 2, 4.2, 1.2, 1.0, " O"),
		//alternate locations are tracked per residue, B comes first here
		pdbLine("ATOM", 9, " CB ", 'B', "LEU", 'A', 3, 5.0, 1.0, 1.0, " C"),
		pdbLine("ATOM", 10, " CB ", 'A', "LEU", 'A', 3, 5.1, 1.0, 1.0, " C"),
		pdbLine("HETATM", 11, " O  ", ' ', "HOH", 'A', 101, 9, 9, 9, " O"),
		"TER      12      LEU A   3",
		pdbLine("HETATM", 13, " C1 ", ' ', "LIG", 'B', 1, 10, 10, 10, " C"),
		pdbLine("HETATM", 14, " O1 ", ' ', "LIG", 'B', 1, 11.4, 10, 10, " O"),
		pdbLine("HETATM", 15, "CL1 ", ' ', "LIG", 'B', 1, 8.3, 10, 10, "CL"),
		//no element columns
		pdbLine("HETATM", 16, " N1 ", ' ', "LIG", 'B', 1, 10, 11.4, 10, "")[:66],
		pdbLine("HETATM", 17, "BR1 ", ' ', "LIG", 'B', 1, 10, 8, 10, "")[:66],
		"ENDMDL",
		"MODEL        2",
		pdbLine("ATOM", 1, " N  ", ' ', "ALA", 'A', 1, 0, 0, 0, " N"),
		"ENDMDL",
		"END",
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestRead(Te *testing.T) {
	s, err := Read(strings.NewReader(testPDB()), Options{})
	require.NoError(Te, err)
	require.Len(Te, s.Protein, 7)
	require.Len(Te, s.Ligand, 5)

	ca := s.Protein[1]
	assert.Equal(Te, 2, ca.Serial)
	assert.Equal(Te, " CA ", ca.Name)
	assert.Equal(Te, "ALA", ca.Residue)
	assert.Equal(Te, 1, ca.ResID)
	assert.Equal(Te, byte('A'), ca.Chain)
	assert.Equal(Te, " C", ca.Element)
	assert.InDelta(Te, 1.458, ca.Pos.X, 1e-9)
	assert.False(Te, ca.Het)

	for _, a := range s.Protein[4:6] {
		assert.Equal(Te, byte('A'), a.AltLoc, "atom %s", a)
	}
	assert.Equal(Te, byte('B'), s.Protein[6].AltLoc)
	assert.InDelta(Te, 5.0, s.Protein[6].Pos.X, 1e-9)

	els := make([]string, len(s.Ligand))
	for i, a := range s.Ligand {
		els[i] = a.Element
		assert.True(Te, a.Het)
		assert.Equal(Te, byte('B'), a.Chain)
	}
	assert.Equal(Te, []string{" C", " O", "CL", " N", "BR"}, els)
}

func TestReadLigandChain(Te *testing.T) {
	s, err := Read(strings.NewReader(testPDB()), Options{LigandChain: 'A'})
	require.NoError(Te, err)
	//the water is part of chain A, so it goes with the ligand.
	assert.Len(Te, s.Ligand, 8)
	assert.Empty(Te, s.Protein, "chain B has only HETATM records")
}

func TestReadErrors(Te *testing.T) {
	bad := pdbLine("ATOM", 1, " N  ", ' ', "ALA", 'A', 1, 0, 0, 0, " N")
	bad = bad[:30] + "   abc.d" + bad[38:]
	_, err := Read(strings.NewReader(bad+"\n"), Options{})
	assert.ErrorIs(Te, err, ErrFormat)

	_, err = Read(strings.NewReader("ATOM      1  N   ALA A   1       0.000\n"), Options{})
	assert.ErrorIs(Te, err, ErrFormat)

	s, err := Read(strings.NewReader(""), Options{})
	require.NoError(Te, err)
	assert.Empty(Te, s.Ligand)
}

func TestDecompress(Te *testing.T) {
	text := testPDB()
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := io.WriteString(gw, text)
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	require.NoError(Te, err)
	_, err = io.WriteString(zw, text)
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())

	for name, data := range map[string][]byte{"plain": []byte(text), "gzip": gz.Bytes(), "zstd": zs.Bytes()} {
		r, err := Decompress(bytes.NewReader(data))
		require.NoError(Te, err, name)
		got, err := io.ReadAll(r)
		require.NoError(Te, err, name)
		require.NoError(Te, r.Close())
		assert.Equal(Te, text, string(got), name)
	}
	//shorter than any magic number
	r, err := Decompress(strings.NewReader("A"))
	require.NoError(Te, err)
	got, err := io.ReadAll(r)
	require.NoError(Te, err)
	assert.Equal(Te, "A", string(got))
}

func TestReadFile(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "complex.pdb.gz")
	f, err := os.Create(name)
	require.NoError(Te, err)
	gw := gzip.NewWriter(f)
	_, err = io.WriteString(gw, testPDB())
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())
	require.NoError(Te, f.Close())

	s, err := ReadFile(name, Options{LigandChain: DefaultLigandChain})
	require.NoError(Te, err)
	assert.Len(Te, s.Ligand, 5)
	assert.Equal(Te, chem.NormalizeElement("Cl"), s.Ligand[2].Element)

	_, err = ReadFile(filepath.Join(dir, "missing.pdb"), Options{})
	assert.Error(Te, err)
}
