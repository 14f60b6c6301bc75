/*
 * results.go, part of goClash.
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

//Package results writes and reads the tab-separated results file shared by
//all the structures scored in a batch.
//
//Each line has the fields
//
//	comment  N  V  V/N  C  C/N  H  H/N  W  W/N
//
//where N is the number of ligand atoms, V the intersection volume, C the
//contacts, H the hydrogen bonds and W the van der Waals contacts. Counts that
//were not computed are written as -1.
package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"

	"github.com/rmera/goclash/clash"
)

const nfields = 10

// ErrFormat is returned, wrapped, for lines in a results file that can't be parsed.
var ErrFormat = errors.New("goClash/results: malformed line")

// Row is one line of a results file.
type Row struct {
	Comment      string
	LigandAtoms  int
	Intersection float64
	Contacts     int
	HBonds       int
	VdW          int
}

// FromResult builds the Row for a result.
func FromResult(comment string, r *clash.Result) Row {
	return Row{
		Comment:      comment,
		LigandAtoms:  r.LigandAtoms,
		Intersection: r.Intersection,
		Contacts:     r.Contacts,
		HBonds:       r.HBonds,
		VdW:          r.VdW,
	}
}

// Computed returns true if the contact pass was run for the row.
func (r Row) Computed() bool {
	return r.Contacts != clash.NotComputed
}

// PerAtom returns v divided by the number of ligand atoms in the row.
func (r Row) PerAtom(v float64) float64 {
	return v / float64(r.LigandAtoms)
}

// Format returns the row as a line of the results file, including the final newline.
// Tabs and newlines in the comment are replaced by spaces.
func (r Row) Format() string {
	comment := strings.Map(func(c rune) rune {
		if c == '\t' || c == '\n' || c == '\r' {
			return ' '
		}
		return c
	}, strings.TrimRight(r.Comment, "\r\n"))
	return fmt.Sprintf("%s\t%d\t%.3f\t%.3f\t%d\t%.3f\t%d\t%.3f\t%d\t%.3f\n",
		comment, r.LigandAtoms,
		r.Intersection, r.PerAtom(r.Intersection),
		r.Contacts, r.PerAtom(float64(r.Contacts)),
		r.HBonds, r.PerAtom(float64(r.HBonds)),
		r.VdW, r.PerAtom(float64(r.VdW)))
}

// Writer appends rows to a results file that other processes may be
// appending to at the same time. Writes are serialized with a lock on
// Path+".lock".
type Writer struct {
	Path string
	//Only append results with some intersection or some contact.
	SkipEmpty bool
}

// Append writes the row for r to the file, creating it if needed. It returns
// whether a line was written.
func (w *Writer) Append(comment string, r *clash.Result) (bool, error) {
	if w.SkipEmpty && !(r.Intersection > 0 || r.Contacts > 0) {
		return false, nil
	}
	if r.LigandAtoms <= 0 {
		return false, errors.Newf("results: refusing to write a result with %d ligand atoms", r.LigandAtoms)
	}
	lock := flock.New(w.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return false, errors.Wrapf(err, "results: locking %s", w.Path)
	}
	defer lock.Unlock()
	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, errors.Wrap(err, "results: opening file")
	}
	if _, err := io.WriteString(f, FromResult(comment, r).Format()); err != nil {
		f.Close()
		return false, errors.Wrapf(err, "results: writing to %s", w.Path)
	}
	return true, errors.Wrap(f.Close(), "results: closing file")
}

// ReadRows reads all the rows in r. Empty lines are skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	var rows []Row
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "results.ReadRows")
	}
	return rows, nil
}

// ReadFile reads all the rows in the named results file.
func ReadFile(name string) ([]Row, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "results.ReadFile")
	}
	defer f.Close()
	return ReadRows(f)
}

//parseRow reads the fields of a line. The ratios are not stored,
//as they can be computed from the rest.
func parseRow(line string) (Row, error) {
	var row Row
	fields := strings.Split(line, "\t")
	if len(fields) != nfields {
		return row, errors.Wrapf(ErrFormat, "%d fields instead of %d", len(fields), nfields)
	}
	var errs [5]error
	row.Comment = fields[0]
	row.LigandAtoms, errs[0] = strconv.Atoi(fields[1])
	row.Intersection, errs[1] = strconv.ParseFloat(fields[2], 64)
	row.Contacts, errs[2] = strconv.Atoi(fields[4])
	row.HBonds, errs[3] = strconv.Atoi(fields[6])
	row.VdW, errs[4] = strconv.Atoi(fields[8])
	for _, err := range errs {
		if err != nil {
			return row, errors.Wrapf(ErrFormat, "%v", err)
		}
	}
	return row, nil
}
