/*
 * batch.go, part of goClash.
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

//Package batch scores many structures concurrently. Each structure is read and
//analyzed on its own, so the only shared state is the results file.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rmera/goclash/clash"
	"github.com/rmera/goclash/config"
	"github.com/rmera/goclash/pdb"
	"github.com/rmera/goclash/results"
)

// Outcome is the result of scoring one structure.
type Outcome struct {
	Path    string
	Comment string
	Result  *clash.Result //nil if Err is not nil
	Written bool          //a line was appended to the results file
	Err     error
	Elapsed time.Duration
}

// Runner scores structures and appends their results.
type Runner struct {
	Config *config.Config
	Logger *zap.Logger
	//Score replaces the default read-and-analyze step. Mostly for tests.
	Score func(path string) (*clash.Result, error)
}

// Run scores the structures in paths, using at most Config.Workers goroutines,
// and appends each result to the results file as it becomes available. Outcomes
// are returned in the order of paths. A structure that fails is reported in
// its Outcome and doesn't stop the others. The returned error is only
// non-nil if ctx is done before all the structures are scored.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Outcome, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	comment, err := r.fixedComment()
	if err != nil {
		return nil, err
	}
	score := r.Score
	if score == nil {
		score = r.scoreFile(log)
	}
	w := &results.Writer{Path: r.Config.Output, SkipEmpty: r.Config.SkipEmpty}
	outcomes := make([]Outcome, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Config.Workers)
	for i, path := range paths {
		i, path := i, path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o := Outcome{Path: path, Comment: comment}
			if o.Comment == "" {
				o.Comment = label(path)
			}
			start := time.Now()
			o.Result, o.Err = score(path)
			if o.Err == nil {
				o.Written, o.Err = w.Append(o.Comment, o.Result)
			}
			o.Elapsed = time.Since(start)
			if o.Err != nil {
				log.Error("structure failed", zap.String("path", path), zap.Error(o.Err))
			} else {
				log.Info("structure scored", zap.String("path", path),
					zap.Duration("elapsed", o.Elapsed), zap.Bool("written", o.Written))
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, errors.Wrap(ctx.Err(), "batch.Run")
}

func (r *Runner) scoreFile(log *zap.Logger) func(string) (*clash.Result, error) {
	return func(path string) (*clash.Result, error) {
		s, err := pdb.ReadFile(path, r.Config.ReadOptions())
		if err != nil {
			return nil, err
		}
		opts := r.Config.AnalysisOptions(log.With(zap.String("path", path)))
		return clash.Analyze(s.Protein, s.Ligand, opts)
	}
}

//fixedComment returns the label shared by all the structures, if one was
//given, or the empty string.
func (r *Runner) fixedComment() (string, error) {
	if r.Config.Comment != "" {
		return r.Config.Comment, nil
	}
	if r.Config.CommentFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(r.Config.CommentFile)
	if err != nil {
		return "", errors.Wrap(err, "batch: reading the comment file")
	}
	first, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimRight(first, "\r"), nil
}

//label is the default comment for a structure: its file name without
//the extensions.
func label(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".zst", ".pdb", ".ent"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
