/*
 * config.go, part of goClash.
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

//Package config loads the parameters for goClash commands. Values come, from
//lowest to highest priority, from the defaults, an optional YAML file,
//GOCLASH_* environment variables and command line flags.
package config

import (
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	chem "github.com/rmera/goclash"
	"github.com/rmera/goclash/clash"
	"github.com/rmera/goclash/pdb"
)

//Keys
const (
	KeyStep        = "step"
	KeyCutoff      = "cutoff"
	KeyMaxCells    = "max_cells"
	KeyGateRatio   = "gate_ratio"
	KeyLigandChain = "ligand_chain"
	KeyOutput      = "output"
	KeyComment     = "comment"
	KeyCommentFile = "comment_file"
	KeySkipEmpty   = "skip_empty"
	KeyWorkers     = "workers"
	KeyLogLevel    = "log_level"
)

const envPrefix = "GOCLASH"

// Config holds all the parameters.
type Config struct {
	Step        float64 `mapstructure:"step"`
	Cutoff      float64 `mapstructure:"cutoff"`
	MaxCells    int     `mapstructure:"max_cells"`
	GateRatio   float64 `mapstructure:"gate_ratio"`
	LigandChain string  `mapstructure:"ligand_chain"`
	Output      string  `mapstructure:"output"`
	Comment     string  `mapstructure:"comment"`
	CommentFile string  `mapstructure:"comment_file"`
	SkipEmpty   bool    `mapstructure:"skip_empty"`
	Workers     int     `mapstructure:"workers"`
	LogLevel    string  `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStep, clash.DefaultStep)
	v.SetDefault(KeyCutoff, clash.DefaultCutoff)
	v.SetDefault(KeyMaxCells, clash.DefaultMaxCells)
	v.SetDefault(KeyGateRatio, clash.DefaultGateRatio)
	v.SetDefault(KeyLigandChain, string(rune(pdb.DefaultLigandChain)))
	v.SetDefault(KeyOutput, "results.tsv")
	v.SetDefault(KeyComment, "")
	v.SetDefault(KeyCommentFile, "")
	v.SetDefault(KeySkipEmpty, true)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyLogLevel, "info")
}

// RegisterFlags adds a flag for each key to fs. Flags override
// every other source, but only if they were set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64(KeyStep, clash.DefaultStep, "Edge of the voxel grid cells, in A")
	fs.Float64(KeyCutoff, clash.DefaultCutoff, "Distance cutoff for contacts, in A")
	fs.Int(KeyMaxCells, clash.DefaultMaxCells, "Largest voxel grid allowed, in cells")
	fs.Float64(KeyGateRatio, clash.DefaultGateRatio, "Skip the contact pass when intersection/ligand atoms reaches this value")
	fs.String(KeyLigandChain, string(rune(pdb.DefaultLigandChain)), "Chain identifier of the ligand")
	fs.StringP(KeyOutput, "o", "results.tsv", "Results file, results are appended to it")
	fs.String(KeyComment, "", "Label for the first column of the results (default: the structure's file name)")
	fs.String(KeyCommentFile, "", "File whose first line is used as the label, as an alternative to --comment")
	fs.Bool(KeySkipEmpty, true, "Only write results with some intersection or some contacts")
	fs.IntP(KeyWorkers, "j", runtime.NumCPU(), "Structures scored concurrently")
	fs.String(KeyLogLevel, "info", "Log level (debug, info, warn, error)")
}

// Load builds the configuration. file is an optional YAML file, and fs an
// optional flag set, already parsed, with the flags from RegisterFlags.
// The result is validated.
func Load(file string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: reading %s", file)
		}
	}
	if fs != nil {
		//only the flags the user set, so defaults don't shadow
		//the file and the environment.
		var err error
		fs.Visit(func(f *pflag.Flag) {
			if err == nil {
				err = v.BindPFlag(f.Name, f)
			}
		})
		if err != nil {
			return nil, errors.Wrap(err, "config: binding flags")
		}
	}
	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "config: decoding")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values, and returns an error wrapping
// chem.ErrConfiguration for the first bad one.
func (c *Config) Validate() error {
	switch {
	case !(c.Step > 0):
		return errors.Wrapf(chem.ErrConfiguration, "%s must be positive, got %g", KeyStep, c.Step)
	case !(c.Cutoff > 0):
		return errors.Wrapf(chem.ErrConfiguration, "%s must be positive, got %g", KeyCutoff, c.Cutoff)
	case c.MaxCells <= 0:
		return errors.Wrapf(chem.ErrConfiguration, "%s must be positive, got %d", KeyMaxCells, c.MaxCells)
	case !(c.GateRatio > 0):
		return errors.Wrapf(chem.ErrConfiguration, "%s must be positive, got %g", KeyGateRatio, c.GateRatio)
	case len(c.LigandChain) != 1:
		return errors.Wrapf(chem.ErrConfiguration, "%s must be a single character, got %q", KeyLigandChain, c.LigandChain)
	case c.Workers <= 0:
		return errors.Wrapf(chem.ErrConfiguration, "%s must be positive, got %d", KeyWorkers, c.Workers)
	case c.Output == "":
		return errors.Wrapf(chem.ErrConfiguration, "%s can't be empty", KeyOutput)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(chem.ErrConfiguration, "%s: %v", KeyLogLevel, err)
	}
	return nil
}

// AnalysisOptions returns the options for clash.Analyze, using logger.
func (c *Config) AnalysisOptions(logger *zap.Logger) clash.Options {
	return clash.Options{
		Step:      c.Step,
		Cutoff:    c.Cutoff,
		MaxCells:  c.MaxCells,
		GateRatio: c.GateRatio,
		Logger:    logger,
	}
}

// ReadOptions returns the options for the PDB reader.
func (c *Config) ReadOptions() pdb.Options {
	return pdb.Options{LigandChain: c.LigandChain[0]}
}

// NewLogger returns a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(chem.ErrConfiguration, "%s: %v", KeyLogLevel, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
