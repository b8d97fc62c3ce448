/*
Package config assembles a hashtable.Config from, in increasing order of
precedence: built-in defaults, a YAML file, HASHTABLE_* environment variables
and command line flags.

The flag names are the ones the table tool has always used:

	--ts <tableSize>          number of buckets
	--fd <code>               dispersion: 1 modulo, 2 digit sum, 3 pseudo-random, 4 xxhash
	--hash <open|close>       chained (open) or bounded (close) table
	--bs <blockSize>          keys per bucket, close only
	--fe <code>               exploration: 1 linear, 2 quadratic, 3 double hash, 4 redispersion; close only
*/
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/exploration"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// Flag names.
const (
	FlagTableSize   = "ts"
	FlagDispersion  = "fd"
	FlagTopology    = "hash"
	FlagBlockSize   = "bs"
	FlagExploration = "fe"
)

// Environment variable names.
const (
	EnvTableSize   = "HASHTABLE_TABLE_SIZE"
	EnvDispersion  = "HASHTABLE_DISPERSION"
	EnvTopology    = "HASHTABLE_TOPOLOGY"
	EnvBlockSize   = "HASHTABLE_BLOCK_SIZE"
	EnvExploration = "HASHTABLE_EXPLORATION"
)

// Defaults leaves TableSize at zero so that a table size must be given
// somewhere. BlockSize and Exploration must likewise be given for a bounded
// table.
var Defaults = hashtable.Config{
	Dispersion: dispersion.ModuloCode,
	Topology:   hashtable.Chained,
}

// File is the YAML form of a hashtable.Config. Absent fields keep the value
// from Defaults.
//
//	tableSize: 101
//	dispersion: 2
//	topology: close
//	blockSize: 3
//	exploration: 1
type File struct {
	TableSize   *uint  `yaml:"tableSize"`
	Dispersion  *int   `yaml:"dispersion"`
	Topology    string `yaml:"topology"`
	BlockSize   *uint  `yaml:"blockSize"`
	Exploration *int   `yaml:"exploration"`
}

// BindFlags registers the table flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.Uint(FlagTableSize, 0, "Table size (number of buckets)")
	fs.Int(FlagDispersion, int(Defaults.Dispersion),
		"Dispersion function: 1 modulo, 2 digit sum, 3 pseudo-random, 4 xxhash")
	fs.String(FlagTopology, "open", "Collision handling: open (chained buckets) or close (bounded buckets)")
	fs.Uint(FlagBlockSize, 0, "Keys per bucket (close only)")
	fs.Int(FlagExploration, 0,
		"Exploration function (close only): 1 linear, 2 quadratic, 3 double hash, 4 redispersion")
}

// LoadDotenv loads environment variables from the given files, or from .env
// in the working directory when none are given. Variables already set are not
// overridden. A missing default .env is not an error.
func LoadDotenv(filenames ...string) error {
	if len(filenames) == 0 {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return nil
		}
	}
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Wrap(err, "failed to load dotenv file")
	}
	return nil
}

// Load builds and validates a Config. path names an optional YAML file; pass
// "" to skip it. fs may be nil; otherwise only flags the user set are applied.
func Load(path string, fs *pflag.FlagSet) (hashtable.Config, error) {
	var cfg = Defaults

	if path != "" {
		var err = applyFile(&cfg, path)
		if err != nil {
			return hashtable.Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return hashtable.Config{}, err
	}

	if fs != nil {
		if err := applyFlags(&cfg, fs); err != nil {
			return hashtable.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return hashtable.Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *hashtable.Config, path string) error {
	var data, err = os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %q", path)
	}

	var f File
	if err = yaml.UnmarshalStrict(data, &f); err != nil {
		return errors.Wrapf(err, "failed to parse config file %q", path)
	}

	if f.TableSize != nil {
		cfg.TableSize = *f.TableSize
	}
	if f.Dispersion != nil {
		cfg.Dispersion = dispersion.Code(*f.Dispersion)
	}
	if f.Topology != "" {
		cfg.Topology, err = hashtable.ParseTopology(f.Topology)
		if err != nil {
			return &hashtable.ConfigError{Field: "topology", Reason: "in " + path, Err: err}
		}
	}
	if f.BlockSize != nil {
		cfg.BlockSize = *f.BlockSize
	}
	if f.Exploration != nil {
		cfg.Exploration = exploration.Code(*f.Exploration)
	}
	return nil
}

func applyFlags(cfg *hashtable.Config, fs *pflag.FlagSet) error {
	var err error

	if fs.Changed(FlagTableSize) {
		if cfg.TableSize, err = fs.GetUint(FlagTableSize); err != nil {
			return errors.Wrapf(err, "--%s", FlagTableSize)
		}
	}
	if fs.Changed(FlagDispersion) {
		var code int
		if code, err = fs.GetInt(FlagDispersion); err != nil {
			return errors.Wrapf(err, "--%s", FlagDispersion)
		}
		cfg.Dispersion = dispersion.Code(code)
	}
	if fs.Changed(FlagTopology) {
		var s string
		if s, err = fs.GetString(FlagTopology); err != nil {
			return errors.Wrapf(err, "--%s", FlagTopology)
		}
		if cfg.Topology, err = hashtable.ParseTopology(s); err != nil {
			return &hashtable.ConfigError{Field: "topology", Reason: "--" + FlagTopology, Err: err}
		}
	}
	if fs.Changed(FlagBlockSize) {
		if cfg.BlockSize, err = fs.GetUint(FlagBlockSize); err != nil {
			return errors.Wrapf(err, "--%s", FlagBlockSize)
		}
	}
	if fs.Changed(FlagExploration) {
		var code int
		if code, err = fs.GetInt(FlagExploration); err != nil {
			return errors.Wrapf(err, "--%s", FlagExploration)
		}
		cfg.Exploration = exploration.Code(code)
	}
	return nil
}
