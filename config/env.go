package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/exploration"
	"github.com/spf13/cast"
)

// getEnv returns the trimmed value of name and whether it is set and
// non-empty.
func getEnv(name string) (string, bool) {
	var v, ok = os.LookupEnv(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envError(name, value string, err error) error {
	return &hashtable.ConfigError{Field: name, Reason: fmt.Sprintf("bad value %q", value), Err: err}
}

func applyEnv(cfg *hashtable.Config) error {
	if v, ok := getEnv(EnvTableSize); ok {
		var n, err = cast.ToUintE(v)
		if err != nil {
			return envError(EnvTableSize, v, err)
		}
		cfg.TableSize = n
	}
	if v, ok := getEnv(EnvDispersion); ok {
		var code, err = cast.ToIntE(v)
		if err != nil {
			return envError(EnvDispersion, v, err)
		}
		cfg.Dispersion = dispersion.Code(code)
	}
	if v, ok := getEnv(EnvTopology); ok {
		var t, err = hashtable.ParseTopology(v)
		if err != nil {
			return envError(EnvTopology, v, err)
		}
		cfg.Topology = t
	}
	if v, ok := getEnv(EnvBlockSize); ok {
		var n, err = cast.ToUintE(v)
		if err != nil {
			return envError(EnvBlockSize, v, err)
		}
		cfg.BlockSize = n
	}
	if v, ok := getEnv(EnvExploration); ok {
		var code, err = cast.ToIntE(v)
		if err != nil {
			return envError(EnvExploration, v, err)
		}
		cfg.Exploration = exploration.Code(code)
	}
	return nil
}
