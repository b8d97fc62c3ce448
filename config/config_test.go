package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/config"
	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/exploration"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envNames = []string{
	config.EnvTableSize,
	config.EnvDispersion,
	config.EnvTopology,
	config.EnvBlockSize,
	config.EnvExploration,
}

func clearEnv(t *testing.T) {
	for _, name := range envNames {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	var path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	var fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadFlagsOnly(t *testing.T) {
	clearEnv(t)

	var cfg, err = config.Load("", flags(t, "--ts", "150", "--fd", "2", "--hash", "close", "--bs", "3", "--fe", "2"))
	require.NoError(t, err)

	assert.Equal(t, hashtable.Config{
		TableSize:   150,
		Dispersion:  dispersion.DigitSumCode,
		Topology:    hashtable.Bounded,
		BlockSize:   3,
		Exploration: exploration.QuadraticCode,
	}, cfg)
}

func TestLoadDefaultsNeedTableSize(t *testing.T) {
	clearEnv(t)

	var _, err = config.Load("", flags(t))
	require.Error(t, err)

	var cfgErr *hashtable.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "tableSize", cfgErr.Field)
}

func TestLoadCloseNeedsBlockSize(t *testing.T) {
	clearEnv(t)

	var _, err = config.Load("", flags(t, "--ts", "10", "--hash", "close", "--fe", "1"))

	var cfgErr *hashtable.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "blockSize", cfgErr.Field)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	var path = writeFile(t, "table.yaml", `
tableSize: 101
dispersion: 3
topology: close
blockSize: 4
exploration: 4
`)

	var cfg, err = config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(101), cfg.TableSize)
	assert.Equal(t, dispersion.PseudoRandomCode, cfg.Dispersion)
	assert.Equal(t, hashtable.Bounded, cfg.Topology)
	assert.Equal(t, uint(4), cfg.BlockSize)
	assert.Equal(t, exploration.RedispersionCode, cfg.Exploration)

	t.Setenv(config.EnvTableSize, "211")
	t.Setenv(config.EnvExploration, "3")

	cfg, err = config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(211), cfg.TableSize)
	assert.Equal(t, exploration.DoubleHashCode, cfg.Exploration)
	assert.Equal(t, uint(4), cfg.BlockSize)

	cfg, err = config.Load(path, flags(t, "--ts", "7", "--hash", "open"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), cfg.TableSize)
	assert.Equal(t, hashtable.Chained, cfg.Topology)
	assert.Equal(t, exploration.DoubleHashCode, cfg.Exploration)
}

func TestLoadUnsetFlagsDoNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvTableSize, "31")
	t.Setenv(config.EnvTopology, "close")
	t.Setenv(config.EnvBlockSize, "2")
	t.Setenv(config.EnvExploration, "1")

	var cfg, err = config.Load("", flags(t, "--fd", "4"))
	require.NoError(t, err)
	assert.Equal(t, uint(31), cfg.TableSize)
	assert.Equal(t, hashtable.Bounded, cfg.Topology)
	assert.Equal(t, dispersion.XXHashCode, cfg.Dispersion)
}

func TestLoadBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvTableSize, "-5")

	var _, err = config.Load("", nil)

	var cfgErr *hashtable.ConfigError
	require.True(t, errors.As(err, &cfgErr), "err=%v", err)
	assert.Equal(t, config.EnvTableSize, cfgErr.Field)
}

func TestLoadBadTopology(t *testing.T) {
	clearEnv(t)

	var _, err = config.Load("", flags(t, "--ts", "5", "--hash", "ajar"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, hashtable.ErrUnknownTopology), "err=%v", err)
}

func TestLoadUnknownCode(t *testing.T) {
	clearEnv(t)

	var _, err = config.Load("", flags(t, "--ts", "5", "--fd", "9"))

	var cfgErr *hashtable.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "dispersion", cfgErr.Field)
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)

	var path = writeFile(t, "bad.yaml", "tableSize: 5\nbuckets: 3\n")
	var _, err = config.Load(path, nil)
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(config.EnvTableSize)

	var path = writeFile(t, "test.env", "HASHTABLE_TABLE_SIZE=13\n")
	require.NoError(t, config.LoadDotenv(path))
	t.Cleanup(func() { os.Unsetenv(config.EnvTableSize) })

	var cfg, err = config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, uint(13), cfg.TableSize)

	assert.Error(t, config.LoadDotenv(filepath.Join(t.TempDir(), "missing.env")))
}
