package hashtable

import (
	"fmt"
	"strings"

	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/exploration"
	"github.com/pkg/errors"
)

// Topology selects how collisions are resolved.
type Topology int

const (
	// Chained is separate chaining ("open" hashing): unbounded buckets, no
	// probing.
	Chained Topology = 1 + iota

	// Bounded is open addressing ("close" hashing): blockSize keys per
	// bucket plus an exploration function.
	Bounded
)

var topologyNames = map[string]Topology{
	"open":    Chained,
	"chained": Chained,
	"close":   Bounded,
	"closed":  Bounded,
	"bounded": Bounded,
}

// ErrUnknownTopology is the cause returned by ParseTopology.
var ErrUnknownTopology = errors.New("unknown topology")

// ParseTopology accepts the command line spellings "open" and
// "close" as well as "chained" and "bounded", in any case.
func ParseTopology(s string) (Topology, error) {
	if t, ok := topologyNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return 0, errors.Wrapf(ErrUnknownTopology, "%q; want open or close", s)
}

func (t Topology) String() string {
	switch t {
	case Chained:
		return "chained"
	case Bounded:
		return "bounded"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// Config is everything New needs to build a Table. BlockSize and Exploration
// are ignored for the Chained topology.
type Config struct {
	TableSize   uint
	Dispersion  dispersion.Code
	Topology    Topology
	BlockSize   uint
	Exploration exploration.Code
}

// ConfigError describes a configuration that cannot produce a table.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	var msg = fmt.Sprintf("hashtable: invalid %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any, for errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks cfg without building anything. It returns a *ConfigError
// for the first problem found.
func (cfg Config) Validate() error {
	if cfg.TableSize == 0 {
		return &ConfigError{Field: "tableSize", Reason: "must be greater than zero"}
	}
	if !cfg.Dispersion.Valid() {
		return &ConfigError{
			Field:  "dispersion",
			Reason: fmt.Sprintf("unknown code %d; want one of %v", int(cfg.Dispersion), dispersion.Codes),
		}
	}

	switch cfg.Topology {
	case Chained:
		return nil
	case Bounded:
	default:
		return &ConfigError{Field: "topology", Reason: fmt.Sprintf("unknown topology %d", int(cfg.Topology))}
	}

	if cfg.BlockSize == 0 {
		return &ConfigError{Field: "blockSize", Reason: "must be greater than zero for a bounded table"}
	}
	if !cfg.Exploration.Valid() {
		return &ConfigError{
			Field:  "exploration",
			Reason: fmt.Sprintf("unknown code %d; want one of %v", int(cfg.Exploration), exploration.Codes),
		}
	}
	return nil
}

func (cfg Config) String() string {
	if cfg.Topology == Bounded {
		return fmt.Sprintf("Config{tableSize:%d, dispersion:%s, topology:%s, blockSize:%d, exploration:%s}",
			cfg.TableSize, cfg.Dispersion, cfg.Topology, cfg.BlockSize, cfg.Exploration)
	}
	return fmt.Sprintf("Config{tableSize:%d, dispersion:%s, topology:%s}",
		cfg.TableSize, cfg.Dispersion, cfg.Topology)
}
