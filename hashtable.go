/*
Package hashtable implements a fixed size hash table with a pluggable
dispersion (hash) function and, for the bounded topology, a pluggable
exploration (probe) function.

Two topologies are provided:

ChainedTable is separate chaining, also called open hashing. Every key goes
to the single bucket chosen by the dispersion function; buckets grow without
bound, so Insert never fails.

BoundedTable is open addressing, also called closed hashing. Every bucket
holds at most blockSize keys. When the bucket chosen by the dispersion
function is full (Insert) or does not hold the key (Search), the table asks the
exploration function for an offset and tries again, for at most tableSize
attempts in total. Insert returns false when every attempt hit a full bucket.

Neither table deletes, resizes or deduplicates: inserting an equal key twice
stores it twice. Tables are not safe for concurrent use.
*/
package hashtable

import (
	"fmt"
	"log"
	"os"

	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/exploration"
	"github.com/lleo/go-hashtable/key"
)

// Lgr is the package logger. Insert exhaustion on a BoundedTable is reported
// here, since the caller only gets a bool.
var Lgr = log.New(os.Stderr, "[hashtable] ", log.Lshortfile)

// Table is the query surface shared by ChainedTable and BoundedTable.
type Table interface {
	// Search reports whether a key Equals() to k was inserted.
	Search(k key.Key) bool

	// Insert stores k and reports whether a bucket accepted it.
	Insert(k key.Key) bool

	// Nentries is the number of successful Inserts.
	Nentries() uint

	TableSize() uint
	String() string
	LongString(indent string) string
}

// New builds the table described by cfg. For the double hashing exploration
// function the table's own dispersion function is used as the secondary.
func New(cfg Config, opts ...Option) (Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var fd, err = dispersion.New(cfg.Dispersion, cfg.TableSize)
	if err != nil {
		return nil, &ConfigError{Field: "dispersion", Reason: "cannot build function", Err: err}
	}

	if cfg.Topology == Chained {
		var t, err = NewChained(cfg.TableSize, fd, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	var fe exploration.Func
	fe, err = exploration.New(cfg.Exploration, fd)
	if err != nil {
		return nil, &ConfigError{Field: "exploration", Reason: "cannot build function", Err: err}
	}

	var t *BoundedTable
	t, err = NewBounded(cfg.TableSize, cfg.BlockSize, fd, fe, opts...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// checkDispersion is shared by NewChained and NewBounded.
func checkDispersion(tableSize uint, fd dispersion.Func) error {
	if tableSize == 0 {
		return &ConfigError{Field: "tableSize", Reason: "must be greater than zero"}
	}
	if fd == nil {
		return &ConfigError{Field: "dispersion", Reason: "function is nil"}
	}
	if fd.TableSize() != tableSize {
		return &ConfigError{
			Field:  "dispersion",
			Reason: fmt.Sprintf("function built for table size %d, table has %d", fd.TableSize(), tableSize),
		}
	}
	return nil
}
