package hashtable

import (
	"fmt"
	"strings"

	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/key"
)

// ChainedTable resolves collisions by keeping every synonym in the one
// unbounded bucket picked by the dispersion function.
type ChainedTable struct {
	fd       dispersion.Func
	table    []chainBucket
	nentries uint
	observer Observer
}

// NewChained allocates a table of tableSize empty buckets. fd must have been
// built for tableSize.
func NewChained(tableSize uint, fd dispersion.Func, opts ...Option) (*ChainedTable, error) {
	if err := checkDispersion(tableSize, fd); err != nil {
		return nil, err
	}

	var o = buildOptions(opts)

	var t = new(ChainedTable)
	t.fd = fd
	t.table = make([]chainBucket, tableSize)
	t.observer = o.observer

	return t, nil
}

// Search is required for Table
func (t *ChainedTable) Search(k key.Key) bool {
	var found = t.table[t.fd.Hash(k)].search(k)
	t.observer.ObserveSearch(1, found)
	return found
}

// Insert is required for Table; it always returns true.
func (t *ChainedTable) Insert(k key.Key) bool {
	var inserted = t.table[t.fd.Hash(k)].insert(k)
	if inserted {
		t.nentries++
	}
	t.observer.ObserveInsert(1, inserted)
	return inserted
}

// Nentries is required for Table
func (t *ChainedTable) Nentries() uint {
	return t.nentries
}

// TableSize is required for Table
func (t *ChainedTable) TableSize() uint {
	return uint(len(t.table))
}

// Dispersion returns the table's dispersion function.
func (t *ChainedTable) Dispersion() dispersion.Func {
	return t.fd
}

func (t *ChainedTable) String() string {
	return fmt.Sprintf("ChainedTable{tableSize:%d, nentries:%d, fd:%s}", len(t.table), t.nentries, t.fd)
}

// LongString is required for Table
func (t *ChainedTable) LongString(indent string) string {
	var strs = make([]string, 2+len(t.table))

	strs[0] = indent + fmt.Sprintf("ChainedTable{tableSize:%d, nentries:%d, fd:%s,", len(t.table), t.nentries, t.fd)
	for i := range t.table {
		strs[1+i] = indent + fullIndent + fmt.Sprintf("t.table[%d]: %s", i, t.table[i].String())
	}
	strs[len(strs)-1] = indent + "}"

	return strings.Join(strs, "\n")
}

const fullIndent = "    "
