package hashtable

import (
	"fmt"
	"strings"

	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/exploration"
	"github.com/lleo/go-hashtable/key"
)

// BoundedTable resolves collisions by probing other buckets, each of which
// holds at most blockSize keys.
//
// Search and Insert visit the bucket (fd(k) + fe(k, i)) mod tableSize for
// i = 0..tableSize-1 and stop at the first success. The attempt cap bounds
// the work per operation and guarantees termination under a degenerate
// exploration function; the price is that Insert may fail while some bucket
// the probe sequence never reaches still has room.
type BoundedTable struct {
	blockSize uint
	fd        dispersion.Func
	fe        exploration.Func
	table     []boundedBucket
	nentries  uint
	observer  Observer
}

// NewBounded allocates tableSize empty buckets of capacity blockSize. fd must
// have been built for tableSize.
func NewBounded(tableSize, blockSize uint, fd dispersion.Func, fe exploration.Func, opts ...Option) (*BoundedTable, error) {
	if err := checkDispersion(tableSize, fd); err != nil {
		return nil, err
	}
	if blockSize == 0 {
		return nil, &ConfigError{Field: "blockSize", Reason: "must be greater than zero for a bounded table"}
	}
	if fe == nil {
		return nil, &ConfigError{Field: "exploration", Reason: "function is nil"}
	}

	var o = buildOptions(opts)

	var t = new(BoundedTable)
	t.blockSize = blockSize
	t.fd = fd
	t.fe = fe
	t.table = make([]boundedBucket, tableSize)
	for i := range t.table {
		t.table[i] = newBoundedBucket(blockSize)
	}
	t.observer = o.observer

	return t, nil
}

// probe runs the bounded probe sequence for k, calling visit on each bucket
// until it returns true. It returns the number of buckets visited and whether
// visit succeeded.
func (t *BoundedTable) probe(k key.Key, visit func(b *boundedBucket) bool) (attempts uint, ok bool) {
	var tableSize = uint(len(t.table))
	var h = t.fd.Hash(k)

	for i := uint(0); i < tableSize; i++ {
		var idx = (h + t.fe.Offset(k, i)%tableSize) % tableSize
		if visit(&t.table[idx]) {
			return i + 1, true
		}
	}

	return tableSize, false
}

// Search is required for Table
func (t *BoundedTable) Search(k key.Key) bool {
	var attempts, found = t.probe(k, func(b *boundedBucket) bool {
		return b.search(k)
	})
	t.observer.ObserveSearch(attempts, found)
	return found
}

// Insert is required for Table. It returns false when every bucket on k's
// probe sequence is full.
func (t *BoundedTable) Insert(k key.Key) bool {
	var attempts, inserted = t.probe(k, func(b *boundedBucket) bool {
		return b.insert(k)
	})
	if inserted {
		t.nentries++
	} else {
		Lgr.Printf("BoundedTable.Insert(%s): no bucket accepted the key in %d attempts; nentries=%d", k, attempts, t.nentries)
	}
	t.observer.ObserveInsert(attempts, inserted)
	return inserted
}

// Nentries is required for Table
func (t *BoundedTable) Nentries() uint {
	return t.nentries
}

// TableSize is required for Table
func (t *BoundedTable) TableSize() uint {
	return uint(len(t.table))
}

// BlockSize is the capacity of every bucket.
func (t *BoundedTable) BlockSize() uint {
	return t.blockSize
}

// Dispersion returns the table's dispersion function.
func (t *BoundedTable) Dispersion() dispersion.Func {
	return t.fd
}

// Exploration returns the table's exploration function.
func (t *BoundedTable) Exploration() exploration.Func {
	return t.fe
}

// LoadFactor is nentries / (tableSize * blockSize).
func (t *BoundedTable) LoadFactor() float64 {
	return float64(t.nentries) / float64(uint(len(t.table))*t.blockSize)
}

func (t *BoundedTable) String() string {
	return fmt.Sprintf("BoundedTable{tableSize:%d, blockSize:%d, nentries:%d, fd:%s, fe:%s}",
		len(t.table), t.blockSize, t.nentries, t.fd, t.fe)
}

// LongString is required for Table
func (t *BoundedTable) LongString(indent string) string {
	var strs = make([]string, 2+len(t.table))

	strs[0] = indent + fmt.Sprintf("BoundedTable{tableSize:%d, blockSize:%d, nentries:%d, fd:%s, fe:%s,",
		len(t.table), t.blockSize, t.nentries, t.fd, t.fe)
	for i := range t.table {
		strs[1+i] = indent + fullIndent + fmt.Sprintf("t.table[%d]: %s", i, t.table[i].String())
	}
	strs[len(strs)-1] = indent + "}"

	return strings.Join(strs, "\n")
}
