package hashtable

import (
	"fmt"
	"strings"

	"github.com/lleo/go-hashtable/key"
)

// sequence is the interface for every bucket in a table.
//
// search reports whether a key Equals() to k is held. insert appends k and
// reports whether it did; a false return leaves the bucket untouched.
type sequence interface {
	search(k key.Key) bool
	insert(k key.Key) bool
	len() uint
	String() string
}

var (
	_ sequence = (*chainBucket)(nil)
	_ sequence = (*boundedBucket)(nil)
)

type keys []key.Key

func (ks keys) contains(k0 key.Key) bool {
	for _, k1 := range ks {
		if k0.Equals(k1) {
			return true
		}
	}
	return false
}

func (ks keys) String() string {
	var strs = make([]string, len(ks))
	for i, k := range ks {
		strs[i] = k.String()
	}
	return strings.Join(strs, ",")
}

// chainBucket holds every synonym of a ChainedTable index.
type chainBucket struct {
	keys keys
}

// search is required for sequence
func (b *chainBucket) search(k key.Key) bool {
	return b.keys.contains(k)
}

// insert is required for sequence; it never fails.
func (b *chainBucket) insert(k key.Key) bool {
	b.keys = append(b.keys, k)
	return true
}

// len is required for sequence
func (b *chainBucket) len() uint {
	return uint(len(b.keys))
}

func (b *chainBucket) String() string {
	return fmt.Sprintf("chainBucket{len:%d, keys:[%s]}", len(b.keys), b.keys)
}

// boundedBucket holds at most blockSize keys of a BoundedTable.
type boundedBucket struct {
	blockSize uint
	keys      keys
}

func newBoundedBucket(blockSize uint) boundedBucket {
	return boundedBucket{blockSize: blockSize}
}

// search is required for sequence
func (b *boundedBucket) search(k key.Key) bool {
	return b.keys.contains(k)
}

// insert is required for sequence
func (b *boundedBucket) insert(k key.Key) bool {
	if b.isFull() {
		return false
	}
	b.keys = append(b.keys, k)
	return true
}

// len is required for sequence
func (b *boundedBucket) len() uint {
	return uint(len(b.keys))
}

func (b *boundedBucket) isFull() bool {
	return uint(len(b.keys)) >= b.blockSize
}

func (b *boundedBucket) String() string {
	return fmt.Sprintf("boundedBucket{len:%d/%d, keys:[%s]}", len(b.keys), b.blockSize, b.keys)
}
