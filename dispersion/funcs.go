package dispersion

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/lleo/go-hashtable/internal/prng"
	"github.com/lleo/go-hashtable/key"
)

// Modulo computes h(k) = Identity(k) mod tableSize. Negative identities use
// the Euclidean remainder.
type Modulo struct {
	tableSize uint
}

func NewModulo(tableSize uint) Modulo {
	return Modulo{tableSize: tableSize}
}

// Hash is required for Func
func (f Modulo) Hash(k key.Key) uint {
	var n = int64(f.tableSize)
	var r = k.Identity() % n
	if r < 0 {
		r += n
	}
	return uint(r)
}

// TableSize is required for Func
func (f Modulo) TableSize() uint {
	return f.tableSize
}

func (f Modulo) String() string {
	return fmt.Sprintf("Modulo{tableSize:%d}", f.tableSize)
}

// DigitSum computes h(k) = (sum of the decimal digits of |Identity(k)|) mod
// tableSize.
type DigitSum struct {
	tableSize uint
}

func NewDigitSum(tableSize uint) DigitSum {
	return DigitSum{tableSize: tableSize}
}

// Hash is required for Func
func (f DigitSum) Hash(k key.Key) uint {
	var sum uint
	for n := abs(k.Identity()); n > 0; n /= 10 {
		sum += uint(n % 10)
	}
	return sum % f.tableSize
}

// TableSize is required for Func
func (f DigitSum) TableSize() uint {
	return f.tableSize
}

func (f DigitSum) String() string {
	return fmt.Sprintf("DigitSum{tableSize:%d}", f.tableSize)
}

// abs returns |i| as a uint64; it is exact for math.MinInt64.
func abs(i int64) uint64 {
	if i < 0 {
		return uint64(-(i + 1)) + 1
	}
	return uint64(i)
}

// PseudoRandom computes h(k) = {seed(Identity(k)); rand()} mod tableSize.
// The generator is private to each call.
type PseudoRandom struct {
	tableSize uint
}

func NewPseudoRandom(tableSize uint) PseudoRandom {
	return PseudoRandom{tableSize: tableSize}
}

// Hash is required for Func
func (f PseudoRandom) Hash(k key.Key) uint {
	return uint(prng.Nth(k.Identity(), 1) % uint64(f.tableSize))
}

// TableSize is required for Func
func (f PseudoRandom) TableSize() uint {
	return f.tableSize
}

func (f PseudoRandom) String() string {
	return fmt.Sprintf("PseudoRandom{tableSize:%d}", f.tableSize)
}

// XXHash computes h(k) = xxhash64(little endian Identity(k)) mod tableSize.
type XXHash struct {
	tableSize uint
}

func NewXXHash(tableSize uint) XXHash {
	return XXHash{tableSize: tableSize}
}

// Hash is required for Func
func (f XXHash) Hash(k key.Key) uint {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k.Identity()))
	return uint(xxhash.Sum64(buf[:]) % uint64(f.tableSize))
}

// TableSize is required for Func
func (f XXHash) TableSize() uint {
	return f.tableSize
}

func (f XXHash) String() string {
	return fmt.Sprintf("XXHash{tableSize:%d}", f.tableSize)
}
