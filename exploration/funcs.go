package exploration

import (
	"fmt"

	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/internal/prng"
	"github.com/lleo/go-hashtable/key"
)

// Linear probing: g(k, i) = i
type Linear struct{}

// Offset is required for Func
func (Linear) Offset(_ key.Key, attempt uint) uint {
	return attempt
}

func (Linear) String() string { return "Linear{}" }

// Quadratic probing: g(k, i) = i*i
//
// Coverage of every bucket is not guaranteed unless the table size is prime
// and the table is at most half full.
type Quadratic struct{}

// Offset is required for Func
func (Quadratic) Offset(_ key.Key, attempt uint) uint {
	return attempt * attempt
}

func (Quadratic) String() string { return "Quadratic{}" }

// DoubleHash probing: g(k, i) = f(k) * i, where f is a secondary dispersion
// function shared with, not owned by, this DoubleHash.
//
// When f(k) == 0 every attempt for k lands on its initial bucket.
type DoubleHash struct {
	secondary dispersion.Func
}

func NewDoubleHash(secondary dispersion.Func) DoubleHash {
	return DoubleHash{secondary: secondary}
}

// Offset is required for Func
func (f DoubleHash) Offset(k key.Key, attempt uint) uint {
	return f.secondary.Hash(k) * attempt
}

// Secondary returns the dispersion function f of g(k, i) = f(k) * i.
func (f DoubleHash) Secondary() dispersion.Func {
	return f.secondary
}

func (f DoubleHash) String() string {
	return fmt.Sprintf("DoubleHash{secondary:%s}", f.secondary)
}

// Redispersion probing: g(k, i) is the (i+1)'th value drawn from a generator
// seeded with Identity(k). Each call costs O(i).
type Redispersion struct{}

// Offset is required for Func
func (Redispersion) Offset(k key.Key, attempt uint) uint {
	return uint(prng.Nth(k.Identity(), attempt+1))
}

func (Redispersion) String() string { return "Redispersion{}" }
