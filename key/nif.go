package key

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/pkg/errors"
)

// NifMin and NifMax bound the 8 digit ids produced by RandomNif and accepted
// by ParseNif.
const (
	NifMin int64 = 10000000
	NifMax int64 = 99999999
)

// Nif is the numeric part of a Spanish NIF. Its Identity() is the number
// itself.
type Nif struct {
	number int64
}

// NewNif wraps any integer as a Nif. No range check is made; use ParseNif for
// user input.
func NewNif(n int64) Nif {
	return Nif{number: n}
}

// RandomNif draws a Nif uniformly from [NifMin, NifMax] using r.
func RandomNif(r *rand.Rand) Nif {
	return Nif{number: NifMin + r.Int64N(NifMax-NifMin+1)}
}

// ParseNif parses exactly eight decimal digits.
func ParseNif(s string) (Nif, error) {
	if len(s) != 8 || !allDigits(s) {
		return Nif{}, errors.Wrapf(ErrMalformedID, "nif %q: want 8 digits", s)
	}

	var n, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Nif{}, errors.Wrapf(ErrMalformedID, "nif %q: %s", s, err)
	}

	return Nif{number: n}, nil
}

// Identity is required for Key
func (k Nif) Identity() int64 {
	return k.number
}

// Equals is required for Key
func (k Nif) Equals(other Key) bool {
	var o, ok = other.(Nif)
	return ok && o.number == k.number
}

// Less orders Nifs by number.
func (k Nif) Less(o Nif) bool {
	return k.number < o.number
}

func (k Nif) String() string {
	return fmt.Sprintf("%08d", k.number)
}
