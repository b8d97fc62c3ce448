/*
Package key defines the Key contract consumed by go-hashtable and the two
concrete keys the hashtable command works with: Nif, an 8 digit numeric id,
and Person, a record identified by a prefixed string id (alu/prof/pas).

Every hash and probe computation in go-hashtable works on the integer
Identity() of a key. Two keys that are Equals() MUST have the same Identity();
the converse is not required.
*/
package key

import "github.com/pkg/errors"

// Key is the interface every value stored in a hashtable must satisfy.
type Key interface {
	// Identity is the integer projection of the key used by all dispersion
	// and exploration arithmetic.
	Identity() int64
	Equals(Key) bool
	String() string
}

// ErrMalformedID is the cause of every parse failure in this package.
var ErrMalformedID = errors.New("malformed id")

// IncID increments the trailing run of decimal digits in id, carrying to the
// left, e.g. "alu0000009" -> "alu0000010". A carry out of the leftmost digit
// widens the run ("pas99" -> "pas100"). An id without trailing digits gets a
// "1" appended.
func IncID(id string) string {
	var bs = []byte(id)

	var i = len(bs) - 1
	for ; i >= 0 && isDigit(bs[i]); i-- {
		if bs[i] != '9' {
			bs[i]++
			return string(bs)
		}
		bs[i] = '0'
	}

	// every trailing digit was a 9 (or there were none)
	return string(bs[:i+1]) + "1" + string(bs[i+1:])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
