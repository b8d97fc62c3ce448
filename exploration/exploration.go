/*
Package exploration implements the probe (exploration) functions a bounded
table uses to resolve collisions.

An exploration function maps a key and an attempt number i, starting at 0, to
an offset g(k, i). The table looks at bucket (h(k) + g(k, i)) mod tableSize on
attempt i, where h is the table's dispersion function. Offsets are returned
unreduced; reducing them is the table's job.
*/
package exploration

import (
	"fmt"

	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/key"
	"github.com/pkg/errors"
)

// Func returns the probe offset for attempt number attempt.
type Func interface {
	Offset(k key.Key, attempt uint) uint
	String() string
}

// Code selects an exploration function by the number used on the command line.
type Code int

const (
	LinearCode       Code = 1
	QuadraticCode    Code = 2
	DoubleHashCode   Code = 3
	RedispersionCode Code = 4
)

// Codes lists every valid Code in ascending order.
var Codes = []Code{LinearCode, QuadraticCode, DoubleHashCode, RedispersionCode}

var codeNames = map[Code]string{
	LinearCode:       "linear",
	QuadraticCode:    "quadratic",
	DoubleHashCode:   "double-hash",
	RedispersionCode: "redispersion",
}

// Valid reports whether c names an exploration function.
func (c Code) Valid() bool {
	var _, ok = codeNames[c]
	return ok
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

var (
	// ErrUnknownCode is returned for a Code outside Codes.
	ErrUnknownCode = errors.New("exploration: unknown function code")

	// ErrNoSecondary is returned when double hashing is requested without a
	// secondary dispersion function.
	ErrNoSecondary = errors.New("exploration: double hashing needs a secondary dispersion function")
)

// New builds the exploration function selected by code. secondary is only
// used, and then required, by DoubleHashCode.
func New(code Code, secondary dispersion.Func) (Func, error) {
	switch code {
	case LinearCode:
		return Linear{}, nil
	case QuadraticCode:
		return Quadratic{}, nil
	case DoubleHashCode:
		if secondary == nil {
			return nil, errors.Wrapf(ErrNoSecondary, "New(%s, nil)", code)
		}
		return NewDoubleHash(secondary), nil
	case RedispersionCode:
		return Redispersion{}, nil
	}

	return nil, errors.Wrapf(ErrUnknownCode, "New(%d)", int(code))
}
