/*
Package dispersion implements the hash functions that map a key.Key to the
initial bucket of a table of a fixed size.

Every Func is built for one table size and always returns a value in
[0, TableSize()). The functions are stateless after construction; the
pseudo-random variant seeds a private generator on every call, so a Func may
be shared between tables of the same size and between goroutines.
*/
package dispersion

import (
	"fmt"

	"github.com/lleo/go-hashtable/key"
	"github.com/pkg/errors"
)

// Func maps a key to a bucket index in [0, TableSize()).
type Func interface {
	Hash(k key.Key) uint
	TableSize() uint
	String() string
}

// Code selects a dispersion function by the number used on the command line.
type Code int

const (
	ModuloCode       Code = 1
	DigitSumCode     Code = 2
	PseudoRandomCode Code = 3
	XXHashCode       Code = 4
)

// Codes lists every valid Code in ascending order.
var Codes = []Code{ModuloCode, DigitSumCode, PseudoRandomCode, XXHashCode}

var codeNames = map[Code]string{
	ModuloCode:       "modulo",
	DigitSumCode:     "digit-sum",
	PseudoRandomCode: "pseudo-random",
	XXHashCode:       "xxhash",
}

// Valid reports whether c names a dispersion function.
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
	// ErrTableSize is returned when a function is requested for an empty table.
	ErrTableSize = errors.New("dispersion: table size must be greater than zero")

	// ErrUnknownCode is returned for a Code outside Codes.
	ErrUnknownCode = errors.New("dispersion: unknown function code")
)

// New builds the dispersion function selected by code for a table of
// tableSize buckets.
func New(code Code, tableSize uint) (Func, error) {
	if tableSize == 0 {
		return nil, errors.Wrapf(ErrTableSize, "New(%s, %d)", code, tableSize)
	}

	switch code {
	case ModuloCode:
		return NewModulo(tableSize), nil
	case DigitSumCode:
		return NewDigitSum(tableSize), nil
	case PseudoRandomCode:
		return NewPseudoRandom(tableSize), nil
	case XXHashCode:
		return NewXXHash(tableSize), nil
	}

	return nil, errors.Wrapf(ErrUnknownCode, "New(%d, %d)", int(code), tableSize)
}
