package key

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxPersonDigits is the longest numeric part a person id may carry. Seven
// digits keep every prefix inside its own PrefixOffset band.
const MaxPersonDigits = 7

// PrefixOffset maps each recognised person id prefix to the amount added to
// the numeric part to build the Identity(). The offsets keep "alu0000001",
// "prof0000001" and "pas0000001" apart.
var PrefixOffset = map[string]int64{
	"alu":  0,
	"prof": 10000000,
	"pas":  20000000,
}

// Prefixes in the order they are tried by ParsePerson. "prof" must be tried
// before any shorter prefix sharing its first letters.
var Prefixes = []string{"prof", "alu", "pas"}

// Person is a record identified by a prefixed id, eg "alu0101140", plus a
// name and two surnames. Only the id takes part in Equals() and Identity().
type Person struct {
	id       string
	identity int64

	Name     string
	Surname1 string
	Surname2 string
}

// ParsePerson validates id and returns a Person with empty name fields.
func ParsePerson(id string) (Person, error) {
	return NewPerson(id, "", "", "")
}

// NewPerson validates id and builds a Person. The id must be one of Prefixes
// followed by 1..MaxPersonDigits decimal digits.
func NewPerson(id, name, surname1, surname2 string) (Person, error) {
	var identity, err = personIdentity(id)
	if err != nil {
		return Person{}, err
	}
	return Person{
		id:       id,
		identity: identity,
		Name:     name,
		Surname1: surname1,
		Surname2: surname2,
	}, nil
}

func personIdentity(id string) (int64, error) {
	for _, prefix := range Prefixes {
		if !strings.HasPrefix(id, prefix) {
			continue
		}

		var numPart = id[len(prefix):]
		if len(numPart) > MaxPersonDigits || !allDigits(numPart) {
			return 0, errors.Wrapf(ErrMalformedID,
				"person id %q: want %q followed by 1 to %d digits", id, prefix, MaxPersonDigits)
		}

		var n, err = strconv.ParseInt(numPart, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedID, "person id %q: %s", id, err)
		}

		return PrefixOffset[prefix] + n, nil
	}

	return 0, errors.Wrapf(ErrMalformedID, "person id %q: unknown prefix; want one of %v", id, Prefixes)
}

// SequentialPersons returns n persons whose ids start at first and are
// incremented with IncID. first must be a valid person id.
func SequentialPersons(first string, n int) ([]Person, error) {
	var ps = make([]Person, 0, n)

	var id = first
	for i := 0; i < n; i++ {
		var p, err = ParsePerson(id)
		if err != nil {
			return nil, errors.Wrapf(err, "sequential person %d", i)
		}
		ps = append(ps, p)
		id = IncID(id)
	}

	return ps, nil
}

// ID returns the prefixed id the Person was built from.
func (p Person) ID() string {
	return p.id
}

// Identity is required for Key
func (p Person) Identity() int64 {
	return p.identity
}

// Equals is required for Key
func (p Person) Equals(other Key) bool {
	var o, ok = other.(Person)
	return ok && o.id == p.id
}

// Less orders persons by id.
func (p Person) Less(o Person) bool {
	return p.id < o.id
}

func (p Person) String() string {
	if p.Name == "" && p.Surname1 == "" && p.Surname2 == "" {
		return p.id
	}
	return fmt.Sprintf("%s{%s %s %s}", p.id, p.Name, p.Surname1, p.Surname2)
}
