package dispersion_test

import (
	"math"
	"testing"

	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/key"
	"github.com/pkg/errors"
)

var identities = []int64{
	0, 1, 2, 9, 10, 99, 12345678, 99999999,
	-1, -7, -12345678,
	math.MaxInt64, math.MinInt64,
}

var tableSizes = []uint{1, 2, 3, 5, 7, 10, 64, 97, 1000}

func TestHashInRange(t *testing.T) {
	for _, ts := range tableSizes {
		for _, code := range dispersion.Codes {
			var fd, err = dispersion.New(code, ts)
			if err != nil {
				t.Fatalf("dispersion.New(%s, %d) failed: %s", code, ts, err)
			}
			if fd.TableSize() != ts {
				t.Fatalf("%s.TableSize(),%d != %d", fd, fd.TableSize(), ts)
			}

			for _, id := range identities {
				var h = fd.Hash(key.NewNif(id))
				if h >= ts {
					t.Fatalf("%s.Hash(%d),%d not in [0, %d)", fd, id, h, ts)
				}
			}
		}
	}
}

func TestHashDeterministic(t *testing.T) {
	for _, code := range dispersion.Codes {
		var fd, _ = dispersion.New(code, 97)
		for _, id := range identities {
			var k = key.NewNif(id)
			if fd.Hash(k) != fd.Hash(k) {
				t.Fatalf("%s.Hash(%d) differs between calls", fd, id)
			}
		}
	}
}

func TestModulo(t *testing.T) {
	var fd = dispersion.NewModulo(5)
	var tests = []struct {
		id   int64
		want uint
	}{
		{0, 0}, {3, 3}, {8, 3}, {13, 3}, {4, 4}, {-1, 4}, {-5, 0}, {-6, 4},
	}
	for _, tt := range tests {
		if got := fd.Hash(key.NewNif(tt.id)); got != tt.want {
			t.Fatalf("Modulo(5).Hash(%d),%d != %d", tt.id, got, tt.want)
		}
	}
}

func TestDigitSum(t *testing.T) {
	var fd = dispersion.NewDigitSum(100)
	var tests = []struct {
		id   int64
		want uint
	}{
		{0, 0}, {7, 7}, {12345678, 36}, {99999999, 72}, {-12345678, 36}, {-9, 9},
	}
	for _, tt := range tests {
		if got := fd.Hash(key.NewNif(tt.id)); got != tt.want {
			t.Fatalf("DigitSum(100).Hash(%d),%d != %d", tt.id, got, tt.want)
		}
	}

	// 36 mod 10
	if got := dispersion.NewDigitSum(10).Hash(key.NewNif(12345678)); got != 6 {
		t.Fatalf("DigitSum(10).Hash(12345678),%d != 6", got)
	}
}

func TestPseudoRandomIsPerKey(t *testing.T) {
	var a = dispersion.NewPseudoRandom(1000)
	var b = dispersion.NewPseudoRandom(1000)

	// Interleaving calls for other keys must not disturb a key's value.
	var want = a.Hash(key.NewNif(12345678))
	b.Hash(key.NewNif(87654321))
	a.Hash(key.NewNif(11111111))
	if got := b.Hash(key.NewNif(12345678)); got != want {
		t.Fatalf("PseudoRandom.Hash(12345678) changed after other calls: %d != %d", got, want)
	}
}

func TestSpread(t *testing.T) {
	const ts = 16
	for _, code := range []dispersion.Code{dispersion.PseudoRandomCode, dispersion.XXHashCode} {
		var fd, _ = dispersion.New(code, ts)
		var seen = make(map[uint]bool)
		for id := int64(0); id < 1000; id++ {
			seen[fd.Hash(key.NewNif(id))] = true
		}
		if len(seen) != ts {
			t.Fatalf("%s hit %d of %d buckets for 1000 sequential ids", fd, len(seen), ts)
		}
	}
}

func TestNewErrors(t *testing.T) {
	var _, err = dispersion.New(dispersion.ModuloCode, 0)
	if errors.Cause(err) != dispersion.ErrTableSize {
		t.Fatalf("New(Modulo, 0) err=%v; want cause ErrTableSize", err)
	}

	for _, code := range []dispersion.Code{0, 5, -1} {
		_, err = dispersion.New(code, 10)
		if errors.Cause(err) != dispersion.ErrUnknownCode {
			t.Fatalf("New(%d, 10) err=%v; want cause ErrUnknownCode", code, err)
		}
		if code.Valid() {
			t.Fatalf("Code(%d).Valid() == true", code)
		}
	}
}
