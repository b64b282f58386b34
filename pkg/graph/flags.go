package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Flags is a fixed-size bit vector indexed by node.
type Flags struct {
	bits *bitset.BitSet
	size int
}

// NewFlags creates a Flags with size bits, all cleared
func NewFlags(size int) *Flags {
	return &Flags{
		bits: bitset.New(uint(size)),
		size: size,
	}
}

// Size returns the number of bits
func (f *Flags) Size() int {
	return f.size
}

// Get reports whether bit i is set
func (f *Flags) Get(i int) bool {
	f.check(i)
	return f.bits.Test(uint(i))
}

// Set sets bit i to value
func (f *Flags) Set(i int, value bool) {
	f.check(i)
	f.bits.SetTo(uint(i), value)
}

// SetAll sets every bit to value
func (f *Flags) SetAll(value bool) {
	f.bits.ClearAll()
	if value {
		f.bits.FlipRange(0, uint(f.size))
	}
}

// Count returns the number of set bits
func (f *Flags) Count() int {
	return int(f.bits.Count())
}

// NextSet returns the first set bit at or after i
func (f *Flags) NextSet(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	if i >= f.size {
		return 0, false
	}
	next, ok := f.bits.NextSet(uint(i))
	if !ok || int(next) >= f.size {
		return 0, false
	}
	return int(next), true
}

// Intersect returns a new Flags with the bits set in both f and other
func (f *Flags) Intersect(other *Flags) *Flags {
	f.checkSize(other)
	return &Flags{bits: f.bits.Intersection(other.bits), size: f.size}
}

// Union sets every bit of f that is set in other
func (f *Flags) Union(other *Flags) {
	f.checkSize(other)
	f.bits.InPlaceUnion(other.bits)
}

func (f *Flags) check(i int) {
	if i < 0 || i >= f.size {
		panic(newIndexError("flag", i, f.size))
	}
}

func (f *Flags) checkSize(other *Flags) {
	if other.size != f.size {
		panic(fmt.Sprintf("flags size mismatch: %d and %d", f.size, other.size))
	}
}
