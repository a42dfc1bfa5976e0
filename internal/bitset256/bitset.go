// Package bitset256 provides a fixed-size set of byte values (0-255).
//
// It backs the character-class partitions computed over the derivative
// engine's byte alphabet: every partition block in that engine is exactly a
// set of bytes, so a 256-bit bitset is a tighter, allocation-free substitute
// for a set[int] or a sorted []int of byte values.
package bitset256

import "math/bits"

// Set is a set of byte values 0-255, stored as four uint64 words.
//
// The zero value is the empty set and is ready to use.
type Set struct {
	words [4]uint64
}

// Full returns the set containing every byte value.
func Full() Set {
	return Set{words: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}
}

// Of returns the set containing exactly the given byte.
func Of(b byte) Set {
	var s Set
	s.Add(b)
	return s
}

// Range returns the set containing every byte in [lo, hi] inclusive.
func Range(lo, hi byte) Set {
	var s Set
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
	return s
}

// Add puts b into the set.
func (s *Set) Add(b byte) {
	s.words[b>>6] |= 1 << (b & 63)
}

// Test reports whether b is in the set.
func (s Set) Test(b byte) bool {
	return s.words[b>>6]&(1<<(b&63)) != 0
}

// Any reports whether the set has any member.
func (s Set) Any() bool {
	return s.words[0] != 0 || s.words[1] != 0 || s.words[2] != 0 || s.words[3] != 0
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return !s.Any()
}

// Union returns the bitwise OR of s and t.
func (s Set) Union(t Set) Set {
	var r Set
	for i := range r.words {
		r.words[i] = s.words[i] | t.words[i]
	}
	return r
}

// Intersect returns the bitwise AND of s and t.
func (s Set) Intersect(t Set) Set {
	var r Set
	for i := range r.words {
		r.words[i] = s.words[i] & t.words[i]
	}
	return r
}

// Complement returns the bitwise NOT of s.
func (s Set) Complement() Set {
	var r Set
	for i := range r.words {
		r.words[i] = ^s.words[i]
	}
	return r
}

// Difference returns the members of s that are not in t (s &^ t).
func (s Set) Difference(t Set) Set {
	var r Set
	for i := range r.words {
		r.words[i] = s.words[i] &^ t.words[i]
	}
	return r
}

// Equal reports whether s and t contain exactly the same bytes.
func (s Set) Equal(t Set) bool {
	return s.words == t.words
}

// Min returns the lowest byte value in the set and true, or (0, false) if
// the set is empty.
func (s Set) Min() (byte, bool) {
	for i, w := range s.words {
		if w == 0 {
			continue
		}
		return byte(i*64 + bits.TrailingZeros64(w)), true
	}
	return 0, false
}
