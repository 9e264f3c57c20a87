package bitset

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

const wordBits = 64

// Set is a fixed-universe bitset over vertex ids in [0, n).
// n is the universe size; words holds ceil(n/64) uint64 words.
type Set struct {
	n     int
	words []uint64
}

// New returns an empty Set over the universe [0, n).
// Stage 1 (Validate): n must be >= 0.
// Stage 2 (Prepare): allocate the backing word slice.
// Complexity: O(n/64) time and memory.
func New(n int) *Set {
	if n < 0 {
		panic("bitset: negative universe size")
	}

	return &Set{n: n, words: make([]uint64, wordCount(n))}
}

// Of returns a Set over universe [0, n) containing exactly the given ids.
// Complexity: O(len(ids) + n/64).
func Of(n int, ids ...int) *Set {
	s := New(n)
	for _, v := range ids {
		s.Add(v)
	}

	return s
}

// Full returns a Set over universe [0, n) containing every vertex.
// Complexity: O(n/64).
func Full(n int) *Set {
	s := New(n)
	for v := 0; v < n; v++ {
		s.Add(v)
	}

	return s
}

func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// N returns the universe size this Set is defined over.
func (s *Set) N() int { return s.n }

// checkUniverse panics if other does not share this Set's universe size.
// Stage 1 (Validate): matching universe is required for any binary op.
func (s *Set) checkUniverse(other *Set) {
	if s.n != other.n {
		panic(fmt.Sprintf("bitset: universe mismatch: %d vs %d", s.n, other.n))
	}
}

func (s *Set) checkBounds(v int) {
	if v < 0 || v >= s.n {
		panic(fmt.Sprintf("bitset: vertex %d out of range [0,%d)", v, s.n))
	}
}

// Add inserts v into the set.
// Complexity: O(1).
func (s *Set) Add(v int) {
	s.checkBounds(v)
	s.words[v/wordBits] |= 1 << uint(v%wordBits)
}

// Remove deletes v from the set, if present.
// Complexity: O(1).
func (s *Set) Remove(v int) {
	s.checkBounds(v)
	s.words[v/wordBits] &^= 1 << uint(v%wordBits)
}

// Contains reports whether v is a member of the set.
// Complexity: O(1).
func (s *Set) Contains(v int) bool {
	s.checkBounds(v)
	return s.words[v/wordBits]&(1<<uint(v%wordBits)) != 0
}

// Len returns the number of members.
// Complexity: O(n/64).
func (s *Set) Len() int {
	count := 0
	for _, w := range s.words {
		count += bits.OnesCount64(w)
	}

	return count
}

// IsEmpty reports whether the set has no members.
// Complexity: O(n/64).
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
// Complexity: O(n/64).
func (s *Set) Clone() *Set {
	out := New(s.n)
	copy(out.words, s.words)

	return out
}

// Slice returns the members of s as an ascending-sorted []int.
// Complexity: O(n).
func (s *Set) Slice() []int {
	out := make([]int, 0, s.Len())
	for v := 0; v < s.n; v++ {
		if s.Contains(v) {
			out = append(out, v)
		}
	}

	return out
}

// ForEach calls fn once per member, in ascending order.
// Complexity: O(n).
func (s *Set) ForEach(fn func(v int)) {
	for v := 0; v < s.n; v++ {
		if s.Contains(v) {
			fn(v)
		}
	}
}

// Union returns a new Set containing members of either s or other.
// Complexity: O(n/64).
func (s *Set) Union(other *Set) *Set {
	s.checkUniverse(other)
	out := New(s.n)
	for i := range out.words {
		out.words[i] = s.words[i] | other.words[i]
	}

	return out
}

// Intersect returns a new Set containing members of both s and other.
// Complexity: O(n/64).
func (s *Set) Intersect(other *Set) *Set {
	s.checkUniverse(other)
	out := New(s.n)
	for i := range out.words {
		out.words[i] = s.words[i] & other.words[i]
	}

	return out
}

// Difference returns a new Set containing members of s not in other.
// Complexity: O(n/64).
func (s *Set) Difference(other *Set) *Set {
	s.checkUniverse(other)
	out := New(s.n)
	for i := range out.words {
		out.words[i] = s.words[i] &^ other.words[i]
	}

	return out
}

// IsSubsetOf reports whether every member of s is also a member of other.
// Complexity: O(n/64).
func (s *Set) IsSubsetOf(other *Set) bool {
	s.checkUniverse(other)
	for i := range s.words {
		if s.words[i]&^other.words[i] != 0 {
			return false
		}
	}

	return true
}

// IsDisjoint reports whether s and other share no members.
// Complexity: O(n/64).
func (s *Set) IsDisjoint(other *Set) bool {
	s.checkUniverse(other)
	for i := range s.words {
		if s.words[i]&other.words[i] != 0 {
			return false
		}
	}

	return true
}

// Equals reports whether s and other contain exactly the same members.
// Complexity: O(n/64).
func (s *Set) Equals(other *Set) bool {
	s.checkUniverse(other)
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// Single returns the lone member of a singleton set.
// Panics if s does not have exactly one member.
func (s *Set) Single() int {
	members := s.Slice()
	if len(members) != 1 {
		panic(fmt.Sprintf("bitset: Single() on set of size %d", len(members)))
	}

	return members[0]
}

// String implements fmt.Stringer, rendering members in ascending order.
// Complexity: O(n).
func (s *Set) String() string {
	members := s.Slice()
	strs := make([]string, len(members))
	for i, v := range members {
		strs[i] = fmt.Sprintf("%d", v)
	}

	return "{" + strings.Join(strs, ",") + "}"
}

// SortByKey returns ids sorted ascending by key(id), ties broken by
// ascending id. Used by callers (algorithms, separator) that need a
// deterministic vertex processing order.
func SortByKey(ids []int, key func(int) int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			return ki < kj
		}

		return out[i] < out[j]
	})

	return out
}
