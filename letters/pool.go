// Package letters handles candidate normalization and the letter-pool
// arithmetic for a root word.
package letters

import (
	"sort"
)

// Pool is a multiset of the letters available in a root word. Each letter
// carries a remaining count; spelling a candidate consumes counts.
type Pool struct {
	counts     map[rune]int
	numLetters int
}

// PoolFromWord creates a brand new pool from the letters of word.
func PoolFromWord(word string) *Pool {
	p := &Pool{counts: make(map[rune]int)}
	for _, r := range word {
		p.counts[r]++
		p.numLetters++
	}
	return p
}

// Copy returns a deep copy of this pool.
func (p *Pool) Copy() *Pool {
	n := &Pool{
		counts:     make(map[rune]int, len(p.counts)),
		numLetters: p.numLetters,
	}
	for r, ct := range p.counts {
		n.counts[r] = ct
	}
	return n
}

// Has returns whether at least one occurrence of letter remains.
func (p *Pool) Has(letter rune) bool {
	return p.counts[letter] > 0
}

// CountOf returns the remaining count for letter.
func (p *Pool) CountOf(letter rune) int {
	return p.counts[letter]
}

// Take removes one occurrence of letter. This should only be called if the
// letter is in the pool; it doesn't check that it's there.
func (p *Pool) Take(letter rune) {
	p.counts[letter]--
	p.numLetters--
}

// Add puts one occurrence of letter back in the pool.
func (p *Pool) Add(letter rune) {
	p.counts[letter]++
	p.numLetters++
}

// NumLetters returns the number of letters left in the pool.
func (p *Pool) NumLetters() int {
	return p.numLetters
}

func (p *Pool) Empty() bool {
	return p.numLetters == 0
}

// Covers reports whether candidate can be spelled from the pool, treating
// each pooled letter as consumable exactly once. It walks the candidate in
// order and fails as soon as a letter's remaining count runs out. Letter
// order never matters, only per-letter counts. The pool is not mutated.
func (p *Pool) Covers(candidate string) bool {
	var taken map[rune]int
	for _, r := range candidate {
		if taken == nil {
			taken = make(map[rune]int)
		}
		if taken[r] >= p.counts[r] {
			return false
		}
		taken[r]++
	}
	return true
}

// Counts returns a copy of the per-letter remaining counts.
func (p *Pool) Counts() map[rune]int {
	counts := make(map[rune]int, len(p.counts))
	for r, ct := range p.counts {
		counts[r] = ct
	}
	return counts
}

// Letters returns the letters of the pool with repeats, alphabetized.
func (p *Pool) Letters() []rune {
	letters := make([]rune, 0, p.numLetters)
	for r, ct := range p.counts {
		for i := 0; i < ct; i++ {
			letters = append(letters, r)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// String returns a user-visible version of this pool.
func (p *Pool) String() string {
	return string(p.Letters())
}
