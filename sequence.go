package palindromeda

// Sequence is a lazy, finite, forward-only run of palindromes. It holds a
// cursor and an exclusive numeric bound, steps with Next (the palindrome
// method), and knows its total length in O(1) through CountBelow. A
// Sequence is single-pass; construct a fresh one to iterate again.
type Sequence struct {
	cursor uint64 // next palindrome to yield, ceiling-normalized
	first  uint64 // cursor at construction, kept for Len
	bound  uint64 // exclusive upper bound on yielded values
	done   bool
}

func newSequence(from, bound uint64) *Sequence {
	start := Ceiling(from).Uint64()

	return &Sequence{cursor: start, first: start, bound: bound}
}

// Range iterates the palindromes in the half-open interval [from, to).
// An inverted interval is not an error; it simply yields nothing.
func Range(from, to Palindrome) *Sequence {
	return newSequence(from.Uint64(), to.Uint64())
}

// ValueRange iterates the palindromes in [from, to). Neither bound needs to
// be palindromic: from rounds up to the nearest palindrome, to stays a raw
// exclusive numeric bound.
func ValueRange(from, to uint64) *Sequence {
	return newSequence(from, to)
}

// FirstN iterates the first count palindromes, starting from 0.
func FirstN(count uint64) *Sequence {
	return FirstNFrom(count, Min())
}

// FirstNFrom iterates count palindromes starting at from. When the
// requested window reaches past MaxOrdinal the bound degrades to MaxValue
// and the sequence silently yields fewer than count elements; Len reports
// the degraded count.
func FirstNFrom(count uint64, from Palindrome) *Sequence {
	bound := MaxValue
	if count <= MaxOrdinal {
		// Both terms stay far below overflow: ToN never exceeds MaxOrdinal.
		if end, ok := Nth(ToN(from) + count); ok {
			bound = end.Uint64()
		}
	}

	return newSequence(from.Uint64(), bound)
}

// Next yields the next palindrome, or ok=false once the exclusive bound is
// reached. The sequence latches after its last element: further calls keep
// returning ok=false.
func (s *Sequence) Next() (Palindrome, bool) {
	if s.done || s.cursor >= s.bound {
		s.done = true

		return Palindrome{}, false
	}

	p := Palindrome{value: s.cursor}
	if s.cursor == MaxValue {
		// Next saturates at Max; latch instead of yielding it forever.
		s.done = true
	} else {
		s.cursor = p.Next().Uint64()
	}

	return p, true
}

// Len returns the total number of elements the sequence yields, in O(1)
// and without enumeration: the difference of two CountBelow calls over the
// construction bounds. Consuming elements does not change Len.
func (s *Sequence) Len() int {
	if s.first >= s.bound {
		return 0
	}

	return int(CountBelow(s.bound) - CountBelow(s.first))
}
