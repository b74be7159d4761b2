package palindromeda

// Ordinal bijection: every palindrome owns a 0-based rank in the increasing
// sequence of all palindromes (0 ↔ 0, 1 ↔ 1, …, 10 ↔ 11, 11 ↔ 22, …,
// MaxOrdinal ↔ MaxValue). Both directions run in O(digit count) off one
// precomputed table.

// palindromesUpTo[n] is the count of palindromes having at most n decimal
// digits: the ten single-digit values (zero included) plus
// 9·10^(ceil(k/2)-1) palindromes of exactly k digits for each k ≥ 2.
var palindromesUpTo = [MaxDigits + 1]uint64{
	0, 10, 19, 109, 199, 1099, 1999, 10999, 19999, 109999, 199999,
	1099999, 1999999, 10999999, 19999999, 109999999, 199999999,
	1099999999, 1999999999, 10999999999, 19999999999,
}

// pow10 returns 10 raised to n, for n small enough to fit a uint64.
func pow10(n int) uint64 {
	v := uint64(1)
	for ; n > 0; n-- {
		v *= 10
	}

	return v
}

// Nth returns the palindrome of 0-based rank n, or ok=false when n exceeds
// MaxOrdinal (no palindrome of that rank fits in a uint64).
//
// For n < 10 the rank is the palindrome itself. Otherwise the cumulative
// table brackets the digit length, the remainder indexes into that length's
// first-half space, and the half reflects into the result.
func Nth(n uint64) (Palindrome, bool) {
	if n > MaxOrdinal {
		return Palindrome{}, false
	}
	if n < 10 {
		return Palindrome{value: n}, true
	}

	length := 1
	for palindromesUpTo[length] <= n {
		length++
	}
	offset := n - palindromesUpTo[length-1]
	half := (length + 1) / 2
	halfDigits := digitsOf(pow10(half-1) + offset)

	return Palindrome{value: reconstruct(length, halfDigits)}, true
}

// ToN returns the 0-based rank of p: the number of palindromes strictly
// below it. Inverse of Nth.
func ToN(p Palindrome) uint64 {
	return CountBelow(p.value)
}
