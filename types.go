package palindromeda

import (
	"errors"
	"strconv"
)

// Numeric bounds of the representable palindrome range.
const (
	// MinValue is the smallest palindrome: zero.
	MinValue uint64 = 0
	// MaxValue is the largest palindrome representable in a uint64.
	MaxValue uint64 = 18446744066044764481
	// MaxOrdinal is the 0-based rank of MaxValue among all palindromes,
	// i.e. the largest argument for which Nth reports a value.
	MaxOrdinal uint64 = 11844674405
	// MaxDigits is the decimal digit count of the largest uint64.
	MaxDigits = 20
)

// Sentinel errors for palindromeda operations.
var (
	// ErrNotPalindrome indicates a value whose decimal digits do not read
	// the same forwards and backwards.
	ErrNotPalindrome = errors.New("palindromeda: value is not a palindrome")
)

// Palindrome is an immutable palindromic uint64. The zero value is the
// palindrome 0. Instances are produced only by New or derived by the
// package's own operations, so the palindromic invariant always holds;
// "mutation" (Next, Previous) returns a fresh value.
type Palindrome struct {
	value uint64
}

// New validates x and wraps it. Returns ErrNotPalindrome when the decimal
// digits of x are not symmetric.
func New(x uint64) (Palindrome, error) {
	if !Is(x) {
		return Palindrome{}, ErrNotPalindrome
	}

	return Palindrome{value: x}, nil
}

// Min returns the smallest palindrome, 0.
func Min() Palindrome { return Palindrome{value: MinValue} }

// Max returns the largest palindrome representable in a uint64.
func Max() Palindrome { return Palindrome{value: MaxValue} }

// Uint64 returns the underlying numeric value.
func (p Palindrome) Uint64() uint64 { return p.value }

// String renders the palindrome as its plain decimal digits:
// no separators, no sign.
func (p Palindrome) String() string {
	return strconv.FormatUint(p.value, 10)
}
