package palindromeda

import "fmt"

// Digit codec: every other component works on the ordered decimal digits of
// a uint64, most-significant first. Digit buffers are short-lived, at most
// MaxDigits long, and singly owned by the operation that built them.

// panicHalfLength is raised when reconstruct is handed a first half whose
// size cannot produce the requested total length. This is a contract
// violation at the call site, never a runtime condition.
const panicHalfLength = "palindromeda: reconstruct: first-half size incompatible with requested length"

// digitLength returns the number of decimal digits of x.
// Zero has one digit.
func digitLength(x uint64) int {
	n := 1
	for x >= 10 {
		x /= 10
		n++
	}

	return n
}

// digitsOf decomposes x into its decimal digits, most-significant first.
// digitsOf(0) yields [0]; no other value carries a leading zero.
func digitsOf(x uint64) []uint8 {
	d := make([]uint8, digitLength(x))
	for i := len(d) - 1; i >= 0; i-- {
		d[i] = uint8(x % 10)
		x /= 10
	}

	return d
}

// reconstruct assembles a palindrome of exactly length digits from its
// first half (center digit included when length is odd).
//
// A half of k digits can complete a palindrome of length 2k-1 or 2k:
//
//	reconstruct(5, [3 4 5]) → 34543
//	reconstruct(6, [3 4 5]) → 345543
//
// Digit i of the output equals half[i] while i < len(half), and mirrors
// half[length-1-i] afterwards. Panics unless (length+1)/2 == len(half).
func reconstruct(length int, half []uint8) uint64 {
	if (length+1)/2 != len(half) {
		panic(fmt.Sprintf("%s: length=%d half=%d", panicHalfLength, length, len(half)))
	}

	var v uint64
	for i := 0; i < len(half); i++ {
		v = v*10 + uint64(half[i])
	}
	// Mirror the remaining length-len(half) positions back over the half.
	for i := length - len(half) - 1; i >= 0; i-- {
		v = v*10 + uint64(half[i])
	}

	return v
}
