package palindromeda

// CountBelow returns the number of palindromes in the half-open interval
// [0, to), computed in closed form — no enumeration.
//
// Algorithm Outline:
//  1. to == 0 holds nothing: 0.
//  2. Split to into its L digits and first half of H = ceil(L/2) digits;
//     read that half as the integer front.
//  3. Every palindrome with fewer digits counts (table lookup), plus every
//     L-digit palindrome whose first half is strictly less than front —
//     there are front − 10^(H-1) of those (front − 0 when L == 1, where a
//     leading zero is the palindrome 0 itself).
//  4. One candidate remains: the palindrome reflected from front itself.
//     It counts exactly when it lies below to, which the center-outward
//     pair scan of mirrorOrder decides.
//
// Complexity:
//
//	Time   = O(digit count of to)
//	Memory = O(1) beyond one short-lived digit buffer
//
// CountBelow is the engine behind both ToN and Sequence.Len.
func CountBelow(to uint64) uint64 {
	if to == 0 {
		return 0
	}

	d := digitsOf(to)
	length := len(d)
	half := (length + 1) / 2
	var front uint64
	for i := 0; i < half; i++ {
		front = front*10 + uint64(d[i])
	}

	var least uint64
	if length > 1 {
		least = pow10(half - 1)
	}
	count := palindromesUpTo[length-1] + front - least
	if mirrorOrder(d) < 0 {
		count++
	}

	return count
}
