package palindromeda

// Is reports whether x reads the same forwards and backwards in decimal.
//
// Algorithm Outline:
//  1. Reject positive multiples of 10 outright: their last digit is 0 while
//     their first digit is not, so no further work is needed.
//  2. Peel digits off the low end of x into rightHalf
//     (rightHalf = rightHalf*10 + x%10) until x ≤ rightHalf. At that point
//     x holds the leading half and rightHalf the trailing half, reversed.
//  3. x is a palindrome iff x == rightHalf (even digit count) or
//     x == rightHalf/10 (odd digit count — drop the absorbed center digit).
//
// Zero is a palindrome.
//
// Complexity:
//
//	Time   = O(digit count of x)
//	Memory = O(1)
func Is(x uint64) bool {
	if x%10 == 0 && x != 0 {
		return false
	}

	var rightHalf uint64
	for x > rightHalf {
		rightHalf = rightHalf*10 + x%10
		x /= 10
	}

	return x == rightHalf || x == rightHalf/10
}
