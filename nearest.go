package palindromeda

// Nearest-palindrome queries. All of them share one digit kernel:
// reflect the first half of x over its second half, decide — scanning digit
// pairs from the center outward — whether that reflection lands above or
// below x, and when it lands on the wrong side, run a borrow or carry walk
// over the first half before reflecting again.
//
// Algorithm Outline (Floor; Ceiling is the mirror image):
//  1. Palindromic x is its own floor — return it.
//  2. Decompose x into digits d[0..L-1], first half d[0..H-1], H = ceil(L/2).
//  3. Compare pairs (d[L-1-i], d[i]) for i = H..L-1. The first unequal pair
//     is the most significant difference between the reflection and x:
//     reflection below x → reflect the half unchanged, done;
//     reflection above x → the half must shrink by one, step 4.
//  4. Borrow walk from the half's least significant digit leftwards:
//     0 becomes 9 and the walk continues; the first non-zero digit is
//     decremented and the walk stops. A borrow that consumes a leading 1
//     shortens the number: the floor is then the all-nines palindrome one
//     digit shorter (100 → 99, 100000 → 99999).
//
// Complexity:
//
//	Time   = O(digit count of x)
//	Memory = O(1) beyond one short-lived digit buffer
//
// Saturation: Ceiling clamps every x ≥ MaxValue to Max(); Floor of such x
// is Max() as well. Next and Previous saturate at Max() and Min().

// mirrorOrder compares the palindrome reflected from the first half of d
// against the number d spells, scanning pairs from the center outward. The
// first unequal pair is the most significant position where they differ, so
// it alone decides: +1 when the reflection is above, -1 when below, 0 for
// palindromic input.
func mirrorOrder(d []uint8) int {
	length := len(d)
	for i := (length + 1) / 2; i < length; i++ {
		switch mirrored, actual := d[length-1-i], d[i]; {
		case mirrored > actual:
			return 1
		case mirrored < actual:
			return -1
		}
	}

	return 0
}

// Floor returns the greatest palindrome not exceeding x.
func Floor(x uint64) Palindrome {
	if Is(x) {
		return Palindrome{value: x}
	}
	if x >= MaxValue {
		return Max()
	}

	d := digitsOf(x)
	length := len(d)
	half := (length + 1) / 2
	if mirrorOrder(d) > 0 {
		return Palindrome{value: floorBorrow(d)}
	}

	return Palindrome{value: reconstruct(length, d[:half])}
}

// floorBorrow decrements the first half of d and reflects it. Called only
// when the plain reflection exceeds the original number.
func floorBorrow(d []uint8) uint64 {
	length := len(d)
	half := (length + 1) / 2
	for i := half - 1; i >= 0; i-- {
		if d[i] == 0 {
			d[i] = 9 // borrow, keep walking left
			continue
		}
		if i == 0 && d[0] == 1 {
			// The borrow consumes the leading digit, so the number loses
			// one digit and every remaining position is a nine.
			short := length - 1
			nines := d[:(short+1)/2]
			for j := range nines {
				nines[j] = 9
			}

			return reconstruct(short, nines)
		}
		d[i]--

		break
	}

	return reconstruct(length, d[:half])
}

// Ceiling returns the least palindrome not below x, clamped to Max() for
// every x ≥ MaxValue (no larger palindrome fits in a uint64).
func Ceiling(x uint64) Palindrome {
	if x >= MaxValue {
		return Max()
	}
	if Is(x) {
		return Palindrome{value: x}
	}

	d := digitsOf(x)
	length := len(d)
	half := (length + 1) / 2
	if mirrorOrder(d) < 0 {
		return Palindrome{value: ceilingCarry(d)}
	}

	return Palindrome{value: reconstruct(length, d[:half])}
}

// ceilingCarry increments the first half of d and reflects it. Called only
// when the plain reflection falls below the original number, which
// guarantees a non-nine digit somewhere in the half: an all-nines half
// reflects to the largest number of that digit count and never falls below.
// The carry walk therefore always stops inside the half; digit-count growth
// (999999 → 1000001) happens on the reflect path instead, where the input
// is already one digit longer.
func ceilingCarry(d []uint8) uint64 {
	length := len(d)
	half := (length + 1) / 2
	for i := half - 1; i >= 0; i-- {
		if d[i] == 9 {
			d[i] = 0 // carry, keep walking left
			continue
		}
		d[i]++

		break
	}

	return reconstruct(length, d[:half])
}

// Closest returns whichever of Floor(x) and Ceiling(x) is nearer to x.
// Ties favor the ceiling, the larger palindrome.
func Closest(x uint64) Palindrome {
	lower, upper := Floor(x), Ceiling(x)
	if x-lower.value < upper.value-x {
		return lower
	}

	return upper
}

// Next returns the smallest palindrome greater than p, saturating at Max().
func (p Palindrome) Next() Palindrome {
	if p.value >= MaxValue {
		return Max()
	}

	return Ceiling(p.value + 1)
}

// Previous returns the largest palindrome smaller than p, saturating at
// Min().
func (p Palindrome) Previous() Palindrome {
	if p.value == MinValue {
		return Min()
	}

	return Floor(p.value - 1)
}
