// Package palindromeda is a toolbox for reasoning about palindromic
// numbers — non-negative integers whose decimal digits read the same
// forwards and backwards — over the full uint64 range.
//
// 🚀 What is palindromeda?
//
//	A small, thread-safe library that brings together:
//		• Predicate: O(log n) palindrome test, no string conversion
//		• Nearest: floor / ceiling / closest palindrome for any uint64
//		• Navigation: next & previous palindrome, saturating at the range ends
//		• Ordinals: a bijection between palindromes and their 0-based rank
//		• Counting: palindromes below any bound in O(1), no enumeration
//		• Sequences: lazy, finite iterators over value ranges or fixed counts
//
// ✨ Why choose palindromeda?
//
//   - Pure digit algebra – no strings, no big.Int, no heap churn on hot paths
//   - Rock-solid bounds – every operation saturates or reports absence,
//     never wanders past Max()
//   - Pure Go – no cgo, no hidden deps
//   - Stateless – every function is reentrant; concurrent callers need
//     no coordination whatsoever
//
// Quick example:
//
//	p := palindromeda.Closest(998001) // 997799 (ties favor the larger side)
//	p = p.Next()                      // 998899
//	n := palindromeda.ToN(p)          // 1997 — its rank among all palindromes
//	q, ok := palindromeda.Nth(n + 1)  // 999999, true
//
//	seq := palindromeda.ValueRange(0, 1000000)
//	fmt.Println(seq.Len())            // 1999 — O(1), nothing enumerated
//
// Range constants:
//
//	MinValue   = 0
//	MaxValue   = 18446744066044764481 // largest palindrome below 2^64
//	MaxOrdinal = 11844674405          // rank of MaxValue
//
// Inputs outside the representable palindrome range clamp: Ceiling and Next
// saturate at Max(), Previous saturates at Min(), and Nth reports absence
// past MaxOrdinal instead of failing.
package palindromeda
