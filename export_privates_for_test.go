package palindromeda

// Test-bridge (white-box) for the private digit codec.
//
// Purpose:
//   - Expose the UNEXPORTED digit kernels to palindromeda_test ONLY, so the
//     codec contract can be verified without widening the production API.
//
// Provided Surface:
//   - *_TestOnly aliases: thin pass-throughs to the private functions.
//   - PanicHalfLength_TestOnly: the reconstruct panic message, exported to
//     avoid magic strings in tests.
var (
	// DigitsOf_TestOnly exposes digitsOf for white-box tests.
	DigitsOf_TestOnly = digitsOf
	// DigitLength_TestOnly exposes digitLength for white-box tests.
	DigitLength_TestOnly = digitLength
	// Reconstruct_TestOnly exposes reconstruct for white-box tests.
	Reconstruct_TestOnly = reconstruct
	// MirrorOrder_TestOnly exposes mirrorOrder for white-box tests.
	MirrorOrder_TestOnly = mirrorOrder
)

// Panic message export to avoid "magic strings" in tests.
const PanicHalfLength_TestOnly = panicHalfLength
