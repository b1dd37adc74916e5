// Package thousands inserts grouping separators into the digits of
// formatted numbers.
//
// The package takes any value renderable as text, finds the first run of
// digit characters, and punctuates it according to a SeparatorPolicy:
// which character to insert, how large the digit groups are, and which
// characters count as digits. Everything around the run (a minus sign, a
// decimal fraction, a unit suffix) passes through untouched.
//
// # Features
//
//   - Comma, space, and dot grouping by threes out of the box
//   - Arbitrary group sizes, including irregular sequences such as the
//     Indian numbering system's [3, 2]
//   - Caller-defined digit sets (decimal and hexadecimal are predefined)
//   - Correct handling of multi-byte separators and digits
//   - Single-allocation assembly sized from exact byte lengths
//
// # Usage
//
// The convenience helpers cover the common case:
//
//	thousands.Commas(12345)    // "12,345"
//	thousands.Commas(-1234.5)  // "-1,234.5"
//	thousands.Spaces(9876543)  // "9 876 543"
//
// A policy configures everything else:
//
//	policy := thousands.SeparatorPolicy{
//		Separator: ',',
//		Groups:    []uint8{3, 2},
//		Digits:    thousands.ASCIIDecimal,
//	}
//	thousands.Separate(1234567890, policy) // "1,23,45,67,890"
//
//	thousands.SeparateString("deadbeef", thousands.HexFourPolicy)
//	// "dead beef"
//
// The Groups list reads right to left: the first entry sizes the
// rightmost group and the last entry repeats for all remaining digits.
//
// Typed fast paths avoid fmt's reflection when the value's type is known:
//
//	thousands.Int(n, thousands.CommaPolicy)
//	thousands.Uint(u, thousands.SpacePolicy)
//	thousands.Float(f, thousands.CommaPolicy)
//
// # Digit runs
//
// Only the first maximal run of policy digits is grouped, so the "5" in
// "-1234.5" stays where it is. SeparateAllString groups every run
// instead, and Span exposes the prefix/digits/suffix split directly.
//
// # Errors
//
// There are none in normal operation: every input string produces a
// defined output. A policy with an empty Groups list or a zero group
// size is a programming error and panics on first use.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. Policies are read
// but never written, so a single policy value, including the predefined
// ones, may serve any number of simultaneous calls.
package thousands
