package thousands

import "strings"

// Digit sets for building separator policies.
const (
	// ASCIIDecimal contains the ten decimal digits.
	ASCIIDecimal = "0123456789"

	// ASCIIHex contains the hexadecimal digits in both cases.
	ASCIIHex = "0123456789abcdefABCDEF"
)

// SeparatorPolicy describes how separators are inserted into a run of
// digits. It is pure data: construct one as a composite literal, or use
// one of the predefined policies. A policy is never mutated by this
// package and may be shared freely between goroutines.
type SeparatorPolicy struct {
	// Separator is the character inserted between groups.
	Separator rune

	// Groups holds the group sizes from right to left: the first entry is
	// the size of the rightmost group, and the last entry is the size of
	// every group beyond the explicit list. Grouping by threes is
	// []uint8{3}; the Indian numbering system ("1,23,45,678") is
	// []uint8{3, 2}. Must be non-empty with all entries positive.
	Groups []uint8

	// Digits is the set of characters treated as digits. Any character
	// outside the set delimits the run, so a minus sign or decimal point
	// is left untouched. Only the first run of digits receives
	// separators.
	Digits string
}

// Predefined policies covering the common grouping conventions.
var (
	// CommaPolicy places a comma every three decimal digits.
	CommaPolicy = SeparatorPolicy{Separator: ',', Groups: []uint8{3}, Digits: ASCIIDecimal}

	// SpacePolicy places a space every three decimal digits.
	SpacePolicy = SeparatorPolicy{Separator: ' ', Groups: []uint8{3}, Digits: ASCIIDecimal}

	// DotPolicy places a period every three decimal digits.
	DotPolicy = SeparatorPolicy{Separator: '.', Groups: []uint8{3}, Digits: ASCIIDecimal}

	// HexFourPolicy places a space every four hexadecimal digits.
	HexFourPolicy = SeparatorPolicy{Separator: ' ', Groups: []uint8{4}, Digits: ASCIIHex}
)

// isDigit reports whether the policy classifies r as a digit.
func (p SeparatorPolicy) isDigit(r rune) bool {
	return strings.ContainsRune(p.Digits, r)
}

// validate panics when the policy cannot describe a grouping. An empty
// Groups list leaves no sensible output, and a zero entry in the
// repeating position would never consume a digit, so both are treated as
// programming errors rather than recoverable conditions.
func (p SeparatorPolicy) validate() {
	if len(p.Groups) == 0 {
		panic("thousands: SeparatorPolicy.Groups must contain at least one group size")
	}
	for _, g := range p.Groups {
		if g == 0 {
			panic("thousands: SeparatorPolicy.Groups must not contain a zero group size")
		}
	}
}
