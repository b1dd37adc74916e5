package thousands

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// signed represents the signed integer types accepted by Int.
type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// unsigned represents the unsigned integer types accepted by Uint.
type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// floating represents the floating-point types accepted by Float.
type floating interface {
	~float32 | ~float64
}

// Separate renders v with the fmt package and inserts p's separators into
// the first run of digits. Any value with a reasonable default format
// works: integers, floats, fmt.Stringer implementations, or plain
// strings.
func Separate(v any, p SeparatorPolicy) string {
	return SeparateString(fmt.Sprint(v), p)
}

// Commas renders v and inserts a comma every three decimal digits from
// the right.
//
//	thousands.Commas(12345) // "12,345"
func Commas(v any) string {
	return Separate(v, CommaPolicy)
}

// Spaces renders v and inserts a space every three decimal digits from
// the right.
func Spaces(v any) string {
	return Separate(v, SpacePolicy)
}

// Dots renders v and inserts a period every three decimal digits from
// the right.
func Dots(v any) string {
	return Separate(v, DotPolicy)
}

// Int formats a signed integer in base 10 and inserts p's separators. It
// skips the reflection cost of the generic Separate path.
func Int[T signed](n T, p SeparatorPolicy) string {
	return SeparateString(strconv.FormatInt(int64(n), 10), p)
}

// Uint formats an unsigned integer in base 10 and inserts p's separators.
func Uint[T unsigned](n T, p SeparatorPolicy) string {
	return SeparateString(strconv.FormatUint(uint64(n), 10), p)
}

// Float formats f without an exponent, using the shortest representation
// that round-trips, and inserts p's separators into the integer part.
// The fractional part sits after the decimal point, outside the first
// digit run, so it is never regrouped.
func Float[T floating](f T, p SeparatorPolicy) string {
	// Sizeof rather than a type assertion: named float32 types must also
	// format at 32-bit precision.
	bits := int(unsafe.Sizeof(f)) * 8
	return SeparateString(strconv.FormatFloat(float64(f), 'f', -1, bits), p)
}

// SeparateString inserts p's separators into the first maximal run of
// policy digits in s. Text before and after the run, including any
// further digit runs, is preserved byte for byte; a string without
// digits is returned unchanged. SeparateString panics when p has no
// group sizes or a zero group size.
func SeparateString(s string, p SeparatorPolicy) string {
	p.validate()

	prefix, digits, suffix, ndigits := span(s, p.isDigit)
	cur := newGroupCursor(p.Groups, ndigits)
	seps := cur.separators()
	if seps == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + seps*utf8.RuneLen(p.Separator))
	b.WriteString(prefix)
	writeRun(&b, digits, &cur, p.Separator)
	b.WriteString(suffix)
	return b.String()
}

// SeparateAllString applies p to every maximal digit run in s rather
// than only the first. Note that digits after a decimal point form their
// own run and are grouped too, which is rarely wanted for a single
// numeric value; use SeparateString for those.
func SeparateAllString(s string, p SeparatorPolicy) string {
	p.validate()

	// First pass counts separators so the builder can be grown to the
	// exact final byte length, as in SeparateString.
	seps := 0
	for rest := s; ; {
		_, _, suffix, ndigits := span(rest, p.isDigit)
		if ndigits == 0 {
			break
		}
		cur := newGroupCursor(p.Groups, ndigits)
		seps += cur.separators()
		rest = suffix
	}
	if seps == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + seps*utf8.RuneLen(p.Separator))
	for rest := s; ; {
		prefix, digits, suffix, ndigits := span(rest, p.isDigit)
		b.WriteString(prefix)
		if ndigits == 0 {
			return b.String()
		}
		cur := newGroupCursor(p.Groups, ndigits)
		writeRun(&b, digits, &cur, p.Separator)
		rest = suffix
	}
}

// writeRun copies one digit run into b, asking cur before each digit
// whether a separator precedes it.
func writeRun(b *strings.Builder, digits string, cur *groupCursor, sep rune) {
	for _, r := range digits {
		if cur.next() {
			b.WriteRune(sep)
		}
		b.WriteRune(r)
	}
}
