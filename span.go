package thousands

// Span splits s around the first maximal run of characters p classifies
// as digits. The three results always concatenate back to exactly s.
// When s contains no policy digit, the whole input is returned as the
// prefix and the other two results are empty.
func Span(s string, p SeparatorPolicy) (prefix, digits, suffix string) {
	prefix, digits, suffix, _ = span(s, p.isDigit)
	return prefix, digits, suffix
}

// span locates the first maximal digit run in s and returns the
// surrounding slices plus the run length in runes. The byte indices come
// from ranging over the string, so the slices never split a multi-byte
// character.
func span(s string, isDigit func(rune) bool) (prefix, digits, suffix string, ndigits int) {
	start := -1
	for i, r := range s {
		if isDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return s, "", "", 0
	}

	end := len(s)
	for i, r := range s[start:] {
		if !isDigit(r) {
			end = start + i
			break
		}
		ndigits++
	}
	return s[:start], s[start:end], s[end:], ndigits
}
