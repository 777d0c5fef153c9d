// Package engine implements the counting engine: a pure, in-memory
// byte-stream counter producing (lines, words, bytes, chars, max line
// length) using vectorized scanning with a scalar fallback.
package engine

// =============================================================================
// Classifier primitives
// =============================================================================
//
// Every kernel (scalar and every vector tier) must agree on these
// predicates bit-for-bit; tier equivalence depends on it.

// isNewline reports whether b is the line-feed byte.
func isNewline(b byte) bool {
	return b == 0x0A
}

// isASCIIWhitespace reports whether b is ASCII whitespace: tab, LF,
// vertical tab, form feed, CR, or space.
func isASCIIWhitespace(b byte) bool {
	switch b {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

// isUTF8Continuation reports whether b is a UTF-8 continuation byte
// (10xxxxxx).
func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// isNonASCII reports whether b has its high bit set.
func isNonASCII(b byte) bool {
	return b >= 0x80
}

// unicodeWhitespaceCodepoints are the non-ASCII codepoints classified as
// whitespace for word segmentation in Utf8 mode (Unicode space
// separators and related format characters). ASCII whitespace is
// handled by isASCIIWhitespace and is not repeated here.
var unicodeWhitespaceCodepoints = map[rune]struct{}{
	0x0085: {}, 0x00A0: {}, 0x1680: {},
	0x2000: {}, 0x2001: {}, 0x2002: {}, 0x2003: {}, 0x2004: {},
	0x2005: {}, 0x2006: {}, 0x2007: {}, 0x2008: {}, 0x2009: {}, 0x200A: {},
	0x2028: {}, 0x2029: {}, 0x202F: {}, 0x205F: {}, 0x3000: {},
}

// isUnicodeWhitespace reports whether r is whitespace for word
// segmentation purposes in Utf8 mode: ASCII whitespace, or any codepoint
// in the fixed Unicode whitespace table.
func isUnicodeWhitespace(r rune) bool {
	if r >= 0 && r < 0x80 {
		return isASCIIWhitespace(byte(r))
	}
	_, ok := unicodeWhitespaceCodepoints[r]
	return ok
}
