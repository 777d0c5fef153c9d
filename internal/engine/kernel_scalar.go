package engine

// =============================================================================
// Scalar kernel
// =============================================================================
//
// The scalar kernel is both the fallback when no vector tier is available
// and the authoritative UTF-8 path a vector kernel hands a chunk to when
// that chunk contains non-ASCII bytes in Utf8 mode. It is the only place
// the proper UTF-8 decoder lives.

// decodeResult describes the outcome of decoding one codepoint starting
// at a given offset in data.
type decodeResult struct {
	r       rune
	size    int  // bytes consumed; always >= 1
	valid   bool // false if the sequence was rejected
	needMore bool // true if data ended mid-sequence (size bytes should be carried, not counted)
}

// decodeUTF8At decodes one UTF-8 sequence starting at data[0]. If the
// buffer ends mid-sequence, needMore is true and the caller should carry
// data[:len(data)] (at most 3 bytes, since a 4-byte leader with no
// continuations available is itself carried whole) into CarryState and
// not count it yet.
func decodeUTF8At(data []byte) decodeResult {
	b0 := data[0]

	switch {
	case b0 < 0x80:
		return decodeResult{r: rune(b0), size: 1, valid: true}

	case b0&0xE0 == 0xC0: // 2-byte sequence, 110xxxxx
		if b0 < 0xC2 { // overlong (C0, C1)
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		if len(data) < 2 {
			return decodeResult{size: len(data), needMore: true}
		}
		if !isUTF8Continuation(data[1]) {
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		r := rune(b0&0x1F)<<6 | rune(data[1]&0x3F)
		return decodeResult{r: r, size: 2, valid: true}

	case b0&0xF0 == 0xE0: // 3-byte sequence, 1110xxxx
		if len(data) < 3 {
			if len(data) == 2 && !isUTF8Continuation(data[1]) {
				return decodeResult{r: rune(b0), size: 1, valid: false}
			}
			return decodeResult{size: len(data), needMore: true}
		}
		if !isUTF8Continuation(data[1]) || !isUTF8Continuation(data[2]) {
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		r := rune(b0&0x0F)<<12 | rune(data[1]&0x3F)<<6 | rune(data[2]&0x3F)
		if r < 0x0800 { // overlong
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		if r >= 0xD800 && r <= 0xDFFF { // surrogate
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		return decodeResult{r: r, size: 3, valid: true}

	case b0&0xF8 == 0xF0: // 4-byte sequence, 11110xxx
		if b0 > 0xF4 { // would exceed U+10FFFF
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		if len(data) < 4 {
			// Only carry if what we have so far is plausibly a valid
			// prefix; otherwise reject now rather than carrying garbage.
			for i := 1; i < len(data); i++ {
				if !isUTF8Continuation(data[i]) {
					return decodeResult{r: rune(b0), size: 1, valid: false}
				}
			}
			return decodeResult{size: len(data), needMore: true}
		}
		if !isUTF8Continuation(data[1]) || !isUTF8Continuation(data[2]) || !isUTF8Continuation(data[3]) {
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		r := rune(b0&0x07)<<18 | rune(data[1]&0x3F)<<12 | rune(data[2]&0x3F)<<6 | rune(data[3]&0x3F)
		if r < 0x10000 || r > 0x10FFFF { // overlong or out of range
			return decodeResult{r: rune(b0), size: 1, valid: false}
		}
		return decodeResult{r: r, size: 4, valid: true}

	default:
		// Invalid start byte: continuation byte with no leader, or
		// 0xF8-0xFF.
		return decodeResult{r: rune(b0), size: 1, valid: false}
	}
}

// scalarResult accumulates the counts a scalar pass over a byte range
// contributes, to be added into the caller's running totals.
type scalarResult struct {
	lines         uint64
	words         uint64
	chars         uint64
	maxLineLength uint64
}

// scalarCount processes data byte-at-a-time (for SingleByte mode) or by
// full UTF-8 decoding (for Utf8 mode), threading carry across the call.
// It does not touch Bytes (the caller already knows len(data)) and does
// not flush trailing UTF8Tail residue; see flushCarry for that.
func scalarCount(data []byte, loc Locale, carry *CarryState) scalarResult {
	carry.ensureInitialized()
	var res scalarResult

	// Logically prepend any carried UTF-8 tail.
	var work []byte
	if carry.UTF8TailLen > 0 {
		work = make([]byte, 0, int(carry.UTF8TailLen)+len(data))
		work = append(work, carry.UTF8Tail[:carry.UTF8TailLen]...)
		work = append(work, data...)
		carry.UTF8TailLen = 0
	} else {
		work = data
	}

	if loc.Encoding == SingleByte {
		scalarCountSingleByte(work, carry, &res)
		return res
	}

	scalarCountUTF8(work, loc, carry, &res)
	return res
}

func scalarCountSingleByte(data []byte, carry *CarryState, res *scalarResult) {
	for _, b := range data {
		res.chars++
		ws := isASCIIWhitespace(b)
		if !ws && carry.PrevWasWhitespace {
			res.words++
		}
		carry.PrevWasWhitespace = ws
		if isNewline(b) {
			res.lines++
			if carry.CurrentLineWidth > res.maxLineLength {
				res.maxLineLength = carry.CurrentLineWidth
			}
			carry.CurrentLineWidth = 0
		} else {
			carry.CurrentLineWidth++
		}
	}
}

func scalarCountUTF8(data []byte, loc Locale, carry *CarryState, res *scalarResult) {
	i := 0
	for i < len(data) {
		dr := decodeUTF8At(data[i:])
		if dr.needMore {
			// Save as the new tail; will be re-prefixed on the next
			// call, or flushed at EOF.
			carry.UTF8TailLen = uint8(dr.size)
			copy(carry.UTF8Tail[:], data[i:i+dr.size])
			return
		}

		res.chars++

		var ws bool
		var isNL bool
		if dr.valid {
			ws = isUnicodeWhitespace(dr.r)
			isNL = dr.r == 0x0A
		} else {
			// Rejected byte: counts as one character, non-whitespace,
			// never a newline.
			ws = false
			isNL = false
		}

		if !ws && carry.PrevWasWhitespace {
			res.words++
		}
		carry.PrevWasWhitespace = ws

		if isNL {
			res.lines++
			if carry.CurrentLineWidth > res.maxLineLength {
				res.maxLineLength = carry.CurrentLineWidth
			}
			carry.CurrentLineWidth = 0
		} else {
			carry.CurrentLineWidth += lineWidthContribution(loc, dr)
		}

		i += dr.size
	}
}

// lineWidthContribution returns how much one decoded (or rejected)
// character contributes to the in-progress line's width.
func lineWidthContribution(loc Locale, dr decodeResult) uint64 {
	if loc.Width == WidthDisplay {
		return displayWidth(dr)
	}
	return 1 // codepoint count, matching Chars
}

// displayWidth approximates terminal column width for the opt-in
// WidthDisplay mode: zero-width combining marks and C0 control bytes
// contribute nothing, East Asian wide ranges contribute two, everything
// else contributes one. This is a best-effort extension; it is never
// selected by default.
func displayWidth(dr decodeResult) uint64 {
	if !dr.valid {
		return 1
	}
	r := dr.r
	switch {
	case r == 0:
		return 0
	case r < 0x20:
		return 0
	case r >= 0x0300 && r <= 0x036F: // combining diacritical marks
		return 0
	case isEastAsianWide(r):
		return 2
	default:
		return 1
	}
}

// isEastAsianWide reports whether r falls in one of the common East
// Asian Wide/Fullwidth blocks. This is intentionally a coarse
// approximation; the opt-in display-width mode is not meant to be exact.
func isEastAsianWide(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F: // Hangul Jamo
		return true
	case r >= 0x2E80 && r <= 0xA4CF && r != 0x303F: // CJK, Kana, etc.
		return true
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK compatibility ideographs
		return true
	case r >= 0xFF00 && r <= 0xFF60: // Fullwidth forms
		return true
	case r >= 0x20000 && r <= 0x3FFFD: // CJK extension planes
		return true
	default:
		return false
	}
}
