package engine

import "math/bits"

// =============================================================================
// Chunk driver and line-width semantics
// =============================================================================

// laneMaskFunc computes the four structural masks for up to laneSize
// bytes of a chunk, returning how many of those bytes were valid
// (validBits <= laneSize, less only for a final partial chunk).
type laneMaskFunc func(chunk []byte) (newlineMask, wsMask, contMask, nonAsciiMask uint64, validBits int)

// laneSizeFor returns the lane width and mask function for a tier.
// TierScalar has no lane function; callers must special-case it.
func laneSizeFor(tier CPUTier) (laneSize int, fn laneMaskFunc) {
	switch tier {
	case TierWide64:
		return wide64LaneSize, kernelWide64Masks
	case TierWide32:
		return wide32LaneSize, kernelWide32Masks
	case TierWide16:
		return wide16LaneSize, kernelWide16Masks
	default:
		return 0, nil
	}
}

// countWithTier is the tier-parameterized implementation behind
// CountBytes and CountStreaming.
// Exposed internally (not via the public API) so tests can verify tier
// equivalence by forcing each tier over identical input.
func countWithTier(data []byte, loc Locale, carry *CarryState, tier CPUTier) Counts {
	carry.ensureInitialized()
	var counts Counts

	if tier == TierScalar {
		res := scalarCount(data, loc, carry)
		counts.Bytes = uint64(len(data))
		counts.Lines = res.lines
		counts.Words = res.words
		counts.Chars = res.chars
		counts.MaxLineLength = res.maxLineLength
		return counts
	}

	laneSize, maskFn := laneSizeFor(tier)
	offset := 0
	for offset < len(data) {
		end := offset + laneSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[offset:end]

		// A pending UTF-8 tail from a previous chunk must be resolved
		// together with this chunk's leading bytes by the scalar
		// decoder, regardless of whether this chunk is itself
		// ASCII-only; the vector fast path never sees tails.
		pendingTail := loc.Encoding == UTF8 && carry.UTF8TailLen > 0

		newlineMask, wsMask, contMask, nonAsciiMask, validBits := maskFn(chunk)

		// Cold fallback: a chunk containing non-ASCII bytes in Utf8 mode,
		// continuing a tail from the previous chunk, or measured in
		// WidthDisplay mode (where ASCII control bytes have width 0), is
		// handed whole to the scalar decoder.
		if loc.Encoding == UTF8 && (nonAsciiMask != 0 || pendingTail || loc.Width == WidthDisplay) {
			res := scalarCount(chunk, loc, carry)
			counts.Bytes += uint64(validBits)
			counts.Lines += res.lines
			counts.Words += res.words
			counts.Chars += res.chars
			if res.maxLineLength > counts.MaxLineLength {
				counts.MaxLineLength = res.maxLineLength
			}
			offset = end
			continue
		}

		counts.Bytes += uint64(validBits)
		counts.Lines += uint64(popcount64(newlineMask, validBits))

		if loc.Encoding == SingleByte {
			counts.Chars += uint64(validBits)
		} else {
			counts.Chars += uint64(validBits - popcount64(contMask, validBits))
		}

		counts.Words += uint64(countWordStarts(wsMask, validBits, carry))

		lineMax := accumulateLineWidths(newlineMask, validBits, carry)
		if lineMax > counts.MaxLineLength {
			counts.MaxLineLength = lineMax
		}

		offset = end
	}

	return counts
}

// countWordStarts counts word-start positions in a chunk's whitespace
// mask and updates carry.PrevWasWhitespace to reflect the chunk's last
// valid lane.
//
// A word start is a position where wsMask's bit is 0 and the
// immediately preceding bit (in input order; position -1 supplied by
// carry.PrevWasWhitespace) is 1. This is computed as a single transition
// count rather than scalar lane extraction: shiftedWs is wsMask shifted
// left one with the carried-in bit inserted at position 0, and word
// starts are (^wsMask) & shiftedWs.
func countWordStarts(wsMask uint64, validBits int, carry *CarryState) int {
	if validBits == 0 {
		return 0
	}
	var carryBit uint64
	if carry.PrevWasWhitespace {
		carryBit = 1
	}
	shiftedWs := (wsMask << 1) | carryBit
	wordStarts := (^wsMask) & shiftedWs
	count := popcount64(wordStarts, validBits)

	lastBit := (wsMask >> uint(validBits-1)) & 1
	carry.PrevWasWhitespace = lastBit == 1
	return count
}

// accumulateLineWidths walks newline positions in ascending order,
// closing each line, and returns the largest width observed among lines
// closed in this chunk. The width contribution of each byte in the
// ASCII/byte-counted fast path is always 1 (this function is only
// reached for SingleByte chunks and for ASCII-only Utf8 chunks measured
// in WidthCodepoints mode, where width == byte count).
func accumulateLineWidths(newlineMask uint64, validBits int, carry *CarryState) uint64 {
	var maxSeen uint64
	work := newlineMask
	lastNL := -1
	for work != 0 {
		p := bits.TrailingZeros64(work)
		work &= work - 1

		width := carry.CurrentLineWidth + uint64(p-lastNL-1)
		if width > maxSeen {
			maxSeen = width
		}
		carry.CurrentLineWidth = 0
		lastNL = p
	}
	carry.CurrentLineWidth += uint64(validBits - lastNL - 1)
	return maxSeen
}

// flushCarry realizes the residue left in carry at end-of-input: each
// byte of a pending UTF8Tail counts as one invalid character, and a
// final in-progress line's width is compared against the running max.
// Idempotent: a carry already flushed contributes nothing on a second
// call.
func flushCarry(carry *CarryState) Counts {
	carry.ensureInitialized()
	if carry.flushed {
		return Counts{}
	}
	carry.flushed = true

	var counts Counts
	if carry.UTF8TailLen > 0 {
		// These bytes were already counted into Bytes when the chunk
		// that produced them was consumed; only Chars is credited here,
		// one invalid character per residual byte. This does not run the
		// residue through countWordStarts, so a trailing truncated
		// multibyte prefix never opens a new word on its own.
		counts.Chars = uint64(carry.UTF8TailLen)
		carry.UTF8TailLen = 0
	}
	counts.MaxLineLength = carry.CurrentLineWidth
	return counts
}
