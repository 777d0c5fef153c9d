package engine

// =============================================================================
// Wide16 vector kernel
// =============================================================================
//
// Processes a 16-byte lane using two 8-byte SWAR words. This is the
// universal baseline tier: it requires no build tag and no CPU feature,
// so it is always a legal dispatcher choice on every architecture Go
// targets.

const wide16LaneSize = 16

// kernelWide16Masks computes the four structural masks for up to 16
// bytes of chunk, zero-padding internally if chunk is shorter. Returns
// validBits = min(len(chunk), 16).
func kernelWide16Masks(chunk []byte) (newlineMask, wsMask, contMask, nonAsciiMask uint64, validBits int) {
	var buf [wide16LaneSize]byte
	validBits = len(chunk)
	if validBits > wide16LaneSize {
		validBits = wide16LaneSize
	}
	copy(buf[:], chunk[:validBits])

	for word := 0; word < 2; word++ {
		w := wordAt(buf[:], word)
		shift := uint(word * 8)

		nl := swarEqual(w, 0x0A)
		ws := swarOneOf(w, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20)
		cont := swarContinuation(w)
		na := swarHighBitSet(w)

		newlineMask |= uint64(movemaskHorizontalAdd8(nl)) << shift
		wsMask |= uint64(movemaskHorizontalAdd8(ws)) << shift
		contMask |= uint64(movemaskHorizontalAdd8(cont)) << shift
		nonAsciiMask |= uint64(movemaskHorizontalAdd8(na)) << shift
	}

	if validBits < wide16LaneSize {
		keep := (uint64(1) << uint(validBits)) - 1
		newlineMask &= keep
		wsMask &= keep
		contMask &= keep
		nonAsciiMask &= keep
	}
	return
}

// wordAt reads 8 bytes from buf starting at byte offset word*8 as a
// little-endian uint64, treating buf[i] as occupying bit lane i*8 (so
// bit position in the resulting movemask corresponds directly to the
// byte's position in buf).
func wordAt(buf []byte, word int) uint64 {
	off := word * 8
	var w uint64
	for i := 0; i < 8; i++ {
		w |= uint64(buf[off+i]) << uint(i*8)
	}
	return w
}
