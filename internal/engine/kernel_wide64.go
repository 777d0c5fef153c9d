//go:build goexperiment.simd && amd64

package engine

import (
	"simd/archsimd"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// =============================================================================
// Wide64 vector kernel, AVX-512 backed
// =============================================================================
//
// Two archsimd.Int8x32 lane compares cover the low and high halves of a
// 64-byte chunk, reduced with .Equal().ToBits(), which lowers to
// VPMOVB2M and therefore requires AVX-512F+BW+VL at runtime.
//
// archsimd exposes equality compares but not arbitrary bit-pattern
// tests, so only the two classifier predicates expressible as a small
// OR of byte equalities (newline, ASCII-whitespace membership) go
// through archsimd. UTF-8 continuation and non-ASCII, which are bit-mask
// tests rather than equalities, reuse the same SWAR words the Wide32
// kernel uses, applied across all eight 8-byte words of the 64-byte
// chunk: still a single pass, just not routed through archsimd.

const wide64LaneSize = 64

// wide64Available reports whether AVX-512F, AVX512BW, and AVX512VL are
// all present. Computed once at package init.
var wide64Available = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL

// whitespaceValues are the six ASCII whitespace bytes ORed together to
// build the whitespace mask via repeated equality compares.
var whitespaceValues = [6]byte{0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20}

// kernelWide64Masks computes the four structural masks for up to 64
// bytes of chunk using AVX-512 equality compares for newline/whitespace
// and SWAR for continuation/non-ASCII. Returns validBits = min(len(chunk), 64).
func kernelWide64Masks(chunk []byte) (newlineMask, wsMask, contMask, nonAsciiMask uint64, validBits int) {
	var buf [wide64LaneSize]byte
	validBits = len(chunk)
	if validBits > wide64LaneSize {
		validBits = wide64LaneSize
	}
	copy(buf[:], chunk[:validBits])

	nlCmp := archsimd.BroadcastInt8x32('\n')
	low := archsimd.LoadInt8x32((*[32]int8)(unsafe.Pointer(&buf[0])))
	high := archsimd.LoadInt8x32((*[32]int8)(unsafe.Pointer(&buf[32])))

	nlLow := uint64(low.Equal(nlCmp).ToBits())
	nlHigh := uint64(high.Equal(nlCmp).ToBits())
	newlineMask = nlLow | (nlHigh << 32)

	for _, v := range whitespaceValues {
		cmp := archsimd.BroadcastInt8x32(int8(v))
		wsLow := uint64(low.Equal(cmp).ToBits())
		wsHigh := uint64(high.Equal(cmp).ToBits())
		wsMask |= wsLow | (wsHigh << 32)
	}

	for word := 0; word < 8; word++ {
		w := wordAt(buf[:], word)
		shift := uint(word * 8)
		cont := swarContinuation(w)
		na := swarHighBitSet(w)
		contMask |= uint64(movemaskHorizontalAdd8(cont)) << shift
		nonAsciiMask |= uint64(movemaskHorizontalAdd8(na)) << shift
	}

	if validBits < wide64LaneSize {
		keep := (uint64(1) << uint(validBits)) - 1
		newlineMask &= keep
		wsMask &= keep
		contMask &= keep
		nonAsciiMask &= keep
	}
	return
}
