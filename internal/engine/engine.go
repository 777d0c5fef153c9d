package engine

// =============================================================================
// External interface
// =============================================================================
//
// The counting engine is a pure function of (bytes, locale, carry_in)
// returning (counts, carry_out); given identical inputs it returns
// bit-identical outputs regardless of the CPU tier chosen. The core
// performs no I/O, no allocation beyond what a single call needs, and
// never retains a reference to the buffer past return.

// CountBytes counts a fully-owned, non-streamed buffer: it starts a
// fresh CarryState, counts the whole buffer, and flushes automatically.
// Use this for a single complete input (one file read entirely into
// memory, or an in-memory string).
func CountBytes(data []byte, loc Locale) Counts {
	carry := NewCarryState()
	counts := countWithTier(data, loc, &carry, SelectedTier())
	return Merge(counts, flushCarry(&carry))
}

// CountStreaming counts one chunk of a logical input, threading carry
// across repeated calls on successive chunks of the same input. The
// caller must invoke Flush exactly once after the final chunk to realize
// any residual state.
func CountStreaming(data []byte, loc Locale, carry *CarryState) Counts {
	return countWithTier(data, loc, carry, SelectedTier())
}

// Flush realizes any residue left in carry once the caller has no more
// input for this logical stream: a pending UTF-8 tail becomes one
// invalid character per residual byte, and an in-progress final line's
// width is folded into MaxLineLength. Calling Flush again on an
// already-flushed carry contributes zero to every field.
func Flush(loc Locale, carry *CarryState) Counts {
	_ = loc // locale does not affect flush semantics; kept for API symmetry with CountStreaming
	return flushCarry(carry)
}
