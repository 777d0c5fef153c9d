package engine

import "testing"

// TestCountBytesMatchesStreamingPlusFlush checks that the convenience
// entry point CountBytes agrees with the explicit streaming protocol
// (one CountStreaming call over the whole buffer, then Flush).
func TestCountBytesMatchesStreamingPlusFlush(t *testing.T) {
	data := []byte("line one\nline two\xe4\xb8\xad\nline three")
	for _, loc := range []Locale{DefaultLocale, SingleByteLocale} {
		oneShot := CountBytes(data, loc)

		carry := NewCarryState()
		streamed := CountStreaming(data, loc, &carry)
		streamed = Merge(streamed, Flush(loc, &carry))

		if oneShot != streamed {
			t.Errorf("locale %v: CountBytes = %+v, streaming+flush = %+v", loc.Encoding, oneShot, streamed)
		}
	}
}

// TestCountBytesEmpty checks the zero-input edge case end to end.
func TestCountBytesEmpty(t *testing.T) {
	got := CountBytes(nil, DefaultLocale)
	if got != (Counts{}) {
		t.Errorf("CountBytes(nil) = %+v, want zero value", got)
	}
}

// TestCountStreamingIndependentCarryStatesAgree is a sanity check that
// two independent CarryStates over the same data produce identical
// results (no hidden global state leaking between logical streams).
func TestCountStreamingIndependentCarryStatesAgree(t *testing.T) {
	data := []byte("abc def\n")
	carryA := NewCarryState()
	carryB := NewCarryState()

	a := Merge(CountStreaming(data, DefaultLocale, &carryA), Flush(DefaultLocale, &carryA))
	b := Merge(CountStreaming(data, DefaultLocale, &carryB), Flush(DefaultLocale, &carryB))

	if a != b {
		t.Errorf("independent carries diverged: %+v vs %+v", a, b)
	}
}
