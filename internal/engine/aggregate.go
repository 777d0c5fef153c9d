package engine

// =============================================================================
// Counts aggregator monoid
// =============================================================================

// Merge combines two Counts produced by independent or sequential
// counting calls: Lines, Bytes, Chars, and Words sum; MaxLineLength
// takes the max. This is the monoid used for multi-file totals. It does
// not attempt any carry reconciliation between A and B (that is the
// chunk driver's job when A and B are two chunks of the *same* logical
// input); Merge is for combining results that are either already
// carry-reconciled or deliberately independent (separate files).
func Merge(a, b Counts) Counts {
	max := a.MaxLineLength
	if b.MaxLineLength > max {
		max = b.MaxLineLength
	}
	return Counts{
		Lines:         a.Lines + b.Lines,
		Words:         a.Words + b.Words,
		Bytes:         a.Bytes + b.Bytes,
		Chars:         a.Chars + b.Chars,
		MaxLineLength: max,
	}
}
