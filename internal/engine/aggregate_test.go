package engine

import "testing"

// TestMergeIdentity checks that Counts{} is the monoid identity.
func TestMergeIdentity(t *testing.T) {
	c := Counts{Lines: 3, Words: 5, Bytes: 20, Chars: 18, MaxLineLength: 9}
	if got := Merge(c, Counts{}); got != c {
		t.Errorf("Merge(c, zero) = %+v, want %+v", got, c)
	}
	if got := Merge(Counts{}, c); got != c {
		t.Errorf("Merge(zero, c) = %+v, want %+v", got, c)
	}
}

// TestMergeAssociative checks associativity across three arbitrary
// Counts values.
func TestMergeAssociative(t *testing.T) {
	a := Counts{Lines: 1, Words: 2, Bytes: 3, Chars: 4, MaxLineLength: 5}
	b := Counts{Lines: 10, Words: 20, Bytes: 30, Chars: 40, MaxLineLength: 2}
	c := Counts{Lines: 100, Words: 200, Bytes: 300, Chars: 400, MaxLineLength: 50}

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	if left != right {
		t.Errorf("Merge not associative: (a+b)+c = %+v, a+(b+c) = %+v", left, right)
	}
}

// TestMergeSumsAndMaxes exercises the field-by-field combination rule
// directly.
func TestMergeSumsAndMaxes(t *testing.T) {
	a := Counts{Lines: 1, Words: 2, Bytes: 3, Chars: 4, MaxLineLength: 50}
	b := Counts{Lines: 5, Words: 6, Bytes: 7, Chars: 8, MaxLineLength: 9}
	got := Merge(a, b)
	want := Counts{Lines: 6, Words: 8, Bytes: 10, Chars: 12, MaxLineLength: 50}
	if got != want {
		t.Errorf("Merge(a, b) = %+v, want %+v", got, want)
	}
}

// TestMergeMultiFileTotals mirrors the typical caller: one CountBytes per
// file, combined into a grand total.
func TestMergeMultiFileTotals(t *testing.T) {
	fileA := CountBytes([]byte("one two three\n"), DefaultLocale)
	fileB := CountBytes([]byte("four five\n"), DefaultLocale)
	total := Merge(fileA, fileB)
	want := Counts{Lines: 2, Words: 5, Bytes: 24, Chars: 24, MaxLineLength: 13}
	if total != want {
		t.Errorf("total = %+v, want %+v", total, want)
	}
}
