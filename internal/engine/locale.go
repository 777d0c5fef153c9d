package engine

// =============================================================================
// Data model
// =============================================================================

// Encoding is a tagged value selecting how bytes decode into characters and
// how word boundaries are recognized.
type Encoding int

const (
	// SingleByte treats every byte as one character; word segmentation
	// uses ASCII whitespace only.
	SingleByte Encoding = iota
	// UTF8 decodes characters by UTF-8 rules; word segmentation uses
	// Unicode whitespace on the decoded codepoint.
	UTF8
)

// String returns a human-readable name for e.
func (e Encoding) String() string {
	switch e {
	case SingleByte:
		return "SingleByte"
	case UTF8:
		return "UTF8"
	default:
		return "Unknown"
	}
}

// WidthMode selects how max line width is measured in UTF8 mode. It has
// no effect in SingleByte mode, where width is always bytes.
type WidthMode int

const (
	// WidthCodepoints counts one unit of width per decoded codepoint.
	// This is the default and matches the count used for Chars.
	WidthCodepoints WidthMode = iota
	// WidthDisplay is an opt-in extension approximating terminal display
	// columns (combining marks and most control bytes contribute zero,
	// wide CJK codepoints contribute two). It is never selected by
	// default.
	WidthDisplay
)

// Locale bundles the encoding and width-measurement mode a counting call
// should use. The zero value is SingleByte/WidthCodepoints; the UTF8
// default is DefaultLocale.
type Locale struct {
	Encoding Encoding
	Width    WidthMode
}

// DefaultLocale is UTF8 decoding with codepoint-counted line width.
var DefaultLocale = Locale{Encoding: UTF8, Width: WidthCodepoints}

// SingleByteLocale is the legacy 8-bit locale: byte equals character.
var SingleByteLocale = Locale{Encoding: SingleByte}

// Counts is the tuple produced by a counting call. All fields are
// non-negative; Chars <= Bytes; Lines <= Chars; Words <= Chars.
type Counts struct {
	Lines         uint64
	Words         uint64
	Bytes         uint64
	Chars         uint64
	MaxLineLength uint64
}

// CarryState is the cross-chunk continuation state threaded through the
// chunk driver. Its zero value is the correct initial state for a new
// logical input: PrevWasWhitespace starts true because the beginning of
// input is a word boundary.
type CarryState struct {
	// PrevWasWhitespace records whether the last byte seen so far (across
	// all chunks so far) was whitespace. Initially true.
	PrevWasWhitespace bool

	// CurrentLineWidth is the running width of the line currently in
	// progress (i.e. since the last newline, or since the start of input).
	CurrentLineWidth uint64

	// UTF8Tail holds up to three bytes of an incomplete multi-byte UTF-8
	// sequence whose start was seen but whose continuations were not
	// yet available.
	UTF8Tail [3]byte
	// UTF8TailLen is the number of valid bytes in UTF8Tail, in [0,3].
	UTF8TailLen uint8

	// flushed marks that Flush has already realized this carry's
	// residue; a second Flush call is then a no-op.
	flushed bool

	// initialized tracks whether any chunk has gone through PrevWasWhitespace
	// initialization; used only to provide the documented zero-value
	// behavior without forcing callers through a constructor.
	initialized bool
}

// NewCarryState returns a CarryState initialized for the start of a new
// logical input: PrevWasWhitespace is true (beginning of input is a word
// boundary), and all other fields are zero.
func NewCarryState() CarryState {
	return CarryState{PrevWasWhitespace: true, initialized: true}
}

// ensureInitialized lazily applies NewCarryState's invariant to a
// zero-value CarryState passed in directly by a caller who skipped
// NewCarryState (the zero value of bool is false, not true, so this
// cannot be expressed as a plain Go zero value).
func (c *CarryState) ensureInitialized() {
	if !c.initialized {
		c.PrevWasWhitespace = true
		c.initialized = true
	}
}

// CPUTier is a tagged value selecting a vector lane width, chosen once
// per process and cached thereafter.
type CPUTier int

const (
	// TierScalar is the byte-at-a-time fallback, always available.
	TierScalar CPUTier = iota
	// TierWide16 processes 16-byte lanes.
	TierWide16
	// TierWide32 processes 32-byte lanes.
	TierWide32
	// TierWide64 processes 64-byte lanes (requires AVX-512F/BW/VL and a
	// goexperiment.simd build on amd64).
	TierWide64
)

// String returns a human-readable tier name.
func (t CPUTier) String() string {
	switch t {
	case TierScalar:
		return "Scalar"
	case TierWide16:
		return "Wide16"
	case TierWide32:
		return "Wide32"
	case TierWide64:
		return "Wide64"
	default:
		return "Unknown"
	}
}
