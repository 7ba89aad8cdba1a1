package qrcode

// alphanumericCharset lists, in index order, every character encodable in
// Alphanumeric mode. A character's index in this string is its value when
// packed into Alphanumeric codewords.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// A Segment is an immutable run of payload bits tagged with the mode used
// to interpret them. Segments are normally built with the Make* factory
// functions below; the NewSegment constructor is the low-level escape
// hatch and does not validate that bitPayload agrees with mode and
// numChars; that is the caller's responsibility.
type Segment struct {
	mode       Mode
	numChars   int
	bitPayload *BitBuffer
}

// NewSegment constructs a Segment directly from a mode, character count
// and bit payload. The payload is defensively copied; the caller retains
// ownership of the BitBuffer passed in. numChars must be non-negative.
func NewSegment(mode Mode, numChars int, bitPayload *BitBuffer) (*Segment, error) {
	if numChars < 0 {
		return nil, &InvalidArgumentError{"segment character count is negative"}
	}
	return &Segment{mode: mode, numChars: numChars, bitPayload: bitPayload.Clone()}, nil
}

// Mode returns the segment's encoding mode.
func (s *Segment) Mode() Mode { return s.mode }

// NumChars returns the segment's unencoded length: characters for
// Numeric/Alphanumeric/Kanji, bytes for Byte, and 0 for ECI.
func (s *Segment) NumChars() int { return s.numChars }

// Data returns a defensive copy of the segment's payload bits.
func (s *Segment) Data() *BitBuffer { return s.bitPayload.Clone() }

// IsNumeric reports whether every character of text is a decimal digit,
// i.e. whether text can be passed to MakeNumeric.
func IsNumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether every character of text is encodable in
// Alphanumeric mode, i.e. whether text can be passed to MakeAlphanumeric.
func IsAlphanumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if indexInAlphanumericCharset(text[i]) < 0 {
			return false
		}
	}
	return true
}

func indexInAlphanumericCharset(c byte) int {
	for i := 0; i < len(alphanumericCharset); i++ {
		if alphanumericCharset[i] == c {
			return i
		}
	}
	return -1
}

// MakeBytes returns a segment representing data encoded in Byte mode,
// one codeword per byte.
func MakeBytes(data []byte) *Segment {
	var bb BitBuffer
	for _, c := range data {
		bb.AppendBits(uint32(c), 8)
	}
	return &Segment{mode: Byte, numChars: len(data), bitPayload: &bb}
}

// MakeNumeric returns a segment representing digits, a string of decimal
// digits, encoded in Numeric mode: groups of three digits become 10 bits,
// a trailing pair becomes 7 bits, and a trailing singleton becomes 4 bits.
// MakeNumeric returns an *InvalidArgumentError if digits contains a
// non-digit character.
func MakeNumeric(digits string) (*Segment, error) {
	if !IsNumeric(digits) {
		return nil, &InvalidArgumentError{"string contains non-numeric characters"}
	}
	var bb BitBuffer
	for i := 0; i < len(digits); {
		n := len(digits) - i
		if n > 3 {
			n = 3
		}
		var v uint32
		for j := 0; j < n; j++ {
			v = v*10 + uint32(digits[i+j]-'0')
		}
		bb.AppendBits(v, n*3+1)
		i += n
	}
	return &Segment{mode: Numeric, numChars: len(digits), bitPayload: &bb}, nil
}

// MakeAlphanumeric returns a segment representing text encoded in
// Alphanumeric mode: pairs of characters become 11 bits (45*v1+v2), and a
// trailing singleton becomes 6 bits. MakeAlphanumeric returns an
// *InvalidArgumentError if text contains a character outside the
// Alphanumeric charset.
func MakeAlphanumeric(text string) (*Segment, error) {
	if !IsAlphanumeric(text) {
		return nil, &InvalidArgumentError{"string contains unencodable characters in alphanumeric mode"}
	}
	var bb BitBuffer
	i := 0
	for ; i+2 <= len(text); i += 2 {
		v := uint32(indexInAlphanumericCharset(text[i]))*45 +
			uint32(indexInAlphanumericCharset(text[i+1]))
		bb.AppendBits(v, 11)
	}
	if i < len(text) {
		bb.AppendBits(uint32(indexInAlphanumericCharset(text[i])), 6)
	}
	return &Segment{mode: Alphanumeric, numChars: len(text), bitPayload: &bb}, nil
}

// MakeECI returns a segment designating an Extended Channel
// Interpretation with the given assignment value, which must be in
// [0, 10^6). The assignment number is packed per ISO/IEC 18004 Annex D:
// 1 byte if it fits in 7 bits, a "10" prefix plus 14 bits if it fits in
// 14, otherwise a "110" prefix plus 21 bits.
func MakeECI(assignVal int) (*Segment, error) {
	var bb BitBuffer
	switch {
	case assignVal < 0:
		return nil, &InvalidArgumentError{"ECI assignment value out of range"}
	case assignVal < 1<<7:
		bb.AppendBits(uint32(assignVal), 8)
	case assignVal < 1<<14:
		bb.AppendBits(0b10, 2)
		bb.AppendBits(uint32(assignVal), 14)
	case assignVal < 1_000_000:
		bb.AppendBits(0b110, 3)
		bb.AppendBits(uint32(assignVal), 21)
	default:
		return nil, &InvalidArgumentError{"ECI assignment value out of range"}
	}
	return &Segment{mode: ECI, numChars: 0, bitPayload: &bb}, nil
}

// MakeSegments returns a segment list representing text using a single
// mode chosen by a numeric-then-alphanumeric-then-byte heuristic: an
// empty string yields no segments; an all-digit string is encoded in
// Numeric mode; a string encodable in Alphanumeric mode is encoded there;
// otherwise the UTF-8 bytes of text are encoded in Byte mode. This
// heuristic never switches modes mid-string; see MakeKanji and
// QRSegmentAdvanced-style optimal multi-segment splitting for a more
// thorough (and unimplemented, by design) alternative.
func MakeSegments(text string) []*Segment {
	if text == "" {
		return nil
	}
	if IsNumeric(text) {
		seg, _ := MakeNumeric(text)
		return []*Segment{seg}
	}
	if IsAlphanumeric(text) {
		seg, _ := MakeAlphanumeric(text)
		return []*Segment{seg}
	}
	return []*Segment{MakeBytes([]byte(text))}
}

// GetTotalBits returns the number of bits needed to encode segs at the
// given version, including each segment's mode indicator and character
// count header. It returns -1 if any segment's character count does not
// fit its count field at this version, or if the total would exceed
// 2^31-1 bits.
func GetTotalBits(segs []*Segment, version int) int {
	const maxInt31 = 1<<31 - 1
	var result int64
	for _, seg := range segs {
		ccBits := seg.mode.charCountBits(version)
		if seg.numChars >= 1<<uint(ccBits) {
			return -1
		}
		result += int64(4 + ccBits + seg.bitPayload.Len())
		if result > maxInt31 {
			return -1
		}
	}
	return int(result)
}
