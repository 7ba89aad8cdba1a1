package qrcode

import "golang.org/x/text/encoding/japanese"

// MakeKanji returns a segment representing text encoded in Kanji mode:
// each rune is transcoded to its Shift JIS double-byte form and packed
// into 13 bits as described by ISO/IEC 18004 §7.4.5. MakeKanji returns
// an *InvalidArgumentError if text contains a rune with no Shift JIS
// representation in the JIS X 0208 range the mode covers.
func MakeKanji(text string) (*Segment, error) {
	sjis, err := japanese.ShiftJIS.NewEncoder().String(text)
	if err != nil {
		return nil, &InvalidArgumentError{"text contains characters with no Shift JIS representation"}
	}
	if len(sjis)%2 != 0 {
		return nil, &InvalidArgumentError{"Shift JIS transcoding produced an odd byte count"}
	}

	var bb BitBuffer
	numChars := len(sjis) / 2
	for i := 0; i < len(sjis); i += 2 {
		word := uint32(sjis[i])<<8 | uint32(sjis[i+1])
		var packed uint32
		switch {
		case word >= 0x8140 && word <= 0x9FFC:
			packed = word - 0x8140
		case word >= 0xE040 && word <= 0xEBBF:
			packed = word - 0xC140
		default:
			return nil, &InvalidArgumentError{"Shift JIS word outside the Kanji mode range"}
		}
		packed = packed>>8*0xC0 + packed&0xFF
		if err := bb.AppendBits(packed, 13); err != nil {
			return nil, err
		}
	}
	return &Segment{mode: Kanji, numChars: numChars, bitPayload: &bb}, nil
}
