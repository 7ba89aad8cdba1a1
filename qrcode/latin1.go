package qrcode

import "golang.org/x/text/encoding/charmap"

// MakeLatin1 returns a Byte-mode segment holding text transcoded to
// ISO 8859-1, preceded (via EncodeTextWithECI) by an ECI designator so
// readers that default to UTF-8 still decode it correctly. MakeLatin1
// returns an *InvalidArgumentError if text contains a rune with no
// ISO 8859-1 representation.
func MakeLatin1(text string) (*Segment, error) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return nil, &InvalidArgumentError{"text contains characters with no ISO 8859-1 representation"}
	}
	return MakeBytes([]byte(encoded)), nil
}

// eciISO8859_1 is the ECI designator for ISO 8859-1, per the AIM ECI
// assignment registry referenced by ISO/IEC 18004 Annex D.
const eciISO8859_1 = 1

// EncodeTextWithECI encodes text as ISO 8859-1 bytes under an explicit
// ECI designator segment, for readers that would otherwise assume a
// plain Byte-mode segment is UTF-8. See EncodeSegments for the version
// and error correction rules applied.
func EncodeTextWithECI(text string, minEcc EccLevel, opts ...Option) (*Symbol, error) {
	eci, err := MakeECI(eciISO8859_1)
	if err != nil {
		return nil, err
	}
	body, err := MakeLatin1(text)
	if err != nil {
		return nil, err
	}
	return EncodeSegments([]*Segment{eci, body}, minEcc, opts...)
}
