package qrcode

// EncodeText encodes a string using MakeSegments' single-mode heuristic.
// See EncodeSegments for the full set of rules and available Options.
func EncodeText(text string, minEcc EccLevel, opts ...Option) (*Symbol, error) {
	return EncodeSegments(MakeSegments(text), minEcc, opts...)
}

// EncodeBinary encodes raw bytes as a single Byte-mode segment. See
// EncodeSegments for the full set of rules and available Options.
func EncodeBinary(data []byte, minEcc EccLevel, opts ...Option) (*Symbol, error) {
	return EncodeSegments([]*Segment{MakeBytes(data)}, minEcc, opts...)
}

// EncodeSegments builds a symbol carrying segs. By default it chooses
// the smallest version in [1, 40] whose capacity at minEcc fits the
// segments' total bit length, boosts the error correction level as far
// as it will go without changing version, and picks whichever of the
// 8 mask patterns scores lowest on the penalty rules. WithVersionRange,
// WithMask and WithBoostEcl override these defaults. EncodeSegments
// returns a *DataTooLongError if no version in range fits at minEcc,
// and an *InvalidArgumentError for an out-of-range version range or
// mask index.
func EncodeSegments(segs []*Segment, minEcc EccLevel, opts ...Option) (*Symbol, error) {
	cfg := newEncodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minVersion < 1 || cfg.maxVersion > 40 || cfg.minVersion > cfg.maxVersion {
		return nil, &InvalidArgumentError{"version range out of [1, 40]"}
	}
	if cfg.mask < -1 || cfg.mask > 7 {
		return nil, &InvalidArgumentError{"mask must be -1 or in [0, 7]"}
	}

	version, dataUsedBits := -1, 0
	for v := cfg.minVersion; v <= cfg.maxVersion; v++ {
		capacityBits := dataCapacityCodewords(v, minEcc) * 8
		usedBits := GetTotalBits(segs, v)
		if usedBits >= 0 && usedBits <= capacityBits {
			version = v
			dataUsedBits = usedBits
			break
		}
	}
	if version < 0 {
		capacity := dataCapacityCodewords(cfg.maxVersion, minEcc) * 8
		return nil, &DataTooLongError{Bits: GetTotalBits(segs, cfg.maxVersion), Capacity: capacity}
	}

	ecc := minEcc
	if cfg.boostEcl {
		for _, candidate := range [...]EccLevel{LevelMedium, LevelQuartile, LevelHigh} {
			if candidate <= ecc {
				continue
			}
			if dataUsedBits <= dataCapacityCodewords(version, candidate)*8 {
				ecc = candidate
			}
		}
	}

	bb, err := assembleBits(segs, version, ecc)
	if err != nil {
		return nil, err
	}

	numBlocks := numErrorCorrectionBlocks[ecc][version-1]
	eccLen := eccCodewordsPerBlock[ecc][version-1]
	allCodewords := addErrorCorrection(bb, numBlocks, eccLen)

	sym := newSymbol(version, ecc)
	sym.drawCodewords(allCodewords)

	mask := cfg.mask
	if mask < 0 {
		bestMask, bestPenalty := -1, int(^uint(0)>>1)
		for m := 0; m < 8; m++ {
			sym.applyMask(m)
			sym.drawFormatBits(ecc, m)
			p := sym.penaltyScore()
			sym.applyMask(m) // undo; XOR is its own inverse
			if p < bestPenalty {
				bestPenalty, bestMask = p, m
			}
		}
		mask = bestMask
	}
	sym.mask = mask
	sym.applyMask(mask)
	sym.drawFormatBits(ecc, mask)

	return sym, nil
}

// assembleBits concatenates segs' mode indicators, character counts and
// payloads, appends a terminator (up to 4 bits) and pads to a byte
// boundary with zero bits, then pads whole bytes by alternating 0xEC
// and 0x11 up to the version's data capacity. The result is a plain
// byte slice, ready for Reed–Solomon block splitting.
func assembleBits(segs []*Segment, version int, ecc EccLevel) ([]byte, error) {
	var bb BitBuffer
	for _, seg := range segs {
		if err := bb.AppendBits(seg.mode.indicator(), 4); err != nil {
			return nil, err
		}
		ccBits := seg.mode.charCountBits(version)
		if seg.numChars >= 1<<uint(ccBits) {
			return nil, &InvalidArgumentError{"segment character count does not fit this version"}
		}
		if err := bb.AppendBits(uint32(seg.numChars), ccBits); err != nil {
			return nil, err
		}
		if err := bb.AppendAll(seg.bitPayload); err != nil {
			return nil, err
		}
	}

	capacityBits := dataCapacityCodewords(version, ecc) * 8
	if bb.Len() > capacityBits {
		return nil, &DataTooLongError{Bits: bb.Len(), Capacity: capacityBits}
	}

	terminator := capacityBits - bb.Len()
	if terminator > 4 {
		terminator = 4
	}
	if err := bb.AppendBits(0, terminator); err != nil {
		return nil, err
	}
	if err := bb.AppendBits(0, (8-bb.Len()%8)%8); err != nil {
		return nil, err
	}

	data := make([]byte, bb.Len()/8, capacityBits/8)
	for i := range data {
		var b uint32
		for j := 0; j < 8; j++ {
			b = b<<1 | uint32(bb.At(i*8+j))
		}
		data[i] = byte(b)
	}
	for i, pad := len(data), byte(0xEC); i < cap(data); i++ {
		data = append(data, pad)
		if pad == 0xEC {
			pad = 0x11
		} else {
			pad = 0xEC
		}
	}
	return data, nil
}
