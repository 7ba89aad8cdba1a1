package qrcode

import "testing"

func TestNewSymbolFunctionPatternsAreImmutableUnderMasking(t *testing.T) {
	sym := newSymbol(5, LevelMedium)
	before := make([][]bool, sym.size)
	for y := range before {
		before[y] = append([]bool(nil), sym.modules[y]...)
	}
	sym.applyMask(3)
	for y := 0; y < sym.size; y++ {
		for x := 0; x < sym.size; x++ {
			if sym.isFunction[y][x] && sym.modules[y][x] != before[y][x] {
				t.Fatalf("function module at (%d,%d) changed under masking", x, y)
			}
		}
	}
}

func TestApplyMaskIsSelfInverse(t *testing.T) {
	sym := newSymbol(3, LevelLow)
	before := make([][]bool, sym.size)
	for y := range before {
		before[y] = append([]bool(nil), sym.modules[y]...)
	}
	sym.applyMask(5)
	sym.applyMask(5)
	for y := 0; y < sym.size; y++ {
		for x := 0; x < sym.size; x++ {
			if sym.modules[y][x] != before[y][x] {
				t.Fatalf("applyMask twice did not restore module (%d,%d)", x, y)
			}
		}
	}
}

func TestFinderPatternCorners(t *testing.T) {
	sym := newSymbol(1, LevelLow)
	// Center of a finder pattern's inner 3x3 block is always dark.
	if !sym.GetModule(3, 3) {
		t.Error("top-left finder center not dark")
	}
	if !sym.GetModule(sym.size-4, 3) {
		t.Error("top-right finder center not dark")
	}
	if !sym.GetModule(3, sym.size-4) {
		t.Error("bottom-left finder center not dark")
	}
	// Separator ring (distance 4 from center) is always light.
	if sym.GetModule(3+4, 3+4) {
		t.Error("expected light separator corner near top-left finder")
	}
}

func TestVersionInfoOnlyForV7Plus(t *testing.T) {
	small := newSymbol(6, LevelLow)
	big := newSymbol(7, LevelLow)
	// The version info block sits at rows/cols [size-11, size-8). For a
	// version-6 symbol there's no version info, so that whole region is
	// ordinary (non-reserved) data area.
	anyReserved := false
	for y := 0; y < 6; y++ {
		for x := small.size - 11; x < small.size-8; x++ {
			if small.isFunction[y][x] {
				anyReserved = true
			}
		}
	}
	if anyReserved {
		t.Error("version 6 symbol has a reserved version-info-shaped region")
	}
	anyReserved = false
	for y := 0; y < 6; y++ {
		for x := big.size - 11; x < big.size-8; x++ {
			if big.isFunction[y][x] {
				anyReserved = true
			}
		}
	}
	if !anyReserved {
		t.Error("version 7 symbol has no reserved version info region")
	}
}

func TestGetModuleOutOfBoundsIsFalse(t *testing.T) {
	sym := newSymbol(1, LevelLow)
	if sym.GetModule(-1, -1) || sym.GetModule(sym.size, sym.size) {
		t.Error("GetModule out of bounds should report false")
	}
}

// TestVersion1FunctionModuleCount hardcodes the reserved-module count for
// a version-1 symbol (3 finders+separators at 64 cells each, 2*(21-16)
// new timing cells, 31 format-info+dark-module cells, no alignment or
// version-info region) against 441-208: version 1 is the one version
// whose data region divides evenly into whole codewords with no leftover
// remainder bits, a fact independent of this package's own arithmetic.
func TestVersion1FunctionModuleCount(t *testing.T) {
	sym := newSymbol(1, LevelLow)
	const want = 233
	got := 0
	for y := 0; y < sym.size; y++ {
		for x := 0; x < sym.size; x++ {
			if sym.isFunction[y][x] {
				got++
			}
		}
	}
	if got != want {
		t.Fatalf("reserved module count = %d, want %d", got, want)
	}
	dataBits := sym.size*sym.size - got
	if want := numRawDataCodewords[0] * 8; dataBits != want {
		t.Fatalf("data-carrying bits = %d, want %d (version 1 has zero remainder bits)", dataBits, want)
	}
}

// formatInfoVector is one row of the standard published table of final
// 15-bit format information strings per (ecc, mask) pair (ISO/IEC 18004
// Annex C / Table 3 worked examples, reproduced in essentially every
// third-party QR Code encoding writeup). bits is written MSB (bit 14)
// first, matching the order the bits are stamped into the matrix.
type formatInfoVector struct {
	ecc  EccLevel
	mask int
	bits string
}

var formatInfoVectors = []formatInfoVector{
	{LevelLow, 0, "111011111000100"},
	{LevelLow, 1, "111001011110011"},
	{LevelLow, 2, "111110110101010"},
	{LevelLow, 3, "111100010011101"},
	{LevelLow, 4, "110011000101111"},
	{LevelLow, 5, "110001100011000"},
	{LevelLow, 6, "110110001000001"},
	{LevelLow, 7, "110100101110110"},
	{LevelMedium, 0, "101010000010010"},
	{LevelMedium, 1, "101000100100101"},
	{LevelMedium, 2, "101111001111100"},
	{LevelMedium, 3, "101101101001011"},
	{LevelMedium, 4, "100010111111001"},
	{LevelMedium, 5, "100000011001110"},
	{LevelMedium, 6, "100111110010111"},
	{LevelMedium, 7, "100101010100000"},
	{LevelQuartile, 0, "011010101011111"},
	{LevelQuartile, 1, "011000001101000"},
	{LevelQuartile, 2, "011111100110001"},
	{LevelQuartile, 3, "011101000000110"},
	{LevelQuartile, 4, "010010010110100"},
	{LevelQuartile, 5, "010000110000011"},
	{LevelQuartile, 6, "010111011011010"},
	{LevelQuartile, 7, "010101111101101"},
	{LevelHigh, 0, "001011010001001"},
	{LevelHigh, 1, "001001110111110"},
	{LevelHigh, 2, "001110011100111"},
	{LevelHigh, 3, "001100111010000"},
	{LevelHigh, 4, "000011101100010"},
	{LevelHigh, 5, "000001001010101"},
	{LevelHigh, 6, "000110100001100"},
	{LevelHigh, 7, "000100000111011"},
}

// formatInfoCopyACoords lists, in bit0..bit14 order, the first of the two
// matrix locations drawFormatBits stamps each format bit into.
var formatInfoCopyACoords = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5},
	{8, 7}, {8, 8}, {7, 8},
	{5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

func TestFormatInfoMatchesPublishedVectors(t *testing.T) {
	for _, v := range formatInfoVectors {
		t.Run(v.ecc.String()+"/mask"+string(rune('0'+v.mask)), func(t *testing.T) {
			sym := newSymbol(1, v.ecc)
			sym.drawFormatBits(v.ecc, v.mask)
			for bit := 0; bit < 15; bit++ {
				coord := formatInfoCopyACoords[bit]
				want := v.bits[14-bit] == '1'
				got := sym.GetModule(coord[0], coord[1])
				if got != want {
					t.Fatalf("bit %d at (%d,%d) = %v, want %v (full vector %s)",
						bit, coord[0], coord[1], got, want, v.bits)
				}
			}
		})
	}
}
