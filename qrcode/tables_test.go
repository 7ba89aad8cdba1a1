package qrcode

import (
	"strconv"
	"testing"
)

func TestAlignmentPatternPositionsVersion1(t *testing.T) {
	if pos := alignmentPatternPositions(1); pos != nil {
		t.Fatalf("version 1 has no alignment patterns, got %v", pos)
	}
}

func TestAlignmentPatternPositionsKnownVersions(t *testing.T) {
	cases := map[int][]int{
		2:  {6, 18},
		7:  {6, 22, 38},
		32: {6, 34, 60, 86, 112, 138},
		40: {6, 30, 58, 86, 114, 142, 170},
	}
	for v, want := range cases {
		v, want := v, want
		t.Run(strconv.Itoa(v), func(t *testing.T) {
			got := alignmentPatternPositions(v)
			if len(got) != len(want) {
				t.Fatalf("version %d: got %v, want %v", v, got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("version %d: got %v, want %v", v, got, want)
				}
			}
		})
	}
}

func TestDataCapacityCodewordsMatchesRawMinusEcc(t *testing.T) {
	for v := 1; v <= 40; v++ {
		for ecc := LevelLow; ecc <= LevelHigh; ecc++ {
			got := dataCapacityCodewords(v, ecc)
			want := numRawDataCodewords[v-1] - eccCodewordsPerBlock[ecc][v-1]*numErrorCorrectionBlocks[ecc][v-1]
			if got != want {
				t.Fatalf("version %d ecc %v: dataCapacityCodewords = %d, want %d", v, ecc, got, want)
			}
			if got <= 0 {
				t.Fatalf("version %d ecc %v: non-positive data capacity %d", v, ecc, got)
			}
		}
	}
}

func TestSymbolSizeFormula(t *testing.T) {
	for v := 1; v <= 40; v++ {
		sym := newSymbol(v, LevelLow)
		if want := 4*v + 17; sym.Size() != want {
			t.Errorf("version %d: Size() = %d, want %d", v, sym.Size(), want)
		}
	}
}
