package qrcode

// Version-dependent tables from ISO/IEC 18004 Annex D/E, indexed by
// ecc level (0=Low,1=Medium,2=Quartile,3=High) and version (1-40, at
// index version-1). These are the only large static tables in this
// package; everything else is computed from them.

// numRawDataCodewords is the total number of data+ECC codewords a symbol
// of each version holds, independent of error correction level.
var numRawDataCodewords = [40]int{
	26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// eccCodewordsPerBlock[level][version-1] is the number of error
// correction codewords appended to each block at that level and version.
var eccCodewordsPerBlock = [4][40]int{
	LevelLow: {
		7, 10, 15, 20, 26, 18, 20, 24, 30, 18,
		20, 24, 26, 30, 22, 24, 28, 30, 28, 28,
		28, 28, 30, 30, 26, 28, 30, 30, 30, 30,
		30, 30, 30, 30, 30, 30, 30, 30, 30, 30,
	},
	LevelMedium: {
		10, 16, 26, 18, 24, 16, 18, 22, 22, 26,
		30, 22, 22, 24, 24, 28, 28, 26, 26, 26,
		26, 28, 28, 28, 28, 28, 28, 28, 28, 28,
		28, 28, 28, 28, 28, 28, 28, 28, 28, 28,
	},
	LevelQuartile: {
		13, 22, 18, 26, 18, 24, 18, 22, 20, 24,
		28, 26, 24, 20, 30, 24, 28, 28, 26, 30,
		28, 30, 30, 30, 30, 28, 30, 30, 30, 30,
		30, 30, 30, 30, 30, 30, 30, 30, 30, 30,
	},
	LevelHigh: {
		17, 28, 22, 16, 22, 28, 26, 26, 24, 28,
		24, 28, 22, 24, 24, 30, 28, 28, 26, 28,
		30, 24, 30, 30, 30, 30, 30, 30, 30, 30,
		30, 30, 30, 30, 30, 30, 30, 30, 30, 30,
	},
}

// numErrorCorrectionBlocks[level][version-1] is the total number of RS
// blocks data codewords are split across at that level and version.
var numErrorCorrectionBlocks = [4][40]int{
	LevelLow: {
		1, 1, 1, 1, 1, 2, 2, 2, 2, 4,
		4, 4, 4, 4, 6, 6, 6, 6, 7, 8,
		8, 9, 9, 10, 12, 12, 12, 13, 14, 15,
		16, 17, 18, 19, 19, 20, 21, 22, 24, 25,
	},
	LevelMedium: {
		1, 1, 1, 2, 2, 4, 4, 4, 5, 5,
		5, 8, 9, 9, 10, 10, 11, 13, 14, 16,
		17, 17, 18, 20, 21, 23, 25, 26, 28, 29,
		31, 33, 35, 37, 38, 40, 43, 45, 47, 49,
	},
	LevelQuartile: {
		1, 1, 2, 2, 4, 4, 6, 6, 8, 8,
		8, 10, 12, 16, 12, 17, 16, 18, 21, 20,
		23, 23, 25, 27, 29, 34, 34, 35, 38, 40,
		43, 45, 48, 51, 53, 56, 59, 62, 65, 68,
	},
	LevelHigh: {
		1, 1, 2, 4, 4, 4, 5, 6, 8, 8,
		11, 11, 16, 16, 18, 16, 19, 21, 25, 25,
		25, 34, 30, 32, 35, 37, 40, 42, 45, 48,
		51, 54, 57, 60, 63, 66, 70, 74, 77, 81,
	},
}

// dataCapacityCodewords returns the number of data codewords (excluding
// error correction codewords) a symbol of the given version and ecc
// level can carry.
func dataCapacityCodewords(version int, ecc EccLevel) int {
	return numRawDataCodewords[version-1] -
		eccCodewordsPerBlock[ecc][version-1]*numErrorCorrectionBlocks[ecc][version-1]
}

// alignmentPatternPositions returns the coordinates, along one axis, at
// which 5x5 alignment patterns are centered for the given version. The
// full set of alignment pattern centers is every pair drawn from this
// list, excluding pairs that would collide with a finder pattern.
func alignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}
	numAlign := version/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}
	positions := make([]int, numAlign)
	positions[0] = 6
	pos := version*4 + 10
	for i := numAlign - 1; i >= 1; i-- {
		positions[i] = pos
		pos -= step
	}
	return positions
}
