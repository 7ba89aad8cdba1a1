package qrcode

// An EccLevel selects how much of a symbol's capacity is spent on Reed–
// Solomon error correction versus payload data. Higher levels tolerate
// more symbol damage at the cost of less room for data.
type EccLevel int

// Error correction levels, from least to most tolerant of damage.
const (
	LevelLow      EccLevel = iota // recovers ~7% of codewords
	LevelMedium                   // recovers ~15% of codewords
	LevelQuartile                 // recovers ~25% of codewords
	LevelHigh                     // recovers ~30% of codewords
)

// formatBitsByLevel holds the 2-bit code stamped into a symbol's format
// information, which is not the same as EccLevel's ordinal value.
var formatBitsByLevel = [4]uint32{
	LevelLow:      1,
	LevelMedium:   0,
	LevelQuartile: 3,
	LevelHigh:     2,
}

func (l EccLevel) formatBits() uint32 { return formatBitsByLevel[l] }

func (l EccLevel) String() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelQuartile:
		return "Quartile"
	case LevelHigh:
		return "High"
	default:
		return "invalid"
	}
}
