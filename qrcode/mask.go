package qrcode

// applyMask XOR-toggles every non-reserved module according to mask
// pattern id (0-7). Calling it twice with the same id restores the
// original matrix, since XOR is its own inverse; the mask-selection
// loop in encode.go relies on that to trial all eight patterns cheaply.
func (s *Symbol) applyMask(mask int) {
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.isFunction[y][x] {
				continue
			}
			if maskInvert(mask, x, y) {
				s.modules[y][x] = !s.modules[y][x]
			}
		}
	}
}

// maskInvert evaluates one of the eight standard mask predicates at
// (x, y); a true result means that module is flipped.
func maskInvert(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qrcode: invalid mask pattern index")
	}
}

// finderLikePattern is the dark:light:dark:dark:dark:light:dark module
// sequence that, bordered by four light modules on either side, looks
// like the center of a finder pattern and so is penalized: a scanner
// sweeping the symbol could lock onto it as a false finder.
var finderLikePattern = []bool{true, false, true, true, true, false, true}

var (
	finderPenaltyLeading  = append(append([]bool{}, false, false, false, false), finderLikePattern...)
	finderPenaltyTrailing = append(append([]bool{}, finderLikePattern...), false, false, false, false)
)

// penaltyScore computes the four-part penalty score (ISO/IEC 18004
// §7.8.3): adjacent runs of 5+ same-color modules, finder-like
// patterns bordered by quiet zones, uniform 2x2 blocks, and deviation
// of the dark/light balance from 50%. Lower is better; mask selection
// picks the pattern with the smallest total.
func (s *Symbol) penaltyScore() int {
	size := s.size
	penalty := 0

	line := make([]bool, size)
	for y := 0; y < size; y++ {
		copy(line, s.modules[y])
		penalty += runPenalty(line)
		penalty += finderPenalty(line)
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			line[y] = s.modules[y][x]
		}
		penalty += runPenalty(line)
		penalty += finderPenalty(line)
	}

	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			c := s.modules[y][x]
			if s.modules[y][x+1] == c && s.modules[y+1][x] == c && s.modules[y+1][x+1] == c {
				penalty += 3
			}
		}
	}

	dark := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if s.modules[y][x] {
				dark++
			}
		}
	}
	total := size * size
	diff := 2*dark - total
	if diff < 0 {
		diff = -diff
	}
	penalty += ceilDiv(10*diff, total) * 10

	return penalty
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// runPenalty adds 3 + (runLength-5) for every run of 5 or more
// same-color modules in line.
func runPenalty(line []bool) int {
	penalty := 0
	color := line[0]
	run := 1
	for i := 1; i < len(line); i++ {
		if line[i] == color {
			run++
			continue
		}
		if run >= 5 {
			penalty += 3 + (run - 5)
		}
		color, run = line[i], 1
	}
	if run >= 5 {
		penalty += 3 + (run - 5)
	}
	return penalty
}

// finderPenalty adds 40 for every (possibly overlapping) occurrence of
// finderLikePattern bordered by four light modules on one side within
// line, extending into the implicit quiet zone past either end.
func finderPenalty(line []bool) int {
	n := len(line)
	ext := make([]bool, n+8)
	copy(ext[4:4+n], line)

	penalty := 0
	for i := 0; i+11 <= len(ext); i++ {
		w := ext[i : i+11]
		if boolSliceEqual(w, finderPenaltyLeading) {
			penalty += 40
		}
		if boolSliceEqual(w, finderPenaltyTrailing) {
			penalty += 40
		}
	}
	return penalty
}

func boolSliceEqual(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
