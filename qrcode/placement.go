package qrcode

// drawCodewords places the bits of data into the matrix's non-reserved
// modules, traversing two-module-wide columns from the right edge
// leftward (skipping the column that the vertical timing pattern
// occupies), alternating the scan direction upward and downward each
// band, and visiting the right column of a pair before the left. Any
// modules left over once data is exhausted stay light; these are the
// remainder bits of versions whose data area is not a whole number of
// codewords.
func (s *Symbol) drawCodewords(data []byte) {
	bitLen := len(data) * 8
	i := 0
	for right := s.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < s.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				var y int
				if (right+1)&2 == 0 {
					y = s.size - 1 - vert
				} else {
					y = vert
				}
				if s.isFunction[y][x] {
					continue
				}
				var bit bool
				if i < bitLen {
					bit = data[i>>3]>>uint(7-i&7)&1 != 0
				}
				s.modules[y][x] = bit
				i++
			}
		}
	}
}
