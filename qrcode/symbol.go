package qrcode

// A Symbol is a finished QR Code module matrix: a square grid of dark and
// light modules together with the version, error correction level and
// mask pattern that produced it. A Symbol is immutable once returned
// from an encoder entry point; earlier in its life, the same value is
// mutated in place by the placement pipeline in encode.go.
type Symbol struct {
	version int
	ecc     EccLevel
	mask    int
	size    int

	modules    [][]bool // modules[y][x]; true is dark
	isFunction [][]bool // reserved cells excluded from data placement and masking
}

// Version returns the symbol's version, in [1, 40].
func (s *Symbol) Version() int { return s.version }

// Ecc returns the symbol's error correction level.
func (s *Symbol) Ecc() EccLevel { return s.ecc }

// Mask returns the index, in [0, 7], of the mask pattern applied.
func (s *Symbol) Mask() int { return s.mask }

// Size returns the number of modules on a side: 4*Version()+17.
func (s *Symbol) Size() int { return s.size }

// GetModule reports whether the module at (x, y) is dark. Coordinates
// outside [0, Size()) return false, which callers rendering a quiet
// border around the symbol can rely on.
func (s *Symbol) GetModule(x, y int) bool {
	if x < 0 || x >= s.size || y < 0 || y >= s.size {
		return false
	}
	return s.modules[y][x]
}

// newSymbol allocates a blank matrix of the right size for version and
// draws every function pattern (finders, separators, timing, alignment,
// reserved format/version strips, the dark module), leaving only the
// data-carrying area blank for the caller to fill in.
func newSymbol(version int, ecc EccLevel) *Symbol {
	size := version*4 + 17
	s := &Symbol{version: version, ecc: ecc, mask: -1, size: size}
	s.modules = make([][]bool, size)
	s.isFunction = make([][]bool, size)
	for i := range s.modules {
		s.modules[i] = make([]bool, size)
		s.isFunction[i] = make([]bool, size)
	}

	// Timing patterns.
	for i := 0; i < size; i++ {
		dark := i%2 == 0
		s.setFunctionModule(6, i, dark)
		s.setFunctionModule(i, 6, dark)
	}

	// Finder patterns (each call also draws its separator).
	s.drawFinderPattern(3, 3)
	s.drawFinderPattern(size-4, 3)
	s.drawFinderPattern(3, size-4)

	// Alignment patterns, skipping the three positions that would
	// collide with a finder pattern.
	pos := alignmentPatternPositions(version)
	n := len(pos)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if (i == 0 && j == 0) || (i == 0 && j == n-1) || (i == n-1 && j == 0) {
				continue
			}
			s.drawAlignmentPattern(pos[i], pos[j])
		}
	}

	// Reserve the format information strips (real bits stamped once the
	// mask is chosen) and, for version 7+, the version information
	// blocks. The placeholder level/mask value written here doesn't
	// matter: only the reservation (isFunction = true) is load-bearing.
	s.drawFormatBits(LevelLow, 0)
	if version >= 7 {
		s.drawVersionInfo()
	}

	return s
}

// setFunctionModule sets the module at (x, y) and marks it reserved.
func (s *Symbol) setFunctionModule(x, y int, dark bool) {
	s.modules[y][x] = dark
	s.isFunction[y][x] = true
}

// drawFinderPattern draws a 9x9 finder pattern (7x7 finder plus its
// 1-module separator) centered at (x, y), clipped to the matrix bounds.
// A cell's Chebyshev distance from the center determines its color: the
// 3x3 center and the 7x7 border ring are dark, the ring in between and
// the outermost separator ring are light.
func (s *Symbol) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= s.size || yy < 0 || yy >= s.size {
				continue
			}
			dist := maxInt(absInt(dx), absInt(dy))
			s.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (s *Symbol) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dist := maxInt(absInt(dx), absInt(dy))
			s.setFunctionModule(x+dx, y+dy, dist != 1)
		}
	}
}

// drawFormatBits computes the 15-bit format information for ecc and mask
// (a 5-bit payload protected by a (15,5) BCH code, generator 0x537,
// masked with 0x5412) and stamps both copies into the matrix, plus the
// lone dark module.
func (s *Symbol) drawFormatBits(ecc EccLevel, mask int) {
	data := ecc.formatBits()<<3 | uint32(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem>>9)*0x537
	}
	bits := (data<<10 | rem) ^ 0x5412

	for i := 0; i <= 5; i++ {
		s.setFunctionModule(8, i, bitSet(bits, i))
	}
	s.setFunctionModule(8, 7, bitSet(bits, 6))
	s.setFunctionModule(8, 8, bitSet(bits, 7))
	s.setFunctionModule(7, 8, bitSet(bits, 8))
	for i := 9; i <= 14; i++ {
		s.setFunctionModule(14-i, 8, bitSet(bits, i))
	}

	for i := 0; i <= 7; i++ {
		s.setFunctionModule(s.size-1-i, 8, bitSet(bits, i))
	}
	for i := 8; i <= 14; i++ {
		s.setFunctionModule(8, s.size-15+i, bitSet(bits, i))
	}

	s.setFunctionModule(8, s.size-8, true) // dark module, (8, 4*version+9)
}

// drawVersionInfo computes the 18-bit version information (a (18,6) BCH
// code, generator 0x1F25, unmasked) for symbols of version 7 and above,
// and stamps both copies into the matrix.
func (s *Symbol) drawVersionInfo() {
	rem := uint32(s.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem>>11)*0x1F25
	}
	bits := uint32(s.version)<<12 | rem

	for i := 0; i < 18; i++ {
		bit := bitSet(bits, i)
		a, b := s.size-11+i%3, i/3
		s.setFunctionModule(a, b, bit)
		s.setFunctionModule(b, a, bit)
	}
}

func bitSet(x uint32, i int) bool { return x>>uint(i)&1 != 0 }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
