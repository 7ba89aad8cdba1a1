// Package gf256 implements arithmetic in the Galois field GF(256) used by
// QR Code error correction, and a Reed–Solomon encoder built on top of it.
package gf256

// A Field is a representation of GF(256) defined by a reducing polynomial
// and a generator element, with precomputed log/antilog tables for fast
// multiplication.
type Field struct {
	poly int  // reducing polynomial, e.g. 0x11d
	gen  byte // generator (primitive element), e.g. 0x02

	log [256]byte    // log[x] = e such that gen^e == x, for x != 0
	exp [255 * 2]byte // exp[e] = gen^e, doubled up to avoid e%255 on lookup
}

// NewField returns the field GF(256) reduced by poly with generator gen.
// QR Codes use poly = 0x11d, gen = 0x02.
func NewField(poly int, gen byte) *Field {
	f := &Field{poly: poly, gen: gen}
	x := 1
	for e := 0; e < 255; e++ {
		f.exp[e] = byte(x)
		f.log[byte(x)] = byte(e)
		x <<= 1
		if x&0x100 != 0 {
			x ^= poly
		}
	}
	copy(f.exp[255:], f.exp[:255])
	return f
}

// Add returns a+b in GF(256). Addition and subtraction are both XOR.
func (f *Field) Add(a, b byte) byte { return a ^ b }

// Mul returns a*b in GF(256).
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[int(f.log[a])+int(f.log[b])]
}

// Exp returns gen^e, the e'th power of the field's generator.
func (f *Field) Exp(e int) byte {
	e %= 255
	if e < 0 {
		e += 255
	}
	return f.exp[e]
}

// An RSEncoder computes Reed–Solomon error correction codewords over a
// Field, for a fixed number of parity bytes.
type RSEncoder struct {
	f       *Field
	divisor []byte // generator coefficients below the leading term, MSB first
}

// NewRSEncoder returns an encoder that produces nparity parity bytes per
// block, by multiplying out the generator polynomial
//
//	(x - gen^0)(x - gen^1)...(x - gen^(nparity-1))
//
// over f. Subtraction is XOR in GF(256), so the roots are added, not
// subtracted.
func NewRSEncoder(f *Field, nparity int) *RSEncoder {
	// gen[k] is the coefficient of x^k; the polynomial is built up one
	// root at a time and is monic (gen[nparity] == 1).
	gen := []byte{1}
	for i := 0; i < nparity; i++ {
		root := f.Exp(i)
		next := make([]byte, len(gen)+1)
		for j, c := range gen {
			next[j] ^= f.Mul(c, root)
			next[j+1] ^= c
		}
		gen = next
	}
	// The division below wants the non-leading coefficients, high degree
	// first.
	divisor := make([]byte, nparity)
	for i, c := range gen[:nparity] {
		divisor[nparity-1-i] = c
	}
	return &RSEncoder{f: f, divisor: divisor}
}

// ECC computes the error correction codewords for data and writes them to
// parity, whose length fixes the number of parity bytes (it must equal the
// nparity passed to NewRSEncoder).
//
// This is ordinary polynomial long division: data padded with len(parity)
// zero bytes, divided by the generator polynomial, keeping the remainder.
func (e *RSEncoder) ECC(data []byte, parity []byte) {
	for i := range parity {
		parity[i] = 0
	}
	for _, d := range data {
		factor := d ^ parity[0]
		copy(parity, parity[1:])
		parity[len(parity)-1] = 0
		if factor == 0 {
			continue
		}
		for i, dv := range e.divisor {
			parity[i] ^= e.f.Mul(dv, factor)
		}
	}
}
