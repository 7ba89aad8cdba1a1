package qrcode

import "github.com/qiluno/goqr/gf256"

// qrField is the GF(256) field QR Codes perform all Reed–Solomon
// arithmetic in: primitive polynomial x^8+x^4+x^3+x^2+1 (0x11d),
// generator 2.
var qrField = gf256.NewField(0x11d, 0x02)

// addErrorCorrection splits data into numBlocks blocks sized per ISO/IEC
// 18004 Annex D (the short blocks, if any, come first and are one
// codeword shorter than the long blocks), appends eccLen Reed–Solomon
// parity codewords to each, and returns the final codeword sequence:
// the data codewords of every block interleaved column-major followed
// by the parity codewords of every block interleaved the same way, as
// required by the bitstream format.
func addErrorCorrection(data []byte, numBlocks, eccLen int) []byte {
	numShortBlocks := numBlocks - len(data)%numBlocks
	shortBlockLen := len(data) / numBlocks

	blocks := make([][]byte, numBlocks)
	parities := make([][]byte, numBlocks)
	rs := gf256.NewRSEncoder(qrField, eccLen)

	pos := 0
	for i := 0; i < numBlocks; i++ {
		blockLen := shortBlockLen
		if i >= numShortBlocks {
			blockLen++
		}
		blocks[i] = data[pos : pos+blockLen]
		pos += blockLen

		parities[i] = make([]byte, eccLen)
		rs.ECC(blocks[i], parities[i])
	}

	var out []byte
	longestData := shortBlockLen
	if numShortBlocks < numBlocks {
		longestData++
	}
	for i := 0; i < longestData; i++ {
		for b, blk := range blocks {
			if i >= shortBlockLen && b < numShortBlocks {
				continue // short blocks have already yielded all their data
			}
			out = append(out, blk[i])
		}
	}
	for i := 0; i < eccLen; i++ {
		for _, p := range parities {
			out = append(out, p[i])
		}
	}
	return out
}
