// Package render draws qrcode.Symbol values into pixel-based image
// formats. It is a consumer of the qrcode package, not part of its
// core encoding pipeline: a symbol's module matrix is a self-contained
// result, and callers who want some other output format can walk it
// with GetModule directly.
package render

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/qiluno/goqr/qrcode"
)

// Options controls how a Symbol is rasterized: each module becomes a
// Scale x Scale block of pixels, surrounded by a Border-module quiet
// zone of the opposite color. Reverse swaps which color is "dark".
type Options struct {
	Scale   int
	Border  int
	Reverse bool
}

func (o Options) normalize() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Border < 0 {
		o.Border = 0
	}
	return o
}

// EncodePBM writes sym as a Portable Bit Map (netpbm P4 raw bitmap) to
// w, one bit per pixel, for the lightest possible output of a symbol
// meant for further processing rather than display.
func EncodePBM(w io.Writer, sym *qrcode.Symbol, opt Options) error {
	opt = opt.normalize()
	b := bufio.NewWriter(w)
	length := opt.Scale * (sym.Size() + opt.Border*2)
	if _, err := b.WriteString("P4\n" + strconv.Itoa(length) + " " + strconv.Itoa(length) + "\n"); err != nil {
		return err
	}

	rowBytes := (length + 7) / 8
	row := make([]byte, rowBytes)
	white := byte(0)
	if opt.Reverse {
		white = 0xff
	}

	quietRow := make([]byte, rowBytes)
	for i := range quietRow {
		quietRow[i] = white
	}
	for i := 0; i < opt.Scale*opt.Border; i++ {
		if _, err := b.Write(quietRow); err != nil {
			return err
		}
	}

	for y := 0; y < sym.Size(); y++ {
		for i := range row {
			row[i] = 0
		}
		for x := -opt.Border; x < sym.Size()+opt.Border; x++ {
			dark := sym.GetModule(x, y) != opt.Reverse
			if !dark {
				continue
			}
			for s := 0; s < opt.Scale; s++ {
				bit := opt.Border*opt.Scale + x*opt.Scale + s
				row[bit/8] |= 1 << uint(7-bit%8)
			}
		}
		for s := 0; s < opt.Scale; s++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}

	for i := 0; i < opt.Scale*opt.Border; i++ {
		if _, err := b.Write(quietRow); err != nil {
			return err
		}
	}
	return b.Flush()
}

// EncodePNG writes sym as an 8-bit grayscale PNG to w using
// the standard library's image/png encoder.
func EncodePNG(w io.Writer, sym *qrcode.Symbol, opt Options) error {
	opt = opt.normalize()
	length := opt.Scale * (sym.Size() + opt.Border*2)
	img := image.NewGray(image.Rect(0, 0, length, length))

	lightColor := color.Gray{Y: 0xff}
	darkColor := color.Gray{Y: 0x00}
	if opt.Reverse {
		lightColor, darkColor = darkColor, lightColor
	}
	for py := 0; py < length; py++ {
		for px := 0; px < length; px++ {
			img.SetGray(px, py, lightColor)
		}
	}

	for y := 0; y < sym.Size(); y++ {
		for x := 0; x < sym.Size(); x++ {
			if !sym.GetModule(x, y) {
				continue
			}
			x0 := (x + opt.Border) * opt.Scale
			y0 := (y + opt.Border) * opt.Scale
			for dy := 0; dy < opt.Scale; dy++ {
				for dx := 0; dx < opt.Scale; dx++ {
					img.SetGray(x0+dx, y0+dy, darkColor)
				}
			}
		}
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
