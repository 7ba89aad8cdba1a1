// Command qrgen encodes text or binary data from the command line or
// standard input into a QR Code and writes it as a PBM or PNG image.
package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/qiluno/goqr/qrcode"
	"github.com/qiluno/goqr/render"
)

var g = struct {
	scale      int
	border     int
	rev        bool
	ecc        string
	latin1     bool
	binary     bool
	format     string
	output     string
	minVersion int
	maxVersion int
	mask       int
	noBoost    bool
}{
	scale:      4,
	border:     4,
	ecc:        "medium",
	format:     "",
	output:     "-",
	minVersion: 1,
	maxVersion: 40,
	mask:       -1,
}

func eccByName(s string) (qrcode.EccLevel, bool) {
	switch strings.ToLower(s) {
	case "low", "l":
		return qrcode.LevelLow, true
	case "medium", "m":
		return qrcode.LevelMedium, true
	case "quartile", "q":
		return qrcode.LevelQuartile, true
	case "high", "h":
		return qrcode.LevelHigh, true
	default:
		return 0, false
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("qrgen: ")

	getopt.FlagLong(&g.scale, "scale", 's', "pixels per module")
	getopt.FlagLong(&g.border, "border", 'b', "quiet zone width, in modules")
	getopt.FlagLong(&g.rev, "reverse", 'r', "swap dark and light modules")
	getopt.FlagLong(&g.ecc, "ecc", 'e', "error correction level: low, medium, quartile, high")
	getopt.FlagLong(&g.latin1, "latin1", 0, "transcode input to ISO 8859-1 under an ECI segment")
	getopt.FlagLong(&g.binary, "binary", 0, "treat input as raw bytes, not text")
	getopt.FlagLong(&g.format, "format", 'f', "output format: pbm or png (default: png on a terminal, pbm otherwise)")
	getopt.FlagLong(&g.output, "output", 'o', "output file, or - for standard output")
	getopt.FlagLong(&g.minVersion, "min-version", 0, "smallest QR version to consider, 1-40")
	getopt.FlagLong(&g.maxVersion, "max-version", 0, "largest QR version to consider, 1-40")
	getopt.FlagLong(&g.mask, "mask", 0, "force a mask pattern, 0-7, or -1 to select automatically")
	getopt.FlagLong(&g.noBoost, "no-boost-ecc", 0, "don't raise the error correction level when a version has room to spare")
}

func main() {
	getopt.Parse()
	ecc, ok := eccByName(g.ecc)
	if !ok {
		log.Fatalf("invalid error correction level %q", g.ecc)
	}

	var data []byte
	if args := getopt.Args(); len(args) > 0 {
		data = []byte(strings.Join(args, " "))
	} else {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		data = []byte(strings.TrimSuffix(string(in), "\n"))
	}

	opts := []qrcode.Option{
		qrcode.WithVersionRange(g.minVersion, g.maxVersion),
		qrcode.WithMask(g.mask),
		qrcode.WithBoostEcl(!g.noBoost),
	}

	var sym *qrcode.Symbol
	var err error
	switch {
	case g.binary:
		sym, err = qrcode.EncodeBinary(data, ecc, opts...)
	case g.latin1:
		sym, err = qrcode.EncodeTextWithECI(string(data), ecc, opts...)
	default:
		sym, err = qrcode.EncodeText(string(data), ecc, opts...)
	}
	if err != nil {
		log.Fatal(err)
	}

	format := g.format
	if format == "" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			format = "png"
		} else {
			format = "pbm"
		}
	}

	var w io.Writer = os.Stdout
	if g.output != "-" {
		f, err := os.Create(g.output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	opt := render.Options{Scale: g.scale, Border: g.border, Reverse: g.rev}
	switch format {
	case "png":
		err = render.EncodePNG(bw, sym, opt)
	case "pbm":
		err = render.EncodePBM(bw, sym, opt)
	default:
		log.Fatalf("invalid output format %q", format)
	}
	if err != nil {
		log.Fatal(err)
	}
}
