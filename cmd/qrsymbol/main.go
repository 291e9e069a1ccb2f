package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/RashadAnsari/qrsymbol"
)

var g = struct {
	fn     string                 // output filename
	format string                 // output type
	scale  int                    // pixels per module
	level  qrsymbol.RecoveryLevel // error correction level
	latin1 bool                   // convert input to Latin-1
	uri    bool                   // base64 data URI output
}{}

var formats = []string{"bmp", "png", "jpeg", "svg", "pdf", "utf8", "ascii"}

type renderer struct {
	mediaType string
	render    func(s *qrsymbol.Symbol) ([]byte, error)
}

var renderers = map[string]renderer{
	"bmp": {qrsymbol.MediaTypeBMP, func(s *qrsymbol.Symbol) ([]byte, error) {
		return s.BMP(), nil
	}},
	"png":  {qrsymbol.MediaTypePNG, func(s *qrsymbol.Symbol) ([]byte, error) { return s.PNG(-g.scale) }},
	"jpeg": {qrsymbol.MediaTypeJPEG, func(s *qrsymbol.Symbol) ([]byte, error) { return s.JPEG(-g.scale) }},
	"svg":  {qrsymbol.MediaTypeSVG, func(s *qrsymbol.Symbol) ([]byte, error) { return s.SVG(-g.scale) }},
	"pdf":  {qrsymbol.MediaTypePDF, func(s *qrsymbol.Symbol) ([]byte, error) { return s.PDF(-g.scale) }},
	"utf8": {"text/plain", func(s *qrsymbol.Symbol) ([]byte, error) {
		return []byte(s.String()), nil
	}},
	"ascii": {"text/plain", ascii},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine

	fmt.Fprint(w, "QR symbol encoder\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  The message is always encoded in byte mode.

`)

	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println("qrsymbol version 1.0.0")
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert UTF-8 input to Latin-1")
	getopt.Flag(&g.uri, 'b', "write a base64 data URI instead of raw output")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12}),
		"image pixels per module; ignored for types bmp, utf8 and ascii", "scale")
	ff := getopt.Enum('t', formats, "", "output format, one of: "+
		strings.Join(formats, ", ")+
		"; if no -o is given and standard output is a TTY, "+
		"default is utf8, otherwise bmp", "type")

	getopt.Parse()

	g.scale = int(*scale)

	// The enum restricts -l to known levels.
	g.level, _ = qrsymbol.ParseLevel(*lev)

	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "bmp"
		}
	}

	g.format = *ff

	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}

		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	if g.latin1 {
		var err error
		if s, err = charmap.ISO8859_1.NewEncoder().String(s); err != nil {
			log.Fatalln("latin-1:", err)
		}
	}

	symbol, err := qrsymbol.New(s, g.level)
	if err != nil {
		log.Fatalln(err)
	}

	r := renderers[g.format]

	out, err := r.render(symbol)
	if err != nil {
		log.Fatalln(err)
	}

	if g.uri {
		out = []byte(qrsymbol.DataURI(r.mediaType, out) + "\n")
	}

	if err := write(out); err != nil {
		log.Fatalln(err)
	}
}

func write(b []byte) error {
	if g.fn == "" {
		_, err := os.Stdout.Write(b)
		return err
	}

	return os.WriteFile(g.fn, b, 0666)
}

func ascii(s *qrsymbol.Symbol) ([]byte, error) {
	var b bytes.Buffer

	for y := 0; y < s.Size(); y++ {
		for x := 0; x < s.Size(); x++ {
			if s.IsDark(x, y) {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}

		b.WriteByte('\n')
	}

	return b.Bytes(), nil
}
