package qrsymbol

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"strings"
	"testing"
)

func TestBMPStride(t *testing.T) {
	for width, want := range map[int]int{1: 4, 21: 4, 32: 4, 33: 8, 57: 8, 177: 24} {
		if got := bmpStride(width); got != want {
			t.Errorf("bmpStride(%d) = %d, want %d", width, got, want)
		}
	}
}

func TestBMPHeader(t *testing.T) {
	s, err := New("HELLO", Low)
	if err != nil {
		t.Fatal(err)
	}

	b := s.BMP()

	if len(b) != 146 {
		t.Fatalf("len(BMP()) = %d, want 146", len(b))
	}

	le := binary.LittleEndian

	for _, f := range []struct {
		name string
		got  uint32
		want uint32
	}{
		{"file size", le.Uint32(b[2:]), 146},
		{"reserved", le.Uint32(b[6:]), 0},
		{"data offset", le.Uint32(b[10:]), 0x3e},
		{"info size", le.Uint32(b[14:]), 40},
		{"width", le.Uint32(b[18:]), 21},
		{"height", le.Uint32(b[22:]), 21},
		{"planes", uint32(le.Uint16(b[26:])), 1},
		{"bit count", uint32(le.Uint16(b[28:])), 1},
		{"compression", le.Uint32(b[30:]), 0},
		{"image size", le.Uint32(b[34:]), 84},
		{"colours used", le.Uint32(b[46:]), 0},
	} {
		if f.got != f.want {
			t.Errorf("%s = %d, want %d", f.name, f.got, f.want)
		}
	}

	if string(b[:2]) != "BM" {
		t.Errorf("magic = %q", b[:2])
	}

	if palette := b[54:62]; !bytes.Equal(palette, []byte{0xff, 0xff, 0xff, 0, 0, 0, 0, 0}) {
		t.Errorf("palette = % x", palette)
	}
}

func TestBMPPixels(t *testing.T) {
	s, err := New("pixels", Medium)
	if err != nil {
		t.Fatal(err)
	}

	b := s.BMP()
	stride := bmpStride(s.Size())

	for y := 0; y < s.Size(); y++ {
		// Rows are stored bottom-up.
		row := b[bmpDataOffset+(s.Size()-1-y)*stride:]

		for x := 0; x < s.Size(); x++ {
			bit := row[x/8]&(0x80>>uint(x%8)) != 0

			if bit != s.IsDark(x, y) {
				t.Fatalf("pixel (%d, %d) = %v, module is %v", x, y, bit, s.IsDark(x, y))
			}
		}

		for x := s.Size(); x < stride*8; x++ {
			if row[x/8]&(0x80>>uint(x%8)) != 0 {
				t.Fatalf("row %d: padding bit %d set", y, x)
			}
		}
	}

	// Top and bottom rows both start with a finder pattern edge.
	top := b[bmpDataOffset+(s.Size()-1)*stride]
	bottom := b[bmpDataOffset]

	if top != 0xfe || bottom != 0xfe {
		t.Errorf("first bytes of top and bottom rows = %#x, %#x, want 0xfe", top, bottom)
	}
}

func TestBMPBase64(t *testing.T) {
	s, err := New("base64", Highest)
	if err != nil {
		t.Fatal(err)
	}

	got, err := base64.StdEncoding.DecodeString(s.BMPBase64())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, s.BMP()) {
		t.Error("BMPBase64 does not decode to BMP")
	}

	uri := DataURI(MediaTypeBMP, s.BMP())
	if !strings.HasPrefix(uri, "data:image/bmp;base64,Qk") {
		t.Errorf("DataURI() = %.40s...", uri)
	}
}
