package qrsymbol

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
)

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
	bmpPaletteSize    = 2 * 4
	bmpDataOffset     = bmpFileHeaderSize + bmpInfoHeaderSize + bmpPaletteSize
)

// bmpHeader is the BITMAPFILEHEADER, BITMAPINFOHEADER and colour table of a
// 1 bit per pixel bitmap, in file order.
type bmpHeader struct {
	Magic      [2]byte
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32

	InfoSize        uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32

	// Index 0 is white, index 1 is black. Entries are blue, green, red, 0.
	Palette [2][4]byte
}

// bmpStride returns the row size in bytes of a 1 bpp bitmap, padded to 32
// bits.
func bmpStride(width int) int {
	return ((width + 31) >> 5) << 2
}

// BMP returns the symbol as an uncompressed 1 bit per pixel BMP file, one
// pixel per module and no quiet zone. Dark modules are palette index 1.
func (s *Symbol) BMP() []byte {
	stride := bmpStride(s.size)
	imageSize := stride * s.size

	header := bmpHeader{
		Magic:      [2]byte{'B', 'M'},
		FileSize:   uint32(bmpDataOffset + imageSize),
		DataOffset: bmpDataOffset,

		InfoSize:  bmpInfoHeaderSize,
		Width:     int32(s.size),
		Height:    int32(s.size),
		Planes:    1,
		BitCount:  1,
		ImageSize: uint32(imageSize),

		Palette: [2][4]byte{{0xff, 0xff, 0xff, 0x00}, {0x00, 0x00, 0x00, 0x00}},
	}

	var b bytes.Buffer

	b.Grow(bmpDataOffset + imageSize)

	// Writes to a bytes.Buffer do not fail.
	_ = binary.Write(&b, binary.LittleEndian, &header)

	row := make([]byte, stride)

	// Bottom-up: the last row of the symbol comes first.
	for y := s.size - 1; y >= 0; y-- {
		for i := range row {
			row[i] = 0
		}

		for x := 0; x < s.size; x++ {
			if s.module[y*s.size+x] {
				row[x/8] |= 0x80 >> uint(x%8)
			}
		}

		b.Write(row)
	}

	return b.Bytes()
}

// BMPBase64 returns BMP, base64 encoded with the standard alphabet.
func (s *Symbol) BMPBase64() string {
	return base64.StdEncoding.EncodeToString(s.BMP())
}

// DataURI returns b as a base64 data URI of the given media type.
func DataURI(mediaType string, b []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(b)
}
