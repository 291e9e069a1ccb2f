package qrsymbol

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/signintech/gopdf"

	svgo "github.com/ajstarks/svgo"
)

// Media types of the rendered formats, for use with DataURI.
const (
	MediaTypeBMP  = "image/bmp"
	MediaTypePNG  = "image/png"
	MediaTypeJPEG = "image/jpeg"
	MediaTypeSVG  = "image/svg+xml"
	MediaTypePDF  = "application/pdf"
)

// Image returns the symbol as a black on white image of size*size pixels.
// A negative size is a number of pixels per module. The image is enlarged to
// one pixel per module if size is too small.
func (s *Symbol) Image(size int) image.Image {
	// Minimum pixels (both width and height) required.
	realSize := s.size

	// Variable size support.
	if size < 0 {
		size = size * -1 * realSize
	}

	// Actual pixels available to draw the symbol. Automatically increase the
	// image size if it's not large enough.
	if size < realSize {
		size = realSize
	}

	// Output image.
	rect := image.Rectangle{Min: image.Point{}, Max: image.Point{X: size, Y: size}}

	// Saves a few bytes to have them in this order.
	p := color.Palette([]color.Color{color.White, color.Black})
	img := image.NewPaletted(rect, p)

	// Map each image pixel to the nearest QR code module.
	modulesPerPixel := float64(realSize) / float64(size)

	for y := 0; y < size; y++ {
		y2 := int(float64(y) * modulesPerPixel)

		for x := 0; x < size; x++ {
			x2 := int(float64(x) * modulesPerPixel)

			if s.module[y2*s.size+x2] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}

	return img
}

func (s *Symbol) PNG(size int) ([]byte, error) {
	encoder := png.Encoder{CompressionLevel: png.BestCompression}

	var b bytes.Buffer

	if err := encoder.Encode(&b, s.Image(size)); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func (s *Symbol) JPEG(size int) ([]byte, error) {
	var b bytes.Buffer

	if err := jpeg.Encode(&b, s.Image(size), &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// PDF returns a single page PDF holding the symbol image, one point per
// pixel.
func (s *Symbol) PDF(size int) ([]byte, error) {
	img := s.Image(size)

	var b bytes.Buffer

	pdf := gopdf.GoPdf{}

	side := float64(img.Bounds().Dx())
	rect := gopdf.Rect{W: side, H: side}

	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()

	if err := pdf.ImageFrom(img, 0, 0, &rect); err != nil {
		return nil, err
	}

	if err := pdf.Write(&b); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// SVG returns the symbol as one rectangle per dark module, scaled to at
// least size pixels. A negative size is a number of pixels per module.
func (s *Symbol) SVG(size int) ([]byte, error) {
	var b bytes.Buffer

	const (
		bgStyle = "fill: rgb(255, 255, 255); fill-opacity: 1.00"
		fgStyle = "fill: rgb(0, 0, 0); fill-opacity: 1.00"
	)

	scale := math.Floor(float64(size)/float64(s.size)) + float64(1)
	if size < 0 {
		scale = float64(-size)
	}

	size = int(scale) * s.size

	svg := svgo.New(&b)

	svg.Start(size, size)
	svg.Rect(0, 0, size, size, bgStyle)
	svg.Group(fgStyle)
	svg.Scale(scale)

	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.module[y*s.size+x] {
				svg.Rect(x, y, 1, 1)
			}
		}
	}

	svg.Gend()
	svg.Gend()
	svg.End()

	return b.Bytes(), nil
}
