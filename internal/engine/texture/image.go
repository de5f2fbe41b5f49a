package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
)

// ErrUnsupportedChannels is returned for images that are neither RGB nor RGBA.
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// Image is decoded pixel data ready for upload. Rows run bottom to top,
// matching the GL texture origin, and are tightly packed.
type Image struct {
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA)
	Pix      []byte
}

// Stride returns the number of bytes per row.
func (img *Image) Stride() int {
	return img.Width * img.Channels
}

// At returns the texel at column x, row y (row 0 is the bottom row).
// Alpha is 255 for RGB images.
func (img *Image) At(x, y int) (r, g, b, a uint8) {
	i := y*img.Stride() + x*img.Channels
	if img.Channels == 4 {
		return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
	}
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], 255
}

// DecodeFile decodes the image file at path. Files with a .tga extension
// go through the TGA decoder; everything else is sniffed. See Decode.
func DecodeFile(path string, maxSize int) (*Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		src, channels, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return prepare(src, channels, maxSize), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads a JPEG, PNG, BMP or TIFF image, shrinks it so neither side
// exceeds maxSize (0 disables the limit) and flips it vertically.
func Decode(r io.Reader, maxSize int) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	channels, err := channelCount(src)
	if err != nil {
		return nil, fmt.Errorf("%s image: %w", format, err)
	}
	return prepare(src, channels, maxSize), nil
}

func prepare(src image.Image, channels, maxSize int) *Image {
	b := src.Bounds()
	if maxSize > 0 && (b.Dx() > maxSize || b.Dy() > maxSize) {
		src = resize.Thumbnail(uint(maxSize), uint(maxSize), src, resize.Bilinear)
	}
	return pack(toNRGBA(src), channels)
}

// channelCount reports how many channels the source image carries.
// Grayscale sources are rejected like any other non RGB/RGBA layout.
func channelCount(img image.Image) (int, error) {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1, fmt.Errorf("%w: 1", ErrUnsupportedChannels)
	case *image.YCbCr, *image.CMYK:
		return 3, nil
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return 4, nil
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4, nil
			}
		}
		return 3, nil
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 3, nil
		}
		return 4, nil
	}
	return 4, nil
}

// toNRGBA returns src as straight-alpha RGBA with a zero origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if m, ok := src.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// pack copies img into a tightly packed, bottom-up buffer.
func pack(img *image.NRGBA, channels int) *Image {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := &Image{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      make([]byte, w*h*channels),
	}

	stride := out.Stride()
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := out.Pix[(h-1-y)*stride : (h-y)*stride]
		if channels == 4 {
			copy(dst, src)
			continue
		}
		for x := 0; x < w; x++ {
			copy(dst[x*3:x*3+3], src[x*4:x*4+3])
		}
	}
	return out
}
