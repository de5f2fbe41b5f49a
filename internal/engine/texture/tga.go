package texture

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types.
const (
	TGATypeUncompressed = 2  // uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

var errTGATruncated = errors.New("tga: data truncated")

// DecodeTGA decodes an uncompressed or RLE true-color TGA file with 24 or
// 32 bits per pixel. It returns the image with row 0 at the top and the
// channel count the file carries (3 or 4).
func DecodeTGA(data []byte) (*image.NRGBA, int, error) {
	if len(data) < 18 {
		return nil, 0, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, 0, errors.New("tga: color-mapped images not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, 0, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, 0, fmt.Errorf("%w: tga depth %d", ErrUnsupportedChannels, bpp)
	}
	if width == 0 || height == 0 {
		return nil, 0, errors.New("tga: empty image")
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, 0, errTGATruncated
	}

	d := tgaDecoder{
		src:         data[offset:],
		img:         image.NewNRGBA(image.Rect(0, 0, width, height)),
		bytesPerPix: bpp / 8,
		// Bit 5 set means rows are stored top first, bit 4 right to left
		topToBottom: descriptor&0x20 != 0,
		rightToLeft: descriptor&0x10 != 0,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, 0, err
	}
	return d.img, d.bytesPerPix, nil
}

type tgaDecoder struct {
	src         []byte
	pos         int
	img         *image.NRGBA
	bytesPerPix int
	topToBottom bool
	rightToLeft bool
}

// pixel reads one BGR(A) pixel from the stream.
func (d *tgaDecoder) pixel() ([4]uint8, error) {
	if d.pos+d.bytesPerPix > len(d.src) {
		return [4]uint8{}, errTGATruncated
	}
	p := d.src[d.pos:]
	d.pos += d.bytesPerPix
	c := [4]uint8{p[2], p[1], p[0], 255}
	if d.bytesPerPix == 4 {
		c[3] = p[3]
	}
	return c, nil
}

// put stores the n-th pixel in file order.
func (d *tgaDecoder) put(n int, c [4]uint8) {
	w := d.img.Rect.Dx()
	x, y := n%w, n/w
	if d.rightToLeft {
		x = w - 1 - x
	}
	if !d.topToBottom {
		y = d.img.Rect.Dy() - 1 - y
	}
	i := d.img.PixOffset(x, y)
	copy(d.img.Pix[i:i+4], c[:])
}

func (d *tgaDecoder) raw() error {
	total := d.img.Rect.Dx() * d.img.Rect.Dy()
	for n := 0; n < total; n++ {
		c, err := d.pixel()
		if err != nil {
			return err
		}
		d.put(n, c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	total := d.img.Rect.Dx() * d.img.Rect.Dy()
	n := 0
	for n < total {
		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		header := d.src[d.pos]
		d.pos++
		count := int(header&0x7f) + 1

		if header&0x80 != 0 {
			c, err := d.pixel()
			if err != nil {
				return err
			}
			for i := 0; i < count && n < total; i++ {
				d.put(n, c)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			c, err := d.pixel()
			if err != nil {
				return err
			}
			d.put(n, c)
			n++
		}
	}
	return nil
}
