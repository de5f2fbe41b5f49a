package texture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	// 2x2, 24 bpp, rows stored bottom first: red green / blue white
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, 0)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom row: red, green
		255, 0, 0, 255, 255, 255, // top row: blue, white
	)

	img, channels, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if channels != 3 {
		t.Errorf("channels = %d, want 3", channels)
	}
	if c := img.NRGBAAt(0, 1); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("bottom-left = %v, want red", c)
	}
	if c := img.NRGBAAt(0, 0); c.B != 255 || c.R != 0 {
		t.Errorf("top-left = %v, want blue", c)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1, 32 bpp, top first: one run of 2 translucent red, one raw green
	data := tgaHeader(TGATypeRLE, 3, 1, 32, 0x20)
	data = append(data,
		0x81, 0, 0, 255, 128,
		0x00, 0, 255, 0, 255,
	)

	img, channels, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if channels != 4 {
		t.Errorf("channels = %d, want 4", channels)
	}
	for x, want := range [][4]uint8{{255, 0, 0, 128}, {255, 0, 0, 128}, {0, 255, 0, 255}} {
		c := img.NRGBAAt(x, 0)
		if got := [4]uint8{c.R, c.G, c.B, c.A}; got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte { h := tgaHeader(1, 1, 1, 24, 0); h[1] = 1; return h }()},
		{"grayscale type", tgaHeader(3, 1, 1, 8, 0)},
		{"truncated pixels", append(tgaHeader(TGATypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated rle", append(tgaHeader(TGATypeRLE, 4, 1, 24, 0), 0x83)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, _, err := DecodeTGA(tgaHeader(TGATypeUncompressed, 1, 1, 16, 0))
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("16 bpp: err = %v, want ErrUnsupportedChannels", err)
	}
}

func TestDecodeFileTGA(t *testing.T) {
	data := tgaHeader(TGATypeUncompressed, 1, 2, 24, 0x20)
	data = append(data, 255, 0, 0, 0, 0, 255) // top blue, bottom red
	path := filepath.Join(t.TempDir(), "wall.TGA")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeFile(path, 0)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if img.Channels != 3 || img.Width != 1 || img.Height != 2 {
		t.Fatalf("got %dx%d/%d", img.Width, img.Height, img.Channels)
	}
	// Row 0 of the packed image is the bottom row
	if r, g, b, _ := img.At(0, 0); r != 255 || g != 0 || b != 0 {
		t.Errorf("bottom texel = %d,%d,%d, want red", r, g, b)
	}
	if r, _, b, _ := img.At(0, 1); r != 0 || b != 255 {
		t.Errorf("top texel = %d,_,%d, want blue", r, b)
	}
}

func TestDecodeTGARightToLeft(t *testing.T) {
	// 2x1, top first, right to left: stored red then green
	data := tgaHeader(TGATypeUncompressed, 2, 1, 24, 0x30)
	data = append(data, 0, 0, 255, 0, 255, 0)

	img, _, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if c := img.NRGBAAt(0, 0); c.G != 255 || c.R != 0 {
		t.Errorf("left pixel = %v, want green", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 255 || c.G != 0 {
		t.Errorf("right pixel = %v, want red", c)
	}
}
