package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// tgaHeader builds an 18-byte TGA header.
func tgaHeader(imageType byte, width, height, bpp int, descriptor byte) []byte {
	h := make([]byte, tgaHeaderSize)
	h[2] = imageType
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = byte(bpp)
	h[17] = descriptor
	return h
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	// 2x2, 24bpp, stored bottom row first (descriptor bit 5 clear)
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, 0)
	data = append(data,
		// bottom row: blue, white (stored as BGR)
		255, 0, 0, 255, 255, 255,
		// top row: red, green
		0, 0, 255, 0, 255, 0,
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	want := map[[2]int]color.RGBA{
		{0, 0}: {255, 0, 0, 255},
		{1, 0}: {0, 255, 0, 255},
		{0, 1}: {0, 0, 255, 255},
		{1, 1}: {255, 255, 255, 255},
	}
	for p, c := range want {
		if got := rgbaAt(img, p[0], p[1]); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestDecodeTGATopDown32(t *testing.T) {
	data := tgaHeader(TGATypeUncompressed, 1, 2, 32, 0x20)
	data = append(data,
		10, 20, 30, 40, // top
		50, 60, 70, 80, // bottom
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if got := img.(*image.RGBA).RGBAAt(0, 0); got != (color.RGBA{30, 20, 10, 40}) {
		t.Errorf("top pixel = %v", got)
	}
	if got := img.(*image.RGBA).RGBAAt(0, 1); got != (color.RGBA{70, 60, 50, 80}) {
		t.Errorf("bottom pixel = %v", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1 top-down: one run of 2 gray pixels, then one raw black pixel
	data := tgaHeader(TGATypeRLE, 3, 1, 24, 0x20)
	data = append(data,
		0x81, 128, 128, 128, // run, count 2
		0x00, 0, 0, 0, // raw, count 1
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	rgba := img.(*image.RGBA)
	for x, want := range []color.RGBA{{128, 128, 128, 255}, {128, 128, 128, 255}, {0, 0, 0, 255}} {
		if got := rgba.RGBAAt(x, 0); got != want {
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
		{"16 bit", tgaHeader(TGATypeUncompressed, 1, 1, 16, 0)},
		{"empty dimensions", tgaHeader(TGATypeUncompressed, 0, 4, 24, 0)},
		{"truncated raw", append(tgaHeader(TGATypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated rle", append(tgaHeader(TGATypeRLE, 4, 1, 24, 0), 0x83, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadImagePNG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	src.SetGray(2, 1, color.Gray{Y: 200})

	path := filepath.Join(t.TempDir(), "map.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, format, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", img.Bounds())
	}
	if got := rgbaAt(img, 2, 1); got.R != 200 || got.G != 200 || got.B != 200 {
		t.Errorf("pixel = %v, want gray 200", got)
	}
}

func TestDecodeImageBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}
	src.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, format, err := DecodeImage(buf.Bytes(), ".bmp")
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if format != "bmp" {
		t.Errorf("format = %q, want bmp", format)
	}
	if got := rgbaAt(img, 1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestDecodeImageTGAByExtension(t *testing.T) {
	data := tgaHeader(TGATypeUncompressed, 1, 1, 24, 0)
	data = append(data, 1, 2, 3)

	_, format, err := DecodeImage(data, "TGA")
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if format != "tga" {
		t.Errorf("format = %q, want tga", format)
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := LoadImage(path); err == nil {
		t.Error("expected error for undecodable file")
	}
}
