package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// LoadImage reads and decodes an image file.
// TGA is chosen by extension since it carries no magic header; every other
// format is sniffed by the registered decoders.
func LoadImage(path string) (image.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return DecodeImage(data, filepath.Ext(path))
}

// DecodeImage decodes in-memory image data. ext is the source file
// extension (with or without the dot) and may be empty.
func DecodeImage(data []byte, ext string) (image.Image, string, error) {
	if strings.EqualFold(strings.TrimPrefix(ext, "."), "tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, "", err
		}
		return img, "tga", nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}
