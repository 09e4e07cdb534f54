package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/Faultbox/terrainview/internal/engine/texture"
)

// ErrEmptyHeightmap is returned for grids with no samples.
var ErrEmptyHeightmap = errors.New("heightmap is empty")

// LoadError reports a heightmap image that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load heightmap %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewHeightmap wraps row-major samples in a Heightmap.
func NewHeightmap(width, height int, samples []float32) (*Heightmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyHeightmap, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("heightmap %dx%d needs %d samples, got %d", width, height, width*height, len(samples))
	}
	return &Heightmap{Width: width, Height: height, Samples: samples}, nil
}

// At returns the sample at column col and row row.
func (h *Heightmap) At(col, row int) float32 {
	return h.Samples[row*h.Width+col]
}

// LoadHeightmap decodes an image file into a heightmap.
func LoadHeightmap(path string) (*Heightmap, error) {
	img, _, err := texture.LoadImage(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	hm := SampleImage(img)
	if hm == nil {
		return nil, &LoadError{Path: path, Err: ErrEmptyHeightmap}
	}
	return hm, nil
}

// SampleImage converts every pixel to (r+g+b)/255 using 8-bit straight
// channels, so a white pixel samples as 3. Heights built from these samples
// are scaled with that range in mind. Returns nil for an empty image.
func SampleImage(img image.Image) *Heightmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	samples := make([]float32, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			sum := float32(c.R) + float32(c.G) + float32(c.B)
			samples = append(samples, sum/255)
		}
	}

	return &Heightmap{Width: w, Height: h, Samples: samples}
}
