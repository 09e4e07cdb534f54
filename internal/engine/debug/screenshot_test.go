package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 123_000_000, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "terrain")
	sc.now = fixedClock
	require.Equal(t, filepath.Join("shots", "terrain_2024-03-01_12-30-45.123.png"), sc.GenerateFilename())

	sc = NewScreenshotCapture("", "terrain")
	sc.now = fixedClock
	require.Equal(t, "terrain_2024-03-01_12-30-45.123.png", sc.GenerateFilename())
}

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = fixedClock

	// Bottom row red, top row blue, as glReadPixels returns them.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(1, 1).RGBA()
	require.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}

func TestCaptureFromPixelsRejectsBadInput(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")

	_, err := sc.CaptureFromPixels(make([]byte, 12), 2, 2)
	require.ErrorContains(t, err, "size mismatch")

	_, err = sc.CaptureFromPixels(nil, 0, 0)
	require.ErrorContains(t, err, "invalid screenshot size")
}
