package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// twoRows returns a 1x2 framebuffer whose bottom row is red and top row
// is blue, in GL order.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255, // bottom
		0, 0, 255, 255, // top
	}
}

func TestFlipPixels(t *testing.T) {
	img, err := FlipPixels(twoRows(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))
}

func TestFlipPixelsSizeMismatch(t *testing.T) {
	_, err := FlipPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}

func TestCapturePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "logo", FormatPNG)

	name, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(name))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xffff), b)
}

func TestCaptureBMP(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "logo", FormatBMP)

	name, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, ".bmp", filepath.Ext(name))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	r, _, _, _ := img.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("out", "dancinglogo", "gif")
	sc.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 250e6, time.UTC) }

	assert.Equal(t, filepath.Join("out", "dancinglogo_2024-03-05_14-07-09.250.png"), sc.GenerateFilename())

	sc.SetOutputDir("")
	assert.Equal(t, "dancinglogo_2024-03-05_14-07-09.250.png", sc.GenerateFilename())
}
