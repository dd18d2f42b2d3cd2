package imaging_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/internal/imaging"
)

func TestWatermark_PreservesDimensions(t *testing.T) {
	src := solidImage(640, 480, color.NRGBA{R: 20, G: 20, B: 20, A: 255})

	out, err := imaging.Watermark(src)
	require.NoError(t, err)
	assert.Equal(t, 640, out.Bounds().Dx())
	assert.Equal(t, 480, out.Bounds().Dy())
}

func TestWatermark_AltersPixels(t *testing.T) {
	src := solidImage(800, 600, color.NRGBA{R: 10, G: 10, B: 10, A: 255})

	out, err := imaging.Watermark(src)
	require.NoError(t, err)

	// the mark is translucent white over a near-black base, so marked
	// pixels read brighter than the original
	changed := 0
	for y := 0; y < 600; y += 5 {
		for x := 0; x < 800; x += 5 {
			r, _, _, _ := out.At(x, y).RGBA()
			if r > 0x2000 {
				changed++
			}
		}
	}
	assert.Greater(t, changed, 0, "expected the watermark to brighten some pixels")
}

func TestWatermark_Deterministic(t *testing.T) {
	src := solidImage(320, 240, color.NRGBA{R: 60, G: 90, B: 120, A: 255})

	first, err := imaging.Watermark(src)
	require.NoError(t, err)
	second, err := imaging.Watermark(src)
	require.NoError(t, err)

	firstJPEG, err := imaging.EncodeJPEG(first, imaging.WatermarkQuality)
	require.NoError(t, err)
	secondJPEG, err := imaging.EncodeJPEG(second, imaging.WatermarkQuality)
	require.NoError(t, err)

	assert.Equal(t, firstJPEG, secondJPEG, "same input should produce identical watermarked bytes")
}

func TestWatermark_SmallImage(t *testing.T) {
	src := solidImage(64, 64, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	out, err := imaging.Watermark(src)
	require.NoError(t, err)
	assert.Equal(t, 64, out.Bounds().Dx())
}
