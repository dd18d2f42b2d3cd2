package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/internal/imaging"
)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodeJPEGBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestDecode_JPEGAndPNG(t *testing.T) {
	src := solidImage(10, 10, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	img, format, err := imaging.Decode(encodeJPEGBytes(t, src))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 10, img.Bounds().Dx())

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	img, format, err = imaging.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, _, err := imaging.Decode([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestScale_CapsLongerEdge(t *testing.T) {
	src := solidImage(4000, 2000, color.White)

	out := imaging.Scale(src, imaging.CompressedMaxDim)
	assert.Equal(t, 2048, out.Bounds().Dx())
	assert.Equal(t, 1024, out.Bounds().Dy())
}

func TestScale_PortraitOrientation(t *testing.T) {
	src := solidImage(1000, 3000, color.White)

	out := imaging.Scale(src, imaging.ThumbnailMaxDim)
	assert.Equal(t, 400, out.Bounds().Dy())
	assert.Equal(t, 133, out.Bounds().Dx())
}

func TestScale_NeverUpscales(t *testing.T) {
	src := solidImage(800, 600, color.White)

	out := imaging.Scale(src, imaging.CompressedMaxDim)
	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestFlatten_TransparentOverWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	// fully transparent

	out := imaging.Flatten(src)
	r, g, b, _ := out.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestEncodeJPEG_RoundTrips(t *testing.T) {
	src := solidImage(32, 16, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	data, err := imaging.EncodeJPEG(src, imaging.CompressedQuality)
	require.NoError(t, err)

	decoded, format, err := imaging.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 32, decoded.Bounds().Dx())
	assert.Equal(t, 16, decoded.Bounds().Dy())
}
