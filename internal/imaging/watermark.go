package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

const (
	watermarkText     = "MAD Photos"
	watermarkAngleDeg = -30
	watermarkMinSize  = 24
)

// 40% white reads on both dark and light photos.
var watermarkColor = color.NRGBA{R: 255, G: 255, B: 255, A: 102}

// Watermark tiles the studio mark diagonally across src and returns the
// composited image. The mark is rendered once into a small tile, rotated
// once, and then repeated, so memory stays proportional to the tile rather
// than a full-size rotated canvas.
func Watermark(src image.Image) (*image.RGBA, error) {
	base := Flatten(src)
	w := base.Bounds().Dx()

	size := float64(w) / 12
	if size < watermarkMinSize {
		size = watermarkMinSize
	}

	tile, err := renderTextTile(watermarkText, size)
	if err != nil {
		return nil, err
	}
	rotated := rotate(tile, watermarkAngleDeg)

	rb := rotated.Bounds()
	for y := base.Bounds().Min.Y - rb.Dy(); y < base.Bounds().Max.Y; y += rb.Dy() {
		for x := base.Bounds().Min.X - rb.Dx(); x < base.Bounds().Max.X; x += rb.Dx() {
			draw.Draw(base, image.Rect(x, y, x+rb.Dx(), y+rb.Dy()), rotated, rb.Min, draw.Over)
		}
	}
	return base, nil
}

// renderTextTile draws the mark once into a tile whose dimensions bake in
// the spacing between repeats.
func renderTextTile(text string, size float64) (*image.RGBA, error) {
	ft, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse watermark font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build watermark face: %w", err)
	}
	defer face.Close()

	textWidth := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	tileW := textWidth + max(textWidth, 200)
	tileH := textHeight + max(3*textHeight, 200)

	tile := image.NewRGBA(image.Rect(0, 0, tileW, tileH))
	drawer := &font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(watermarkColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((tileW - textWidth) / 2),
			Y: fixed.I(tileH/2) + metrics.Ascent/2,
		},
	}
	drawer.DrawString(text)
	return tile, nil
}

// rotate returns src rotated by deg degrees around its center, in a canvas
// sized to the rotated bounding box.
func rotate(src *image.RGBA, deg float64) *image.RGBA {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	sb := src.Bounds()
	w, h := float64(sb.Dx()), float64(sb.Dy())
	rw := math.Abs(w*cos) + math.Abs(h*sin)
	rh := math.Abs(w*sin) + math.Abs(h*cos)

	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(rw)), int(math.Ceil(rh))))
	m := f64.Aff3{
		cos, -sin, rw/2 - cos*w/2 + sin*h/2,
		sin, cos, rh/2 - sin*w/2 - cos*h/2,
	}
	draw.BiLinear.Transform(dst, m, src, sb, draw.Src, nil)
	return dst
}
