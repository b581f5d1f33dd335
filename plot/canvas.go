package plot

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Pt is a point in pixel space.
type Pt struct {
	X float32
	Y float32
}

// A Canvas is a pixel surface the axes can draw onto.
type Canvas interface {
	Bounds() image.Rectangle
	Clear(c color.Color)
	StrokePolyline(pts []Pt, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
}

// NRGBA converts a colour and a separate opacity into a drawable colour.
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
