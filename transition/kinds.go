package transition

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Vec is a 2D point in data coordinates.
type Vec struct {
	X float64
	Y float64
}

// Curve is a parametric curve sampled as equal-length x and y arrays.
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of samples, panicking if X and Y disagree.
func (c Curve) Len() int {
	if len(c.X) != len(c.Y) {
		panic(fmt.Sprintf("transition: curve has %d x samples and %d y samples", len(c.X), len(c.Y)))
	}
	return len(c.X)
}

// Rect is the visible data box of a plotting surface.
type Rect struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// Colormap maps a value in [0, 1] to a colour.
type Colormap func(v float64) colorful.Color

// PointTarget is a drawable whose position can be set.
type PointTarget interface {
	SetOffset(p Vec)
}

// SizeTarget is a drawable with a scalar size, such as a marker.
type SizeTarget interface {
	SetSize(s float64)
}

// CurveTarget is a line whose samples can be replaced.
type CurveTarget interface {
	SetData(x, y []float64)
}

// ColorTarget is a drawable whose colour can be set.
type ColorTarget interface {
	SetColor(c colorful.Color)
}

// LimitsTarget is a plotting surface with settable bounds.
type LimitsTarget interface {
	SetLimits(r Rect)
}

// Lerp interpolates between a and b.
func Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// LerpVec interpolates both coordinates with the same factor.
func LerpVec(a, b Vec, f float64) Vec {
	return Vec{X: Lerp(a.X, b.X, f), Y: Lerp(a.Y, b.Y, f)}
}

// LerpRect interpolates every edge with the same factor.
func LerpRect(a, b Rect, f float64) Rect {
	return Rect{
		XMin: Lerp(a.XMin, b.XMin, f),
		XMax: Lerp(a.XMax, b.XMax, f),
		YMin: Lerp(a.YMin, b.YMin, f),
		YMax: Lerp(a.YMax, b.YMax, f),
	}
}

// LerpCurve moves every sample of a towards b by the same factor. The two
// curves must have the same number of samples.
func LerpCurve(a, b Curve, f float64) Curve {
	n := a.Len()
	if m := b.Len(); m != n {
		panic(fmt.Sprintf("transition: cannot interpolate curve of %d samples into %d samples", n, m))
	}

	out := Curve{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		out.X[i] = Lerp(a.X[i], b.X[i], f)
		out.Y[i] = Lerp(a.Y[i], b.Y[i], f)
	}
	return out
}

// The operations below leave their target untouched until the start is
// reached, then hold the end state once the window has passed. Each returns
// the factor for now.

// Point moves dst from one position to another.
func (t *Transition) Point(now float64, tm Timing, from, to Vec, dst PointTarget) float64 {
	f, ok := t.advance(now, tm)
	if ok {
		dst.SetOffset(LerpVec(from, to, f))
	}
	return f
}

// Scalar interpolates a single value such as a marker size.
func (t *Transition) Scalar(now float64, tm Timing, from, to float64, dst SizeTarget) float64 {
	f, ok := t.advance(now, tm)
	if ok {
		dst.SetSize(Lerp(from, to, f))
	}
	return f
}

// Curve morphs dst from one parametric curve into another.
func (t *Transition) Curve(now float64, tm Timing, from, to Curve, dst CurveTarget) float64 {
	f, ok := t.advance(now, tm)
	c := LerpCurve(from, to, f)
	if ok {
		dst.SetData(c.X, c.Y)
	}
	return f
}

// Limits moves the visible bounds of dst.
func (t *Transition) Limits(now float64, tm Timing, from, to Rect, dst LimitsTarget) float64 {
	f, ok := t.advance(now, tm)
	if ok {
		dst.SetLimits(LerpRect(from, to, f))
	}
	return f
}

// ColorTransition interpolates a value through a colormap.
type ColorTransition struct {
	Transition
	cmap Colormap
}

// NewColor creates a ColorTransition bound to cmap.
func NewColor(cmap Colormap) *ColorTransition {
	if cmap == nil {
		panic("transition: nil colormap")
	}
	c := new(ColorTransition)
	c.cmap = cmap
	return c
}

// Color sets dst to the colormap value between from and to.
func (c *ColorTransition) Color(now float64, tm Timing, from, to float64, dst ColorTarget) float64 {
	f, ok := c.advance(now, tm)
	if ok {
		dst.SetColor(c.cmap(Lerp(from, to, f)))
	}
	return f
}
