// Package plot is a small 2D plotting surface: axes with settable limits,
// line and marker artists, colormaps, and canvases to draw them on.
package plot

import (
	"image"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/huygens/transition"
)

// An Artist is anything the axes can draw.
type Artist interface {
	ZOrder() int
	Draw(c Canvas, m Mapping)
}

// Mapping converts data coordinates into pixels for one canvas.
type Mapping struct {
	scale      float64
	centreX    float64
	centreY    float64
	midX       float64
	midY       float64
	pointScale float64
}

// Point maps a data coordinate onto the canvas.
func (m Mapping) Point(x, y float64) Pt {
	return Pt{
		X: float32(m.centreX + (x-m.midX)*m.scale),
		Y: float32(m.centreY - (y-m.midY)*m.scale),
	}
}

// Points converts a length in typographic points into pixels.
func (m Mapping) Points(v float64) float32 {
	return float32(v * m.pointScale)
}

// Axes is a plotting surface with equal aspect and no decorations.
type Axes struct {
	limits     transition.Rect
	Background colorful.Color
	// PointScale is the number of pixels per typographic point.
	PointScale float64
	artists    []Artist
}

// NewAxes creates an instance of Axes showing limits.
func NewAxes(limits transition.Rect) *Axes {
	a := new(Axes)
	a.limits = limits
	a.Background = black
	a.PointScale = 100.0 / 72.0
	return a
}

// SetLimits sets the visible data box.
func (a *Axes) SetLimits(r transition.Rect) {
	a.limits = r
}

// Limits returns the visible data box.
func (a *Axes) Limits() transition.Rect {
	return a.limits
}

// Add places an artist on the axes.
func (a *Axes) Add(artist Artist) {
	a.artists = append(a.artists, artist)
}

// Plot adds a line through the given samples.
func (a *Axes) Plot(x, y []float64, style LineStyle) *Line {
	l := NewLine(x, y, style)
	a.Add(l)
	return l
}

// Scatter adds a single marker at p.
func (a *Axes) Scatter(p transition.Vec, style MarkerStyle) *Scatter {
	s := NewScatter(p, style)
	a.Add(s)
	return s
}

// Mapping returns the data-to-pixel mapping for bounds. The whole data box
// fits inside bounds with one scale on both axes.
func (a *Axes) Mapping(bounds image.Rectangle) Mapping {
	w := a.limits.XMax - a.limits.XMin
	h := a.limits.YMax - a.limits.YMin
	scale := math.Min(float64(bounds.Dx())/math.Abs(w), float64(bounds.Dy())/math.Abs(h))
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	return Mapping{
		scale:      scale,
		centreX:    float64(bounds.Min.X) + float64(bounds.Dx())/2,
		centreY:    float64(bounds.Min.Y) + float64(bounds.Dy())/2,
		midX:       (a.limits.XMin + a.limits.XMax) / 2,
		midY:       (a.limits.YMin + a.limits.YMax) / 2,
		pointScale: a.PointScale,
	}
}

// Draw clears c and draws every artist, lowest z-order first.
func (a *Axes) Draw(c Canvas) {
	c.Clear(NRGBA(a.Background, 1))
	m := a.Mapping(c.Bounds())

	ordered := make([]Artist, len(a.artists))
	copy(ordered, a.artists)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZOrder() < ordered[j].ZOrder()
	})
	for _, artist := range ordered {
		artist.Draw(c, m)
	}
}
