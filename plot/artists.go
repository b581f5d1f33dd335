package plot

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/huygens/transition"
)

// LineStyle holds the drawing properties of a Line. Width is in points.
type LineStyle struct {
	Color  colorful.Color
	Alpha  float64
	Width  float64
	ZOrder int
}

// Line is a polyline through sampled data.
type Line struct {
	x     []float64
	y     []float64
	style LineStyle
}

// NewLine creates an instance of a Line.
func NewLine(x, y []float64, style LineStyle) *Line {
	l := new(Line)
	l.style = style
	l.SetData(x, y)
	return l
}

// SetData replaces the samples. The line keeps its own copy.
func (l *Line) SetData(x, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("plot: line data has %d x and %d y samples", len(x), len(y)))
	}
	l.x = append(l.x[:0], x...)
	l.y = append(l.y[:0], y...)
}

// Data returns the current samples.
func (l *Line) Data() (x, y []float64) {
	return l.x, l.y
}

// SetColor sets the stroke colour. Opacity is unchanged.
func (l *Line) SetColor(c colorful.Color) {
	l.style.Color = c
}

// Color returns the stroke colour.
func (l *Line) Color() colorful.Color {
	return l.style.Color
}

// ZOrder implements Artist.
func (l *Line) ZOrder() int {
	return l.style.ZOrder
}

// Draw implements Artist.
func (l *Line) Draw(c Canvas, m Mapping) {
	if len(l.x) < 2 || l.style.Alpha <= 0 {
		return
	}
	pts := make([]Pt, len(l.x))
	for i := range l.x {
		pts[i] = m.Point(l.x[i], l.y[i])
	}
	c.StrokePolyline(pts, m.Points(l.style.Width), NRGBA(l.style.Color, l.style.Alpha))
}

// MarkerStyle holds the drawing properties of a Scatter. Size is the marker
// area in points squared.
type MarkerStyle struct {
	Color  colorful.Color
	Alpha  float64
	Size   float64
	ZOrder int
}

// Scatter is a single round marker.
type Scatter struct {
	at    transition.Vec
	style MarkerStyle
}

// NewScatter creates an instance of a Scatter.
func NewScatter(at transition.Vec, style MarkerStyle) *Scatter {
	s := new(Scatter)
	s.at = at
	s.style = style
	return s
}

// SetOffset moves the marker.
func (s *Scatter) SetOffset(p transition.Vec) {
	s.at = p
}

// Offset returns the marker position.
func (s *Scatter) Offset() transition.Vec {
	return s.at
}

// SetSize sets the marker area.
func (s *Scatter) SetSize(size float64) {
	s.style.Size = size
}

// Size returns the marker area.
func (s *Scatter) Size() float64 {
	return s.style.Size
}

// SetColor sets the fill colour.
func (s *Scatter) SetColor(c colorful.Color) {
	s.style.Color = c
}

// ZOrder implements Artist.
func (s *Scatter) ZOrder() int {
	return s.style.ZOrder
}

// Draw implements Artist.
func (s *Scatter) Draw(c Canvas, m Mapping) {
	if s.style.Size <= 0 || s.style.Alpha <= 0 {
		return
	}
	p := m.Point(s.at.X, s.at.Y)
	r := m.Points(math.Sqrt(s.style.Size) / 2)
	c.FillCircle(p.X, p.Y, r, NRGBA(s.style.Color, s.style.Alpha))
}
