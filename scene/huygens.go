// Package scene scripts the Huygens-principle animation: a circular
// wavefront whose points become sources of secondary wavelets.
package scene

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/huygens/plot"
	"github.com/matt-g-everett/huygens/transition"
	"github.com/matt-g-everett/huygens/util"
)

// Cue times, in seconds.
const (
	sourceCue   = 1.0
	frontCue    = 2.0
	dotCue      = 3.0
	dotStagger  = 0.1
	fadeCue     = 4.0
	waveletCue  = 4.2
	zoomCue     = 5.0
	collapseCue = 17.5
)

var foreground = colorful.Color{R: 1, G: 1, B: 1}

// Scene owns the artists of the animation and the ordered transitions that
// move them.
type Scene struct {
	params     Params
	interval   time.Duration
	cmap       plot.Gradient
	pointScale float64

	axes     *plot.Axes
	source   *plot.Scatter
	front    *plot.Line
	dots     []*plot.Scatter
	wavelets []*plot.Line
	steps    transition.Sequence
}

// New creates a Scene advancing interval per frame.
func New(params Params, interval time.Duration) (*Scene, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := new(Scene)
	s.params = params
	s.interval = interval
	s.cmap, _ = plot.Colormap(params.Colormap)
	s.pointScale = 100.0 / 72.0
	s.build()
	return s, nil
}

// Axes returns the plotting surface. It is replaced by Reset.
func (s *Scene) Axes() *plot.Axes {
	return s.axes
}

// SetPointScale sets the pixels per typographic point used for line widths
// and marker sizes.
func (s *Scene) SetPointScale(v float64) {
	s.pointScale = v
	s.axes.PointScale = v
}

// Now converts a frame index into playback seconds.
func (s *Scene) Now(frame int) float64 {
	return float64(frame) * s.interval.Seconds()
}

// Animate advances every transition to frame. Cue times count from the
// first frame animated after New or Reset.
func (s *Scene) Animate(frame int) {
	s.steps.Apply(s.Now(frame))
}

// Draw renders the current state onto c.
func (s *Scene) Draw(c plot.Canvas) {
	s.axes.Draw(c)
}

// Reset rebuilds the scene in its initial state.
func (s *Scene) Reset() {
	s.build()
}

func (s *Scene) build() {
	p := s.params
	t := util.Linspace(0, 2*math.Pi, p.Samples)
	zeros := util.Full(p.Samples, 0)

	s.axes = plot.NewAxes(square(p.View))
	s.axes.PointScale = s.pointScale
	line := plot.LineStyle{Color: foreground, Alpha: 0.5, Width: 2, ZOrder: 1}
	marker := plot.MarkerStyle{Color: foreground, Alpha: 1, ZOrder: 1}

	s.front = s.axes.Plot(zeros, zeros, line)
	s.source = s.axes.Scatter(transition.Vec{}, marker)

	s.wavelets = make([]*plot.Line, p.Sources)
	for n := range s.wavelets {
		s.wavelets[n] = s.axes.Plot(zeros, zeros, line)
	}

	centres := make([]transition.Vec, p.Sources)
	s.dots = make([]*plot.Scatter, p.Sources)
	for n := range s.dots {
		a := 2 * math.Pi * float64(n) / float64(p.Sources)
		centres[n] = transition.Vec{X: math.Cos(a), Y: math.Sin(a)}
		s.dots[n] = s.axes.Scatter(centres[n], marker)
	}

	point := transition.Curve{X: zeros, Y: zeros}
	cx, cy := util.Circle(t, 1, 0, 0)
	unit := transition.Curve{X: cx, Y: cy}

	s.steps = nil
	s.scalar(transition.Timing{Start: sourceCue, Duration: p.SourceTime}, 0, p.DotSize, s.source)
	s.curve(transition.Timing{Start: frontCue, Duration: p.DefaultTime, Easing: p.FrontEasing}, point, unit, s.front)

	for n, dot := range s.dots {
		tm := transition.Timing{Start: dotCue + float64(n)*dotStagger, Duration: p.DotTime, Easing: p.DotEasing}
		s.scalar(tm, 0, p.DotSize, dot)
	}

	for n, wavelet := range s.wavelets {
		c := centres[n]
		from := transition.Curve{X: util.Full(p.Samples, c.X), Y: util.Full(p.Samples, c.Y)}
		wx, wy := util.Circle(t, p.Radius, c.X, c.Y)
		tm := transition.Timing{Start: waveletCue, Duration: p.WaveTime, Easing: p.WaveEasing}
		s.curve(tm, from, transition.Curve{X: wx, Y: wy}, wavelet)
	}

	s.limits(transition.Timing{Start: zoomCue, Duration: p.DefaultTime}, square(p.View), square(p.ZoomedView), s.axes)
	s.curve(transition.Timing{Start: collapseCue, Duration: p.DefaultTime, Easing: p.FrontEasing}, unit, point, s.front)

	for _, wavelet := range s.wavelets {
		tm := transition.Timing{Start: fadeCue, Duration: p.WaveTime, Easing: p.WaveEasing}
		s.color(tm, 0, 1, wavelet)
	}
}

func (s *Scene) scalar(tm transition.Timing, from, to float64, dst transition.SizeTarget) {
	tr := transition.New()
	s.steps = append(s.steps, transition.StepFunc(func(now float64) {
		tr.Scalar(now, tm, from, to, dst)
	}))
}

func (s *Scene) curve(tm transition.Timing, from, to transition.Curve, dst transition.CurveTarget) {
	tr := transition.New()
	s.steps = append(s.steps, transition.StepFunc(func(now float64) {
		tr.Curve(now, tm, from, to, dst)
	}))
}

func (s *Scene) limits(tm transition.Timing, from, to transition.Rect, dst transition.LimitsTarget) {
	tr := transition.New()
	s.steps = append(s.steps, transition.StepFunc(func(now float64) {
		tr.Limits(now, tm, from, to, dst)
	}))
}

func (s *Scene) color(tm transition.Timing, from, to float64, dst transition.ColorTarget) {
	tr := transition.NewColor(s.cmap.At)
	s.steps = append(s.steps, transition.StepFunc(func(now float64) {
		tr.Color(now, tm, from, to, dst)
	}))
}

func square(v float64) transition.Rect {
	return transition.Rect{XMin: -v, XMax: v, YMin: -v, YMax: v}
}
