// Package display shows an animation in a desktop window.
package display

import (
	"errors"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/matt-g-everett/huygens/plot"
	"github.com/matt-g-everett/huygens/stream"
)

// Animation is a scene the window can both advance and draw.
type Animation interface {
	stream.Animation
	stream.Renderer
}

// Window plays one animation frame per tick and holds the last frame once
// the configured frame count has been shown.
type Window struct {
	config    stream.AnimationConfig
	animation Animation
	width     int
	height    int
	frame     int
	done      bool
}

// NewWindow creates an instance of a Window.
func NewWindow(config stream.AnimationConfig, animation Animation, width, height int) *Window {
	w := new(Window)
	w.config = config
	w.animation = animation
	w.width = width
	w.height = height
	return w
}

// Run opens the window and blocks until it is closed. It must be called
// from the main goroutine.
func (w *Window) Run(title string) error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(title)
	tps := 1000 / w.config.IntervalMs
	if tps < 1 {
		tps = 1
	}
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.done {
		return nil
	}
	w.animation.Animate(w.frame)
	w.frame++
	if w.frame < w.config.Frames {
		return nil
	}

	if !w.config.Repeat {
		log.Printf("Played %d frames", w.frame)
		w.done = true
		return nil
	}
	if r, ok := w.animation.(stream.Resetter); ok {
		r.Reset()
	}
	w.frame = 0
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.animation.Draw(&canvas{dst: screen})
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// canvas adapts an ebiten image to plot.Canvas.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) Bounds() image.Rectangle {
	return c.dst.Bounds()
}

func (c *canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

// StrokePolyline strokes pts as one path so a translucent line is blended
// once at its joints.
func (c *canvas) StrokePolyline(pts []plot.Pt, width float32, clr color.Color) {
	path := polylinePath(pts)
	if path == nil {
		return
	}
	vector.StrokePath(c.dst, path, clr, true, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
}

func polylinePath(pts []plot.Pt) *vector.Path {
	if len(pts) < 2 {
		return nil
	}
	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	return &path
}

func (c *canvas) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(c.dst, cx, cy, r, clr, true)
}
