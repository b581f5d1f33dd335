package stream

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// GIFSink collects frames into an animated GIF that is written on Close.
//
// image/gif only encodes a whole animation, so every distinct frame stays in
// memory as one palette index per pixel until Close: 975 frames at 640x480
// hold about 300MB. A frame identical to the one before it is folded into
// that frame's delay instead of being queued, which keeps the long still
// stretches of an animation cheap.
//
// A GIF with a single image carries no loop count, whatever repeat says.
type GIFSink struct {
	w       io.WriteCloser
	delay   int
	written int
	anim    gif.GIF
}

// NewGIFSink creates a GIFSink writing to w. Frames are shown for interval
// each; without repeat the GIF plays once.
func NewGIFSink(w io.WriteCloser, interval time.Duration, repeat bool) *GIFSink {
	g := new(GIFSink)
	g.w = w
	g.delay = int(interval / (10 * time.Millisecond))
	if g.delay < 1 {
		g.delay = 1
	}
	g.anim.LoopCount = -1
	if repeat {
		g.anim.LoopCount = 0
	}
	return g
}

// WriteFrame quantizes f onto the palette and queues it.
func (g *GIFSink) WriteFrame(f *Frame) error {
	bounds := f.Image.Bounds()
	p := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(p, bounds, f.Image, bounds.Min)
	g.written++

	if n := len(g.anim.Image); n > 0 {
		last := g.anim.Image[n-1]
		if last.Rect == p.Rect && bytes.Equal(last.Pix, p.Pix) {
			g.anim.Delay[n-1] += g.delay
			return nil
		}
	}
	g.anim.Image = append(g.anim.Image, p)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Frames returns the number of frames written.
func (g *GIFSink) Frames() int {
	return g.written
}

// Images returns the number of images held for encoding.
func (g *GIFSink) Images() int {
	return len(g.anim.Image)
}

// Close encodes the GIF and closes the writer.
func (g *GIFSink) Close() error {
	if len(g.anim.Image) == 0 {
		g.w.Close()
		return fmt.Errorf("no frames to encode")
	}
	if err := gif.EncodeAll(g.w, &g.anim); err != nil {
		g.w.Close()
		return fmt.Errorf("encoding gif: %w", err)
	}
	return g.w.Close()
}
