package stream

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/matt-g-everett/huygens/plot"
)

// A Sink receives rendered frames. The frame image is only valid for the
// duration of the call.
type Sink interface {
	WriteFrame(f *Frame) error
	Close() error
}

// Streamer drives an animation frame by frame and streams the rendered
// frames to a Sink.
type Streamer struct {
	config    AnimationConfig
	realtime  bool
	animation Animation
	renderer  Renderer
	canvas    *plot.Raster
	sink      Sink
}

// NewStreamer creates an instance of a Streamer. When realtime is set frames
// are paced at the configured interval, otherwise they are produced as fast
// as they render.
func NewStreamer(config AnimationConfig, realtime bool, animation Animation, renderer Renderer,
	canvas *plot.Raster, sink Sink) *Streamer {

	s := new(Streamer)
	s.config = config
	s.realtime = realtime
	s.animation = animation
	s.renderer = renderer
	s.canvas = canvas
	s.sink = sink
	return s
}

// SendFrame advances the animation to index, renders it and hands it to the
// sink.
func (s *Streamer) SendFrame(index int) error {
	s.animation.Animate(index)
	s.renderer.Draw(s.canvas)
	if err := s.sink.WriteFrame(NewFrame(index, s.canvas.Image())); err != nil {
		return fmt.Errorf("writing frame %d: %w", index, err)
	}
	return nil
}

// Run streams one pass of the configured frame count. A repeating realtime
// stream resets the animation and starts again until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if s.realtime {
		publishTimer := time.NewTicker(s.config.Interval())
		defer publishTimer.Stop()
		tick = publishTimer.C
	}

	for pass := 1; ; pass++ {
		for i := 0; i < s.config.Frames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if tick != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-tick:
				}
			}

			if err := s.SendFrame(i); err != nil {
				return err
			}
		}
		log.Printf("Streamed pass %d (%d frames)", pass, s.config.Frames)

		if !s.realtime || !s.config.Repeat {
			return nil
		}
		if r, ok := s.animation.(Resetter); ok {
			r.Reset()
		}
	}
}
