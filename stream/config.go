package stream

import (
	"fmt"
	"time"
)

// Output modes.
const (
	ModeWindow = "window"
	ModeGIF    = "gif"
	ModePNG    = "png"
)

// AnimationConfig is what the frame driver needs.
type AnimationConfig struct {
	Frames     int  `yaml:"frames"`
	IntervalMs int  `yaml:"intervalMs"`
	Repeat     bool `yaml:"repeat"`
}

// Interval returns the nominal time between frames.
func (a AnimationConfig) Interval() time.Duration {
	return time.Duration(a.IntervalMs) * time.Millisecond
}

// Validate checks the config can drive an animation.
func (a AnimationConfig) Validate() error {
	if a.Frames <= 0 {
		return fmt.Errorf("animation.frames must be positive, got %d", a.Frames)
	}
	if a.IntervalMs <= 0 {
		return fmt.Errorf("animation.intervalMs must be positive, got %d", a.IntervalMs)
	}
	return nil
}

// OutputConfig says where and how large frames are shown or written.
type OutputConfig struct {
	Mode       string  `yaml:"mode"`
	Path       string  `yaml:"path"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	PointScale float64 `yaml:"pointScale"`
	Realtime   bool    `yaml:"realtime"`
}

// Validate checks the output can be opened.
func (o OutputConfig) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("output size %dx%d is not positive", o.Width, o.Height)
	}
	if o.PointScale <= 0 {
		return fmt.Errorf("output.pointScale must be positive")
	}
	switch o.Mode {
	case ModeWindow, ModeGIF, ModePNG:
	default:
		return fmt.Errorf("unknown output mode %q", o.Mode)
	}
	return nil
}
