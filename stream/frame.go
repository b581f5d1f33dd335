package stream

import (
	"bytes"
	"image"
	"image/png"
)

// Frame is one rendered image of the animation.
type Frame struct {
	Index int
	Image *image.RGBA
}

// NewFrame creates a new Frame instance.
func NewFrame(index int, img *image.RGBA) *Frame {
	f := new(Frame)
	f.Index = index
	f.Image = img
	return f
}

// MarshalBinary encodes the frame as a PNG.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, f.Image); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
