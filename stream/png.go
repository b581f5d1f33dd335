package stream

import (
	"fmt"
	"os"
	"path/filepath"
)

// PNGSink writes every frame to its own numbered PNG file in a directory.
type PNGSink struct {
	dir string
}

// NewPNGSink creates a PNGSink, creating dir if needed.
func NewPNGSink(dir string) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := new(PNGSink)
	s.dir = dir
	return s, nil
}

// Path returns the file a frame index is written to.
func (s *PNGSink) Path(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("frame-%04d.png", index))
}

// WriteFrame implements Sink.
func (s *PNGSink) WriteFrame(f *Frame) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(f.Index), data, 0o644)
}

// Close implements Sink.
func (s *PNGSink) Close() error {
	return nil
}
