package stream

import (
	"github.com/matt-g-everett/huygens/plot"
)

// An Animation advances its state to a given frame.
type Animation interface {
	Animate(frame int)
}

// A Resetter can return an animation to its first frame.
type Resetter interface {
	Reset()
}

// A Renderer draws the current state of an animation.
type Renderer interface {
	Draw(c plot.Canvas)
}
