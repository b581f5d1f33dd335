package plot

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a colormap stored as a look-up table of colour stops ordered
// by position.
type Gradient []struct {
	Pos   float64
	Color colorful.Color
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// Binary runs from white at 0 to black at 1.
var Binary = Gradient{
	{0.0, white},
	{1.0, black},
}

// Gray runs from black at 0 to white at 1.
var Gray = Gradient{
	{0.0, black},
	{1.0, white},
}

// At gets the colour at the specified point on the look-up table. Points
// outside the table take the colour of the nearest end.
func (g Gradient) At(t float64) colorful.Color {
	if t <= g[0].Pos {
		return g[0].Color
	}
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			return c1.Color.BlendRgb(c2.Color, (t-c1.Pos)/(c2.Pos-c1.Pos))
		}
	}
	return g[len(g)-1].Color
}

// Colormap returns a registered gradient by name.
func Colormap(name string) (Gradient, bool) {
	switch name {
	case "binary":
		return Binary, true
	case "gray":
		return Gray, true
	}
	return nil, false
}
