package plot

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/huygens/transition"
)

func square(v float64) transition.Rect {
	return transition.Rect{XMin: -v, XMax: v, YMin: -v, YMax: v}
}

func TestBinaryBoundaries(t *testing.T) {
	if c := Binary.At(0); c != white {
		t.Fatalf("binary(0) = %v", c)
	}
	if c := Binary.At(1); c != black {
		t.Fatalf("binary(1) = %v", c)
	}
	if c := Binary.At(0.5); c != (colorful.Color{R: 0.5, G: 0.5, B: 0.5}) {
		t.Fatalf("binary(0.5) = %v", c)
	}
	if Binary.At(-3) != white || Binary.At(7) != black {
		t.Fatal("out of range values are not clamped to the ends")
	}
	if Gray.At(0) != black || Gray.At(1) != white {
		t.Fatal("gray is not the reverse of binary")
	}
}

func TestColormapLookup(t *testing.T) {
	if _, ok := Colormap("binary"); !ok {
		t.Fatal("binary not registered")
	}
	if _, ok := Colormap("viridis"); ok {
		t.Fatal("unexpected colormap")
	}
}

func TestMappingKeepsAspect(t *testing.T) {
	a := NewAxes(square(4))
	m := a.Mapping(image.Rect(0, 0, 200, 100))

	if p := m.Point(0, 0); p != (Pt{100, 50}) {
		t.Fatalf("origin at %v", p)
	}
	if p := m.Point(4, 4); p != (Pt{150, 0}) {
		t.Fatalf("corner at %v", p)
	}
	if p := m.Point(-4, -4); p != (Pt{50, 100}) {
		t.Fatalf("corner at %v", p)
	}
}

func TestSetLimitsZoomsOut(t *testing.T) {
	a := NewAxes(square(4))
	a.SetLimits(square(8))
	if a.Limits() != square(8) {
		t.Fatalf("limits = %+v", a.Limits())
	}
	m := a.Mapping(image.Rect(0, 0, 160, 160))
	if p := m.Point(4, 0); p != (Pt{120, 80}) {
		t.Fatalf("point at %v", p)
	}
}

type call struct {
	kind string
	c    color.Color
}

type recordingCanvas struct {
	calls []call
}

func (r *recordingCanvas) Bounds() image.Rectangle { return image.Rect(0, 0, 100, 100) }
func (r *recordingCanvas) Clear(c color.Color)     { r.calls = append(r.calls, call{"clear", c}) }
func (r *recordingCanvas) StrokePolyline(pts []Pt, width float32, c color.Color) {
	r.calls = append(r.calls, call{"line", c})
}
func (r *recordingCanvas) FillCircle(cx, cy, radius float32, c color.Color) {
	r.calls = append(r.calls, call{"circle", c})
}

func TestDrawOrder(t *testing.T) {
	a := NewAxes(square(4))
	a.Plot([]float64{0, 1}, []float64{0, 1}, LineStyle{Color: white, Alpha: 1, Width: 1, ZOrder: 2})
	a.Scatter(transition.Vec{}, MarkerStyle{Color: white, Alpha: 1, Size: 4, ZOrder: 1})
	a.Scatter(transition.Vec{}, MarkerStyle{Color: white, Alpha: 1, Size: 0})

	var c recordingCanvas
	a.Draw(&c)

	kinds := make([]string, len(c.calls))
	for i, k := range c.calls {
		kinds[i] = k.kind
	}
	want := []string{"clear", "circle", "line"}
	if len(kinds) != len(want) {
		t.Fatalf("calls = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("calls = %v, want %v", kinds, want)
		}
	}
}

func TestLineCopiesData(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}
	l := NewLine(x, y, LineStyle{})
	x[0] = 100
	if gx, _ := l.Data(); gx[0] != 1 {
		t.Fatal("line aliases caller data")
	}
}

func TestLineMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewLine([]float64{1, 2}, []float64{1}, LineStyle{})
}

func TestRasterDrawsArtists(t *testing.T) {
	a := NewAxes(square(4))
	a.Plot([]float64{-4, 4}, []float64{2, 2}, LineStyle{Color: white, Alpha: 1, Width: 2})
	a.Scatter(transition.Vec{X: -2, Y: -2}, MarkerStyle{Color: white, Alpha: 1, Size: 400})

	r := NewRaster(100, 100)
	a.Draw(r)
	img := r.Image()

	// y=2 maps to pixel row 25.
	if c := img.RGBAAt(50, 24); c.R < 200 {
		t.Errorf("line pixel = %v", c)
	}
	// (-2, -2) maps to (25, 75).
	if c := img.RGBAAt(25, 75); c.R < 200 {
		t.Errorf("marker pixel = %v", c)
	}
	if c := img.RGBAAt(90, 90); c != (color.RGBA{A: 255}) {
		t.Errorf("background pixel = %v", c)
	}
}

func TestRasterClipsOffscreenGeometry(t *testing.T) {
	r := NewRaster(50, 50)
	r.Clear(color.Black)
	r.StrokePolyline([]Pt{{-100, -100}, {200, 200}}, 3, color.White)
	r.FillCircle(500, 500, 10, color.White)
	if c := r.Image().RGBAAt(25, 25); c.R < 200 {
		t.Fatalf("diagonal pixel = %v", c)
	}
}

func TestRasterJointsBlendOnce(t *testing.T) {
	r := NewRaster(50, 50)
	r.Clear(color.Black)
	half := color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	r.StrokePolyline([]Pt{{5, 40}, {25, 10}, {45, 40}}, 4, half)

	img := r.Image()
	// Pixel (15, 25) lies inside the first segment only; pixel (25, 11)
	// lies inside both segments just below the apex.
	mid, joint := img.RGBAAt(15, 25), img.RGBAAt(25, 11)
	if mid.R < 120 || mid.R > 136 {
		t.Fatalf("segment pixel = %v, want half white", mid)
	}
	if d := int(joint.R) - int(mid.R); d < -2 || d > 2 {
		t.Fatalf("joint pixel = %v, segment pixel = %v", joint, mid)
	}
}

func TestNRGBA(t *testing.T) {
	c := NRGBA(white, 0.5)
	if c.R != 255 || c.A != 128 {
		t.Fatalf("got %v", c)
	}
	if NRGBA(black, 3).A != 255 {
		t.Fatal("alpha not clamped")
	}
}
