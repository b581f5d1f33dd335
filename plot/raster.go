package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

const circleSegments = 48

// Raster is a Canvas backed by an in-memory RGBA image.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster creates a w by h Raster.
func NewRaster(w, h int) *Raster {
	r := new(Raster)
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.z = vector.NewRasterizer(w, h)
	return r
}

// Image returns the backing image. It is overwritten by the next draw.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Bounds implements Canvas.
func (r *Raster) Bounds() image.Rectangle {
	return r.img.Bounds()
}

// Clear implements Canvas.
func (r *Raster) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokePolyline implements Canvas. The segment quads are accumulated in one
// rasterizer pass, so where they overlap at a joint the coverage saturates
// instead of blending twice.
func (r *Raster) StrokePolyline(pts []Pt, width float32, c color.Color) {
	hw := width / 2
	quads := make([][]Pt, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		// Every quad winds the same way round, so overlaps add up.
		nx, ny := -dy/l*hw, dx/l*hw
		quads = append(quads, []Pt{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		})
	}
	r.fill(image.NewUniform(c), quads...)
}

// FillCircle implements Canvas.
func (r *Raster) FillCircle(cx, cy, radius float32, c color.Color) {
	if radius <= 0 {
		return
	}
	poly := make([]Pt, circleSegments)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / circleSegments
		poly[i] = Pt{
			X: cx + radius*float32(math.Cos(a)),
			Y: cy + radius*float32(math.Sin(a)),
		}
	}
	r.fill(image.NewUniform(c), poly)
}

// fill rasterizes closed polygons in a single pass over their combined
// bounding box.
func (r *Raster) fill(src image.Image, polys ...[]Pt) {
	if len(polys) == 0 {
		return
	}
	minX, minY := polys[0][0].X, polys[0][0].Y
	maxX, maxY := minX, minY
	for _, poly := range polys {
		for _, p := range poly {
			minX = float32(math.Min(float64(minX), float64(p.X)))
			minY = float32(math.Min(float64(minY), float64(p.Y)))
			maxX = float32(math.Max(float64(maxX), float64(p.X)))
			maxY = float32(math.Max(float64(maxY), float64(p.Y)))
		}
	}

	box := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	for _, poly := range polys {
		r.z.MoveTo(poly[0].X-ox, poly[0].Y-oy)
		for _, p := range poly[1:] {
			r.z.LineTo(p.X-ox, p.Y-oy)
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.img, box, src, image.Point{})
}
