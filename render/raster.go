package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/isofield"
	"github.com/katalvlaran/isofield/grid"
	"github.com/katalvlaran/isofield/internal/logx"
	"github.com/katalvlaran/isofield/matrix"
)

// Draw rasterizes f into a new image.
// Returns ErrInvalidSize, ErrColorMismatch or ErrIndexRange.
// Complexity: O(pixels + triangles + isoline points).
func Draw(f isofield.Frame, opts ...Option) (*image.RGBA, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 || o.supersample <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, supersample %d", ErrInvalidSize, o.width, o.height, o.supersample)
	}
	if len(f.Colors) != len(f.Points) {
		return nil, fmt.Errorf("%w: %d colors, %d points", ErrColorMismatch, len(f.Colors), len(f.Points))
	}
	for _, idx := range f.Indices {
		if int(idx) >= len(f.Points) {
			return nil, fmt.Errorf("%w: %d >= %d", ErrIndexRange, idx, len(f.Points))
		}
	}

	k := o.supersample
	canvas := image.NewRGBA(image.Rect(0, 0, o.width*k, o.height*k))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	vp := viewport{m: f.Transform, w: float64(o.width * k), h: float64(o.height * k)}
	fillMesh(canvas, vp, f.Points, f.Colors, f.Indices)
	if o.lineWidth > 0 {
		strokeIsolines(canvas, vp, f, o.lineWidth*float64(k), o.lineColor)
	}

	out := canvas
	if k > 1 {
		out = image.NewRGBA(image.Rect(0, 0, o.width, o.height))
		xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	}
	if o.label {
		drawLabel(out, fmt.Sprintf("t=%.2f", f.Time), o.labelColor)
	}

	log := o.logger
	if log == nil {
		log = logx.Logger()
	}
	log.Debug("render: frame drawn",
		"t", f.Time, "size", fmt.Sprintf("%dx%d", o.width, o.height),
		"triangles", len(f.Indices)/3, "isolines", len(f.Isolines))

	return out, nil
}

// viewport maps world coordinates through the frame transform onto pixel
// space, with device +y pointing up.
type viewport struct {
	m    matrix.Mat4
	w, h float64
}

func (v viewport) project(p grid.Point) (float64, float64) {
	nx, ny, _ := v.m.Apply(p.X, p.Y, 0)
	return (nx + 1) / 2 * v.w, (1 - ny) / 2 * v.h
}

// fillMesh shades every triangle, blending the vertex colors with
// barycentric weights at each covered pixel center.
func fillMesh(dst *image.RGBA, vp viewport, pts []grid.Point, colors []color.RGBA, indices []uint32) {
	var tri [3]vertex
	for t := 0; t+2 < len(indices); t += 3 {
		for k := 0; k < 3; k++ {
			idx := indices[t+k]
			x, y := vp.project(pts[idx])
			tri[k] = vertex{x: x, y: y, c: colors[idx]}
		}
		fillTriangle(dst, tri)
	}
}

type vertex struct {
	x, y float64
	c    color.RGBA
}

// edgeFn is twice the signed area of (a, b, p).
func edgeFn(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// fillTriangle covers the pixels whose centers fall inside tri. Pixels on
// a shared edge may be written by both neighbours; the colors agree there.
func fillTriangle(dst *image.RGBA, tri [3]vertex) {
	a, b, c := tri[0], tri[1], tri[2]
	area := edgeFn(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 || math.IsNaN(area) {
		return
	}
	sign := 1.0
	if area < 0 {
		sign = -1
	}
	tol := -1e-9 * math.Abs(area)

	bounds := dst.Bounds()
	x0 := max(bounds.Min.X, int(math.Floor(min(a.x, b.x, c.x))))
	x1 := min(bounds.Max.X-1, int(math.Ceil(max(a.x, b.x, c.x))))
	y0 := max(bounds.Min.Y, int(math.Floor(min(a.y, b.y, c.y))))
	y1 := min(bounds.Max.Y-1, int(math.Ceil(max(a.y, b.y, c.y))))

	for py := y0; py <= y1; py++ {
		cy := float64(py) + 0.5
		for px := x0; px <= x1; px++ {
			cx := float64(px) + 0.5
			ea := edgeFn(b.x, b.y, c.x, c.y, cx, cy)
			eb := edgeFn(c.x, c.y, a.x, a.y, cx, cy)
			ec := edgeFn(a.x, a.y, b.x, b.y, cx, cy)
			if sign*ea < tol || sign*eb < tol || sign*ec < tol {
				continue
			}
			wa, wb, wc := ea/area, eb/area, ec/area
			off := dst.PixOffset(px, py)
			pix := dst.Pix[off : off+4 : off+4]
			pix[0] = blend(a.c.R, b.c.R, c.c.R, wa, wb, wc)
			pix[1] = blend(a.c.G, b.c.G, c.c.G, wa, wb, wc)
			pix[2] = blend(a.c.B, b.c.B, c.c.B, wa, wb, wc)
			pix[3] = blend(a.c.A, b.c.A, c.c.A, wa, wb, wc)
		}
	}
}

func blend(a, b, c uint8, wa, wb, wc float64) uint8 {
	v := math.Round(float64(a)*wa + float64(b)*wb + float64(c)*wc)
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}

	return uint8(v)
}

// strokeIsolines accumulates one quad per polyline segment in a single
// vector.Rasterizer pass. Every quad winds the same way, so overlaps at
// joints saturate instead of cancelling.
func strokeIsolines(dst *image.RGBA, vp viewport, f isofield.Frame, width float64, c color.RGBA) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	hw := width / 2
	for _, iso := range f.Isolines {
		for k := 1; k < len(iso.Points); k++ {
			x0, y0 := vp.project(iso.Points[k-1])
			x1, y1 := vp.project(iso.Points[k])
			segmentQuad(z, x0, y0, x1, y1, hw)
		}
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// segmentQuad adds a rectangle of half-width hw around (x0,y0)–(x1,y1),
// extended by hw past both ends so consecutive segments overlap at joints.
func segmentQuad(z *vector.Rasterizer, x0, y0, x1, y1, hw float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		dx, dy, l = 1, 0, 1
	}
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux
	ax, ay := x0-ux, y0-uy
	bx, by := x1+ux, y1+uy

	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
}

func drawLabel(dst *image.RGBA, s string, c color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(4, 4+face.Ascent),
	}
	d.DrawString(s)
}
