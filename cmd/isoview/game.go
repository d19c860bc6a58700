//go:build ebiten

package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/katalvlaran/isofield"
	"github.com/katalvlaran/isofield/grid"
)

const (
	panRate  = 0.01
	zoomRate = 1.02
)

var (
	background = color.RGBA{R: 204, G: 204, B: 255, A: 255}
	lineColor  = color.RGBA{A: 255}
	hudColor   = color.RGBA{R: 240, G: 240, B: 250, A: 255}
)

// Game adapts a Visualizer to the ebiten.Game interface.
type Game struct {
	vis    *isofield.Visualizer
	levels []float64
	dt     float64
	t      float64
	paused bool

	frame    isofield.Frame
	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image

	w, h int
}

func newGame(v *isofield.Visualizer, levels []float64, tps int) *Game {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Game{
		vis:    v,
		levels: levels,
		dt:     1 / float64(tps),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update handles input, advances time and rebuilds the frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.t += g.dt
	}
	w, h, r := g.readView()
	if err := applyView(g.vis, w, h, r, g.t); err != nil {
		return err
	}

	frame, err := g.vis.Frame(g.levels)
	if err != nil {
		return err
	}
	g.frame = frame
	g.indices = g.indices[:0]
	for _, idx := range frame.Indices {
		g.indices = append(g.indices, uint16(idx))
	}

	return nil
}

// readView turns pan, zoom and resolution keys into the requested view.
func (g *Game) readView() (w, h int, r grid.Rect) {
	eng := g.vis.Grid()
	r = eng.Rect()
	fx, fy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		fx -= panRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		fx += panRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		fy -= panRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		fy += panRate
	}
	next := pan(r, fx, fy)
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		next = zoom(next, 1/zoomRate)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		next = zoom(next, zoomRate)
	}

	w, h = eng.Resolution()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		w, h = clampRes(w+resStep), clampRes(h+resStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		w, h = clampRes(w-resStep), clampRes(h-resStep)
	}

	return w, h, next
}

// Draw renders the shaded mesh, the isolines and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	sw, sh := float64(g.w), float64(g.h)
	f := g.frame

	g.vertices = g.vertices[:0]
	for k, p := range f.Points {
		x, y := toScreen(f.Transform, p, sw, sh)
		c := f.Colors[k]
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX: x, DstY: y, SrcX: 1, SrcY: 1,
			ColorR: float32(c.R) / 255, ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255, ColorA: float32(c.A) / 255,
		})
	}
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, g.white, nil)
	}

	for _, iso := range f.Isolines {
		for k := 1; k < len(iso.Points); k++ {
			x0, y0 := toScreen(f.Transform, iso.Points[k-1], sw, sh)
			x1, y1 := toScreen(f.Transform, iso.Points[k], sw, sh)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, lineColor, true)
		}
	}

	w, h := g.vis.Grid().Resolution()
	status := fmt.Sprintf("t=%.2f  %dx%d  %v", g.t, w, h, g.vis.Grid().Rect())
	if g.paused {
		status += "  paused"
	}
	text.Draw(screen, status, basicfont.Face7x13, 8, 18, hudColor)
}

// Layout follows the window size so the field always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
