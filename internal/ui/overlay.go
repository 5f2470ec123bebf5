//go:build ebiten

package ui

import (
	"image/color"

	"green-vs-red/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type targetProvider interface {
	Target() (row, col int)
}

// Overlay outlines the sampled target cell on top of the simulation.
type Overlay struct {
	sim        core.Sim
	scale      int
	showTarget bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance with the marker visible.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showTarget: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the marker on T.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.showTarget = !o.showTarget
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showTarget {
		return
	}
	provider, ok := o.sim.(targetProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	row, col := provider.Target()
	x := float64(col * scale)
	y := float64(row * scale)
	s := float64(scale)
	t := float64(scale) / 8
	if t < 1 {
		t = 1
	}
	marker := color.RGBA{R: 250, G: 220, B: 60, A: 255}
	o.fillRect(screen, x, y, s, t, marker)
	o.fillRect(screen, x, y+s-t, s, t, marker)
	o.fillRect(screen, x, y, t, s, marker)
	o.fillRect(screen, x+s-t, y, t, s, marker)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
