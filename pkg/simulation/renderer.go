package simulation

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the drawing surface the World plots on. Coordinates are pixels.
// Presenting the frame is not part of it: ebiten presents when Draw returns.
type Renderer interface {
	Clear(c color.Color)
	FillCircle(x, y, r float64, c color.Color)
}

// ScreenRenderer draws on the ebiten screen image of the current frame.
// Bind it at the start of every Draw; ebiten owns the image.
type ScreenRenderer struct {
	screen *ebiten.Image
}

var _ Renderer = (*ScreenRenderer)(nil)

// Bind sets the image the following calls draw on.
func (r *ScreenRenderer) Bind(screen *ebiten.Image) {
	r.screen = screen
}

// Clear fills the whole screen with c.
func (r *ScreenRenderer) Clear(c color.Color) {
	if r.screen == nil {
		return
	}
	r.screen.Fill(c)
}

// FillCircle draws an antialiased filled disc.
func (r *ScreenRenderer) FillCircle(x, y, radius float64, c color.Color) {
	if r.screen == nil {
		return
	}
	vector.FillCircle(r.screen, float32(x), float32(y), float32(radius), c, true)
}
