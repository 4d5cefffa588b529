package simulation

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// BackgroundColor fills the frame on every Reset.
	BackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// BoidColor is the fill of every plotted boid.
	BoidColor = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

// PointRadius is the pixel radius of a plotted boid, whatever the scale.
const PointRadius = 6.0

// ErrInvalidWorld is returned by NewWorld for non-positive dimensions.
var ErrInvalidWorld = errors.New("invalid world dimensions")

// World maps the simulation grid onto the window. It holds no simulation
// state: it only knows the grid extents and how to scale them to pixels.
type World struct {
	nx, ny         int
	scaleX, scaleY float64
	renderer       Renderer
}

// NewWorld creates the world of an nx by ny grid shown in a window of
// widthPx by heightPx pixels.
func NewWorld(widthPx, heightPx, nx, ny int, r Renderer) (*World, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("window %dx%d px: %w", widthPx, heightPx, ErrInvalidWorld)
	}
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", nx, ny, ErrInvalidWorld)
	}
	return &World{
		nx:       nx,
		ny:       ny,
		scaleX:   float64(widthPx) / float64(nx),
		scaleY:   float64(heightPx) / float64(ny),
		renderer: r,
	}, nil
}

// Size returns the grid extents in grid units.
func (w *World) Size() (nx, ny int) {
	return w.nx, w.ny
}

// Scale returns the number of pixels per grid unit on each axis.
func (w *World) Scale() (sx, sy float64) {
	return w.scaleX, w.scaleY
}

// Reset clears the frame to the background color.
func (w *World) Reset() {
	w.renderer.Clear(BackgroundColor)
}

// AddPoint plots a boid at grid position (x, y).
func (w *World) AddPoint(x, y float64) {
	w.renderer.FillCircle(x*w.scaleX, y*w.scaleY, PointRadius, BoidColor)
}
