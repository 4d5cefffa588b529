package behavior

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

var (
	// ErrEmptyFlock is returned when an operation needs at least one boid.
	ErrEmptyFlock = errors.New("flock is empty")
	// ErrInvalidGrid is returned for non-positive grid extents.
	ErrInvalidGrid = errors.New("grid extents must be positive")
)

// TickParams are the integration constants of one simulation tick.
type TickParams struct {
	Dtau   float64 // acceleration step
	Dt     float64 // advection step
	Nx, Ny int     // grid extents, grid units
}

// NewTickParams derives the stable step from the characteristic time tc:
// Dtau = Dt = 1/tc.
func NewTickParams(tc float64, nx, ny int) TickParams {
	step := 1 / tc
	return TickParams{Dtau: step, Dt: step, Nx: nx, Ny: ny}
}

// Flock is the ordered set of boids under simulation. The index of a boid
// in Boids never changes and is what Neighbors uses to exclude self.
type Flock struct {
	Boids []Boid
	Rules Rules

	// scratch reused across ticks
	deltas []geometry.Vector2D
	nbrs   []*Boid
}

// NewFlock creates n boids at random positions of an nx by ny grid, all
// moving at maxVelocity.
func NewFlock(rng *rand.Rand, n int, maxVelocity float64, nx, ny int, rules Rules) (*Flock, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot create a flock of %d boids: %w", n, ErrEmptyFlock)
	}
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("grid %dx%d: %w", nx, ny, ErrInvalidGrid)
	}
	boids := make([]Boid, n)
	for i := range boids {
		boids[i] = NewRandomBoid(rng, maxVelocity, nx, ny)
	}
	return &Flock{Boids: boids, Rules: rules}, nil
}

// Len returns the number of boids.
func (f *Flock) Len() int {
	return len(f.Boids)
}

// Centroid is the arithmetic mean of all boid positions.
func (f *Flock) Centroid() (geometry.Vector2D, error) {
	var sum geometry.Vector2D
	for i := range f.Boids {
		sum = sum.Add(f.Boids[i].Pos)
	}
	com, err := sum.Div(float64(len(f.Boids)))
	if err != nil {
		return geometry.Zero, ErrEmptyFlock
	}
	return com, nil
}

// Step advances the flock by one tick.
//
// Every increment is computed against the pre-tick state of the whole flock
// and stored in a side buffer; only then are the boids accelerated and
// moved. The order in which boids are updated therefore has no effect.
func (f *Flock) Step(p TickParams) error {
	com, err := f.Centroid()
	if err != nil {
		return err
	}

	if cap(f.deltas) < len(f.Boids) {
		f.deltas = make([]geometry.Vector2D, len(f.Boids))
	}
	f.deltas = f.deltas[:len(f.Boids)]

	// 1. Read-only pass
	for i := range f.Boids {
		f.nbrs = f.Rules.Neighbors(f.Boids, i, f.nbrs[:0])
		f.deltas[i] = f.Rules.Steer(&f.Boids[i], com, f.nbrs, p.Nx, p.Ny)
	}

	// 2. Write pass
	for i := range f.Boids {
		f.Boids[i].Accelerate(p.Dtau, f.deltas[i])
		f.Boids[i].UpdatePosition(p.Dt)
	}
	return nil
}

// Respawn replaces every boid with a fresh random one, keeping the flock size.
func (f *Flock) Respawn(rng *rand.Rand, maxVelocity float64, nx, ny int) {
	for i := range f.Boids {
		f.Boids[i] = NewRandomBoid(rng, maxVelocity, nx, ny)
	}
}
