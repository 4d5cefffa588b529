package behavior

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
//
// Pos is measured in grid units, Vel in grid units per unit of simulation time.
type Boid struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
}

// Speed clamp: after Accelerate a speed outside [MinSpeed, MaxSpeed]
// is rescaled to CruiseSpeed.
const (
	MinSpeed    = 0.8
	MaxSpeed    = 1.2
	CruiseSpeed = 1.0
)

// NewRandomBoid places a boid uniformly inside an nx by ny grid, moving at
// maxVelocity along a heading drawn from [0, Pi).
//
// The heading only covers the upper half-plane, so the whole flock starts
// with a positive y drift.
func NewRandomBoid(rng *rand.Rand, maxVelocity float64, nx, ny int) Boid {
	x := rng.Float64() * float64(nx)
	y := rng.Float64() * float64(ny)
	heading := rng.Float64() * math.Pi
	return Boid{
		Pos: geometry.NewVector(x, y),
		Vel: geometry.NewVectorPolar(maxVelocity, heading),
	}
}

// Accelerate adds dtau*a to the velocity, then applies the speed clamp.
// A zero speed is left untouched.
func (b *Boid) Accelerate(dtau float64, a geometry.Vector2D) {
	b.Vel = b.Vel.Add(a.Mul(dtau))

	speed := b.Vel.Len()
	if speed == 0 {
		return
	}
	if speed > MaxSpeed || speed < MinSpeed {
		b.Vel = b.Vel.Mul(CruiseSpeed / speed)
	}
}

// UpdatePosition advects the boid by dt*Vel. Nothing keeps it inside the
// world here, the boundary rule does that through a corrective acceleration.
func (b *Boid) UpdatePosition(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

// Speed is the magnitude of the velocity.
func (b *Boid) Speed() float64 {
	return b.Vel.Len()
}
