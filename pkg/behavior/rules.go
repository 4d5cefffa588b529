package behavior

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// FieldOfView selects the forward-cone predicate used by Neighbors.
type FieldOfView int

const (
	// ViewFromOrigin keeps j when (pj - pi) . pi > 0.
	// The cone is anchored to the world origin, not to the heading.
	ViewFromOrigin FieldOfView = iota
	// ViewFromHeading keeps j when (pj - pi) . vi > 0.
	ViewFromHeading
)

func (f FieldOfView) String() string {
	switch f {
	case ViewFromOrigin:
		return "position"
	case ViewFromHeading:
		return "heading"
	default:
		return fmt.Sprintf("FieldOfView(%d)", int(f))
	}
}

// ParseFieldOfView maps the config names "position" and "heading".
func ParseFieldOfView(s string) (FieldOfView, error) {
	switch s {
	case "", "position":
		return ViewFromOrigin, nil
	case "heading":
		return ViewFromHeading, nil
	default:
		return ViewFromOrigin, fmt.Errorf("unknown field of view %q", s)
	}
}

// Gains weights each steering rule. A zero gain disables the rule.
type Gains struct {
	Boundary   float64 `json:"boundary"`
	Cohesion   float64 `json:"cohesion"`
	Alignment  float64 `json:"alignment"`
	Separation float64 `json:"separation"`
}

// DefaultGains are the gains of the stable configuration.
func DefaultGains() Gains {
	return Gains{
		Boundary:   1.0,
		Cohesion:   0.1,
		Alignment:  0.5,
		Separation: 1.0,
	}
}

// Rules holds the steering constants shared by every boid.
type Rules struct {
	Gains Gains

	Margin           float64 // width of the boundary band, grid units
	NeighborRadius   float64 // strict upper bound on neighbour distance
	SeparationRadius float64 // strict upper bound on separation distance
	View             FieldOfView
}

// DefaultRules returns the stable flocking configuration.
func DefaultRules() Rules {
	return Rules{
		Gains:            DefaultGains(),
		Margin:           1.0,
		NeighborRadius:   1.0,
		SeparationRadius: 0.5,
		View:             ViewFromOrigin,
	}
}

// Boundary pulls a boid lying in the margin band back to the inner edge of
// the band. It is exactly zero inside [margin, n-margin] on both axes.
func (r Rules) Boundary(b *Boid, nx, ny int) geometry.Vector2D {
	d := geometry.Vector2D{
		X: bandPull(b.Pos.X, float64(nx), r.Margin),
		Y: bandPull(b.Pos.Y, float64(ny), r.Margin),
	}
	return d.Mul(r.Gains.Boundary)
}

func bandPull(p, extent, margin float64) float64 {
	switch {
	case p > extent-margin:
		return extent - margin - p
	case p < margin:
		return margin - p
	default:
		return 0
	}
}

// Cohesion steers a boid toward the flock centroid com.
func (r Rules) Cohesion(b *Boid, com geometry.Vector2D) geometry.Vector2D {
	return com.Sub(b.Pos).Mul(r.Gains.Cohesion)
}

// Alignment steers a boid toward the mean velocity of its neighbours.
func (r Rules) Alignment(b *Boid, nbrs []*Boid) geometry.Vector2D {
	if len(nbrs) == 0 {
		return geometry.Zero
	}
	var sum geometry.Vector2D
	for _, n := range nbrs {
		sum = sum.Add(n.Vel)
	}
	mean := sum.Mul(1 / float64(len(nbrs)))
	return mean.Sub(b.Vel).Mul(r.Gains.Alignment)
}

// Separation pushes a boid away from the mean position of the neighbours
// closer than SeparationRadius.
func (r Rules) Separation(b *Boid, nbrs []*Boid) geometry.Vector2D {
	var (
		sum   geometry.Vector2D
		count int
	)
	radiusSq := r.SeparationRadius * r.SeparationRadius
	for _, n := range nbrs {
		if n.Pos.DistanceSquaredTo(b.Pos) < radiusSq {
			sum = sum.Add(n.Pos)
			count++
		}
	}
	if count == 0 {
		return geometry.Zero
	}
	mean := sum.Mul(1 / float64(count))
	return b.Pos.Sub(mean).Mul(r.Gains.Separation)
}

// Neighbors appends to dst every boid j != i of flock that lies closer than
// NeighborRadius and inside the forward cone of boid i, and returns the
// extended slice. Passing dst[:0] reuses its capacity between calls.
func (r Rules) Neighbors(flock []Boid, i int, dst []*Boid) []*Boid {
	me := &flock[i]
	radiusSq := r.NeighborRadius * r.NeighborRadius

	axis := me.Pos
	if r.View == ViewFromHeading {
		axis = me.Vel
	}

	for j := range flock {
		if j == i {
			continue
		}
		other := &flock[j]
		if other.Pos.DistanceSquaredTo(me.Pos) >= radiusSq {
			continue
		}
		if other.Pos.Sub(me.Pos).Dot(axis) > 0 {
			dst = append(dst, other)
		}
	}
	return dst
}

// Steer sums the four rule increments for b, given the flock centroid com
// and the neighbour set nbrs of b.
func (r Rules) Steer(b *Boid, com geometry.Vector2D, nbrs []*Boid, nx, ny int) geometry.Vector2D {
	return r.Boundary(b, nx, ny).
		Add(r.Cohesion(b, com)).
		Add(r.Alignment(b, nbrs)).
		Add(r.Separation(b, nbrs))
}
