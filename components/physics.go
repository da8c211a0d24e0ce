package components

import (
	"math"

	"ebiten-racer/ecs"
)

// Physics is the base movement component: a scalar speed pushed along a
// unit direction vector, with per-tick friction decay and an acceleration
// accumulator fed by forces.
type Physics struct {
	ecs.BaseComponent
	MaxSpeed float64
	// Friction is a per-tick decay multiplier in (0,1], not a force.
	// Values near 1 decay slowly, values near 0 stop almost instantly.
	Friction float64
	Mass     float64
	Bounce   float64
	// Static entities never move via this component.
	Static bool

	speed      float64
	accel      float64
	dirX, dirY float64
}

// NewPhysics creates a physics component facing east with no speed.
func NewPhysics(maxSpeed, friction, mass, bounce float64) *Physics {
	return &Physics{
		MaxSpeed: maxSpeed,
		Friction: friction,
		Mass:     mass,
		Bounce:   bounce,
		dirX:     1,
	}
}

// Update advances the speed from the accumulated acceleration, applies
// friction, clamps to MaxSpeed (upper bound only; reverse speed has no
// floor here) and writes direction*speed into the owning transform's
// velocity. The accumulator is zeroed once consumed. Static physics skips
// all of it.
func (p *Physics) Update(dt float64) {
	if p.Static {
		return
	}
	p.speed += p.accel * dt
	p.speed *= p.Friction
	if p.speed > p.MaxSpeed {
		p.speed = p.MaxSpeed
	}
	if owner := p.Owner(); owner != nil {
		if c, ok := owner.GetComponent(ecs.KindTransform); ok {
			tr := c.(*Transform)
			tr.VelX = p.dirX * p.speed
			tr.VelY = p.dirY * p.speed
		}
	}
	p.accel = 0
}

// ApplyForce accumulates the force's magnitude over mass into the
// acceleration accumulator. Only the magnitude is used; travel direction
// is controlled separately via SetDirection. Ignored on static physics.
func (p *Physics) ApplyForce(fx, fy float64) {
	if p.Static {
		return
	}
	p.accel += math.Hypot(fx, fy) / p.Mass
}

// ApplyReverseForce is the signed counterpart of ApplyForce: it accumulates
// a negative acceleration of the force's magnitude over mass, driving
// speed negative so the entity backs away from its facing direction.
func (p *Physics) ApplyReverseForce(fx, fy float64) {
	if p.Static {
		return
	}
	p.accel -= math.Hypot(fx, fy) / p.Mass
}

// SetDirection normalizes and stores the travel direction. A zero vector
// is silently ignored, preserving the previous direction.
func (p *Physics) SetDirection(x, y float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return
	}
	p.dirX = x / mag
	p.dirY = y / mag
}

// Direction returns the current unit direction.
func (p *Physics) Direction() (x, y float64) {
	return p.dirX, p.dirY
}

// Speed returns the current scalar speed. Negative speed means the entity
// is moving against its direction vector.
func (p *Physics) Speed() float64 {
	return p.speed
}

// SetSpeed overwrites the scalar speed.
func (p *Physics) SetSpeed(speed float64) {
	p.speed = speed
}

// ScaleSpeed multiplies the scalar speed, used by braking and coasting.
func (p *Physics) ScaleSpeed(m float64) {
	p.speed *= m
}
