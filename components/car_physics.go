package components

import (
	"math"

	"ebiten-racer/config"
	"ebiten-racer/ecs"
)

// TileChecker reports whether the tile at a grid cell can be driven on.
// The track data package implements it.
type TileChecker interface {
	Navigable(col, row int) bool
}

// CarPhysics extends the base physics with grid collision against the
// track. Checks are suppressed until a startup grace period has elapsed
// AND the car has moved a threshold distance from its spawn point; the
// start cell may sit next to non-road tiles and would otherwise trigger
// false positives while the car is still parked on it.
type CarPhysics struct {
	Physics
	tiles         TileChecker
	tileSize      float64
	graceMS       float64
	moveThreshold float64

	clockMS        float64
	prevX, prevY   float64
	spawnX, spawnY float64
	spawnSet       bool
	leftStart      bool

	// OnCollision, when set, is invoked after a hit has been resolved
	// with the grid cell that was struck.
	OnCollision func(col, row int)
}

// NewCarPhysics creates car physics tuned from config, colliding against
// the given tile source.
func NewCarPhysics(tiles TileChecker) *CarPhysics {
	return &CarPhysics{
		Physics:       *NewPhysics(config.CarMaxSpeed, config.CarFriction, config.CarMass, config.CarBounce),
		tiles:         tiles,
		tileSize:      config.TileSize,
		graceMS:       config.CarCollisionGraceMS,
		moveThreshold: config.CarStartMoveThreshold,
	}
}

// HasLeftStart reports whether the movement latch has flipped. It never
// resets once set.
func (p *CarPhysics) HasLeftStart() bool {
	return p.leftStart
}

// Update resolves collision for the position the transform reached last
// tick, then runs the base physics step. Reverting restores the
// previous-tick position and scales speed by the bounce coefficient; no
// collision normal is computed, this is a coarse snap-back response.
func (p *CarPhysics) Update(dt float64) {
	if p.Static {
		return
	}
	p.clockMS += dt * 1000

	c, _ := p.Owner().GetComponent(ecs.KindTransform)
	tr := c.(*Transform)

	if !p.spawnSet {
		p.spawnX, p.spawnY = tr.X, tr.Y
		p.prevX, p.prevY = tr.X, tr.Y
		p.spawnSet = true
	}
	if !p.leftStart {
		if math.Hypot(tr.X-p.spawnX, tr.Y-p.spawnY) > p.moveThreshold {
			p.leftStart = true
		}
	}

	if p.clockMS > p.graceMS && p.leftStart {
		col := int(tr.X / p.tileSize)
		row := int(tr.Y / p.tileSize)
		if !p.tiles.Navigable(col, row) {
			tr.X, tr.Y = p.prevX, p.prevY
			p.SetSpeed(p.Speed() * p.Bounce)
			if p.OnCollision != nil {
				p.OnCollision(col, row)
			}
		}
	}
	p.prevX, p.prevY = tr.X, tr.Y

	p.Physics.Update(dt)

	// Reverse is capped at half the forward top speed. The base step only
	// clamps the upper bound; without a floor, holding reverse would build
	// unbounded negative speed.
	if floor := -p.MaxSpeed / 2; p.speed < floor {
		p.speed = floor
	}
}
