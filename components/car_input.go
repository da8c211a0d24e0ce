package components

import (
	"math"

	"ebiten-racer/config"
	"ebiten-racer/ecs"
	"ebiten-racer/input"
)

// carDriver is the slice of the physics surface the control law needs.
// Both Physics and CarPhysics satisfy it.
type carDriver interface {
	ApplyForce(fx, fy float64)
	ApplyReverseForce(fx, fy float64)
	Speed() float64
	ScaleSpeed(m float64)
	SetDirection(x, y float64)
}

// CarInput binds the four driving actions to an input source and turns the
// held set into forces and rotation on the owning car each tick. Only the
// current tick's snapshot is kept; there is no input history.
type CarInput struct {
	ecs.BaseComponent
	source input.Source

	upHeld, downHeld, leftHeld, rightHeld bool
}

// NewCarInput creates a car input component polling the given source.
func NewCarInput(source input.Source) *CarInput {
	return &CarInput{source: source}
}

// Held returns the current tick's action snapshot.
func (i *CarInput) Held() (up, down, left, right bool) {
	return i.upHeld, i.downHeld, i.leftHeld, i.rightHeld
}

// Update snapshots the held actions and applies the control law:
// throttle pushes along the current facing, brake decays speed until the
// car is nearly stopped and then reverses, coasting decays speed gently,
// and turning rotates at a fixed per-tick rate regardless of speed.
// Direction is re-synced to the facing afterwards so the next physics step
// pushes velocity along it.
func (i *CarInput) Update(dt float64) {
	i.upHeld = i.source.IsActionDown(input.ActionUp)
	i.downHeld = i.source.IsActionDown(input.ActionDown)
	i.leftHeld = i.source.IsActionDown(input.ActionLeft)
	i.rightHeld = i.source.IsActionDown(input.ActionRight)

	owner := i.Owner()
	trComp, ok := owner.GetComponent(ecs.KindTransform)
	if !ok {
		return
	}
	physComp, ok := owner.GetComponent(ecs.KindPhysics)
	if !ok {
		return
	}
	tr := trComp.(*Transform)
	phys := physComp.(carDriver)

	switch {
	case i.upHeld:
		phys.ApplyForce(
			math.Cos(tr.Rotation)*config.CarDrivePower,
			math.Sin(tr.Rotation)*config.CarDrivePower,
		)
	case i.downHeld:
		if phys.Speed() > config.CarBrakeThreshold {
			phys.ScaleSpeed(config.CarBrakeMultiplier)
		} else {
			phys.ApplyReverseForce(
				math.Cos(tr.Rotation)*config.CarReversePower,
				math.Sin(tr.Rotation)*config.CarReversePower,
			)
		}
	default:
		phys.ScaleSpeed(config.CarCoastMultiplier)
	}

	if i.leftHeld {
		tr.Rotation -= config.CarTurnRate
	}
	if i.rightHeld {
		tr.Rotation += config.CarTurnRate
	}

	phys.SetDirection(math.Cos(tr.Rotation), math.Sin(tr.Rotation))
}
