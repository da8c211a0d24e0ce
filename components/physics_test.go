package components_test

import (
	"math"
	"testing"

	"ebiten-racer/components"
	"ebiten-racer/ecs"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestStaticPhysicsIsInert(t *testing.T) {
	p := components.NewPhysics(100, 0.9, 1, 1)
	p.Static = true
	p.SetSpeed(5)

	p.ApplyForce(1000, 1000)
	for _, dt := range []float64{0.001, 0.016, 1, 10} {
		p.Update(dt)
	}

	if p.Speed() != 5 {
		t.Errorf("static physics changed speed: %f", p.Speed())
	}
	if dx, dy := p.Direction(); dx != 1 || dy != 0 {
		t.Errorf("static physics changed direction: (%f, %f)", dx, dy)
	}
}

func TestSetDirection(t *testing.T) {
	p := components.NewPhysics(100, 0.9, 1, 1)

	p.SetDirection(3, 4)
	dx, dy := p.Direction()
	if !almostEqual(dx, 0.6) || !almostEqual(dy, 0.8) {
		t.Errorf("SetDirection(3,4) = (%f, %f), want (0.6, 0.8)", dx, dy)
	}

	// A zero vector silently preserves the previous direction.
	p.SetDirection(0, 0)
	dx, dy = p.Direction()
	if !almostEqual(dx, 0.6) || !almostEqual(dy, 0.8) {
		t.Errorf("SetDirection(0,0) changed direction to (%f, %f)", dx, dy)
	}
}

func TestFrictionIsFlatPerTickMultiplier(t *testing.T) {
	for _, dt := range []float64{0.001, 1.0 / 60, 0.5} {
		p := components.NewPhysics(100, 0.9, 1, 1)
		p.SetSpeed(10)
		p.Update(dt)
		if !almostEqual(p.Speed(), 9) {
			t.Errorf("dt=%f: speed after one update = %f, want 9", dt, p.Speed())
		}
	}
}

func TestSpeedNeverExceedsMaxSpeed(t *testing.T) {
	p := components.NewPhysics(50, 1, 1, 1)
	for i := 0; i < 100; i++ {
		p.ApplyForce(500, 500)
		p.Update(1)
		if p.Speed() > 50 {
			t.Fatalf("speed %f exceeded max 50 on iteration %d", p.Speed(), i)
		}
	}
}

func TestApplyForceUsesMagnitudeOverMass(t *testing.T) {
	p := components.NewPhysics(100, 1, 2, 1)
	p.ApplyForce(3, 4)
	p.Update(1)

	// |(3,4)| / mass 2 = 2.5, integrated over dt=1 with friction 1.
	if !almostEqual(p.Speed(), 2.5) {
		t.Errorf("speed = %f, want 2.5", p.Speed())
	}
}

func TestApplyReverseForceDrivesSpeedNegative(t *testing.T) {
	p := components.NewPhysics(100, 1, 1, 1)
	p.ApplyReverseForce(3, 4)
	p.Update(1)

	if !almostEqual(p.Speed(), -5) {
		t.Errorf("speed = %f, want -5", p.Speed())
	}
}

func TestAccelerationResetsAfterConsumption(t *testing.T) {
	p := components.NewPhysics(100, 1, 1, 1)
	p.ApplyForce(10, 0)
	p.Update(1)
	first := p.Speed()

	// No new force: a second update must not integrate stale acceleration.
	p.Update(1)
	if !almostEqual(p.Speed(), first) {
		t.Errorf("speed changed without force or friction: %f -> %f", first, p.Speed())
	}
}

func TestPhysicsWritesVelocityIntoTransform(t *testing.T) {
	e := ecs.NewEntity()
	tr := components.NewTransform(0, 0)
	p := components.NewPhysics(100, 1, 1, 1)
	e.AddComponent(ecs.KindTransform, tr)
	e.AddComponent(ecs.KindPhysics, p)

	p.SetDirection(0, 1)
	p.SetSpeed(30)
	p.Update(1.0 / 60)

	if !almostEqual(tr.VelX, 0) || !almostEqual(tr.VelY, 30) {
		t.Errorf("transform velocity = (%f, %f), want (0, 30)", tr.VelX, tr.VelY)
	}

	tr.Update(1)
	if !almostEqual(tr.X, 0) || !almostEqual(tr.Y, 30) {
		t.Errorf("transform integrated to (%f, %f), want (0, 30)", tr.X, tr.Y)
	}
}

func TestOwnerlessPhysicsUpdateDoesNotPanic(t *testing.T) {
	p := components.NewPhysics(100, 0.9, 1, 1)
	p.SetSpeed(10)
	p.Update(1.0 / 60)

	if !almostEqual(p.Speed(), 9) {
		t.Errorf("detached physics still applies friction: got %f", p.Speed())
	}
}
