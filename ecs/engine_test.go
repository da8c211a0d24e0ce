package ecs_test

import (
	"testing"
	"time"

	"ebiten-racer/ecs"
)

// recordingSystem counts invocations and appends its name to a shared
// order slice.
type recordingSystem struct {
	name     string
	priority int
	updates  int
	inits    int
	lastDt   float64
	order    *[]string
}

func (s *recordingSystem) Priority() int  { return s.priority }
func (s *recordingSystem) IsActive() bool { return true }

func (s *recordingSystem) Update(e *ecs.Engine, dt float64) {
	s.updates++
	s.lastDt = dt
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

func (s *recordingSystem) Init(e *ecs.Engine) { s.inits++ }

// manualClock drives the engine's frame limiter from test code.
type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time { return c.t }

func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine() (*ecs.Engine, *manualClock) {
	engine := ecs.NewEngine()
	clock := &manualClock{t: time.Unix(1000, 0)}
	engine.SetClock(clock.now)
	return engine, clock
}

func TestAddEntityAssignsSequentialIDs(t *testing.T) {
	engine, _ := newTestEngine()

	e1 := ecs.NewEntity()
	e2 := ecs.NewEntity()
	id1 := engine.AddEntity(e1)
	id2 := engine.AddEntity(e2)

	if id1 != 1 || id2 != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", id1, id2)
	}
	if engine.Entity(id1) != e1 || engine.Entity(id2) != e2 {
		t.Error("registered entities are not retrievable by id")
	}
}

func TestRemoveEntityCleansUpAndNeverReusesIDs(t *testing.T) {
	engine, _ := newTestEngine()

	e := ecs.NewEntity()
	c := &probe{}
	e.AddComponent(ecs.KindPhysics, c)
	id := engine.AddEntity(e)

	engine.RemoveEntity(id)

	if engine.Entity(id) != nil {
		t.Error("entity still reachable after removal")
	}
	if c.cleanups != 1 {
		t.Errorf("expected one cleanup on deregistration, got %d", c.cleanups)
	}

	// Idempotent removal.
	engine.RemoveEntity(id)

	if next := engine.AddEntity(ecs.NewEntity()); next != 2 {
		t.Errorf("id reused after removal: got %d, want 2", next)
	}
}

func TestEntitiesWithFiltersKindsAndActivity(t *testing.T) {
	engine, _ := newTestEngine()

	moving := ecs.NewEntity()
	moving.AddComponent(ecs.KindTransform, &probe{})
	moving.AddComponent(ecs.KindPhysics, &probe{})
	engine.AddEntity(moving)

	bare := ecs.NewEntity()
	bare.AddComponent(ecs.KindTransform, &probe{})
	engine.AddEntity(bare)

	dormant := ecs.NewEntity()
	dormant.AddComponent(ecs.KindTransform, &probe{})
	dormant.AddComponent(ecs.KindPhysics, &probe{})
	dormant.SetActive(false)
	engine.AddEntity(dormant)

	got := engine.EntitiesWith(ecs.KindTransform, ecs.KindPhysics)
	if len(got) != 1 || got[0] != moving {
		t.Errorf("expected only the active moving entity, got %d entities", len(got))
	}
}

func TestFrameLimiter(t *testing.T) {
	engine, clock := newTestEngine()
	sys := &recordingSystem{name: "sys"}
	engine.AddSystem(sys)
	engine.Start()

	// Below the target interval: the frame is skipped outright.
	clock.advance(10 * time.Millisecond)
	if engine.Tick() {
		t.Error("frame processed below the target interval")
	}
	if sys.updates != 0 {
		t.Errorf("system updated on a skipped frame: %d", sys.updates)
	}

	// Crossing the interval processes exactly one frame.
	clock.advance(10 * time.Millisecond)
	if !engine.Tick() {
		t.Error("frame not processed at 20ms elapsed")
	}
	if sys.updates != 1 {
		t.Errorf("expected exactly one update, got %d", sys.updates)
	}
	if sys.lastDt < 0.019 || sys.lastDt > 0.021 {
		t.Errorf("dt not converted to seconds: %f", sys.lastDt)
	}

	// The remainder above one interval carries over: 20ms processed at a
	// ~16.7ms interval leaves ~3.3ms of credit, so another 14ms suffices.
	clock.advance(5 * time.Millisecond)
	if engine.Tick() {
		t.Error("frame processed with only ~8ms accumulated")
	}
	clock.advance(9 * time.Millisecond)
	if !engine.Tick() {
		t.Error("carried remainder was lost")
	}
	if sys.updates != 2 {
		t.Errorf("expected two updates, got %d", sys.updates)
	}
}

func TestStopHaltsAtNextTick(t *testing.T) {
	engine, clock := newTestEngine()
	sys := &recordingSystem{name: "sys"}
	engine.AddSystem(sys)
	engine.Start()

	engine.Stop()
	clock.advance(time.Second)
	if engine.Tick() {
		t.Error("stopped engine still processed a frame")
	}
	if sys.updates != 0 {
		t.Error("system ran after Stop")
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	engine, clock := newTestEngine()
	var order []string
	engine.AddSystem(&recordingSystem{name: "late", priority: 100, order: &order})
	engine.AddSystem(&recordingSystem{name: "early", priority: 5, order: &order})
	engine.Start()

	clock.advance(20 * time.Millisecond)
	engine.Tick()

	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("systems ran out of priority order: %v", order)
	}
}

func TestAddSystemWhileRunningInitsImmediately(t *testing.T) {
	engine, _ := newTestEngine()
	before := &recordingSystem{name: "before"}
	engine.AddSystem(before)

	if before.inits != 0 {
		t.Error("init hook ran before the engine started")
	}

	engine.Start()
	if before.inits != 1 {
		t.Errorf("pre-registered system not initialized on Start: %d", before.inits)
	}

	after := &recordingSystem{name: "after"}
	engine.AddSystem(after)
	if after.inits != 1 {
		t.Errorf("system added to a running engine not initialized immediately: %d", after.inits)
	}
}

type stubEvent struct{ payload int }

func (stubEvent) Type() ecs.EventType { return "stub" }

func TestEventManagerDispatch(t *testing.T) {
	engine, _ := newTestEngine()

	var got []int
	engine.Events().Subscribe("stub", func(ev ecs.Event) {
		got = append(got, ev.(stubEvent).payload)
	})
	engine.Emit(stubEvent{payload: 7})
	engine.Emit(stubEvent{payload: 9})

	if len(got) != 2 || got[0] != 7 || got[1] != 9 {
		t.Errorf("events not dispatched in order: %v", got)
	}
}
