package ecs_test

import (
	"testing"

	"ebiten-racer/ecs"
)

// probe is a minimal component recording its lifecycle hook invocations.
type probe struct {
	ecs.BaseComponent
	inits    int
	cleanups int
	updates  int
}

func (p *probe) Init()             { p.inits++ }
func (p *probe) Cleanup()          { p.cleanups++ }
func (p *probe) Update(dt float64) { p.updates++ }

func TestAddComponent(t *testing.T) {
	e := ecs.NewEntity()
	c := &probe{}

	if e.HasComponent(ecs.KindPhysics) {
		t.Fatal("fresh entity reports a component it does not have")
	}

	e.AddComponent(ecs.KindPhysics, c)

	if !e.HasComponent(ecs.KindPhysics) {
		t.Error("HasComponent is false immediately after AddComponent")
	}
	got, ok := e.GetComponent(ecs.KindPhysics)
	if !ok || got != ecs.Component(c) {
		t.Error("GetComponent did not return the attached instance")
	}
	if c.Owner() != e {
		t.Error("back-reference to the owning entity was not set on attach")
	}
	if c.inits != 1 {
		t.Errorf("expected exactly one Init call, got %d", c.inits)
	}
}

func TestRemoveComponent(t *testing.T) {
	e := ecs.NewEntity()
	c := &probe{}
	e.AddComponent(ecs.KindSprite, c)

	e.RemoveComponent(ecs.KindSprite)

	if e.HasComponent(ecs.KindSprite) {
		t.Error("HasComponent is true immediately after RemoveComponent")
	}
	if c.cleanups != 1 {
		t.Errorf("expected exactly one Cleanup call, got %d", c.cleanups)
	}

	// Removing an absent component is a no-op.
	e.RemoveComponent(ecs.KindSprite)
	if c.cleanups != 1 {
		t.Errorf("cleanup ran again on a no-op removal, got %d calls", c.cleanups)
	}
}

func TestReplaceComponentCleansUpOld(t *testing.T) {
	e := ecs.NewEntity()
	old := &probe{}
	replacement := &probe{}

	e.AddComponent(ecs.KindInput, old)
	e.AddComponent(ecs.KindInput, replacement)

	if old.cleanups != 1 {
		t.Errorf("replaced component cleaned up %d times, want exactly 1", old.cleanups)
	}
	if replacement.cleanups != 0 {
		t.Error("replacement component was cleaned up on attach")
	}
	got, _ := e.GetComponent(ecs.KindInput)
	if got != ecs.Component(replacement) {
		t.Error("second add of the same kind did not overwrite the first")
	}
}

func TestHasComponents(t *testing.T) {
	e := ecs.NewEntity()
	e.AddComponent(ecs.KindTransform, &probe{})
	e.AddComponent(ecs.KindPhysics, &probe{})

	if !e.HasComponents(ecs.KindTransform, ecs.KindPhysics) {
		t.Error("HasComponents false for kinds the entity holds")
	}
	if e.HasComponents(ecs.KindTransform, ecs.KindSprite) {
		t.Error("HasComponents true despite a missing kind")
	}
}

func TestTags(t *testing.T) {
	e := ecs.NewEntity()
	e.AddTag("car")

	if !e.HasTag("car") {
		t.Error("HasTag false after AddTag")
	}
	e.RemoveTag("car")
	if e.HasTag("car") {
		t.Error("HasTag true after RemoveTag")
	}
}

func TestActiveFlag(t *testing.T) {
	e := ecs.NewEntity()
	if !e.IsActive() {
		t.Error("new entities should start active")
	}
	e.SetActive(false)
	if e.IsActive() {
		t.Error("IsActive true after SetActive(false)")
	}
}
