package ecs

import (
	"image/color"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TargetFrameInterval is the minimum wall-clock time between processed
// frames. Callbacks arriving sooner are skipped, producing a frame-rate
// ceiling rather than a floor.
const TargetFrameInterval = time.Second / 60

// Engine owns the entity collection, the ordered system list and the active
// scene, and drives update/render each frame. It is single-threaded: all
// mutation happens from within a tick.
type Engine struct {
	entities    map[EntityID]*Entity
	systems     []System
	drawSystems []DrawSystem
	scene       Scene
	events      *EventManager
	nextID      EntityID
	running     bool
	started     bool
	last        time.Time
	interval    time.Duration
	now         func() time.Time
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{
		entities: make(map[EntityID]*Entity),
		events:   NewEventManager(),
		interval: TargetFrameInterval,
		now:      time.Now,
	}
}

// SetClock overrides the wall-clock source used by the frame limiter.
// Tests use this to drive ticks deterministically.
func (g *Engine) SetClock(now func() time.Time) {
	g.now = now
}

// AddEntity registers a detached entity, assigns it the next sequential id
// and returns that id. IDs start at 1 and are never reused.
func (g *Engine) AddEntity(e *Entity) EntityID {
	g.nextID++
	e.ID = g.nextID
	g.entities[e.ID] = e
	return e.ID
}

// RemoveEntity deregisters an entity, cleaning up every component it owns.
// Removing an unknown id is a no-op.
func (g *Engine) RemoveEntity(id EntityID) {
	e, exists := g.entities[id]
	if !exists {
		return
	}
	e.cleanup()
	delete(g.entities, id)
}

// Entity returns the registered entity with the given id, or nil.
func (g *Engine) Entity(id EntityID) *Entity {
	return g.entities[id]
}

// Entities returns all registered entities, ordered by id.
func (g *Engine) Entities() []*Entity {
	entities := make([]*Entity, 0, len(g.entities))
	for _, e := range g.entities {
		entities = append(entities, e)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities
}

// EntitiesWith returns the active entities holding all of the given
// component kinds, ordered by id.
func (g *Engine) EntitiesWith(kinds ...ComponentKind) []*Entity {
	entities := make([]*Entity, 0)
	for _, e := range g.entities {
		if e.IsActive() && e.HasComponents(kinds...) {
			entities = append(entities, e)
		}
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities
}

// EntitiesWithTag returns the active entities carrying the tag, ordered by id.
func (g *Engine) EntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)
	for _, e := range g.entities {
		if e.IsActive() && e.HasTag(tag) {
			entities = append(entities, e)
		}
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities
}

// AddSystem registers a system, keeping the update list ordered by
// Priority and the draw list by DrawPriority. Adding a system to a running
// engine invokes its init hook immediately.
func (g *Engine) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
	if ds, ok := s.(DrawSystem); ok {
		g.drawSystems = append(g.drawSystems, ds)
		sort.SliceStable(g.drawSystems, func(i, j int) bool {
			return g.drawSystems[i].DrawPriority() < g.drawSystems[j].DrawPriority()
		})
	}
	if g.started {
		if is, ok := s.(InitSystem); ok {
			is.Init(g)
		}
	}
}

// RemoveSystem removes a previously added system.
func (g *Engine) RemoveSystem(s System) {
	for i, existing := range g.systems {
		if existing == s {
			g.systems = append(g.systems[:i], g.systems[i+1:]...)
			break
		}
	}
	if ds, ok := s.(DrawSystem); ok {
		for i, existing := range g.drawSystems {
			if existing == ds {
				g.drawSystems = append(g.drawSystems[:i], g.drawSystems[i+1:]...)
				break
			}
		}
	}
}

// SetScene installs the active scene.
func (g *Engine) SetScene(scene Scene) {
	g.scene = scene
}

// Events returns the engine's event manager.
func (g *Engine) Events() *EventManager {
	return g.events
}

// Emit is a convenience method to dispatch an event.
func (g *Engine) Emit(event Event) {
	g.events.Emit(event)
}

// Start marks the engine running, stamps the frame clock and runs the init
// hook of every registered system.
func (g *Engine) Start() {
	if g.running {
		return
	}
	g.running = true
	g.last = g.now()
	if !g.started {
		g.started = true
		for _, s := range g.systems {
			if is, ok := s.(InitSystem); ok {
				is.Init(g)
			}
		}
	}
}

// Stop halts the loop cooperatively: the flag is observed at the next tick
// boundary, which then performs no work.
func (g *Engine) Stop() {
	g.running = false
}

// Running reports whether ticks are being processed.
func (g *Engine) Running() bool {
	return g.running
}

// Tick runs one frame-limited simulation step and reports whether the
// frame was processed. A callback arriving before the target frame
// interval has elapsed is skipped entirely; when a frame is processed the
// remainder below one interval is carried over to the next frame. Errors
// raised inside scene or system callbacks are not caught here; a panic
// aborts the frame and propagates to the caller.
func (g *Engine) Tick() bool {
	if !g.running {
		return false
	}
	now := g.now()
	elapsed := now.Sub(g.last)
	if elapsed < g.interval {
		return false
	}
	g.last = now.Add(-(elapsed % g.interval))

	dt := elapsed.Seconds()
	if g.scene != nil {
		g.scene.Update(g, dt)
	}
	for _, s := range g.systems {
		if s.IsActive() {
			s.Update(g, dt)
		}
	}
	return true
}

// Render clears the screen, renders the active scene, then every active
// draw-capable system in ascending draw priority. Render always reads
// post-update state: within one tick, update fully completes before any
// drawing happens.
func (g *Engine) Render(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	if g.scene != nil {
		g.scene.Render(g, screen)
	}
	for _, s := range g.drawSystems {
		if s.IsActive() {
			s.Draw(g, screen)
		}
	}
}
