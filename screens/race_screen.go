package screens

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-racer/components"
	"ebiten-racer/data"
	"ebiten-racer/ecs"
	"ebiten-racer/systems"
)

// RaceScreen drives the engine while a race is running.
type RaceScreen struct {
	*BaseScreen
	engine *ecs.Engine
}

// NewRaceScreen creates a race screen over a started engine.
func NewRaceScreen(engine *ecs.Engine) *RaceScreen {
	return &RaceScreen{
		BaseScreen: NewBaseScreen(),
		engine:     engine,
	}
}

// Update runs one engine tick. Escape stops the engine cooperatively and
// returns to the menu.
func (s *RaceScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.engine.Stop()
		return ErrBackToMenu
	}
	s.engine.Tick()
	return nil
}

// Draw renders the engine's current state.
func (s *RaceScreen) Draw(screen *ebiten.Image) {
	s.engine.Render(screen)
}

// RaceScene is the engine-level scene for a race: it runs the starting
// countdown (driving disabled until "GO"), the race clock and finish-line
// lap counting.
type RaceScene struct {
	track    *data.Track
	log      *systems.MessageLog
	inputSys *systems.InputSystem

	countdown float64
	elapsed   float64
	onFinish  map[ecs.EntityID]bool
	laps      map[ecs.EntityID]int
}

// NewRaceScene creates a race scene with a 3-second countdown.
func NewRaceScene(track *data.Track, log *systems.MessageLog, inputSys *systems.InputSystem) *RaceScene {
	inputSys.SetActive(false)
	return &RaceScene{
		track:     track,
		log:       log,
		inputSys:  inputSys,
		countdown: 3,
		onFinish:  make(map[ecs.EntityID]bool),
		laps:      make(map[ecs.EntityID]int),
	}
}

// Update advances the countdown and, once racing, the clock and lap
// tracking.
func (s *RaceScene) Update(e *ecs.Engine, dt float64) {
	if s.countdown > 0 {
		s.countdown -= dt
		if s.countdown <= 0 {
			s.inputSys.SetActive(true)
			s.log.Add("GO!")
		}
		return
	}

	s.elapsed += dt

	for _, car := range e.EntitiesWithTag("car") {
		trComp, ok := car.GetComponent(ecs.KindTransform)
		if !ok {
			continue
		}
		tr := trComp.(*components.Transform)
		col, row := data.WorldToGrid(tr.X, tr.Y)
		on := s.track.TileTypeAt(col, row) == data.TileFinish
		if on && !s.onFinish[car.ID] {
			s.laps[car.ID]++
			e.Emit(systems.FinishEvent{EntityID: car.ID, Lap: s.laps[car.ID]})
		}
		s.onFinish[car.ID] = on
	}
}

// Render is a no-op; the HUD is drawn by the render system, which pulls
// the status line from Status.
func (s *RaceScene) Render(e *ecs.Engine, screen *ebiten.Image) {}

// Status returns the HUD status line: the countdown before the start, the
// race clock after it.
func (s *RaceScene) Status() string {
	if s.countdown > 0 {
		return fmt.Sprintf("%d", int(math.Ceil(s.countdown)))
	}
	return fmt.Sprintf("%6.1fs", s.elapsed)
}
