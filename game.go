package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-racer/assets"
	"ebiten-racer/data"
	"ebiten-racer/ecs"
	"ebiten-racer/input"
	"ebiten-racer/screens"
	"ebiten-racer/spawners"
	"ebiten-racer/systems"
)

// Game implements ebiten.Game interface. It owns the active screen and
// builds a fresh engine for each race.
type Game struct {
	current  screens.Screen
	audioSys *systems.AudioSystem
}

// NewGame creates a new game instance on the start menu.
func NewGame() *Game {
	return &Game{
		current: screens.NewStartScreen(),
	}
}

// Update updates the active screen and handles transitions between them.
func (g *Game) Update() error {
	err := g.current.Update()
	switch err {
	case nil:
		return nil
	case screens.ErrStartRace:
		race, buildErr := g.buildRace()
		if buildErr != nil {
			start := screens.NewStartScreen()
			start.SetError(buildErr)
			g.current = start
			return nil
		}
		g.current = race
		return nil
	case screens.ErrBackToMenu:
		g.current = screens.NewStartScreen()
		return nil
	case screens.ErrQuit:
		return ebiten.Termination
	default:
		return err
	}
}

// buildRace constructs all managers, systems and entities for a race,
// eagerly and in dependency order, then starts the engine. Asset loading
// failure aborts the build; the menu shows the error instead.
func (g *Game) buildRace() (screens.Screen, error) {
	am := assets.NewManager()
	if err := am.LoadImages(assets.DefaultImagePaths()); err != nil {
		return nil, err
	}

	engine := ecs.NewEngine()
	track := data.DefaultTrack()
	msgLog := systems.NewMessageLog()

	inputSys := systems.NewInputSystem()
	renderSys := systems.NewRenderSystem(msgLog)

	// The audio context can exist only once per process; reuse the system
	// across races.
	if g.audioSys == nil {
		g.audioSys = systems.NewAudioSystem()
		if err := g.audioSys.LoadCrashSound("assets/crash.wav"); err != nil {
			msgLog.Add("audio disabled: " + err.Error())
		}
	}

	engine.AddSystem(inputSys)
	engine.AddSystem(systems.NewMovementSystem())
	engine.AddSystem(g.audioSys)
	engine.AddSystem(systems.NewTrackRenderSystem(track, am))
	engine.AddSystem(renderSys)

	spawns := data.DefaultSpawns()
	spawners.CreateCar(engine, am, input.Player1Bindings(), spawns[0], track,
		assets.Player1Car, color.RGBA{220, 50, 50, 255})
	spawners.CreateCar(engine, am, input.Player2Bindings(), spawns[1], track,
		assets.Player2Car, color.RGBA{60, 90, 220, 255})

	scene := screens.NewRaceScene(track, msgLog, inputSys)
	engine.SetScene(scene)
	renderSys.StatusText = scene.Status

	engine.Events().Subscribe(systems.EventCollision, func(ev ecs.Event) {
		c := ev.(systems.CollisionEvent)
		msgLog.Add(fmt.Sprintf("car %d hit the wall at (%d,%d)", c.EntityID, c.Col, c.Row))
	})
	engine.Events().Subscribe(systems.EventFinish, func(ev ecs.Event) {
		f := ev.(systems.FinishEvent)
		msgLog.Add(fmt.Sprintf("car %d crossed the line (lap %d)", f.EntityID, f.Lap))
	})

	engine.Start()
	return screens.NewRaceScreen(engine), nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.current.Layout(outsideWidth, outsideHeight)
}
