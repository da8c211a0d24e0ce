package spawners

import (
	"image/color"

	"ebiten-racer/assets"
	"ebiten-racer/components"
	"ebiten-racer/config"
	"ebiten-racer/data"
	"ebiten-racer/ecs"
	"ebiten-racer/input"
	"ebiten-racer/systems"
)

// CreateCar builds and registers a player car: transform at the spawn
// cell's center, car physics colliding against the track, a sprite (solid
// fallback color when the image key is unresolved) and the control-law
// input component polling the given source.
func CreateCar(engine *ecs.Engine, am *assets.Manager, source input.Source,
	spawn data.SpawnPoint, track *data.Track, imageKey string, fallback color.Color) *ecs.Entity {

	entity := ecs.NewEntity()
	entity.AddTag("car")

	x, y := data.GridToWorld(spawn.Col, spawn.Row)
	tr := components.NewTransform(x, y)
	tr.Rotation = spawn.Rotation
	entity.AddComponent(ecs.KindTransform, tr)

	phys := components.NewCarPhysics(track)
	entity.AddComponent(ecs.KindPhysics, phys)

	img, _ := am.Image(imageKey)
	sprite := components.NewSprite(img, config.CarSpriteWidth, config.CarSpriteHeight)
	if img == nil {
		sprite.Tint = fallback
	}
	entity.AddComponent(ecs.KindSprite, sprite)

	entity.AddComponent(ecs.KindInput, components.NewCarInput(source))

	engine.AddEntity(entity)

	phys.OnCollision = func(col, row int) {
		engine.Emit(systems.CollisionEvent{EntityID: entity.ID, Col: col, Row: row})
	}

	return entity
}
