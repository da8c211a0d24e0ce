package data

import (
	"ebiten-racer/config"
)

// TileType classifies a track cell for rendering and collision.
type TileType int

const (
	TileRoad TileType = iota
	TileWall
	TileGrass
	TileFinish
)

// Track is an immutable grid of tile types addressed by column/row.
type Track struct {
	Width  int
	Height int
	tiles  [][]TileType
}

// NewTrack builds a track from a row-major tile grid. The grid is not
// copied; callers must not mutate it afterwards.
func NewTrack(tiles [][]TileType) *Track {
	height := len(tiles)
	width := 0
	if height > 0 {
		width = len(tiles[0])
	}
	return &Track{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// TileTypeAt returns the tile type at (col, row). Out-of-bounds reads are
// defined to return the wall type.
func (t *Track) TileTypeAt(col, row int) TileType {
	if col < 0 || col >= t.Width || row < 0 || row >= t.Height {
		return TileWall
	}
	return t.tiles[row][col]
}

// Navigable reports whether cars can drive on the tile at (col, row).
func (t *Track) Navigable(col, row int) bool {
	tile := t.TileTypeAt(col, row)
	return tile == TileRoad || tile == TileFinish
}

// WorldToGrid converts a world position to the grid cell containing it.
func WorldToGrid(x, y float64) (col, row int) {
	return int(x / config.TileSize), int(y / config.TileSize)
}

// GridToWorld converts a grid cell to the world position of its center.
func GridToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * config.TileSize, (float64(row) + 0.5) * config.TileSize
}

// SpawnPoint is a starting cell and facing angle for a car.
type SpawnPoint struct {
	Col      int
	Row      int
	Rotation float64
}

// Tile type shorthands for the layout literal below.
const (
	r = TileRoad
	w = TileWall
	g = TileGrass
	f = TileFinish
)

// DefaultTrack returns the demo circuit: a two-tile-wide road loop around a
// grass infield, walled on the outside, with a finish line across the top
// straight.
func DefaultTrack() *Track {
	return NewTrack([][]TileType{
		{w, w, w, w, w, w, w, w, w, w, w, w, w, w, w, w},
		{w, r, r, r, r, r, r, f, r, r, r, r, r, r, r, w},
		{w, r, r, r, r, r, r, f, r, r, r, r, r, r, r, w},
		{w, r, r, g, g, g, g, g, g, g, g, g, g, r, r, w},
		{w, r, r, g, g, g, g, g, g, g, g, g, g, r, r, w},
		{w, r, r, g, g, g, g, g, g, g, g, g, g, r, r, w},
		{w, r, r, g, g, g, g, g, g, g, g, g, g, r, r, w},
		{w, r, r, g, g, g, g, g, g, g, g, g, g, r, r, w},
		{w, r, r, g, g, g, g, g, g, g, g, g, g, r, r, w},
		{w, r, r, r, r, r, r, r, r, r, r, r, r, r, r, w},
		{w, r, r, r, r, r, r, r, r, r, r, r, r, r, r, w},
		{w, w, w, w, w, w, w, w, w, w, w, w, w, w, w, w},
	})
}

// DefaultSpawns returns the starting cells for both cars, facing east along
// the top straight.
func DefaultSpawns() [2]SpawnPoint {
	return [2]SpawnPoint{
		{Col: 2, Row: 1, Rotation: 0},
		{Col: 2, Row: 2, Rotation: 0},
	}
}
