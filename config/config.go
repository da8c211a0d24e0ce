package config

// Track layout configuration
const (
	// Tile size in pixels
	TileSize = 64

	// Track dimensions in tiles
	TrackWidth  = 16
	TrackHeight = 12

	// Window dimensions in pixels (derived from tile dimensions)
	ScreenWidth  = TrackWidth * TileSize
	ScreenHeight = TrackHeight * TileSize
)

// Car handling configuration. The physics and collision code is parametric
// over all of these; nothing is hardcoded in the logic itself.
const (
	// Top speed in pixels per second
	CarMaxSpeed = 260.0

	// Per-tick speed decay multiplier
	CarFriction = 0.98

	CarMass = 1.0

	// Speed multiplier applied when a car hits a non-navigable tile.
	// Negative: the hit reverses the direction of travel as well as
	// damping it.
	CarBounce = -0.35

	// Force magnitudes for throttle and reverse
	CarDrivePower   = 420.0
	CarReversePower = 180.0

	// Above this forward speed, holding "down" brakes instead of reversing
	CarBrakeThreshold = 2.0

	// Per-tick speed multipliers for active braking and for coasting with
	// no throttle held
	CarBrakeMultiplier = 0.85
	CarCoastMultiplier = 0.95

	// Turn rate in radians per tick, independent of speed
	CarTurnRate = 0.045

	// Car sprite display size in pixels
	CarSpriteWidth  = 48.0
	CarSpriteHeight = 24.0
)

// Collision suppression around spawn. Cars start on their grid cell and may
// sit adjacent to non-road tiles; checks only begin once both thresholds
// are crossed.
const (
	// Milliseconds after creation before collision checks can start
	CarCollisionGraceMS = 2000.0

	// Distance in pixels a car must travel from its spawn point before
	// collision checks can start
	CarStartMoveThreshold = 20.0
)

// GetScreenDimensions returns the render surface dimensions in pixels.
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size.
func GetWindowSize() (width, height int) {
	return 1024, 768
}
