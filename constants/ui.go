package constants

// Animation
const (
	// AnimationCycle is the baddie frame counter period in ticks
	AnimationCycle = 60

	// AnimationBucket is the number of ticks each sprite column is shown
	AnimationBucket = 15

	// SpriteCell is the sprite sheet column width and row height
	SpriteCell = 32
)

// HUD layout
const (
	ScoreX = 20
	ScoreY = 20

	HealthBarX       = 20
	HealthBarBottom  = 40 // distance of the bar top from the surface bottom
	HealthSegmentW   = 4
	HealthSegmentH   = 20
	HealthSegmentGap = 6 // stride between segment origins

	GameOverText    = "G A M E   O V E R"
	GameOverOffsetX = 55
)

// Terminal raster: logical pixels per raster pixel. A half-block cell
// stacks two raster pixels, so 576x480 becomes 72x30 cells
const (
	TerminalPixelW = 8.0
	TerminalPixelH = 8.0
)

// Window backend
const (
	WindowTitle = "Zombies"
	WindowScale = 1
)
