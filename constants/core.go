package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame clock period (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TicksPerSecond is the window backend update rate
	TicksPerSecond = 60
)

// Surface
const (
	// CanvasWidth and CanvasHeight are the logical surface size in pixels
	CanvasWidth  = 576
	CanvasHeight = 480
)

// Startup
const (
	// AssetLoadTimeout bounds the sprite loading barrier
	AssetLoadTimeout = 5 * time.Second

	// KeyHoldTimeout is how long a terminal key press counts as held without a repeat
	KeyHoldTimeout = 150 * time.Millisecond
)
