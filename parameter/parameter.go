package parameter

// Buffer & Scene Defaults
const (
	// DefaultBufferWidth is the pixel buffer width when no config overrides it
	DefaultBufferWidth = 320

	// DefaultBufferHeight is the pixel buffer height when no config overrides it
	DefaultBufferHeight = 240

	// DefaultRectSize is the initial rectangle edge length in pixels
	DefaultRectSize = 50

	// DefaultMoveStep is the keyboard relative-move distance in pixels
	DefaultMoveStep = 5

	// DefaultRefreshHz is the frame notification rate when no config overrides it
	DefaultRefreshHz = 60
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the input event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
