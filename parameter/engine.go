package parameter

import "time"

// Simulation Loop
const (
	// StepHz is the only supported step rate; velocities and timers are tuned per step
	StepHz = 60

	// StepSize is the fixed simulation step (1/60 s)
	StepSize = time.Second / StepHz

	// MaxBacklog caps unconverted wall time after a stall, preventing catch-up spirals
	MaxBacklog = 250 * time.Millisecond

	// FrameInterval is the render callback cadence (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Queues
const (
	// IntentQueueSize bounds queued start/restart/quit intents; overflow is dropped
	IntentQueueSize = 16

	// EventQueueSize is the initial capacity of the per-frame event queue
	EventQueueSize = 64

	// TerminalEventBuffer is the poller-to-loop channel capacity
	TerminalEventBuffer = 256
)

// Files
const (
	// DefaultScoresPath is the msgpack high-score file, relative to the working directory
	DefaultScoresPath = "cursor-chase.scores"

	// DefaultLogDir receives rotated debug logs
	DefaultLogDir = "logs"

	// LogFileName is the active log file inside the log directory
	LogFileName = "cursor-chase.log"

	// LogMaxSizeMB rotates the log file past this size
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept
	LogMaxBackups = 3
)
