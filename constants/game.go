package constants

import "time"

// Round Timing Constants
const (
	// PresentDelay is the pause before the newly added color is shown
	PresentDelay = 500 * time.Millisecond

	// FlashDuration is how long a pad stays lit after a press or presentation
	FlashDuration = 200 * time.Millisecond

	// AdvanceDelay is the pause between a completed round and the next one
	AdvanceDelay = 1000 * time.Millisecond

	// FailureFlashDuration is how long the board flashes after a wrong press
	FailureFlashDuration = 300 * time.Millisecond
)

// EventQueueSize bounds queued scheduler callbacks and terminal events
const EventQueueSize = 64

// DefaultPlayerName is used when no name is entered
const DefaultPlayerName = "Player"
