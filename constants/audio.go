package constants

import "time"

// Audio Output
const (
	// DefaultSampleRate is the speaker sample rate in Hz
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length, trades latency for underrun safety
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Pad Tone Frequencies (Hz), classic Simon pitches
const (
	ToneGreen  = 415.30 // G#4
	ToneRed    = 311.13 // D#4
	ToneYellow = 246.94 // B3
	ToneBlue   = 207.65 // G#3
)

// Pad Tone Timing
const (
	PadToneDuration = 350 * time.Millisecond
	PadToneAttack   = 10 * time.Millisecond
	PadToneRelease  = 120 * time.Millisecond
)

// Wrong Tone Timing
const (
	WrongToneFrequency = 42.0
	WrongToneDuration  = 600 * time.Millisecond
	WrongToneAttack    = 5 * time.Millisecond
	WrongToneRelease   = 200 * time.Millisecond
)
