package audio

import (
	"fmt"

	"github.com/lixenwraith/simon/constants"
)

// AudioConfig controls output and per-cue volume
// Loaded by the config package from file and SIMON_* environment variables
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" env:"AUDIO_ENABLED"`
	MasterVolume float64 `yaml:"master_volume" env:"MASTER_VOLUME"`
	SampleRate   int     `yaml:"sample_rate" env:"SAMPLE_RATE"`

	// ToneVolume scales the pad tones, WrongVolume the game over buzz
	ToneVolume  float64 `yaml:"tone_volume" env:"TONE_VOLUME"`
	WrongVolume float64 `yaml:"wrong_volume" env:"WRONG_VOLUME"`
}

// DefaultAudioConfig returns the stock audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		ToneVolume:   0.8,
		WrongVolume:  0.6,
	}
}

// Validate checks volume ranges and the sample rate
func (c *AudioConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	for name, v := range map[string]float64{
		"master_volume": c.MasterVolume,
		"tone_volume":   c.ToneVolume,
		"wrong_volume":  c.WrongVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %.2f outside [0,1]", ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// volumeFor returns the effective linear volume of a cue
func (c *AudioConfig) volumeFor(cue Cue) float64 {
	if cue == CueWrong {
		return c.WrongVolume * c.MasterVolume
	}
	return c.ToneVolume * c.MasterVolume
}
