package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/game"
)

// SoundManager plays pad tones through the system speaker
// Every method is safe before Initialize, after Cleanup, and with audio disabled
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	cache       *cueCache
	mixer       *beep.Mixer
	initialized bool
	log         zerolog.Logger

	played uint64
}

// NewSoundManager creates a new sound manager, nil config uses defaults
func NewSoundManager(cfg *AudioConfig, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		cache:  newCueCache(cfg),
		mixer:  &beep.Mixer{},
		log:    log,
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true

	sm.log.Debug().Int("sample_rate", sm.config.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue on the mixer, returns false when nothing was played
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	s := sm.cache.streamer(cue)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played++
	return true
}

// PlayColor plays the tone of a pad
func (sm *SoundManager) PlayColor(c game.Color) {
	if cue, ok := CueForColor(c); ok {
		sm.Play(cue)
	}
}

// PlayWrong plays the game over buzz
func (sm *SoundManager) PlayWrong() {
	sm.Play(CueWrong)
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues queued since start
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
