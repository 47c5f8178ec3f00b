package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/simon/constants"
)

// cueCache stores rendered cue buffers, streamers are single-use so playback replays a buffer slice
type cueCache struct {
	mu     sync.RWMutex
	cfg    *AudioConfig
	format beep.Format
	store  [cueCount]*beep.Buffer
}

func newCueCache(cfg *AudioConfig) *cueCache {
	return &cueCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// streamer returns a fresh streamer over the cached buffer, rendering it on first use
func (c *cueCache) streamer(cue Cue) beep.StreamSeeker {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[cue]
	c.mu.RUnlock()

	if buf == nil {
		c.mu.Lock()
		// Double-check after acquiring write lock
		if buf = c.store[cue]; buf == nil {
			buf = beep.NewBuffer(c.format)
			buf.Append(beep.Take(c.format.SampleRate.N(cueDuration(cue)), GetCue(cue, c.cfg)))
			c.store[cue] = buf
		}
		c.mu.Unlock()
	}

	return buf.Streamer(0, buf.Len())
}

// cueDuration bounds the rendered length of a cue
func cueDuration(cue Cue) time.Duration {
	if cue == CueWrong {
		return constants.WrongToneDuration
	}
	return constants.PadToneDuration
}

// preload renders every cue so the first press has no generation delay
func (c *cueCache) preload() {
	for cue := Cue(0); cue < cueCount; cue++ {
		c.streamer(cue)
	}
}
