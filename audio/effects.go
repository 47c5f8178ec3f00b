package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/simon/constants"
)

// Wave is an oscillator shape over one period, phase in [0, 1)
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

func (w Wave) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Partial is one component of a tone, ratio is relative to the fundamental
type Partial struct {
	Ratio float64
	Wave  Wave
	Gain  float64
}

// Shape is the length and linear attack/release of a tone
type Shape struct {
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

var (
	padPartials = []Partial{
		{Ratio: 1, Wave: WaveSine, Gain: 0.85},
		{Ratio: 2, Wave: WaveSaw, Gain: 0.15},
	}
	// Detuned square gives the buzz its edge
	wrongPartials = []Partial{
		{Ratio: 1, Wave: WaveSaw, Gain: 0.7},
		{Ratio: 1.5, Wave: WaveSquare, Gain: 0.2},
	}

	padShape   = Shape{constants.PadToneDuration, constants.PadToneAttack, constants.PadToneRelease}
	wrongShape = Shape{constants.WrongToneDuration, constants.WrongToneAttack, constants.WrongToneRelease}
)

// tone renders a fixed-length note by summing partials under an envelope
type tone struct {
	freq     float64
	partials []Partial
	phases   []float64
	rate     float64

	pos     int
	total   int
	attack  int
	release int
}

// NewTone creates a finite streamer for freq, it stops after shape.Duration
func NewTone(freq float64, partials []Partial, shape Shape, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		partials: partials,
		phases:   make([]float64, len(partials)),
		rate:     float64(rate),
		total:    rate.N(shape.Duration),
		attack:   rate.N(shape.Attack),
		release:  rate.N(shape.Release),
	}
}

// gain is the envelope level at sample pos
func (t *tone) gain(pos int) float64 {
	g := 1.0
	if t.attack > 0 && pos < t.attack {
		g = float64(pos) / float64(t.attack)
	}
	if left := t.total - pos; t.release > 0 && left < t.release {
		g = math.Min(g, float64(left)/float64(t.release))
	}
	return g
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var v float64
		for j, p := range t.partials {
			v += p.Gain * p.Wave.at(t.phases[j])
			t.phases[j] += t.freq * p.Ratio / t.rate
			t.phases[j] -= math.Floor(t.phases[j])
		}
		v *= t.gain(t.pos)

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// newVolume wraps s at a linear volume, zero is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// toneFrequencies holds the pad pitches indexed by cue
var toneFrequencies = [...]float64{
	CueRed:    constants.ToneRed,
	CueBlue:   constants.ToneBlue,
	CueGreen:  constants.ToneGreen,
	CueYellow: constants.ToneYellow,
}

// CreatePadTone generates the tone of a pad, nil for a non-pad cue
func CreatePadTone(cue Cue, cfg *AudioConfig) beep.Streamer {
	if cue < 0 || int(cue) >= len(toneFrequencies) {
		return nil
	}
	t := NewTone(toneFrequencies[cue], padPartials, padShape, beep.SampleRate(cfg.SampleRate))
	return newVolume(t, cfg.volumeFor(cue))
}

// CreateWrongTone generates the low buzz played on a wrong press
func CreateWrongTone(cfg *AudioConfig) beep.Streamer {
	t := NewTone(constants.WrongToneFrequency, wrongPartials, wrongShape, beep.SampleRate(cfg.SampleRate))
	return newVolume(t, cfg.volumeFor(CueWrong))
}

// GetCue returns a fresh streamer for the given cue
func GetCue(cue Cue, cfg *AudioConfig) beep.Streamer {
	if cue == CueWrong {
		return CreateWrongTone(cfg)
	}
	return CreatePadTone(cue, cfg)
}
