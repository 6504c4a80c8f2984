package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSine
	WaveNoise
)

// tone is a fixed-length oscillator that slides linearly from freq to
// endFreq and fades out over its last quarter.
type tone struct {
	freq    float64
	endFreq float64
	wave    Wave
	rate    beep.SampleRate

	phase    float64
	position int
	total    int
	noise    uint32
}

// NewTone creates a streamer playing a single tone.
// An endFreq of 0 keeps the pitch constant.
func NewTone(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	if endFreq == 0 {
		endFreq = freq
	}
	return &tone{
		freq:    freq,
		endFreq: endFreq,
		wave:    wave,
		rate:    rate,
		total:   rate.N(d),
		noise:   0x9e3779b9,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.total)
		val := t.sample() * t.gain(progress)
		samples[i][0] = val
		samples[i][1] = val

		freq := t.freq + (t.endFreq-t.freq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * t.phase)
	case WaveNoise:
		// xorshift keeps noise deterministic
		t.noise ^= t.noise << 13
		t.noise ^= t.noise >> 17
		t.noise ^= t.noise << 5
		return float64(t.noise)/float64(math.MaxUint32)*2 - 1
	default:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	}
}

// gain fades the last quarter of the tone to avoid clicks.
func (t *tone) gain(progress float64) float64 {
	const release = 0.75
	if progress < release {
		return 1
	}
	return (1 - progress) / (1 - release)
}
