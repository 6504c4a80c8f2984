package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Note is one step of a sound effect.
type Note struct {
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Wave     Wave
}

// Effect is a short sequence of notes played for a gameplay event.
type Effect struct {
	Notes  []Note
	Volume float64 // beep volume, 0 is unchanged and each -1 halves it
}

// Effects maps gameplay events to their sound.
var Effects = map[core.Event]Effect{
	core.EventPaddleHit: {
		Notes:  []Note{{Freq: 440, Duration: 40 * time.Millisecond, Wave: WaveSquare}},
		Volume: -2,
	},
	core.EventWallHit: {
		Notes:  []Note{{Freq: 220, Duration: 30 * time.Millisecond, Wave: WaveSquare}},
		Volume: -3,
	},
	core.EventBrickHit: {
		Notes:  []Note{{Freq: 880, EndFreq: 660, Duration: 50 * time.Millisecond, Wave: WaveSquare}},
		Volume: -2,
	},
	core.EventLifeLost: {
		Notes:  []Note{{Freq: 330, EndFreq: 110, Duration: 300 * time.Millisecond, Wave: WaveSine}},
		Volume: -1,
	},
	core.EventLevelUp: {
		Notes: []Note{
			{Freq: 523, Duration: 80 * time.Millisecond, Wave: WaveSquare},
			{Freq: 659, Duration: 80 * time.Millisecond, Wave: WaveSquare},
			{Freq: 784, Duration: 160 * time.Millisecond, Wave: WaveSquare},
		},
		Volume: -2,
	},
	core.EventGameOver: {
		Notes: []Note{
			{Freq: 392, Duration: 150 * time.Millisecond, Wave: WaveSine},
			{Freq: 330, Duration: 150 * time.Millisecond, Wave: WaveSine},
			{Freq: 262, EndFreq: 131, Duration: 400 * time.Millisecond, Wave: WaveSine},
		},
		Volume: -1,
	},
	core.EventRestart: {
		Notes:  []Note{{Freq: 1200, Duration: 60 * time.Millisecond, Wave: WaveNoise}},
		Volume: -4,
	},
}

// Build turns an effect into a finite streamer.
func (e Effect) Build(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(e.Notes))
	for _, n := range e.Notes {
		parts = append(parts, NewTone(n.Freq, n.EndFreq, n.Duration, n.Wave, rate))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   e.Volume,
	}
}

// Duration returns the total length of the effect.
func (e Effect) Duration() time.Duration {
	var d time.Duration
	for _, n := range e.Notes {
		d += n.Duration
	}
	return d
}
