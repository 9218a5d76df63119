package main

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickSampleRate = beep.SampleRate(44100)
	clickDuration   = 12 * time.Millisecond
	clickThumpFreq  = 180.0
	clickVolume     = 0.35
)

// clickPlayer plays the flap sound. The speaker is opened lazily the
// first time sound is enabled; if that fails sound stays off.
type clickPlayer struct {
	enabled     bool
	initialized bool
	failed      bool
}

func newClickPlayer(enabled bool) *clickPlayer {
	p := &clickPlayer{}
	p.SetEnabled(enabled)
	return p
}

func (p *clickPlayer) Enabled() bool {
	return p.enabled
}

func (p *clickPlayer) SetEnabled(on bool) {
	if on && !p.initialized && !p.failed {
		if err := speaker.Init(clickSampleRate, clickSampleRate.N(time.Second/20)); err != nil {
			log.Printf("sound: speaker init failed, sound disabled: %v", err)
			p.failed = true
		} else {
			p.initialized = true
		}
	}
	p.enabled = on && p.initialized
}

// Click plays one flap click. flips scales the volume a little when many
// tiles land in the same frame.
func (p *clickPlayer) Click(flips int) {
	if !p.enabled || flips <= 0 {
		return
	}
	vol := clickVolume * (1 + math.Log10(float64(flips)))
	speaker.Play(newClick(clickSampleRate, vol))
}

func (p *clickPlayer) Close() {
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
	p.enabled = false
}

// newClick mixes a decaying noise burst with a short low thump.
func newClick(rate beep.SampleRate, vol float64) beep.Streamer {
	total := rate.N(clickDuration)
	pos := 0
	noise := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			decay := 1 - float64(pos)/float64(total)
			v := (rand.Float64()*2 - 1) * decay * decay
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})

	parts := []beep.Streamer{noise}
	if thump, err := generators.SineTone(rate, clickThumpFreq); err == nil {
		parts = append(parts, &effects.Volume{Streamer: beep.Take(total, thump), Base: 2, Volume: -1})
	}

	return &effects.Volume{Streamer: beep.Mix(parts...), Base: 2, Volume: math.Log2(vol)}
}
