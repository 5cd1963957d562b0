package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sample rate and oscillator/envelope shapes follow the teacher's
// audio/effects.go: a raw oscillator wrapped in an attack/release
// envelope, played through a single shared speaker. The demo only
// needs two fixed cues (no command queue, no mixer state) so the
// teacher's full AudioEngine goroutine/queue plumbing is not carried
// over — just the streamer-construction technique.

const cueSampleRate = beep.SampleRate(44100)

var audioReady bool

func initAudio() error {
	err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10))
	if err != nil {
		return err
	}
	audioReady = true
	return nil
}

// oscillator generates one raw waveform for cueSampleRate.N(duration) samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newOscillator(freq float64, duration time.Duration) beep.Streamer {
	return &oscillator{freq: freq, duration: cueSampleRate.N(duration)}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(cueSampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release volume shape over an inner streamer.
type envelope struct {
	streamer                      beep.Streamer
	position                      int
	attackSamples, releaseSamples int
	totalSamples                  int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  cueSampleRate.N(attack),
		releaseSamples: cueSampleRate.N(release),
		totalSamples:   cueSampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// playAlignmentCue sounds a short high (880 Hz) tone when a query is
// fully aligned, a short low (220 Hz) tone otherwise.
func playAlignmentCue(fullyAligned bool) {
	if !audioReady {
		return
	}
	freq := 220.0
	if fullyAligned {
		freq = 880.0
	}
	osc := newOscillator(freq, 150*time.Millisecond)
	shaped := newEnvelope(osc, 150*time.Millisecond, 10*time.Millisecond, 60*time.Millisecond)
	speaker.Play(shaped)
}
