package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	chimeFreq  = 880
	chimeLen   = 120 * time.Millisecond
)

// chime signals that the agent reached the goal.
type chime interface {
	Play()
}

type silentChime struct{}

func (silentChime) Play() {}

// toneChime plays a short sine tone through the speaker.
type toneChime struct {
	freq float64
}

func newToneChime() (toneChime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return toneChime{}, err
	}
	return toneChime{freq: chimeFreq}, nil
}

func (t toneChime) Play() {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		// Non-fatal, skip this chime
		log.Printf("chime tone: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(chimeLen), sine))
}
