package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-snake/constants"
)

// sweep is a sine tone gliding linearly from one frequency to another
// with a short linear fade-out to avoid clicks
type sweep struct {
	rate      beep.SampleRate
	startFreq float64
	endFreq   float64
	duration  int
	position  int
	phase     float64
}

// NewSweep creates a finite tone streamer from startFreq to endFreq
func NewSweep(rate beep.SampleRate, startFreq, endFreq float64, duration time.Duration) beep.Streamer {
	return &sweep{
		rate:      rate,
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  max(rate.N(duration), 1),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	fade := max(s.duration/10, 1)

	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		if remaining := s.duration - s.position; remaining < fade {
			val *= float64(remaining) / float64(fade)
		}

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// eatTone is two short rising notes
func eatTone(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewSweep(rate, constants.EatSoundNote1Freq, constants.EatSoundNote1Freq, constants.EatSoundNote1Duration),
		NewSweep(rate, constants.EatSoundNote2Freq, constants.EatSoundNote2Freq, constants.EatSoundNote2Duration),
	)
}

// deathTone is a low falling buzz
func deathTone(rate beep.SampleRate) beep.Streamer {
	return NewSweep(rate, constants.DeathSoundStartFreq, constants.DeathSoundEndFreq, constants.DeathSoundDuration)
}
