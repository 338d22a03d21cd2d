package constants

import "time"

// Audio Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing: two rising notes
const (
	EatSoundNote1Duration = 50 * time.Millisecond
	EatSoundNote2Duration = 90 * time.Millisecond
	EatSoundNote1Freq     = 660.0
	EatSoundNote2Freq     = 990.0
)

// Death Sound Timing: low falling buzz
const (
	DeathSoundDuration  = 400 * time.Millisecond
	DeathSoundStartFreq = 220.0
	DeathSoundEndFreq   = 80.0
)
