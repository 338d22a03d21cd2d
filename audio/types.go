package audio

// SoundType identifies a feedback tone
type SoundType int

const (
	SoundEat SoundType = iota
	SoundDeath
)

var soundNames = map[string]SoundType{
	"eat":   SoundEat,
	"death": SoundDeath,
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}
