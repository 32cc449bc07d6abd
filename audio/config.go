package audio

import "github.com/lixenwraith/blockfall/constants"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundTheme: 0.35,
			SoundClear: 0.8,
			SoundLand:  0.6,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// Normalize clamps volumes into [0, 1] and restores a sane sample rate
func (c *AudioConfig) Normalize() {
	c.MasterVolume = clamp01(c.MasterVolume)
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64)
	}
	for st, v := range c.EffectVolumes {
		c.EffectVolumes[st] = clamp01(v)
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
}

// volume returns the effective gain for a sound
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
