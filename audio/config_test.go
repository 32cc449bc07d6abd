package audio

import "testing"

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	expectedVolumes := map[SoundType]float64{
		SoundTheme: 0.35,
		SoundClear: 0.8,
		SoundLand:  0.6,
	}
	for soundType, expectedVol := range expectedVolumes {
		if vol, ok := cfg.EffectVolumes[soundType]; !ok {
			t.Errorf("Expected volume for sound %v to be set", soundType)
		} else if vol != expectedVol {
			t.Errorf("Expected volume %f for sound %v, got %f", expectedVol, soundType, vol)
		}
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := &AudioConfig{
		MasterVolume:  1.7,
		EffectVolumes: map[SoundType]float64{SoundClear: -0.2, SoundLand: 0.4},
		SampleRate:    0,
	}
	cfg.Normalize()

	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundClear] != 0 {
		t.Errorf("Expected clear volume clamped to 0, got %f", cfg.EffectVolumes[SoundClear])
	}
	if cfg.EffectVolumes[SoundLand] != 0.4 {
		t.Errorf("Expected land volume untouched, got %f", cfg.EffectVolumes[SoundLand])
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected sample rate reset to 44100, got %d", cfg.SampleRate)
	}
}

func TestEffectiveVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	if got := cfg.volume(SoundClear); got != 0.4 {
		t.Errorf("Expected 0.8*0.5=0.4, got %f", got)
	}

	delete(cfg.EffectVolumes, SoundLand)
	if got := cfg.volume(SoundLand); got != 0.5 {
		t.Errorf("Expected missing effect volume to default to master, got %f", got)
	}
}

func TestSoundTypeNames(t *testing.T) {
	want := map[SoundType]string{
		SoundTheme: "theme",
		SoundClear: "clear",
		SoundLand:  "land",
	}
	for st, name := range want {
		if st.String() != name {
			t.Errorf("Expected %q, got %q", name, st.String())
		}
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected out-of-range sound to be unknown")
	}
}
