package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blockfall/constants"
)

// SoundManager plays game effects through a single speaker mixer.
// Every method is safe to call before Initialize or after a failed
// Initialize; playback is then silently skipped.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	theme       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues an effect; loops < 0 repeats until Stop. Only one theme plays at a time.
func (sm *SoundManager) Play(sound SoundType, loops int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(sound, sm.cfg)
	if streamer == nil {
		log.Printf("audio: unknown sound %d", int(sound))
		return
	}
	streamer = Repeat(streamer, loops, beep.SampleRate(sm.cfg.SampleRate))

	speaker.Lock()
	defer speaker.Unlock()

	if sound == SoundTheme {
		if sm.theme != nil && !sm.theme.Paused {
			return
		}
		ctrl := &beep.Ctrl{Streamer: streamer}
		sm.theme = ctrl
		streamer = ctrl
	}
	sm.mixer.Add(streamer)
}

// Stop silences everything currently queued
func (sm *SoundManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.theme != nil {
		sm.theme.Paused = true
		sm.theme = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.Stop()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Close()
	sm.initialized = false
}
