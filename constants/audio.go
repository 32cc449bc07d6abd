package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Land Sound Timing
const (
	LandSoundDuration = 90 * time.Millisecond
	LandSoundAttack   = 2 * time.Millisecond
	LandSoundRelease  = 60 * time.Millisecond
)

// Clear Sound Timing
const (
	ClearSoundNote1Duration = 90 * time.Millisecond
	ClearSoundNote2Duration = 90 * time.Millisecond
	ClearSoundNote3Duration = 240 * time.Millisecond
	ClearSoundAttack        = 5 * time.Millisecond
	ClearSoundRelease       = 60 * time.Millisecond
	ClearSoundFinalRelease  = 180 * time.Millisecond
)

// Theme Timing
const (
	// ThemeNoteDuration is the length of one melody step (quarter note at 150 BPM)
	ThemeNoteDuration = 400 * time.Millisecond
	ThemeNoteAttack   = 10 * time.Millisecond
	ThemeNoteRelease  = 120 * time.Millisecond
)
