package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/blockfall/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation; freq 0 produces silence
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch {
		case o.freq == 0:
			val = 0
		case o.wave == WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case o.wave == WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case o.wave == WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume maps to a silent Volume
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one melody step; freq 0 is a rest
type note struct {
	freq  float64
	beats float64
}

// Korobeiniki, first phrase. Beat = quarter note.
var themeMelody = []note{
	{659.25, 1}, {493.88, 0.5}, {523.25, 0.5}, {587.33, 1}, {523.25, 0.5}, {493.88, 0.5},
	{440.00, 1}, {440.00, 0.5}, {523.25, 0.5}, {659.25, 1}, {587.33, 0.5}, {523.25, 0.5},
	{493.88, 1.5}, {523.25, 0.5}, {587.33, 1}, {659.25, 1},
	{523.25, 1}, {440.00, 1}, {440.00, 1}, {0, 1},
}

// CreateThemeSound generates one pass of the background melody
func CreateThemeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	steps := make([]beep.Streamer, 0, len(themeMelody))
	for _, n := range themeMelody {
		d := time.Duration(n.beats * float64(constants.ThemeNoteDuration))
		osc := NewOscillator(n.freq, d, WaveTriangle, rate)
		steps = append(steps, NewEnvelope(osc, d, constants.ThemeNoteAttack, constants.ThemeNoteRelease, rate))
	}

	return newVolume(beep.Seq(steps...), cfg.volume(SoundTheme))
}

// CreateClearSound generates a rising three-note arpeggio for a row sweep
func CreateClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C6, E6, G6
	n1 := NewOscillator(1046.50, constants.ClearSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ClearSoundNote1Duration, constants.ClearSoundAttack, constants.ClearSoundRelease, rate)

	n2 := NewOscillator(1318.51, constants.ClearSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ClearSoundNote2Duration, constants.ClearSoundAttack, constants.ClearSoundRelease, rate)

	n3 := NewOscillator(1567.98, constants.ClearSoundNote3Duration, WaveSquare, rate)
	n3Shaped := NewEnvelope(n3, constants.ClearSoundNote3Duration, constants.ClearSoundAttack, constants.ClearSoundFinalRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped, n3Shaped)
	return newVolume(newVolume(sequence, 0.5), cfg.volume(SoundClear))
}

// CreateLandSound generates a short low thud for a locked piece
func CreateLandSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(110.0, constants.LandSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, constants.LandSoundDuration, constants.LandSoundAttack, constants.LandSoundRelease, rate)

	click := NewOscillator(220.0, constants.LandSoundDuration, WaveTriangle, rate)
	clickShaped := NewEnvelope(click, constants.LandSoundDuration, constants.LandSoundAttack, constants.LandSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.7),
		newVolume(clickShaped, 0.3),
	)
	return newVolume(mixed, cfg.volume(SoundLand))
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundTheme:
		return CreateThemeSound(cfg)
	case SoundClear:
		return CreateClearSound(cfg)
	case SoundLand:
		return CreateLandSound(cfg)
	default:
		return nil
	}
}

// Repeat plays s loops times; loops < 0 repeats forever, 0 and 1 play once.
// The stream is buffered first because looping needs a seekable source.
func Repeat(s beep.Streamer, loops int, rate beep.SampleRate) beep.Streamer {
	if loops == 0 || loops == 1 {
		return s
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return beep.Loop(loops, buf.Streamer(0, buf.Len()))
}
