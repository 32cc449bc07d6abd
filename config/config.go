// Package config resolves game settings from flags, environment and an optional file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// EnvPrefix namespaces environment overrides, e.g. BLOCKFALL_GRAVITY=500ms
const EnvPrefix = "BLOCKFALL"

// Setting keys
const (
	KeyGravity     = "gravity"
	KeyPoll        = "poll"
	KeyFlash       = "flash"
	KeyMute        = "mute"
	KeyDebug       = "debug"
	KeySeed        = "seed"
	KeyConfigFile  = "config"
	KeyVolume      = "audio.volume"
	KeyThemeVolume = "audio.theme"
	KeyClearVolume = "audio.clear"
	KeyLandVolume  = "audio.land"
	KeySampleRate  = "audio.sample_rate"
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrConfigFile    = errors.New("cannot read config file")
)

// Config is the resolved runtime configuration
type Config struct {
	GravityPeriod time.Duration
	PollInterval  time.Duration
	FlashDuration time.Duration
	Muted         bool
	Debug         bool
	// Seed of zero picks a time-based seed
	Seed  int64
	Audio *audio.AudioConfig
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		GravityPeriod: constants.GravityPeriod,
		PollInterval:  constants.PollInterval,
		FlashDuration: constants.ClearFlashDuration,
		Audio:         audio.DefaultAudioConfig(),
	}
}

// New returns a viper instance with defaults and environment binding applied
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers every key so environment lookups resolve
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyGravity, d.GravityPeriod)
	v.SetDefault(KeyPoll, d.PollInterval)
	v.SetDefault(KeyFlash, d.FlashDuration)
	v.SetDefault(KeyMute, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeySeed, int64(0))
	v.SetDefault(KeyConfigFile, "")
	v.SetDefault(KeyVolume, d.Audio.MasterVolume)
	v.SetDefault(KeyThemeVolume, d.Audio.EffectVolumes[audio.SoundTheme])
	v.SetDefault(KeyClearVolume, d.Audio.EffectVolumes[audio.SoundClear])
	v.SetDefault(KeyLandVolume, d.Audio.EffectVolumes[audio.SoundLand])
	v.SetDefault(KeySampleRate, d.Audio.SampleRate)
}

// BindFlags registers the command-line flags on fs and binds them into v
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	d := Defaults()
	fs.Duration(KeyGravity, d.GravityPeriod, "time between automatic one-row falls")
	fs.Duration(KeyPoll, d.PollInterval, "input polling interval")
	fs.Duration(KeyFlash, d.FlashDuration, "row clear flash duration (0 clears immediately)")
	fs.Bool(KeyMute, false, "disable audio")
	fs.Bool(KeyDebug, false, "write a debug log to logs/")
	fs.Int64(KeySeed, 0, "random seed for the piece queue (0 = time based)")
	fs.String(KeyConfigFile, "", "optional config file (yaml, toml, json)")

	for _, name := range []string{KeyGravity, KeyPoll, KeyFlash, KeyMute, KeyDebug, KeySeed, KeyConfigFile} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional config file and resolves the final configuration
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w %s: %v", ErrConfigFile, path, err)
		}
	}

	cfg := Config{
		GravityPeriod: v.GetDuration(KeyGravity),
		PollInterval:  v.GetDuration(KeyPoll),
		FlashDuration: v.GetDuration(KeyFlash),
		Muted:         v.GetBool(KeyMute),
		Debug:         v.GetBool(KeyDebug),
		Seed:          v.GetInt64(KeySeed),
		Audio: &audio.AudioConfig{
			Enabled:      !v.GetBool(KeyMute),
			MasterVolume: v.GetFloat64(KeyVolume),
			EffectVolumes: map[audio.SoundType]float64{
				audio.SoundTheme: v.GetFloat64(KeyThemeVolume),
				audio.SoundClear: v.GetFloat64(KeyClearVolume),
				audio.SoundLand:  v.GetFloat64(KeyLandVolume),
			},
			SampleRate: v.GetInt(KeySampleRate),
		},
	}
	cfg.Audio.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects timings the game loop cannot run with
func (c Config) Validate() error {
	if c.GravityPeriod <= 0 {
		return fmt.Errorf("%w: gravity %v must be positive", ErrInvalidPeriod, c.GravityPeriod)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll %v must be positive", ErrInvalidPeriod, c.PollInterval)
	}
	if c.FlashDuration < 0 {
		return fmt.Errorf("%w: flash %v must not be negative", ErrInvalidPeriod, c.FlashDuration)
	}
	return nil
}

// EngineOptions converts the configuration into game loop options
func (c Config) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.GravityPeriod = c.GravityPeriod
	opts.PollInterval = c.PollInterval
	opts.FlashDuration = c.FlashDuration
	if c.Seed != 0 {
		opts.Seed = c.Seed
	}
	return opts
}
