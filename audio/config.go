package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// Environment keys read by LoadAudioConfig
const (
	EnvAudioEnabled = "WAVE_FIGHTER_AUDIO_ENABLED"
	EnvMasterVolume = "WAVE_FIGHTER_MASTER_VOLUME"
	EnvSFXVolumes   = "WAVE_FIGHTER_SFX_VOLUMES"
	EnvSampleRate   = "WAVE_FIGHTER_SAMPLE_RATE"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [core.SoundTypeCount]float64
}

var soundNames = [core.SoundTypeCount]string{
	"shot",
	"hit",
	"enemy_death",
	"boss_death",
	"player_hurt",
	"telegraph",
	"boss_impact",
	"pickup",
	"coin",
	"jump",
	"grapple",
	"reload",
	"wave_clear",
	"game_over",
}

// SoundName returns the config key of a sound type
func SoundName(st core.SoundType) string {
	if st < 0 || st >= core.SoundTypeCount {
		return "unknown"
	}
	return soundNames[st]
}

// DefaultAudioConfig returns enabled audio at half master volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Rapid-fire sounds sit under the rest of the mix
	cfg.EffectVolumes[core.SoundShot] = 0.4
	cfg.EffectVolumes[core.SoundHit] = 0.5
	cfg.EffectVolumes[core.SoundJump] = 0.6
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values keep the default and are logged
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			log.Printf("[audio] ignoring %s=%q: %v", EnvAudioEnabled, enabled, err)
		}
	}

	// 0-100 mapped to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		} else {
			log.Printf("[audio] ignoring %s=%q: %v", EnvMasterVolume, volume, err)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for i, name := range soundNames {
				if v, ok := volumes[name]; ok {
					cfg.EffectVolumes[i] = clampUnit(v)
				}
			}
		} else {
			log.Printf("[audio] ignoring %s: %v", EnvSFXVolumes, err)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
