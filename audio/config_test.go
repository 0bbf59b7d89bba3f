package audio

import (
	"testing"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/parameter"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}
	if cfg.EffectVolumes[core.SoundShot] != 0.4 {
		t.Errorf("Expected shot volume 0.4, got %f", cfg.EffectVolumes[core.SoundShot])
	}
	if cfg.EffectVolumes[core.SoundGameOver] != 1.0 {
		t.Errorf("Expected game over volume 1.0, got %f", cfg.EffectVolumes[core.SoundGameOver])
	}
}

func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSFXVolumes, "")
	t.Setenv(EnvSampleRate, "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults without env, got %+v", cfg)
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "80")
	t.Setenv(EnvSFXVolumes, `{"shot": 0.1, "coin": 2.0, "bogus": 0.3}`)
	t.Setenv(EnvSampleRate, "22050")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false from env")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundShot] != 0.1 {
		t.Errorf("Expected shot volume 0.1, got %f", cfg.EffectVolumes[core.SoundShot])
	}
	if cfg.EffectVolumes[core.SoundCoin] != 1.0 {
		t.Errorf("Expected coin volume clamped to 1.0, got %f", cfg.EffectVolumes[core.SoundCoin])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigMalformed(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"enabled not bool", EnvAudioEnabled, "maybe"},
		{"volume not int", EnvMasterVolume, "loud"},
		{"volumes not json", EnvSFXVolumes, "{shot"},
		{"rate negative", EnvSampleRate, "-5"},
	}

	def := DefaultAudioConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := LoadAudioConfig()
			if *cfg != *def {
				t.Errorf("Expected defaults for malformed %s, got %+v", tt.key, cfg)
			}
		})
	}
}

func TestLoadAudioConfigVolumeClamp(t *testing.T) {
	t.Setenv(EnvMasterVolume, "250")
	if cfg := LoadAudioConfig(); cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	t.Setenv(EnvMasterVolume, "-20")
	if cfg := LoadAudioConfig(); cfg.MasterVolume != 0 {
		t.Errorf("Expected master volume clamped to 0, got %f", cfg.MasterVolume)
	}
}

func TestSoundNames(t *testing.T) {
	seen := make(map[string]bool)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		name := SoundName(st)
		if name == "" || name == "unknown" {
			t.Errorf("Expected name for sound %d", st)
		}
		if seen[name] {
			t.Errorf("Duplicate sound name %q", name)
		}
		seen[name] = true
	}
	if SoundName(core.SoundTypeCount) != "unknown" {
		t.Error("Expected unknown for out of range sound")
	}
}
