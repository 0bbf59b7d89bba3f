package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite oscillator stream
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
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

// NewEnvelope wraps s in a linear attack/release envelope
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
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shape is one enveloped oscillator
type shape struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	attack   time.Duration
	release  time.Duration
}

func (s shape) stream(rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(s.freq, s.duration, s.wave, rate), s.duration, s.attack, s.release, rate)
}

// sequence plays shapes back to back
func sequence(rate beep.SampleRate, shapes ...shape) beep.Streamer {
	streams := make([]beep.Streamer, len(shapes))
	for i, s := range shapes {
		streams[i] = s.stream(rate)
	}
	return beep.Seq(streams...)
}

func shot(freq float64) shape {
	return shape{freq, WaveSquare, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease}
}

func blip(freq float64, wave WaveType) shape {
	return shape{freq, wave, parameter.BlipSoundDuration, parameter.BlipSoundAttack, parameter.BlipSoundRelease}
}

func death(freq float64, wave WaveType) shape {
	return shape{freq, wave, parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease}
}

// generateSound builds a unity gain effect for st, nil for unknown types
func generateSound(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	hit := shape{0, WaveNoise, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease}
	telegraph := shape{0, WaveSine, parameter.TelegraphSoundDuration, parameter.TelegraphSoundAttack, parameter.TelegraphSoundRelease}

	switch st {
	case core.SoundShot:
		return shot(220).stream(rate)
	case core.SoundHit:
		return hit.stream(rate)
	case core.SoundEnemyDeath:
		return sequence(rate, blip(180, WaveSaw), death(120, WaveSaw))
	case core.SoundBossDeath:
		return beep.Mix(
			newVolume(death(70, WaveSaw).stream(rate), 0.7),
			newVolume(death(0, WaveNoise).stream(rate), 0.3),
		)
	case core.SoundPlayerHurt:
		return blip(140, WaveSaw).stream(rate)
	case core.SoundTelegraph:
		low, high := telegraph, telegraph
		low.freq, high.freq = 440, 660
		return beep.Mix(newVolume(low.stream(rate), 0.6), newVolume(high.stream(rate), 0.4))
	case core.SoundBossImpact:
		return beep.Mix(
			newVolume(death(60, WaveSine).stream(rate), 0.6),
			newVolume(hit.stream(rate), 0.4),
		)
	case core.SoundPickup:
		return blip(880, WaveSine).stream(rate)
	case core.SoundCoin:
		// B5 then E6
		return sequence(rate,
			shape{987.77, WaveSquare, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release},
			shape{1318.51, WaveSquare, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release},
		)
	case core.SoundJump:
		return sequence(rate, blip(330, WaveSine), blip(495, WaveSine))
	case core.SoundGrapple:
		return blip(600, WaveSaw).stream(rate)
	case core.SoundReload:
		return sequence(rate, shot(300), shot(200))
	case core.SoundWaveClear:
		// C5 E5 G5
		return sequence(rate, blip(523.25, WaveSine), blip(659.25, WaveSine), blip(783.99, WaveSine))
	case core.SoundGameOver:
		return sequence(rate, death(392, WaveSaw), death(329.63, WaveSaw), death(261.63, WaveSaw))
	default:
		return nil
	}
}

// GetSoundEffect returns the configured effect for st at its mixed volume, nil for unknown types
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	s := generateSound(st, beep.SampleRate(cfg.SampleRate))
	if s == nil {
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
