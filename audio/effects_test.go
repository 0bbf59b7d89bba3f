package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/wave-fighter/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Stream never finished")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, 100*time.Millisecond, wave, testRate))
		if n != testRate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, testRate.N(100*time.Millisecond), n)
		}
		if peak <= 0 || peak > 1 {
			t.Errorf("Wave %d: expected peak in (0,1], got %f", wave, peak)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	env := NewEnvelope(NewOscillator(0, 50*time.Millisecond, WaveSquare, testRate),
		50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, 1)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample under attack, got %f", buf[0][0])
	}
}

func TestEverySoundRenders(t *testing.T) {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		s := generateSound(st, testRate)
		if s == nil {
			t.Errorf("Expected effect for %s", SoundName(st))
			continue
		}
		n, peak := drain(t, s)
		if n == 0 || peak == 0 {
			t.Errorf("Expected audible samples for %s, got n=%d peak=%f", SoundName(st), n, peak)
		}
		if n > testRate.N(2*time.Second) {
			t.Errorf("Expected %s under 2s, got %d samples", SoundName(st), n)
		}
	}
}

func TestUnknownSound(t *testing.T) {
	if generateSound(core.SoundTypeCount, testRate) != nil {
		t.Error("Expected nil effect for unknown sound")
	}
	if GetSoundEffect(core.SoundType(-1), DefaultAudioConfig()) != nil {
		t.Error("Expected nil effect for negative sound")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = int(testRate)
	cfg.MasterVolume = 0

	_, peak := drain(t, GetSoundEffect(core.SoundCoin, cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
