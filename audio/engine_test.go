package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/parameter"
)

type fakeDevice struct {
	mu      sync.Mutex
	openErr error
	stream  beep.Streamer
	closed  bool
}

func (d *fakeDevice) Open(_ beep.SampleRate, _ int, s beep.Streamer) error {
	if d.openErr != nil {
		return d.openErr
	}
	d.stream = s
	return nil
}

func (d *fakeDevice) Lock()   { d.mu.Lock() }
func (d *fakeDevice) Unlock() { d.mu.Unlock() }
func (d *fakeDevice) Close()  { d.closed = true }

func newTestEngine(dev *fakeDevice) (*AudioEngine, *time.Time) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = int(testRate)
	ae := NewAudioEngine(cfg)
	ae.device = dev
	clock := time.Unix(0, 0)
	ae.now = func() time.Time { return clock }
	return ae, &clock
}

func TestPlayBeforeStart(t *testing.T) {
	ae, _ := newTestEngine(&fakeDevice{})
	if ae.Play(core.SoundShot) {
		t.Error("Expected Play to fail before Start")
	}
}

func TestPlayMixesIntoDevice(t *testing.T) {
	dev := &fakeDevice{}
	ae, _ := newTestEngine(dev)
	if err := ae.Start(); err != nil {
		t.Fatalf("Unexpected start error: %v", err)
	}
	if dev.stream == nil {
		t.Fatal("Expected mixer attached to device")
	}

	if !ae.Play(core.SoundTelegraph) {
		t.Fatal("Expected Play to succeed")
	}

	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	dev.Lock()
	dev.stream.Stream(buf)
	dev.Unlock()

	var audible bool
	for _, s := range buf {
		if s[0] != 0 {
			audible = true
			break
		}
	}
	if !audible {
		t.Error("Expected mixed output to carry the effect")
	}

	if played, _ := ae.Stats(); played != 1 {
		t.Errorf("Expected 1 played, got %d", played)
	}

	ae.Stop()
	if !dev.closed {
		t.Error("Expected device closed on Stop")
	}
}

func TestPlayRateLimit(t *testing.T) {
	ae, clock := newTestEngine(&fakeDevice{})
	ae.Start()

	if !ae.Play(core.SoundShot) {
		t.Fatal("Expected first shot to play")
	}
	if ae.Play(core.SoundShot) {
		t.Error("Expected repeat inside the rate limit to drop")
	}
	if !ae.Play(core.SoundHit) {
		t.Error("Expected a different sound to play")
	}

	*clock = clock.Add(parameter.AudioMinInterval)
	if !ae.Play(core.SoundShot) {
		t.Error("Expected shot to play after the interval")
	}
}

func TestUnknownSoundDropped(t *testing.T) {
	ae, _ := newTestEngine(&fakeDevice{})
	ae.Start()

	if ae.Play(core.SoundTypeCount) {
		t.Error("Expected unknown sound to return false")
	}
	if _, dropped := ae.Stats(); dropped != 1 {
		t.Errorf("Expected 1 dropped, got %d", dropped)
	}
}

func TestMuteToggle(t *testing.T) {
	ae, _ := newTestEngine(&fakeDevice{})
	ae.Start()

	if ae.ToggleMute() {
		t.Error("Expected ToggleMute to report muted")
	}
	if !ae.IsMuted() || ae.Play(core.SoundCoin) {
		t.Error("Expected muted engine to drop sounds")
	}
	if !ae.ToggleMute() {
		t.Error("Expected ToggleMute to report audible")
	}
	if !ae.Play(core.SoundCoin) {
		t.Error("Expected unmuted engine to play")
	}
}

func TestSilentModeOnDeviceFailure(t *testing.T) {
	ae, _ := newTestEngine(&fakeDevice{openErr: errors.New("no device")})

	if err := ae.Start(); err != nil {
		t.Fatalf("Expected no error in silent mode, got %v", err)
	}
	if !ae.IsRunning() || !ae.IsSilent() {
		t.Error("Expected running silent engine")
	}
	if ae.Play(core.SoundShot) {
		t.Error("Expected silent engine to drop sounds")
	}
	if err := ae.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning, got %v", err)
	}
	ae.Stop()
}

func TestQueueBound(t *testing.T) {
	ae, clock := newTestEngine(&fakeDevice{})
	ae.Start()

	accepted := 0
	for i := 0; i < parameter.AudioQueueSize+10; i++ {
		*clock = clock.Add(parameter.AudioMinInterval)
		if ae.Play(core.SoundGameOver) {
			accepted++
		}
	}
	if accepted != parameter.AudioQueueSize {
		t.Errorf("Expected %d accepted, got %d", parameter.AudioQueueSize, accepted)
	}
}
