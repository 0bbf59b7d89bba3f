package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// ErrAlreadyRunning is returned by Start on a running engine
var ErrAlreadyRunning = errors.New("audio engine already running")

// device is the output sink the mixer is attached to
type device interface {
	Open(rate beep.SampleRate, bufferSize int, s beep.Streamer) error
	Lock()
	Unlock()
	Close()
}

// speakerDevice plays through the beep speaker
type speakerDevice struct{}

func (speakerDevice) Open(rate beep.SampleRate, bufferSize int, s beep.Streamer) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func (speakerDevice) Lock()   { speaker.Lock() }
func (speakerDevice) Unlock() { speaker.Unlock() }
func (speakerDevice) Close()  { speaker.Close() }

// AudioEngine mixes cached effects into a single output stream
// Implements engine.AudioPlayer; a missing device degrades to silent mode
type AudioEngine struct {
	config *AudioConfig
	cache  *soundCache
	mixer  *beep.Mixer
	device device

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64

	mu         sync.Mutex // Protects config and lastPlayed
	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time
}

// NewAudioEngine creates an audio engine, nil config uses defaults
func NewAudioEngine(cfg *AudioConfig) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}

	ae := &AudioEngine{
		config: cfg,
		cache:  newSoundCache(format),
		mixer:  &beep.Mixer{},
		device: speakerDevice{},
		now:    time.Now,
	}
	ae.muted.Store(!cfg.Enabled)
	ae.cache.preload()
	return ae
}

// Start opens the output device; failure switches to silent mode, not an error
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrAlreadyRunning
	}

	rate := ae.cache.format.SampleRate
	if err := ae.device.Open(rate, rate.N(parameter.AudioBufferSize), ae.mixer); err != nil {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return nil
	}

	ae.running.Store(true)
	return nil
}

// Stop clears pending sounds and closes the device
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	if ae.silentMode.Load() {
		return
	}

	ae.device.Lock()
	ae.mixer.Clear()
	ae.device.Unlock()
	ae.device.Close()
}

// Play queues a sound for playback
// Returns false for unknown types, when silent or muted, and for repeats inside the rate limit
func (ae *AudioEngine) Play(st core.SoundType) bool {
	if !ae.running.Load() || ae.muted.Load() || ae.silentMode.Load() {
		ae.dropped.Add(1)
		return false
	}

	buf := ae.cache.get(st)
	if buf == nil {
		ae.dropped.Add(1)
		return false
	}

	ae.mu.Lock()
	now := ae.now()
	if now.Sub(ae.lastPlayed[st]) < parameter.AudioMinInterval {
		ae.mu.Unlock()
		ae.dropped.Add(1)
		return false
	}
	ae.lastPlayed[st] = now
	vol := ae.config.EffectVolumes[st] * ae.config.MasterVolume
	ae.mu.Unlock()

	s := newVolume(buf.Streamer(0, buf.Len()), vol)

	ae.device.Lock()
	if ae.mixer.Len() >= parameter.AudioQueueSize {
		ae.device.Unlock()
		ae.dropped.Add(1)
		return false
	}
	ae.mixer.Add(s)
	ae.device.Unlock()

	ae.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now audible
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsRunning returns true if engine is running, even in silent mode
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// IsSilent reports whether no output device could be opened
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (ae *AudioEngine) SetVolume(vol float64) {
	ae.mu.Lock()
	ae.config.MasterVolume = clampUnit(vol)
	ae.mu.Unlock()
}

// Stats returns played and dropped counts
func (ae *AudioEngine) Stats() (played, dropped uint64) {
	return ae.played.Load(), ae.dropped.Load()
}

func (ae *AudioEngine) String() string {
	p, d := ae.Stats()
	return fmt.Sprintf("audio(running=%t muted=%t silent=%t played=%d dropped=%d)",
		ae.IsRunning(), ae.IsMuted(), ae.IsSilent(), p, d)
}
