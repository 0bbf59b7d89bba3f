package audio

import (
	"log"

	"github.com/lixenwraith/wave-fighter/engine"
)

// AudioService wraps AudioEngine as a service
// A failing backend never blocks startup; the simulation keeps its no-op player
type AudioService struct {
	config      *AudioConfig
	audioEngine *AudioEngine
	muted       bool
}

// NewService creates an audio service configured from the environment
// muted forces the initial mute state regardless of WAVE_FIGHTER_AUDIO_ENABLED
func NewService(muted bool) *AudioService {
	return &AudioService{muted: muted}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *AudioService) Init(*engine.World) error {
	s.config = LoadAudioConfig()
	if s.muted {
		s.config.Enabled = false
	}
	s.audioEngine = NewAudioEngine(s.config)
	return nil
}

// Start implements service.Service
func (s *AudioService) Start() error {
	if s.audioEngine == nil {
		return nil
	}
	if err := s.audioEngine.Start(); err != nil {
		log.Printf("[audio] start: %v", err)
		return nil
	}
	if s.audioEngine.IsSilent() {
		log.Printf("[audio] no output device, running silent")
	}
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	if s.audioEngine != nil {
		s.audioEngine.Stop()
	}
	return nil
}

// Contribute implements service.ResourceContributor
func (s *AudioService) Contribute(res *engine.Resource) {
	if s.audioEngine != nil {
		res.Audio = s.audioEngine
	}
}

// Engine returns the underlying engine, nil before Init
func (s *AudioService) Engine() *AudioEngine {
	return s.audioEngine
}
