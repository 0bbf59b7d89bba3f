package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// AudioSystem forwards sound requests to the audio player
// Playback failures are counted and otherwise ignored
type AudioSystem struct {
	world *engine.World

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64

	enabled bool
}

func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world: world,
	}

	s.statPlayed = world.Resources.Status.Ints.Get("audio.played")
	s.statDropped = world.Resources.Status.Ints.Get("audio.dropped")

	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)

	if !s.enabled || ev.Type != event.EventSoundRequest {
		return
	}
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}

	player := s.world.Resources.Audio
	if player == nil || player.IsMuted() || !player.Play(payload.SoundType) {
		s.statDropped.Add(1)
		return
	}
	s.statPlayed.Add(1)
}

func (s *AudioSystem) Update() {}
