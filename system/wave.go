package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/status"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// WaveSystem is the Wave Director: Idle -> Spawning -> Active -> Cleared -> Spawning
// Runs after combat so every kill of the tick is counted before the clear check
type WaveSystem struct {
	world *engine.World

	statNumber *atomic.Int64
	statKills  *atomic.Int64
	statQuota  *atomic.Int64
	statPhase  *status.Label

	enabled bool
}

func NewWaveSystem(world *engine.World) engine.System {
	s := &WaveSystem{
		world: world,
	}

	reg := world.Resources.Status
	s.statNumber = reg.Ints.Get("wave.number")
	s.statKills = reg.Ints.Get("wave.kills")
	s.statQuota = reg.Ints.Get("wave.quota")
	s.statPhase = reg.Strings.Get("wave.phase")

	s.Init()
	return s
}

func (s *WaveSystem) Init() {
	s.publish()
	s.enabled = true
}

func (s *WaveSystem) Name() string {
	return "wave"
}

func (s *WaveSystem) Priority() int {
	return parameter.PriorityWave
}

func (s *WaveSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventActorFault,
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *WaveSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)

	ws := &s.world.Resources.Game.State.Wave
	switch ev.Type {
	case event.EventEnemyKilled:
		ws.KillsThisWave++
	case event.EventActorFault:
		// Faulted enemies still count so a wave cannot stall on them
		if payload, ok := ev.Payload.(*event.ActorFaultPayload); ok && payload.Enemy {
			ws.KillsThisWave++
		}
	}
}

func (s *WaveSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	ws := &s.world.Resources.Game.State.Wave

	switch ws.Phase {
	case engine.WaveIdle:
		s.SpawnWave()

	case engine.WaveActive:
		if ws.KillsThisWave >= ws.EnemiesPerWave && s.world.Components.Boss.CountEntities() == 0 {
			s.clear(ws)
		}

	case engine.WaveCleared:
		ws.NextSpawnIn -= s.world.Resources.Time.DeltaTime
		if ws.NextSpawnIn <= 0 {
			ws.NextSpawnIn = 0
			s.SpawnWave()
		}
	}

	s.publish()
}

// SpawnWave populates the arena for the current wave number and activates it
func (s *WaveSystem) SpawnWave() {
	ws := &s.world.Resources.Game.State.Wave
	ws.Phase = engine.WaveSpawning
	rng := s.world.Resources.Rand

	for i := 0; i < ws.EnemiesPerWave; i++ {
		t := component.EnemyType(rng.Intn(int(component.EnemyTypeCount)))
		SpawnEnemy(s.world, t, randomGroundPoint(rng, parameter.EnemySpawnHalfRange, parameter.EnemySpawnHeight))
	}

	ws.BossDue = ws.Number%parameter.WaveBossInterval == 0
	if ws.BossDue {
		t := component.BossType(rng.Intn(int(component.BossTypeCount)))
		SpawnBoss(s.world, t, randomGroundPoint(rng, parameter.BossSpawnHalfRange, parameter.BossSpawnHeight))
	}

	powerups := rng.IntRange(parameter.PowerupMinPerWave, parameter.PowerupMaxPerWave)
	for i := 0; i < powerups; i++ {
		t := component.PowerupType(rng.Intn(int(component.PowerupTypeCount)))
		SpawnPowerup(s.world, t, randomGroundPoint(rng, parameter.PowerupSpawnHalfRange, 0))
	}

	ws.Phase = engine.WaveActive
	s.world.PushEvent(event.EventWaveStarted, &event.WavePayload{
		Number: ws.Number,
		Quota:  ws.EnemiesPerWave,
		Boss:   ws.BossDue,
	})
}

func (s *WaveSystem) clear(ws *engine.WaveState) {
	s.world.PushEvent(event.EventWaveCleared, &event.WavePayload{
		Number: ws.Number,
		Quota:  ws.EnemiesPerWave,
		Boss:   ws.BossDue,
	})
	s.world.PlaySound(core.SoundWaveClear)

	ws.Number++
	ws.KillsThisWave = 0
	ws.EnemiesPerWave += parameter.WaveQuotaIncrement
	ws.BossDue = false
	ws.NextSpawnIn = parameter.WaveSpawnDelay
	ws.Phase = engine.WaveCleared
}

func (s *WaveSystem) publish() {
	ws := s.world.Resources.Game.State.Wave
	s.statNumber.Store(int64(ws.Number))
	s.statKills.Store(int64(ws.KillsThisWave))
	s.statQuota.Store(int64(ws.EnemiesPerWave))
	s.statPhase.Store(ws.Phase.String())
}

// randomGroundPoint returns a point within ±half on X and Z at height y
func randomGroundPoint(rng *vmath.FastRand, half, y float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: rng.Range(-half, half),
		Y: y,
		Z: rng.Range(-half, half),
	}
}
