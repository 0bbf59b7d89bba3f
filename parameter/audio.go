package parameter

import "time"

// Audio
const (
	AudioSampleRate  = 48000
	AudioBufferSize  = 100 * time.Millisecond
	AudioQueueSize   = 64
	AudioMinInterval = 40 * time.Millisecond // Per-sound rate limit to avoid stacking
)

// Sound effect envelopes
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond

	HitSoundDuration = 40 * time.Millisecond
	HitSoundAttack   = 1 * time.Millisecond
	HitSoundRelease  = 30 * time.Millisecond

	DeathSoundDuration = 250 * time.Millisecond
	DeathSoundAttack   = 5 * time.Millisecond
	DeathSoundRelease  = 200 * time.Millisecond

	TelegraphSoundDuration = 300 * time.Millisecond
	TelegraphSoundAttack   = 20 * time.Millisecond
	TelegraphSoundRelease  = 100 * time.Millisecond

	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 160 * time.Millisecond
	CoinSoundAttack        = 2 * time.Millisecond
	CoinSoundNote1Release  = 30 * time.Millisecond
	CoinSoundNote2Release  = 120 * time.Millisecond

	BlipSoundDuration = 90 * time.Millisecond
	BlipSoundAttack   = 3 * time.Millisecond
	BlipSoundRelease  = 60 * time.Millisecond
)
