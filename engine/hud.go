package engine

import (
	"fmt"
	"time"
)

// HUDSnapshot is a lock-free copy of the numbers a frontend displays
type HUDSnapshot struct {
	Frame int64 `json:"frame"`
	RunID string `json:"run_id"`

	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	Money     int     `json:"money"`
	Score     int     `json:"score"`
	Kills     int     `json:"kills"`
	Armor     string  `json:"armor"`

	Weapon    string `json:"weapon"`
	Ammo      int    `json:"ammo"`
	MaxAmmo   int    `json:"max_ammo"`
	Reloading bool   `json:"reloading"`

	Mode            string        `json:"mode"`
	JumpsLeft       int           `json:"jumps_left"`
	GrappleCooldown time.Duration `json:"grapple_cooldown"`

	Wave      int    `json:"wave"`
	WaveKills int    `json:"wave_kills"`
	WaveQuota int    `json:"wave_quota"`
	WavePhase string `json:"wave_phase"`

	Enemies     int `json:"enemies"`
	Bosses      int `json:"bosses"`
	Projectiles int `json:"projectiles"`
	Inventory   int `json:"inventory"`

	GameOver bool `json:"game_over"`
	Paused   bool `json:"paused"`
}

// CaptureHUD copies display state, caller holds the world lock
func CaptureHUD(w *World) HUDSnapshot {
	gs := w.Resources.Game.State
	snap := HUDSnapshot{
		Frame:       w.Resources.Time.FrameNumber,
		RunID:       gs.RunID,
		Wave:        gs.Wave.Number,
		WaveKills:   gs.Wave.KillsThisWave,
		WaveQuota:   gs.Wave.EnemiesPerWave,
		WavePhase:   gs.Wave.Phase.String(),
		Enemies:     w.Components.Enemy.CountEntities(),
		Bosses:      w.Components.Boss.CountEntities(),
		Projectiles: w.Components.Projectile.CountEntities(),
		GameOver:    gs.Phase() == PhaseGameOver,
		Paused:      gs.Paused(),
	}

	p := w.PlayerEntity()
	if p == 0 {
		return snap
	}

	if c, ok := w.Components.Combat.GetComponent(p); ok {
		snap.Health, snap.MaxHealth = c.Health, c.MaxHealth
	}
	if pc, ok := w.Components.Player.GetComponent(p); ok {
		snap.Money, snap.Score, snap.Kills = pc.Money, pc.Score, pc.Kills
		snap.Armor = pc.Armor.String()
	}
	if wc, ok := w.Components.Weapon.GetComponent(p); ok {
		snap.Weapon = wc.Current.String()
		snap.Ammo, snap.MaxAmmo = wc.Ammo, wc.MaxAmmo
		snap.Reloading = wc.Reloading
	}
	if mc, ok := w.Components.Movement.GetComponent(p); ok {
		snap.Mode = mc.Mode.String()
		snap.GrappleCooldown = mc.GrappleCooldown
		if left := mc.MaxJumpCharges - mc.JumpCount; left > 0 {
			snap.JumpsLeft = left
		}
	}
	if inv, ok := w.Components.Inventory.GetComponent(p); ok {
		snap.Inventory = len(inv.Items)
	}

	return snap
}

// Text renders a compact single-line HUD
func (h HUDSnapshot) Text() string {
	if h.GameOver {
		return fmt.Sprintf("GAME OVER  score %d  wave %d  kills %d", h.Score, h.Wave, h.Kills)
	}
	reload := ""
	if h.Reloading {
		reload = " R"
	}
	return fmt.Sprintf("HP %d/%d  %s %d/%d%s  $%d  score %d  wave %d %d/%d  %s",
		int(h.Health), int(h.MaxHealth),
		h.Weapon, h.Ammo, h.MaxAmmo, reload,
		h.Money, h.Score,
		h.Wave, h.WaveKills, h.WaveQuota,
		h.Mode)
}
