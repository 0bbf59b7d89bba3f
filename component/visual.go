package component

// VisualKind is the presentation category requested from the frontend
type VisualKind uint8

const (
	VisualPlayer VisualKind = iota
	VisualEnemy
	VisualBoss
	VisualProjectile
	VisualIndicator
	VisualLoot
	VisualPowerup
	VisualText
)

// VisualComponent links an entity to its frontend handle
type VisualComponent struct {
	Kind   VisualKind
	Handle uint64
}
