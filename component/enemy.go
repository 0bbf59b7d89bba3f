package component

// EnemyType is the archetype discriminant of a regular enemy
type EnemyType uint8

const (
	EnemyGrunt EnemyType = iota
	EnemyBrute
	EnemyCrawler
	EnemyTypeCount
)

var enemyTypeNames = [EnemyTypeCount]string{"grunt", "brute", "crawler"}

func (t EnemyType) String() string {
	if t >= EnemyTypeCount {
		return "unknown"
	}
	return enemyTypeNames[t]
}

// ParseEnemyType resolves a config name to an EnemyType
func ParseEnemyType(name string) (EnemyType, bool) {
	for i, n := range enemyTypeNames {
		if n == name {
			return EnemyType(i), true
		}
	}
	return 0, false
}

// EnemyComponent tags a regular pursuing enemy
type EnemyComponent struct {
	Type EnemyType
}
