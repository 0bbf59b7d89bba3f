package component

// ArmorType identifies the equipped protection tier
type ArmorType uint8

const (
	ArmorNone ArmorType = iota
	ArmorLight
	ArmorMedium
	ArmorHeavy
	ArmorTypeCount
)

var armorTypeNames = [ArmorTypeCount]string{"none", "light", "medium", "heavy"}

func (t ArmorType) String() string {
	if t >= ArmorTypeCount {
		return "unknown"
	}
	return armorTypeNames[t]
}

// ParseArmorType resolves a config name to an ArmorType
func ParseArmorType(name string) (ArmorType, bool) {
	for i, n := range armorTypeNames {
		if n == name {
			return ArmorType(i), true
		}
	}
	return 0, false
}
