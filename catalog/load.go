package catalog

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wave-fighter/component"
)

// File layout of a table override document
// Every field is optional; present fields replace the stock value
type fileDoc struct {
	Weapons   map[string]weaponDoc  `yaml:"weapons"`
	Armors    map[string]armorDoc   `yaml:"armors"`
	Perks     map[string]perkDoc    `yaml:"perks"`
	Enemies   map[string]enemyDoc   `yaml:"enemies"`
	Bosses    map[string]bossDoc    `yaml:"bosses"`
	Abilities map[string]abilityDoc `yaml:"abilities"`
	Loot      []lootDoc             `yaml:"loot"`
	Rewards   map[string]rewardDoc  `yaml:"rewards"`
}

type weaponDoc struct {
	Damage          *float64 `yaml:"damage"`
	FireInterval    *float64 `yaml:"fire_interval"`
	AmmoCapacity    *int     `yaml:"ammo_capacity"`
	ReloadTime      *float64 `yaml:"reload_time"`
	ProjectileSpeed *float64 `yaml:"projectile_speed"`
	ProjectileSize  *float64 `yaml:"projectile_size"`
	Cost            *int     `yaml:"cost"`
	Rarity          *string  `yaml:"rarity"`
}

type armorDoc struct {
	Protection *float64 `yaml:"protection"`
	Cost       *int     `yaml:"cost"`
}

type perkDoc struct {
	Cost *int `yaml:"cost"`
}

type enemyDoc struct {
	Speed  *float64 `yaml:"speed"`
	Health *float64 `yaml:"health"`
}

type bossDoc struct {
	Speed          *float64 `yaml:"speed"`
	Health         *float64 `yaml:"health"`
	Damage         *float64 `yaml:"damage"`
	AttackRange    *float64 `yaml:"attack_range"`
	AttackCooldown *float64 `yaml:"attack_cooldown"`
	Abilities      []string `yaml:"abilities"`
}

type abilityDoc struct {
	Delay  *float64 `yaml:"delay"`
	Radius *float64 `yaml:"radius"`
}

type lootDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Rarity   string `yaml:"rarity"`
	Effect   string `yaml:"effect"`
}

type rewardDoc struct {
	Score *int `yaml:"score"`
	Money *int `yaml:"money"`
}

// LoadFile reads a YAML override document on top of Default
// A missing file is not an error and yields the stock tables
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}
	c, err := Load(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Load parses a YAML override document on top of Default
func Load(data []byte) (*Catalog, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}

	c := Default()
	if err := doc.apply(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.index()
	return c, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (d *fileDoc) apply(c *Catalog) error {
	for name, w := range d.Weapons {
		wt, ok := component.ParseWeaponType(name)
		if !ok {
			return errors.Errorf("unknown weapon %q", name)
		}
		spec := &c.Weapons[wt]
		if w.Damage != nil {
			spec.Damage = *w.Damage
		}
		if w.FireInterval != nil {
			spec.FireInterval = seconds(*w.FireInterval)
		}
		if w.AmmoCapacity != nil {
			spec.AmmoCapacity = *w.AmmoCapacity
		}
		if w.ReloadTime != nil {
			spec.ReloadTime = seconds(*w.ReloadTime)
		}
		if w.ProjectileSpeed != nil {
			spec.ProjectileSpeed = *w.ProjectileSpeed
		}
		if w.ProjectileSize != nil {
			spec.ProjectileSize = *w.ProjectileSize
		}
		if w.Cost != nil {
			spec.Cost = *w.Cost
		}
		if w.Rarity != nil {
			r, ok := component.ParseRarity(*w.Rarity)
			if !ok {
				return errors.Errorf("weapon %q: unknown rarity %q", name, *w.Rarity)
			}
			spec.Rarity = r
		}
	}

	for name, a := range d.Armors {
		at, ok := component.ParseArmorType(name)
		if !ok || at == component.ArmorNone {
			return errors.Errorf("unknown armor %q", name)
		}
		if a.Protection != nil {
			c.Armors[at].Protection = *a.Protection
		}
		if a.Cost != nil {
			c.Armors[at].Cost = *a.Cost
		}
	}

	for name, p := range d.Perks {
		pt, ok := component.ParsePerkType(name)
		if !ok {
			return errors.Errorf("unknown perk %q", name)
		}
		if p.Cost != nil {
			c.Perks[pt].Cost = *p.Cost
		}
	}

	for name, e := range d.Enemies {
		et, ok := component.ParseEnemyType(name)
		if !ok {
			return errors.Errorf("unknown enemy %q", name)
		}
		if e.Speed != nil {
			c.Enemies[et].Speed = *e.Speed
		}
		if e.Health != nil {
			c.Enemies[et].Health = *e.Health
		}
	}

	for name, b := range d.Bosses {
		bt, ok := component.ParseBossType(name)
		if !ok {
			return errors.Errorf("unknown boss %q", name)
		}
		arch := &c.Bosses[bt]
		if b.Speed != nil {
			arch.Speed = *b.Speed
		}
		if b.Health != nil {
			arch.Health = *b.Health
		}
		if b.Damage != nil {
			arch.Damage = *b.Damage
		}
		if b.AttackRange != nil {
			arch.AttackRange = *b.AttackRange
		}
		if b.AttackCooldown != nil {
			arch.AttackCooldown = seconds(*b.AttackCooldown)
		}
		if b.Abilities != nil {
			abilities := make([]component.BossAbility, 0, len(b.Abilities))
			for _, an := range b.Abilities {
				ab, ok := component.ParseBossAbility(an)
				if !ok {
					return errors.Errorf("boss %q: unknown ability %q", name, an)
				}
				abilities = append(abilities, ab)
			}
			arch.Abilities = abilities
		}
	}

	for name, a := range d.Abilities {
		ab, ok := component.ParseBossAbility(name)
		if !ok {
			return errors.Errorf("unknown ability %q", name)
		}
		if a.Delay != nil {
			c.Abilities[ab].Delay = seconds(*a.Delay)
		}
		if a.Radius != nil {
			c.Abilities[ab].Radius = *a.Radius
		}
	}

	if d.Loot != nil {
		items := make([]component.LootItem, 0, len(d.Loot))
		for _, l := range d.Loot {
			item, err := l.item()
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		c.Loot = items
	}

	for name, r := range d.Rewards {
		var target *Reward
		switch name {
		case "enemy":
			target = &c.EnemyReward
		case "boss":
			target = &c.BossReward
		default:
			return errors.Errorf("unknown reward %q", name)
		}
		if r.Score != nil {
			target.Score = *r.Score
		}
		if r.Money != nil {
			target.Money = *r.Money
		}
	}

	return nil
}

func (l lootDoc) item() (component.LootItem, error) {
	if l.ID == "" {
		return component.LootItem{}, errors.New("loot entry without id")
	}
	cat, ok := component.ParseLootCategory(l.Category)
	if !ok {
		return component.LootItem{}, errors.Errorf("loot %q: unknown category %q", l.ID, l.Category)
	}
	rarity, ok := component.ParseRarity(l.Rarity)
	if !ok {
		return component.LootItem{}, errors.Errorf("loot %q: unknown rarity %q", l.ID, l.Rarity)
	}
	effect, ok := component.ParseLootEffect(l.Effect)
	if !ok {
		return component.LootItem{}, errors.Errorf("loot %q: unknown effect %q", l.ID, l.Effect)
	}
	name := l.Name
	if name == "" {
		name = l.ID
	}
	return component.LootItem{ID: l.ID, Name: name, Category: cat, Rarity: rarity, Effect: effect}, nil
}

// Validate rejects tables the simulation cannot run with
func (c *Catalog) Validate() error {
	for i, w := range c.Weapons {
		if w.AmmoCapacity <= 0 || w.ProjectileSpeed <= 0 || w.FireInterval <= 0 {
			return errors.Errorf("weapon %s: capacity, speed and fire interval must be positive", component.WeaponType(i))
		}
	}
	for i, b := range c.Bosses {
		if len(b.Abilities) == 0 {
			return errors.Errorf("boss %s: empty ability list", component.BossType(i))
		}
		if b.AttackCooldown <= 0 || b.Health <= 0 {
			return errors.Errorf("boss %s: cooldown and health must be positive", component.BossType(i))
		}
	}
	for i, e := range c.Enemies {
		if e.Health <= 0 {
			return errors.Errorf("enemy %s: health must be positive", component.EnemyType(i))
		}
	}
	for i := component.ArmorLight; i < component.ArmorTypeCount; i++ {
		p := c.Armors[i].Protection
		if p < 0 || p > 1 {
			return errors.Errorf("armor %s: protection must be within [0,1]", i)
		}
	}
	return nil
}
