package data

// TestMove builds a plain damaging move for cross-package tests.
func TestMove(name string, dt DamageType, base, adRatio, apRatio float64) MoveTemplate {
	return MoveTemplate{
		Name:       name,
		DamageType: dt,
		BaseDamage: base,
		ADRatio:    adRatio,
		APRatio:    apRatio,
		Accuracy:   100,
		PP:         10,
	}
}

// TestChampion builds a champion template with zero growth, so level-1 base
// stats equal the stats at any level. Intended for tests from other packages.
func TestChampion(name string, class Class, hp, ad, ap, armor, mr, speed float64) *ChampionTemplate {
	return &ChampionTemplate{
		Name:  name,
		Class: class,
		Base:  stats(hp, ad, ap, armor, mr, speed),
		Growth: map[StatKind]float64{
			StatHealth:       0,
			StatAttackDamage: 0,
			StatAbilityPower: 0,
			StatArmor:        0,
			StatMagicResist:  0,
			StatMoveSpeed:    0,
		},
		Moves: []MoveTemplate{TestMove("Strike", DamagePhysical, 40, 1.0, 0)},
	}
}

// TestCatalog returns an empty catalog whose class table grants no crit and
// no level-based penetration, so test numbers stay exact.
func TestCatalog() *Catalog {
	c := NewCatalog()
	for class, info := range c.Classes {
		info.BaseCritChance = 0
		info.ArmorPenPerLevel = 0
		c.Classes[class] = info
	}
	return c
}
