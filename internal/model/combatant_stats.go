package model

import (
	"github.com/udisondev/riftduel/internal/data"
)

// BaseStatAtLevel returns base × (1 + growth × (level−1)).
// Stages never touch this value.
func (c *Combatant) BaseStatAtLevel(kind data.StatKind) float64 {
	return c.base[kind] * (1 + c.growth[kind]*float64(c.level-1))
}

// EquipmentFlat returns the summed flat bonus of equipped items.
func (c *Combatant) EquipmentFlat(kind data.StatKind) float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Template.Flat[kind]
	}
	return sum
}

// EquipmentPercent returns the summed percentage bonus of equipped items.
func (c *Combatant) EquipmentPercent(kind data.StatKind) float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Template.Percent[kind]
	}
	return sum
}

// EffectiveStat resolves a stat. Order is fixed:
// base(level) → + equipment flat → × (1 + equipment percent) → × stage multiplier.
// Nothing is cached; every read reflects current level, items and stages.
func (c *Combatant) EffectiveStat(kind data.StatKind) float64 {
	v := c.BaseStatAtLevel(kind)
	v += c.EquipmentFlat(kind)
	v *= 1 + c.EquipmentPercent(kind)
	return v * data.StageMultiplier(c.stages[kind])
}

// AttackDamage returns effective attack damage.
func (c *Combatant) AttackDamage() float64 { return c.EffectiveStat(data.StatAttackDamage) }

// AbilityPower returns effective ability power.
func (c *Combatant) AbilityPower() float64 { return c.EffectiveStat(data.StatAbilityPower) }

// Armor returns effective armor.
func (c *Combatant) Armor() float64 { return c.EffectiveStat(data.StatArmor) }

// MagicResist returns effective magic resist.
func (c *Combatant) MagicResist() float64 { return c.EffectiveStat(data.StatMagicResist) }

// Speed returns effective move speed, used for turn order.
func (c *Combatant) Speed() float64 { return c.EffectiveStat(data.StatMoveSpeed) }

// Defense returns the defense stat used against a damage type (0 for true damage).
func (c *Combatant) Defense(dt data.DamageType) float64 {
	switch dt {
	case data.DamagePhysical:
		return c.Armor()
	case data.DamageMagic:
		return c.MagicResist()
	default:
		return 0
	}
}

// ArmorPen returns flat armor penetration, including level-based class pen.
func (c *Combatant) ArmorPen() float64 {
	pen := c.armorPen + float64(c.level)*c.armorPenPerLevel
	for _, it := range c.items {
		pen += it.Template.ArmorPen
	}
	return pen
}

// MagicPen returns flat magic penetration.
func (c *Combatant) MagicPen() float64 {
	pen := c.magicPen
	for _, it := range c.items {
		pen += it.Template.MagicPen
	}
	return pen
}

// Penetration returns the penetration applying to a damage type.
func (c *Combatant) Penetration(dt data.DamageType) float64 {
	switch dt {
	case data.DamagePhysical:
		return c.ArmorPen()
	case data.DamageMagic:
		return c.MagicPen()
	default:
		return 0
	}
}

// CritChance returns crit chance in percent (class base + champion + items).
func (c *Combatant) CritChance() float64 {
	chance := c.critChance
	for _, it := range c.items {
		chance += it.Template.CritChance
	}
	return chance
}

// Stage returns the current stage of a stat.
func (c *Combatant) Stage(kind data.StatKind) int { return c.stages[kind] }

// ModifyStage adds delta to a stage, clamped to [-6, +6].
// Returns the delta actually applied after clamping.
func (c *Combatant) ModifyStage(kind data.StatKind, delta int) int {
	before := c.stages[kind]
	c.stages[kind] = data.ClampStage(before + delta)
	if kind == data.StatHealth {
		c.clampHP()
	}
	return c.stages[kind] - before
}

// Mitigation returns the damage reduction fraction for a defense value after
// flat penetration: eff/(eff+100) with eff = max(0, defense−pen). Always in [0, 1).
func Mitigation(defense, pen float64) float64 {
	eff := defense - pen
	if eff <= 0 {
		return 0
	}
	return eff / (eff + 100)
}
