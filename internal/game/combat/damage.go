package combat

import (
	"log/slog"

	"github.com/udisondev/riftduel/internal/config"
	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/model"
)

// Result is the breakdown of one damage computation.
// Every stage is kept so the turn log and balance tools can show it.
type Result struct {
	Raw       int     // trunc(base + AD×ratio + AP×ratio)
	Boosted   float64 // after level-gap multiplier
	Mitigated float64 // after armor / magic resist
	Reduced   float64 // after crit and damage-reduction effects
	Final     int     // floored integer damage before shields
	Absorbed  int     // taken by shields
	HPLoss    int     // taken from HP
	IsCrit    bool
}

// Calculator resolves move damage. Not safe for concurrent use: it shares
// the battle's random source.
type Calculator struct {
	rules config.Battle
	src   roll.Source
}

// NewCalculator creates a damage calculator.
func NewCalculator(rules config.Battle, src roll.Source) *Calculator {
	return &Calculator{rules: rules, src: src}
}

// Compute runs the formula without touching the defender.
// The crit roll is consumed here.
func (c *Calculator) Compute(attacker, defender *model.Combatant, move data.MoveTemplate) Result {
	var r Result

	r.Raw = CalcRaw(attacker, move)
	if r.Raw <= 0 {
		return r
	}

	r.Boosted = float64(r.Raw) * c.rules.LevelGapMultiplier(attacker.Level()-defender.Level())

	reduction := CalcReduction(attacker, defender, move.DamageType)
	r.Mitigated = r.Boosted * (1 - reduction)

	dmg := r.Mitigated
	if roll.Chance(c.src, attacker.CritChance()) {
		r.IsCrit = true
		dmg *= c.rules.CritMultiplier
	}
	dmg *= 1 - defender.DamageReduction()
	r.Reduced = dmg

	r.Final = max(int(dmg), c.rules.DamageFloor)
	return r
}

// Apply computes damage and deals it: shields first, then HP.
func (c *Calculator) Apply(attacker, defender *model.Combatant, move data.MoveTemplate) Result {
	r := c.Compute(attacker, defender, move)
	if r.Final <= 0 {
		return r
	}
	r.Absorbed, r.HPLoss = defender.TakeDamage(r.Final, attacker)

	slog.Debug("damage dealt",
		"attacker", attacker.Name(),
		"defender", defender.Name(),
		"move", move.Name,
		"raw", r.Raw,
		"final", r.Final,
		"crit", r.IsCrit,
		"absorbed", r.Absorbed,
		"hp", defender.CurrentHP())

	return r
}

// CalcRaw returns trunc(base + AD×adRatio + AP×apRatio), never negative.
func CalcRaw(attacker *model.Combatant, move data.MoveTemplate) int {
	raw := move.BaseDamage +
		attacker.AttackDamage()*move.ADRatio +
		attacker.AbilityPower()*move.APRatio
	if raw <= 0 {
		return 0
	}
	return int(raw)
}

// CalcReduction returns the fraction of damage removed by the defender's
// armor or magic resist after the attacker's penetration. True damage is 0.
func CalcReduction(attacker, defender *model.Combatant, dt data.DamageType) float64 {
	if dt == data.DamageTrue {
		return 0
	}
	return model.Mitigation(defender.Defense(dt), attacker.Penetration(dt))
}

// ExpectedRaw estimates pre-mitigation damage of a move against defender,
// including level gap but not crit. Used by move selection policies.
func ExpectedRaw(rules config.Battle, attacker, defender *model.Combatant, move data.MoveTemplate) float64 {
	raw := float64(CalcRaw(attacker, move))
	raw *= rules.LevelGapMultiplier(attacker.Level() - defender.Level())
	return raw * (1 - CalcReduction(attacker, defender, move.DamageType))
}
