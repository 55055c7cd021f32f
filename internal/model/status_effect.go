package model

import "github.com/udisondev/riftduel/internal/data"

// StatusEffect is an active timed effect on a combatant.
// Same-kind effects stack as independent entries.
type StatusEffect struct {
	Kind      data.EffectKind
	Remaining int // turns
	Value     float64
	Stat      data.StatKind

	// AppliedStages is the stage delta actually applied after clamping;
	// reverted exactly on expiry.
	AppliedStages int

	// Pool is the remaining shield absorption.
	Pool int

	Source *Combatant
}

// IsExpired returns true if the effect duration has elapsed.
func (e *StatusEffect) IsExpired() bool {
	return e.Remaining <= 0
}

// IsNegative reports whether cleanse removes the effect.
func (e *StatusEffect) IsNegative() bool {
	switch e.Kind {
	case data.EffectBurn, data.EffectPoison, data.EffectBleed, data.EffectStun,
		data.EffectSlow, data.EffectBlind, data.EffectConfusion:
		return true
	case data.EffectStatModifier:
		return e.AppliedStages < 0
	}
	return false
}

// Effects returns the active effects in application order.
func (c *Combatant) Effects() []*StatusEffect { return c.effects }

// AddEffect appends an effect; insertion order is tick order.
func (c *Combatant) AddEffect(e *StatusEffect) {
	c.effects = append(c.effects, e)
}

// SetEffects replaces the effect list (used by the effect engine after purging).
func (c *Combatant) SetEffects(effects []*StatusEffect) {
	c.effects = effects
}

// HasEffect reports whether any active effect of kind is present.
func (c *Combatant) HasEffect(kind data.EffectKind) bool {
	for _, e := range c.effects {
		if e.Kind == kind && !e.IsExpired() {
			return true
		}
	}
	return false
}

// IsStunned reports whether the combatant must skip its action.
func (c *Combatant) IsStunned() bool { return c.HasEffect(data.EffectStun) }

// IsBlinded reports whether the combatant's moves are forced to miss.
func (c *Combatant) IsBlinded() bool { return c.HasEffect(data.EffectBlind) }

// IsConfused reports whether the combatant may lose its action.
func (c *Combatant) IsConfused() bool { return c.HasEffect(data.EffectConfusion) }

// IsStealthed reports whether moves against the combatant are forced to miss.
func (c *Combatant) IsStealthed() bool { return c.HasEffect(data.EffectStealth) }

// ShieldPool returns the total remaining shield absorption.
func (c *Combatant) ShieldPool() int {
	var sum int
	for _, e := range c.effects {
		if e.Kind == data.EffectShield {
			sum += e.Pool
		}
	}
	return sum
}

// DamageReduction returns the summed damage-reduction fraction, clamped to [0, 1].
func (c *Combatant) DamageReduction() float64 {
	var pct float64
	for _, e := range c.effects {
		if e.Kind == data.EffectDamageReduction {
			pct += e.Value
		}
	}
	switch {
	case pct <= 0:
		return 0
	case pct >= 100:
		return 1
	}
	return pct / 100
}
