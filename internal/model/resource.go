package model

import "github.com/udisondev/riftduel/internal/data"

// Resource is a combatant's ability resource pool.
// Current is always within [0, Max]. HealthCost pools are empty; spending
// goes to the owner's HP instead.
type Resource struct {
	Kind          data.ResourceKind
	Current       int
	Max           int
	Regen         int
	GainOnAttack  int
	GainOnDamaged int
}

func newResource(t data.ResourceTemplate) Resource {
	r := Resource{
		Kind:          t.Kind,
		Max:           max(0, t.Max),
		Regen:         max(0, t.Regen),
		GainOnAttack:  t.GainOnAttack,
		GainOnDamaged: t.GainOnDamaged,
	}
	r.reset()
	return r
}

// reset puts the pool at its battle-start value: consumables full, build-up empty.
func (r *Resource) reset() {
	if r.Kind.IsConsumable() {
		r.Current = r.Max
	} else {
		r.Current = 0
	}
}

func (r *Resource) clamp() {
	if r.Current < 0 {
		r.Current = 0
	}
	if r.Current > r.Max {
		r.Current = r.Max
	}
}

// Resource returns a copy of the resource pool.
func (c *Combatant) Resource() Resource { return c.resource }

// CanAfford reports whether amount can be paid. HealthCost can never pay
// with the last HP point.
func (c *Combatant) CanAfford(amount int) bool {
	if amount <= 0 {
		return true
	}
	switch c.resource.Kind {
	case data.ResourceNone:
		return true
	case data.ResourceHealthCost:
		return c.currentHP > amount
	default:
		return c.resource.Current >= amount
	}
}

// Spend pays amount, or returns false without changing anything.
// HealthCost is deducted from HP immediately so later checks see the new HP.
func (c *Combatant) Spend(amount int) bool {
	if !c.CanAfford(amount) {
		return false
	}
	if amount <= 0 {
		return true
	}
	switch c.resource.Kind {
	case data.ResourceNone:
	case data.ResourceHealthCost:
		c.currentHP -= amount
	default:
		c.resource.Current -= amount
	}
	return true
}

// RegenTurn applies per-turn regeneration. Only consumable kinds regenerate;
// build-up kinds grow from combat actions via GainResource.
// Returns the amount restored.
func (c *Combatant) RegenTurn() int {
	if !c.resource.Kind.IsConsumable() {
		return 0
	}
	before := c.resource.Current
	c.resource.Current += c.resource.Regen
	c.resource.clamp()
	return c.resource.Current - before
}

// GainResource adds to a build-up pool (clamped to max). Returns the amount gained.
func (c *Combatant) GainResource(amount int) int {
	if amount <= 0 || !c.resource.Kind.IsBuildUp() {
		return 0
	}
	before := c.resource.Current
	c.resource.Current += amount
	c.resource.clamp()
	return c.resource.Current - before
}

// RestoreResource adds to any pooled resource (clamped to max), used by
// passives and items. Returns the amount restored.
func (c *Combatant) RestoreResource(amount int) int {
	if amount <= 0 || c.resource.Kind == data.ResourceNone || c.resource.Kind == data.ResourceHealthCost {
		return 0
	}
	before := c.resource.Current
	c.resource.Current += amount
	c.resource.clamp()
	return c.resource.Current - before
}
