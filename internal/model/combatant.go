package model

import (
	"github.com/udisondev/riftduel/internal/data"
)

// Combatant is a champion instance participating in one battle.
// Built fresh from a template snapshot; all battle state lives here and is
// discarded when the battle ends.
//
// Not safe for concurrent use: a battle is owned by a single goroutine.
type Combatant struct {
	name  string
	class data.Class
	level int
	side  int

	base   [data.NumStats]float64
	growth [data.NumStats]float64
	stages [data.NumStats]int

	items []*EquippedItem

	currentHP int
	fainted   bool

	resource Resource

	armorPen         float64
	magicPen         float64
	armorPenPerLevel float64
	critChance       float64

	effects  []*StatusEffect
	passives []*PassiveState

	moves    []*MoveSlot
	ultimate *MoveSlot

	// ultimateCooldown is shared by the ultimate slot, separate from PP.
	ultimateCooldown int

	// lastAttacker is credited with the kill when HP reaches 0.
	lastAttacker *Combatant
}

// EquippedItem is an item instance with its own charge counter.
type EquippedItem struct {
	Template *data.ItemTemplate
	Charges  int
}

// NewCombatant builds a combatant from a catalog template.
// The template is cloned, so the catalog entry is never aliased.
func NewCombatant(cat *data.Catalog, tmpl *data.ChampionTemplate, level int, items ...*data.ItemTemplate) *Combatant {
	t := tmpl.Clone()
	info := cat.ClassInfo(t.Class)

	c := &Combatant{
		name:             t.Name,
		class:            t.Class,
		level:            data.ClampLevel(level),
		base:             t.Base,
		armorPen:         t.ArmorPen,
		magicPen:         t.MagicPen,
		armorPenPerLevel: info.ArmorPenPerLevel,
		critChance:       info.BaseCritChance + t.CritChance,
	}
	for s := range data.NumStats {
		c.growth[s] = cat.GrowthRate(t, data.StatKind(s))
	}

	for i := range t.Moves {
		c.moves = append(c.moves, newMoveSlot(t.Moves[i]))
	}
	if t.Ultimate != nil {
		c.ultimate = newMoveSlot(*t.Ultimate)
	}
	if t.Passive != nil {
		c.passives = append(c.passives, NewPassiveState(t.Passive))
	}

	for _, it := range items {
		c.Equip(it)
	}

	c.resource = newResource(t.Resource)
	c.currentHP = c.MaxHP()
	return c
}

// Name returns the champion name.
func (c *Combatant) Name() string { return c.name }

// Class returns the champion class.
func (c *Combatant) Class() data.Class { return c.class }

// Level returns the current level.
func (c *Combatant) Level() int { return c.level }

// Side returns the battle side index assigned by the turn engine.
func (c *Combatant) Side() int { return c.side }

// SetSide assigns the battle side index.
func (c *Combatant) SetSide(side int) { c.side = side }

// SetLevel changes the level (clamped to 1..100). Current HP is clamped to
// the new maximum; effective stats follow automatically.
func (c *Combatant) SetLevel(level int) {
	c.level = data.ClampLevel(level)
	c.clampHP()
}

// Equip adds an item. Stat bonuses apply from the next read.
func (c *Combatant) Equip(t *data.ItemTemplate) {
	it := t.Clone()
	c.items = append(c.items, &EquippedItem{Template: it, Charges: it.Charges})
	if it.Passive != nil {
		c.passives = append(c.passives, NewPassiveState(it.Passive))
	}
	c.clampHP()
}

// Items returns the equipped items.
func (c *Combatant) Items() []*EquippedItem { return c.items }

// CurrentHP returns current HP.
func (c *Combatant) CurrentHP() int { return c.currentHP }

// MaxHP returns the effective max HP (truncated).
func (c *Combatant) MaxHP() int {
	return int(c.EffectiveStat(data.StatHealth))
}

// SetCurrentHP sets current HP with validation (clamp 0..maxHP).
func (c *Combatant) SetCurrentHP(hp int) {
	c.currentHP = hp
	c.clampHP()
}

// HPPercent returns current HP as a percentage of max (0..100).
func (c *Combatant) HPPercent() float64 {
	maxHP := c.MaxHP()
	if maxHP <= 0 {
		return 0
	}
	return float64(c.currentHP) * 100 / float64(maxHP)
}

// Heal restores HP up to max and returns the amount actually healed.
// Fainted combatants cannot be healed.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || c.fainted || c.currentHP <= 0 {
		return 0
	}
	before := c.currentHP
	c.currentHP += amount
	c.clampHP()
	return c.currentHP - before
}

// LoseHP reduces HP directly, bypassing shields. HP never goes negative.
// Returns the HP actually lost.
func (c *Combatant) LoseHP(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > c.currentHP {
		amount = c.currentHP
	}
	c.currentHP -= amount
	return amount
}

// TakeDamage consumes shields in application order, then HP.
// Returns the shield-absorbed amount and the HP lost.
func (c *Combatant) TakeDamage(amount int, source *Combatant) (absorbed, hpLoss int) {
	if amount <= 0 {
		return 0, 0
	}
	remaining := amount
	for _, e := range c.effects {
		if remaining == 0 {
			break
		}
		if e.Kind != data.EffectShield || e.Pool <= 0 {
			continue
		}
		take := min(e.Pool, remaining)
		e.Pool -= take
		remaining -= take
		absorbed += take
	}
	hpLoss = c.LoseHP(remaining)
	if source != nil && source != c {
		c.lastAttacker = source
	}
	return absorbed, hpLoss
}

// IsFainted reports whether the combatant has been removed from battle.
func (c *Combatant) IsFainted() bool { return c.fainted }

// IsStanding reports whether the combatant can still act: not fainted and HP above zero.
func (c *Combatant) IsStanding() bool { return !c.fainted && c.currentHP > 0 }

// Faint marks the combatant as removed from further action.
func (c *Combatant) Faint() {
	c.currentHP = 0
	c.fainted = true
}

// LastAttacker returns whoever last dealt damage to this combatant.
func (c *Combatant) LastAttacker() *Combatant { return c.lastAttacker }

// Moves returns the regular move slots.
func (c *Combatant) Moves() []*MoveSlot { return c.moves }

// Ultimate returns the ultimate slot or nil.
func (c *Combatant) Ultimate() *MoveSlot { return c.ultimate }

// UltimateCooldown returns remaining ultimate cooldown turns.
func (c *Combatant) UltimateCooldown() int { return c.ultimateCooldown }

// StartUltimateCooldown sets the shared ultimate cooldown.
func (c *Combatant) StartUltimateCooldown(turns int) {
	c.ultimateCooldown = max(0, turns)
}

// TickCooldowns advances the ultimate cooldown and passive cooldowns by one turn.
func (c *Combatant) TickCooldowns() {
	if c.ultimateCooldown > 0 {
		c.ultimateCooldown--
	}
	for _, p := range c.passives {
		p.TickCooldown()
	}
}

// Slot returns a move slot by index; index len(Moves()) addresses the ultimate.
func (c *Combatant) Slot(idx int) *MoveSlot {
	if idx >= 0 && idx < len(c.moves) {
		return c.moves[idx]
	}
	if idx == len(c.moves) {
		return c.ultimate
	}
	return nil
}

// AllSlots returns regular slots followed by the ultimate, if any.
func (c *Combatant) AllSlots() []*MoveSlot {
	slots := make([]*MoveSlot, 0, len(c.moves)+1)
	slots = append(slots, c.moves...)
	if c.ultimate != nil {
		slots = append(slots, c.ultimate)
	}
	return slots
}

// Passives returns the passive states (champion passive first, then items).
func (c *Combatant) Passives() []*PassiveState { return c.passives }

// ResetForBattle restores battle-start defaults: full HP, cleared stages and
// effects, refilled PP, reset passives and cooldowns, fresh resource pool.
func (c *Combatant) ResetForBattle() {
	c.fainted = false
	c.lastAttacker = nil
	c.stages = [data.NumStats]int{}
	c.effects = nil
	c.ultimateCooldown = 0
	for _, s := range c.AllSlots() {
		s.PP = s.Template.PP
	}
	for _, p := range c.passives {
		p.Reset()
	}
	for _, it := range c.items {
		it.Charges = it.Template.Charges
	}
	c.resource.reset()
	c.currentHP = c.MaxHP()
}

func (c *Combatant) clampHP() {
	maxHP := c.MaxHP()
	if c.currentHP > maxHP {
		c.currentHP = maxHP
	}
	if c.currentHP < 0 {
		c.currentHP = 0
	}
}
