// Package passive evaluates champion and item passives against battle events.
package passive

import (
	"log/slog"

	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/game/effect"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/model"
)

// EventKind is a battle moment passives can listen to.
type EventKind int8

const (
	EventBattleStart EventKind = iota
	EventTurnStart
	EventTurnEnd
	EventAttack     // owner is about to use a move
	EventAbilityUse // owner used a move (hit or miss)
	EventAbilityHit // owner's move hit
	EventCritical   // owner landed a critical hit
	EventDamaged    // owner took damage from Other
	EventKill       // owner knocked out Other
	EventLethal     // owner dropped to 0 HP
)

// listensTo maps a trigger to the event that drives it.
var listensTo = map[data.Trigger]EventKind{
	data.TriggerStartOfBattle:  EventBattleStart,
	data.TriggerStartOfTurn:    EventTurnStart,
	data.TriggerEveryNTurns:    EventTurnStart,
	data.TriggerStackingTurn:   EventTurnStart,
	data.TriggerStealth:        EventTurnStart,
	data.TriggerEndOfTurn:      EventTurnEnd,
	data.TriggerRegeneration:   EventTurnEnd,
	data.TriggerOnAttack:       EventAttack,
	data.TriggerFirstAttack:    EventAttack,
	data.TriggerEveryNAttacks:  EventAttack,
	data.TriggerStackingAttack: EventAttack,
	data.TriggerOnAbilityUse:   EventAbilityUse,
	data.TriggerOnAbilityHit:   EventAbilityHit,
	data.TriggerOnCritical:     EventCritical,
	data.TriggerOnDamaged:      EventDamaged,
	data.TriggerOnLowHP:        EventDamaged,
	data.TriggerHPThreshold:    EventDamaged,
	data.TriggerRetaliation:    EventDamaged,
	data.TriggerOnKill:         EventKill,
	data.TriggerDeathDefiance:  EventLethal,
}

// Event is dispatched to every passive of one combatant.
type Event struct {
	Kind  EventKind
	Other *model.Combatant // opponent involved, may be nil

	// Damage is the damage dealt or taken (HP loss plus absorbed).
	Damage int
	// HPBefore is the owner's HP percent before the damage (EventDamaged).
	HPBefore float64
}

// Activation describes one passive that fired.
type Activation struct {
	Owner   *model.Combatant
	Target  *model.Combatant
	Passive string
	Trigger data.Trigger
	Action  data.PassiveAction
	Amount  int
	Effect  data.EffectKind
}

// Engine evaluates passives. Not safe for concurrent use.
type Engine struct {
	src roll.Source
	fx  *effect.Engine
}

// NewEngine creates a passive engine sharing the battle's random source and effect engine.
func NewEngine(src roll.Source, fx *effect.Engine) *Engine {
	return &Engine{src: src, fx: fx}
}

// Dispatch evaluates every passive of c listening to ev.Kind, in order
// (champion passive first, then item passives). Returns what fired.
// An owner at 0 HP only answers EventLethal.
func (e *Engine) Dispatch(c *model.Combatant, ev Event) []Activation {
	if c.CurrentHP() <= 0 && ev.Kind != EventLethal {
		return nil
	}
	var out []Activation
	for _, ps := range c.Passives() {
		if listensTo[ps.Template.Trigger] != ev.Kind {
			continue
		}
		if act, ok := e.Evaluate(c, ps, ev); ok {
			out = append(out, act)
		}
	}
	return out
}

// Evaluate checks one passive against an event and performs its action if
// it fires. Gates in order: trigger condition, cooldown, once-per-battle,
// periodic counter, chance roll.
func (e *Engine) Evaluate(c *model.Combatant, ps *model.PassiveState, ev Event) (Activation, bool) {
	t := ps.Template

	advanceCounters(ps, ev.Kind)

	if !conditionMet(c, ps, ev) {
		return Activation{}, false
	}
	if ps.OnCooldown() || ps.Spent() {
		return Activation{}, false
	}
	if t.Trigger.IsPeriodic() && !periodReached(ps) {
		return Activation{}, false
	}
	if !roll.Chance(e.src, t.TriggerChance) {
		return Activation{}, false
	}

	scale := 1
	if t.Trigger.IsStacking() {
		scale = max(1, ps.Stacks)
		ps.Stacks = 0
	}

	act := e.perform(c, ps, ev, scale)

	if t.MaxCooldown > 0 {
		ps.Cooldown = t.MaxCooldown
	}
	if t.IsOncePerBattle() {
		ps.UsedThisBattle = true
	}

	slog.Debug("passive triggered",
		"owner", c.Name(),
		"passive", t.Name,
		"trigger", t.Trigger,
		"action", t.Action,
		"amount", act.Amount)

	return act, true
}

func advanceCounters(ps *model.PassiveState, kind EventKind) {
	switch kind {
	case EventTurnStart:
		ps.TurnCounter++
	case EventAttack:
		ps.AttackCounter++
	}
	if ps.Template.Trigger.IsStacking() && listensTo[ps.Template.Trigger] == kind {
		ps.Stacks = min(ps.Stacks+1, max(1, ps.Template.MaxStacks))
	}
}

// conditionMet checks trigger-specific preconditions.
func conditionMet(c *model.Combatant, ps *model.PassiveState, ev Event) bool {
	t := ps.Template
	switch t.Trigger {
	case data.TriggerFirstAttack:
		return ps.AttackCounter == 1
	case data.TriggerOnLowHP:
		return c.CurrentHP() > 0 && c.HPPercent() < float64(t.N)
	case data.TriggerHPThreshold:
		return c.CurrentHP() > 0 && ev.HPBefore >= float64(t.N) && c.HPPercent() < float64(t.N)
	case data.TriggerRetaliation, data.TriggerOnDamaged:
		return ev.Damage > 0
	case data.TriggerStackingAttack, data.TriggerStackingTurn:
		return ps.Stacks >= max(1, t.MaxStacks)
	case data.TriggerDeathDefiance:
		return c.CurrentHP() <= 0 && !c.IsFainted()
	}
	return true
}

func periodReached(ps *model.PassiveState) bool {
	n := ps.Template.N
	if n <= 0 {
		return false
	}
	counter := ps.TurnCounter
	if ps.Template.Trigger == data.TriggerEveryNAttacks {
		counter = ps.AttackCounter
	}
	return counter > 0 && counter%n == 0
}
