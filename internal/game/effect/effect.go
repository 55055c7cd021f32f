// Package effect applies, ticks and expires timed status effects.
//
// Every effect kind has a handler registered in effectRegistry. Instant
// kinds do their work in OnStart and are never stored; continuous kinds are
// appended to the target's effect list and tick once per full turn.
package effect

import (
	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/model"
)

// handler implements one effect kind.
type handler interface {
	OnStart(e *Engine, target *model.Combatant, se *model.StatusEffect)
	OnTurn(e *Engine, target *model.Combatant, se *model.StatusEffect) Tick
	OnExit(e *Engine, target *model.Combatant, se *model.StatusEffect)
}

// effectRegistry maps effect kind → handler.
// Populated by init() functions in individual effect files.
var effectRegistry = map[data.EffectKind]handler{}

func registerHandler(kind data.EffectKind, h handler) {
	effectRegistry[kind] = h
}

// TickKind classifies a per-turn effect result.
type TickKind int8

const (
	TickNone TickKind = iota
	TickDamage
	TickHeal
	TickExpired
)

// Tick is one entry of an end-of-turn report, in effect order.
type Tick struct {
	Kind     TickKind
	Effect   data.EffectKind
	Amount   int // damage dealt to HP or HP healed
	Absorbed int // damage taken by shields
	Source   *model.Combatant
}

// Applied describes the result of Apply.
type Applied struct {
	Kind data.EffectKind

	// Stored is false for instant effects.
	Stored bool

	// Stages is the clamped stage delta for stat modifiers.
	Stages int

	// Amount is the instant result: effects removed by cleanse, PP restored.
	Amount int
}

// noop is embedded by handlers that don't need every hook.
type noop struct{}

func (noop) OnStart(*Engine, *model.Combatant, *model.StatusEffect) {}
func (noop) OnTurn(*Engine, *model.Combatant, *model.StatusEffect) Tick {
	return Tick{}
}
func (noop) OnExit(*Engine, *model.Combatant, *model.StatusEffect) {}
