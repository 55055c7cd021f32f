// Package skill resolves move and item use: validity checks, cost, accuracy,
// damage and effect payloads.
package skill

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/riftduel/internal/config"
	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/game/combat"
	"github.com/udisondev/riftduel/internal/game/effect"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/model"
)

// ErrInvalidAction is the root of every rejected action.
// A rejected action leaves all battle state untouched.
var ErrInvalidAction = errors.New("invalid action")

var (
	ErrUnknownMove          = fmt.Errorf("%w: unknown move slot", ErrInvalidAction)
	ErrOutOfPP              = fmt.Errorf("%w: no PP left", ErrInvalidAction)
	ErrUltimateOnCooldown   = fmt.Errorf("%w: ultimate on cooldown", ErrInvalidAction)
	ErrInsufficientResource = fmt.Errorf("%w: insufficient resource", ErrInvalidAction)
	ErrNoItemCharges        = fmt.Errorf("%w: no item charges", ErrInvalidAction)
)

// AppliedEffect is one effect payload that landed.
type AppliedEffect struct {
	Target *model.Combatant
	effect.Applied
}

// Outcome is the result of a resolved move.
type Outcome struct {
	Move       string
	Ultimate   bool
	Cost       int
	Hit        bool
	ForcedMiss bool // blind or stealth, no roll consumed
	Dealt      bool // damage was computed
	Damage     combat.Result
	Effects    []AppliedEffect
}

// Resolver resolves moves for one battle. Not safe for concurrent use.
type Resolver struct {
	rules config.Battle
	src   roll.Source
	calc  *combat.Calculator
	fx    *effect.Engine
}

// NewResolver creates a move resolver. src must be the battle's random source
// so accuracy, crit and effect rolls share one deterministic stream.
func NewResolver(rules config.Battle, src roll.Source, calc *combat.Calculator, fx *effect.Engine) *Resolver {
	return &Resolver{rules: rules, src: src, calc: calc, fx: fx}
}

// Validate checks whether attacker may use slot right now, without mutating anything.
func (r *Resolver) Validate(attacker *model.Combatant, slot *model.MoveSlot) error {
	// 1. Slot exists
	if slot == nil {
		return ErrUnknownMove
	}

	// 2. PP
	if slot.PP <= 0 {
		return fmt.Errorf("%s: %w", slot.Name(), ErrOutOfPP)
	}

	// 3. Ultimate cooldown
	if slot.IsUltimate() && attacker.UltimateCooldown() > 0 {
		return fmt.Errorf("%s (%d turns): %w", slot.Name(), attacker.UltimateCooldown(), ErrUltimateOnCooldown)
	}

	// 4. Resource
	if !attacker.CanAfford(slot.Template.Cost) {
		return fmt.Errorf("%s costs %d %s: %w", slot.Name(), slot.Template.Cost, attacker.Resource().Kind, ErrInsufficientResource)
	}

	return nil
}

// UseMove resolves attacker using slot against defender.
// PP and ultimate cooldown are spent on hit and miss alike.
func (r *Resolver) UseMove(attacker *model.Combatant, slot *model.MoveSlot, defender *model.Combatant) (Outcome, error) {
	if err := r.Validate(attacker, slot); err != nil {
		slog.Debug("move rejected", "attacker", attacker.Name(), "error", err)
		return Outcome{}, err
	}

	move := slot.Template
	out := Outcome{Move: move.Name, Ultimate: move.IsUltimate, Cost: move.Cost}

	// Cost, PP and cooldown
	attacker.Spend(move.Cost)
	slot.PP--
	if move.IsUltimate {
		attacker.StartUltimateCooldown(r.rules.UltimateCooldown)
	}

	// Accuracy
	switch {
	case attacker.IsBlinded(), defender != nil && defender.IsStealthed():
		out.ForcedMiss = true
	default:
		out.Hit = roll.Chance(r.src, move.Accuracy)
	}

	slog.Debug("move used",
		"attacker", attacker.Name(),
		"move", move.Name,
		"hit", out.Hit,
		"forcedMiss", out.ForcedMiss,
		"pp", slot.PP)

	if !out.Hit {
		return out, nil
	}

	// Damage
	if move.DealsDamage() && defender != nil && defender.IsStanding() {
		out.Damage = r.calc.Apply(attacker, defender, move)
		out.Dealt = true
	}

	// Effect payloads, each with an independent chance roll
	for _, p := range move.Effects {
		target := defender
		if p.Target == data.TargetSelf {
			target = attacker
		}
		if target == nil || !target.IsStanding() {
			continue
		}
		if !roll.Chance(r.src, p.Chance) {
			continue
		}
		applied := r.fx.Apply(target, p.Effect, attacker)
		out.Effects = append(out.Effects, AppliedEffect{Target: target, Applied: applied})
	}

	return out, nil
}

// UseItem consumes one charge of an equipped item and applies its on-use
// effect to the user.
func (r *Resolver) UseItem(user *model.Combatant, item *model.EquippedItem) (effect.Applied, error) {
	if item == nil || item.Template.OnUse == nil || item.Charges <= 0 {
		name := "<none>"
		if item != nil {
			name = item.Template.Name
		}
		return effect.Applied{}, fmt.Errorf("%s: %w", name, ErrNoItemCharges)
	}

	item.Charges--
	applied := r.fx.Apply(user, *item.Template.OnUse, user)

	slog.Debug("item used", "user", user.Name(), "item", item.Template.Name, "charges", item.Charges)
	return applied, nil
}
