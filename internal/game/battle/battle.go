// Package battle implements the turn engine.
// A battle runs TurnStart → ActionSelection → ActionResolution →
// EffectResolution → FaintCheck → TurnEnd until one side has nobody standing.
package battle

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/udisondev/riftduel/internal/config"
	"github.com/udisondev/riftduel/internal/game/combat"
	"github.com/udisondev/riftduel/internal/game/effect"
	"github.com/udisondev/riftduel/internal/game/passive"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/game/skill"
	"github.com/udisondev/riftduel/internal/model"
)

var (
	ErrEmptySide          = errors.New("battle side has no combatants")
	ErrDuplicateCombatant = errors.New("combatant appears twice")
	ErrNoSelector         = errors.New("selector is required")
)

// Phase is the current turn phase.
type Phase int8

const (
	PhaseTurnStart Phase = iota
	PhaseActionSelection
	PhaseActionResolution
	PhaseEffectResolution
	PhaseFaintCheck
	PhaseTurnEnd
	PhaseBattleOver
)

var phaseNames = [...]string{
	"TurnStart", "ActionSelection", "ActionResolution",
	"EffectResolution", "FaintCheck", "TurnEnd", "BattleOver",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", p)
	}
	return phaseNames[p]
}

// Result represents the outcome of a battle.
type Result int8

const (
	ResultContinue Result = iota // Battle continues
	ResultSideAWin
	ResultSideBWin
	ResultDraw // Both sides down at once, or turn limit reached
)

var resultNames = [...]string{"continue", "sideA", "sideB", "draw"}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return fmt.Sprintf("Result(%d)", r)
	}
	return resultNames[r]
}

// Battle is one battle between two sides.
// Not safe for concurrent use: a battle is owned by a single goroutine.
type Battle struct {
	rules config.Battle
	src   roll.Source

	sides [2][]*model.Combatant
	all   []*model.Combatant // side A then side B, original order

	fx       *effect.Engine
	passives *passive.Engine
	resolver *skill.Resolver

	selector Selector
	observer func(Event)

	started bool
	turn    int
	phase   Phase
	result  Result
	log     []Event
}

// Option configures a Battle.
type Option func(*Battle)

// WithObserver streams every event to fn as it is logged.
func WithObserver(fn func(Event)) Option {
	return func(b *Battle) { b.observer = fn }
}

// New creates a battle. Combatants are reset to battle-start state and
// assigned side 0 (A) or 1 (B).
func New(rules config.Battle, src roll.Source, sideA, sideB []*model.Combatant, sel Selector, opts ...Option) (*Battle, error) {
	if len(sideA) == 0 || len(sideB) == 0 {
		return nil, ErrEmptySide
	}
	if sel == nil {
		return nil, ErrNoSelector
	}

	rules.Normalize()
	fx := effect.NewEngine(rules.DamageFloor)
	b := &Battle{
		rules:    rules,
		src:      src,
		fx:       fx,
		passives: passive.NewEngine(src, fx),
		resolver: skill.NewResolver(rules, src, combat.NewCalculator(rules, src), fx),
		selector: sel,
	}

	seen := make(map[*model.Combatant]struct{}, len(sideA)+len(sideB))
	for side, members := range [2][]*model.Combatant{sideA, sideB} {
		for _, c := range members {
			if _, dup := seen[c]; dup {
				return nil, fmt.Errorf("%s: %w", c.Name(), ErrDuplicateCombatant)
			}
			seen[c] = struct{}{}
			c.ResetForBattle()
			c.SetSide(side)
			b.sides[side] = append(b.sides[side], c)
			b.all = append(b.all, c)
		}
	}

	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Turn returns the current turn number (0 before the first turn).
func (b *Battle) Turn() int { return b.turn }

// Phase returns the current phase.
func (b *Battle) Phase() Phase { return b.phase }

// Result returns the outcome, ResultContinue while running.
func (b *Battle) Result() Result { return b.result }

// IsOver reports whether the battle has ended.
func (b *Battle) IsOver() bool { return b.phase == PhaseBattleOver }

// Log returns the turn log.
func (b *Battle) Log() []Event { return b.log }

// Rules returns the rules the battle runs with.
func (b *Battle) Rules() config.Battle { return b.rules }

// Side returns the combatants of side 0 (A) or 1 (B).
func (b *Battle) Side(side int) []*model.Combatant { return b.sides[side] }

// Combatants returns every combatant, side A first.
func (b *Battle) Combatants() []*model.Combatant { return b.all }

// Opponents returns the standing combatants of the other side.
func (b *Battle) Opponents(c *model.Combatant) []*model.Combatant {
	return standing(b.sides[1-c.Side()])
}

// Validate reports whether actor could use slot right now.
func (b *Battle) Validate(actor *model.Combatant, slot *model.MoveSlot) error {
	return b.resolver.Validate(actor, slot)
}

// Run plays turns until the battle is over. The context is checked between
// turns; a cancelled battle is left mid-way and its error returned.
func (b *Battle) Run(ctx context.Context) (Result, error) {
	for !b.IsOver() {
		if err := ctx.Err(); err != nil {
			return ResultContinue, err
		}
		b.Step()
	}
	return b.result, nil
}

// TurnOrder returns the standing combatants in action order: descending
// effective speed, ties kept in original order (side A first, list order).
func (b *Battle) TurnOrder() []*model.Combatant {
	order := standing(b.all)
	slices.SortStableFunc(order, func(x, y *model.Combatant) int {
		switch sx, sy := x.Speed(), y.Speed(); {
		case sx > sy:
			return -1
		case sx < sy:
			return 1
		}
		return 0
	})
	return order
}

func standing(cs []*model.Combatant) []*model.Combatant {
	var out []*model.Combatant
	for _, c := range cs {
		if c.IsStanding() {
			out = append(out, c)
		}
	}
	return out
}

func (b *Battle) firstOpponent(c *model.Combatant) *model.Combatant {
	if opp := b.Opponents(c); len(opp) > 0 {
		return opp[0]
	}
	return nil
}
