package battle

import "github.com/udisondev/riftduel/internal/model"

// ActionKind is what a combatant does on its turn.
type ActionKind int8

const (
	ActionMove ActionKind = iota
	ActionItem
	ActionPass
)

// Action is a selected action. Slot indexes Combatant.Slot (the ultimate
// follows the regular moves); Item indexes Combatant.Items.
type Action struct {
	Kind   ActionKind
	Slot   int
	Item   int
	Target *model.Combatant // nil means the first standing opponent
}

// Move returns a move action.
func Move(slot int, target *model.Combatant) Action {
	return Action{Kind: ActionMove, Slot: slot, Target: target}
}

// UseItem returns an item action.
func UseItem(item int) Action {
	return Action{Kind: ActionItem, Item: item}
}

// Pass returns an action that does nothing.
func Pass() Action {
	return Action{Kind: ActionPass}
}

// Selector chooses an action for a combatant. Called once per standing,
// non-stunned combatant during ActionSelection.
type Selector interface {
	Select(b *Battle, actor *model.Combatant) Action
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(b *Battle, actor *model.Combatant) Action

// Select calls f.
func (f SelectorFunc) Select(b *Battle, actor *model.Combatant) Action {
	return f(b, actor)
}
