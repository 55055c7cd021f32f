package sim

import (
	"github.com/udisondev/riftduel/internal/game/battle"
	"github.com/udisondev/riftduel/internal/game/combat"
	"github.com/udisondev/riftduel/internal/model"
)

// potionThreshold is the HP percent below which GreedyPolicy drinks.
const potionThreshold = 35

// GreedyPolicy picks the usable move with the highest expected damage
// against the first standing opponent. Below potionThreshold HP it uses the
// first item with charges left. Non-damaging moves are used only when no
// damaging move is available.
type GreedyPolicy struct{}

// Select implements battle.Selector.
func (GreedyPolicy) Select(b *battle.Battle, actor *model.Combatant) battle.Action {
	opponents := b.Opponents(actor)
	if len(opponents) == 0 {
		return battle.Pass()
	}
	target := opponents[0]

	if actor.HPPercent() < potionThreshold {
		for i, it := range actor.Items() {
			if it.Template.OnUse != nil && it.Charges > 0 {
				return battle.UseItem(i)
			}
		}
	}

	best, bestScore := -1, 0.0
	support := -1
	for i, slot := range actor.AllSlots() {
		if !actor.CanUse(slot) {
			continue
		}
		if !slot.Template.DealsDamage() {
			if support < 0 {
				support = i
			}
			continue
		}
		score := combat.ExpectedRaw(b.Rules(), actor, target, slot.Template) * slot.Template.Accuracy / 100
		if best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}

	switch {
	case best >= 0:
		return battle.Move(best, target)
	case support >= 0:
		return battle.Move(support, target)
	}
	return battle.Pass()
}
