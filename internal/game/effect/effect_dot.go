package effect

import (
	"log/slog"

	"github.com/udisondev/riftduel/internal/model"
)

// dotEffect deals Value damage per turn. The damage type follows the kind
// (burn magic, bleed physical, poison true) and is mitigated by the target's
// current effective defense without penetration.
type dotEffect struct{ noop }

func (dotEffect) OnTurn(e *Engine, target *model.Combatant, se *model.StatusEffect) Tick {
	if !target.IsStanding() || se.Value <= 0 {
		return Tick{}
	}

	dt := se.Kind.DOTDamageType()
	dmg := se.Value * (1 - model.Mitigation(target.Defense(dt), 0))
	dmg *= 1 - target.DamageReduction()
	amount := max(int(dmg), e.damageFloor)

	absorbed, hpLoss := target.TakeDamage(amount, se.Source)

	slog.Debug("dot tick",
		"kind", se.Kind,
		"target", target.Name(),
		"damage", amount,
		"absorbed", absorbed,
		"hp", target.CurrentHP())

	return Tick{Kind: TickDamage, Effect: se.Kind, Amount: hpLoss, Absorbed: absorbed, Source: se.Source}
}
