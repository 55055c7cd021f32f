package effect

import (
	"log/slog"

	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/model"
)

// statModifierEffect shifts one stat's stage while active.
// AppliedStages holds the clamped delta so expiry reverts exactly what was applied.
type statModifierEffect struct{ noop }

func (statModifierEffect) OnStart(_ *Engine, target *model.Combatant, se *model.StatusEffect) {
	se.AppliedStages = target.ModifyStage(se.Stat, se.AppliedStages)
	slog.Debug("stage changed", "target", target.Name(), "stat", se.Stat, "delta", se.AppliedStages)
}

func (statModifierEffect) OnExit(_ *Engine, target *model.Combatant, se *model.StatusEffect) {
	if se.AppliedStages != 0 {
		target.ModifyStage(se.Stat, -se.AppliedStages)
	}
}

// slowEffect is a move speed reduction. A zero or positive stage delta is
// treated as -1 so slow is always a debuff.
type slowEffect struct{ statModifierEffect }

func (s slowEffect) OnStart(e *Engine, target *model.Combatant, se *model.StatusEffect) {
	se.Stat = data.StatMoveSpeed
	if se.AppliedStages >= 0 {
		se.AppliedStages = -max(1, se.AppliedStages)
	}
	s.statModifierEffect.OnStart(e, target, se)
}
