package passive

import (
	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/model"
)

// perform runs the passive action. scale multiplies numeric magnitudes
// for stacking passives.
func (e *Engine) perform(c *model.Combatant, ps *model.PassiveState, ev Event, scale int) Activation {
	t := ps.Template
	act := Activation{
		Owner:   c,
		Target:  c,
		Passive: t.Name,
		Trigger: t.Trigger,
		Action:  t.Action,
	}
	k := float64(scale)

	switch t.Action {
	case data.ActionHeal:
		amount := (t.Value + t.Value2*float64(c.MaxHP())/100) * k
		act.Amount = c.Heal(int(amount))

	case data.ActionDamage:
		act.Target = ev.Other
		if ev.Other == nil || !ev.Other.IsStanding() {
			return act
		}
		amount := (t.Value + t.Value2*float64(ev.Damage)/100) * k
		absorbed, hpLoss := ev.Other.TakeDamage(int(amount), c)
		act.Amount = absorbed + hpLoss

	case data.ActionStatBoost:
		act.Amount = c.ModifyStage(t.Stat, int(t.Value)*scale)

	case data.ActionShield:
		applied := e.fx.Apply(c, data.EffectTemplate{
			Kind:     data.EffectShield,
			Duration: max(1, int(t.Value2)),
			Value:    t.Value * k,
		}, c)
		act.Effect = applied.Kind
		act.Amount = int(t.Value * k)

	case data.ActionApplyEffect:
		if t.Effect == nil {
			return act
		}
		target := c
		if t.Target == data.TargetOpponent {
			target = ev.Other
		}
		act.Target = target
		if target == nil || !target.IsStanding() {
			return act
		}
		tmpl := *t.Effect
		tmpl.Value *= k
		applied := e.fx.Apply(target, tmpl, c)
		act.Effect = applied.Kind
		act.Amount = applied.Amount

	case data.ActionRestoreResource:
		act.Amount = c.RestoreResource(int(t.Value * k))

	case data.ActionSurvive:
		hp := max(1, int(t.Value*float64(c.MaxHP())/100))
		c.SetCurrentHP(hp)
		act.Amount = c.CurrentHP()
	}

	return act
}
