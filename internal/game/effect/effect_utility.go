package effect

import "github.com/udisondev/riftduel/internal/model"

// regenEffect heals Value HP per turn.
type regenEffect struct{ noop }

func (regenEffect) OnTurn(_ *Engine, target *model.Combatant, se *model.StatusEffect) Tick {
	healed := target.Heal(int(se.Value))
	if healed == 0 {
		return Tick{}
	}
	return Tick{Kind: TickHeal, Effect: se.Kind, Amount: healed, Source: se.Source}
}

// cleanseEffect removes every negative effect from the target. Instant.
type cleanseEffect struct{ noop }

func (cleanseEffect) OnStart(e *Engine, target *model.Combatant, se *model.StatusEffect) {
	se.Pool = e.Cleanse(target)
}

// ppRestoreEffect restores Value PP to every move slot. Instant.
type ppRestoreEffect struct{ noop }

func (ppRestoreEffect) OnStart(_ *Engine, target *model.Combatant, se *model.StatusEffect) {
	var restored int
	for _, s := range target.AllSlots() {
		restored += s.RestorePP(int(se.Value))
	}
	se.Pool = restored
}
