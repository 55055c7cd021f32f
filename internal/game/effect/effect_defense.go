package effect

import "github.com/udisondev/riftduel/internal/model"

// shieldEffect absorbs damage up to Value. The pool is consumed by
// Combatant.TakeDamage; what is left persists until the duration runs out.
type shieldEffect struct{ noop }

func (shieldEffect) OnStart(_ *Engine, _ *model.Combatant, se *model.StatusEffect) {
	se.Pool = max(0, int(se.Value))
}
