package effect

import (
	"log/slog"

	"github.com/udisondev/riftduel/internal/model"
)

// controlEffect covers stun, blind, confusion and stealth. They do nothing per
// turn: the move resolver and turn engine query them through the combatant.
type controlEffect struct{ noop }

func (controlEffect) OnStart(_ *Engine, target *model.Combatant, se *model.StatusEffect) {
	slog.Debug("control applied", "kind", se.Kind, "target", target.Name(), "turns", se.Remaining)
}
