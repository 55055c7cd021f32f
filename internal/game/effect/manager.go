package effect

import (
	"log/slog"

	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/model"
)

// Engine applies and ticks status effects.
// It holds no per-combatant state: effects live on the combatant itself.
type Engine struct {
	damageFloor int
}

// NewEngine creates an effect engine. damageFloor is the minimum DOT tick
// damage when the DOT value is positive.
func NewEngine(damageFloor int) *Engine {
	return &Engine{damageFloor: max(0, damageFloor)}
}

// Apply adds an effect to target. Effects of the same kind stack as
// independent entries; nothing is refreshed or replaced.
// Instant kinds (cleanse, PP restore) resolve immediately and are not stored.
func (e *Engine) Apply(target *model.Combatant, tmpl data.EffectTemplate, source *model.Combatant) Applied {
	h, ok := effectRegistry[tmpl.Kind]
	if !ok {
		slog.Debug("unknown effect kind ignored", "kind", tmpl.Kind, "target", target.Name())
		return Applied{Kind: tmpl.Kind}
	}

	se := &model.StatusEffect{
		Kind:      tmpl.Kind,
		Remaining: max(1, tmpl.Duration),
		Value:     tmpl.Value,
		Stat:      tmpl.Stat,
		Source:    source,
	}

	if tmpl.Kind.IsInstant() {
		h.OnStart(e, target, se)
		slog.Debug("instant effect resolved", "kind", tmpl.Kind, "target", target.Name(), "amount", se.Pool)
		return Applied{Kind: tmpl.Kind, Amount: se.Pool}
	}

	if tmpl.Kind == data.EffectStatModifier || tmpl.Kind == data.EffectSlow {
		se.AppliedStages = tmpl.Stages
	}

	target.AddEffect(se)
	h.OnStart(e, target, se)

	slog.Debug("effect applied",
		"kind", tmpl.Kind,
		"target", target.Name(),
		"duration", se.Remaining,
		"value", se.Value)

	return Applied{Kind: tmpl.Kind, Stored: true, Stages: se.AppliedStages}
}

// TickEndOfTurn runs every active effect's turn action in application order,
// decrements durations (stun excepted), then purges effects whose duration
// reached zero.
func (e *Engine) TickEndOfTurn(c *model.Combatant) []Tick {
	var ticks []Tick

	// Snapshot: turn actions must not see effects added mid-tick.
	active := append([]*model.StatusEffect(nil), c.Effects()...)
	for _, se := range active {
		h, ok := effectRegistry[se.Kind]
		if !ok {
			continue
		}
		if t := h.OnTurn(e, c, se); t.Kind != TickNone {
			ticks = append(ticks, t)
		}
		// Stun counts skipped actions, see SpendStun.
		if se.Kind != data.EffectStun {
			se.Remaining--
		}
	}

	ticks = append(ticks, e.purge(c, func(se *model.StatusEffect) bool {
		return se.IsExpired() || (se.Kind == data.EffectShield && se.Pool <= 0)
	})...)
	return ticks
}

// SpendStun counts one skipped action against every active stun on c.
// A stun of duration N therefore costs exactly N actions, no matter when in
// the turn it landed. Spent stuns are purged at the next end-of-turn tick.
func (e *Engine) SpendStun(c *model.Combatant) {
	for _, se := range c.Effects() {
		if se.Kind == data.EffectStun && se.Remaining > 0 {
			se.Remaining--
		}
	}
}

// Cleanse removes all negative effects, reverting their stage changes.
// Returns the number of effects removed.
func (e *Engine) Cleanse(c *model.Combatant) int {
	return len(e.purge(c, (*model.StatusEffect).IsNegative))
}

// RemoveKind removes every effect of a kind (OnExit is called for each).
func (e *Engine) RemoveKind(c *model.Combatant, kind data.EffectKind) int {
	return len(e.purge(c, func(se *model.StatusEffect) bool { return se.Kind == kind }))
}

// purge removes effects matching drop, calling OnExit, and returns expiry ticks.
func (e *Engine) purge(c *model.Combatant, drop func(*model.StatusEffect) bool) []Tick {
	effects := c.Effects()
	var expired []Tick
	n := 0
	for _, se := range effects {
		if drop(se) {
			if h, ok := effectRegistry[se.Kind]; ok {
				h.OnExit(e, c, se)
			}
			expired = append(expired, Tick{Kind: TickExpired, Effect: se.Kind, Source: se.Source})
			slog.Debug("effect removed", "kind", se.Kind, "target", c.Name())
			continue
		}
		effects[n] = se
		n++
	}
	clear(effects[n:])
	c.SetEffects(effects[:n])
	return expired
}
