package battle

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/udisondev/riftduel/internal/game/effect"
	"github.com/udisondev/riftduel/internal/game/passive"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/game/skill"
	"github.com/udisondev/riftduel/internal/model"
)

// planned is an action chosen during ActionSelection.
type planned struct {
	actor  *model.Combatant
	action Action
	chosen bool // false when skipped at selection (stunned)
}

// Step plays one full turn. Does nothing once the battle is over.
func (b *Battle) Step() {
	if b.IsOver() {
		return
	}
	if !b.started {
		b.start()
		if b.IsOver() {
			return
		}
	}

	b.turnStart()
	if b.faintCheck() {
		return
	}

	plan := b.selectActions()

	b.phase = PhaseActionResolution
	for _, p := range plan {
		b.resolve(p)
		if b.faintCheck() {
			return
		}
	}

	b.effectResolution()

	b.phase = PhaseFaintCheck
	if b.faintCheck() {
		return
	}

	b.phase = PhaseTurnEnd
	if b.rules.MaxTurns > 0 && b.turn >= b.rules.MaxTurns {
		b.finish(ResultDraw, "turn limit")
	}
}

// start fires START_OF_BATTLE passives once.
func (b *Battle) start() {
	b.started = true
	for _, c := range b.all {
		b.dispatch(c, passive.Event{Kind: passive.EventBattleStart, Other: b.firstOpponent(c)})
	}
	b.faintCheck()
}

// turnStart advances the turn, ticks cooldowns, regenerates resources and
// fires turn-start passives.
func (b *Battle) turnStart() {
	b.turn++
	b.phase = PhaseTurnStart
	b.emit(Event{Kind: EventTurnStart})

	for _, c := range standing(b.all) {
		c.TickCooldowns()
		c.RegenTurn()
		b.dispatch(c, passive.Event{Kind: passive.EventTurnStart, Other: b.firstOpponent(c)})
	}
}

// selectActions asks the selector for every standing combatant in turn order.
// Stunned combatants are skipped without being asked.
func (b *Battle) selectActions() []planned {
	b.phase = PhaseActionSelection
	order := b.TurnOrder()
	plan := make([]planned, 0, len(order))
	for _, c := range order {
		if c.IsStunned() {
			plan = append(plan, planned{actor: c})
			continue
		}
		plan = append(plan, planned{actor: c, action: b.selector.Select(b, c), chosen: true})
	}
	return plan
}

// resolve carries out one planned action.
func (b *Battle) resolve(p planned) {
	actor := p.actor
	if !actor.IsStanding() {
		return
	}

	// Stun can land between selection and resolution.
	if !p.chosen || actor.IsStunned() {
		b.fx.SpendStun(actor)
		b.emit(Event{Kind: EventActionSkipped, Actor: actor.Name(), Detail: "stunned"})
		return
	}
	if actor.IsConfused() && roll.Chance(b.src, b.rules.ConfusionFailChance) {
		b.emit(Event{Kind: EventActionSkipped, Actor: actor.Name(), Detail: "confused"})
		return
	}

	switch p.action.Kind {
	case ActionPass:
		b.emit(Event{Kind: EventActionSkipped, Actor: actor.Name(), Detail: "pass"})
	case ActionItem:
		b.resolveItem(actor, p.action)
	default:
		b.resolveMove(actor, p.action)
	}
}

func (b *Battle) resolveItem(actor *model.Combatant, a Action) {
	var item *model.EquippedItem
	if a.Item >= 0 && a.Item < len(actor.Items()) {
		item = actor.Items()[a.Item]
	}

	applied, err := b.resolver.UseItem(actor, item)
	if err != nil {
		b.reject(actor, "", err)
		return
	}

	b.emit(Event{Kind: EventItemUsed, Actor: actor.Name(), Move: item.Template.Name, Amount: item.Charges})
	b.emit(Event{Kind: EventEffectApplied, Actor: actor.Name(), Target: actor.Name(), Effect: applied.Kind, Amount: applied.Amount})
}

func (b *Battle) resolveMove(actor *model.Combatant, a Action) {
	slot := actor.Slot(a.Slot)

	target := a.Target
	if target == nil || !target.IsStanding() || target.Side() == actor.Side() {
		target = b.firstOpponent(actor)
	}
	if target == nil {
		return
	}

	if err := b.resolver.Validate(actor, slot); err != nil {
		b.reject(actor, slotName(slot), err)
		return
	}

	b.dispatch(actor, passive.Event{Kind: passive.EventAttack, Other: target})
	actor.GainResource(actor.Resource().GainOnAttack)

	hpBefore := target.HPPercent()
	out, err := b.resolver.UseMove(actor, slot, target)
	if err != nil {
		b.reject(actor, slotName(slot), err)
		return
	}

	b.emit(Event{Kind: EventMoveUsed, Actor: actor.Name(), Target: target.Name(), Move: out.Move, Amount: out.Cost})
	b.dispatch(actor, passive.Event{Kind: passive.EventAbilityUse, Other: target})

	if !out.Hit {
		detail := ""
		if out.ForcedMiss {
			detail = "forced"
		}
		b.emit(Event{Kind: EventMiss, Actor: actor.Name(), Target: target.Name(), Move: out.Move, Detail: detail})
		return
	}

	b.dispatch(actor, passive.Event{Kind: passive.EventAbilityHit, Other: target, Damage: out.Damage.Final})

	if out.Dealt {
		if out.Damage.IsCrit {
			b.emit(Event{Kind: EventCritical, Actor: actor.Name(), Target: target.Name(), Move: out.Move})
		}
		b.emit(Event{
			Kind:   EventDamage,
			Actor:  actor.Name(),
			Target: target.Name(),
			Move:   out.Move,
			Amount: out.Damage.HPLoss,
			Detail: absorbedDetail(out.Damage.Absorbed),
		})
		if out.Damage.IsCrit {
			b.dispatch(actor, passive.Event{Kind: passive.EventCritical, Other: target, Damage: out.Damage.Final})
		}
		if out.Damage.Final > 0 && target.CurrentHP() > 0 {
			target.GainResource(target.Resource().GainOnDamaged)
			b.dispatch(target, passive.Event{
				Kind:     passive.EventDamaged,
				Other:    actor,
				Damage:   out.Damage.Final,
				HPBefore: hpBefore,
			})
		}
	}

	for _, fx := range out.Effects {
		b.emit(Event{
			Kind:   EventEffectApplied,
			Actor:  actor.Name(),
			Target: fx.Target.Name(),
			Move:   out.Move,
			Effect: fx.Kind,
			Amount: fx.Amount,
		})
	}
}

func (b *Battle) reject(actor *model.Combatant, move string, err error) {
	detail := err.Error()
	if !errors.Is(err, skill.ErrInvalidAction) {
		slog.Warn("unexpected action error", "actor", actor.Name(), "error", err)
	}
	b.emit(Event{Kind: EventActionRejected, Actor: actor.Name(), Move: move, Detail: detail})
}

// effectResolution ticks every standing combatant's effects, then fires
// end-of-turn passives.
func (b *Battle) effectResolution() {
	b.phase = PhaseEffectResolution

	for _, c := range standing(b.all) {
		for _, t := range b.fx.TickEndOfTurn(c) {
			ev := Event{Actor: sourceName(t.Source), Target: c.Name(), Effect: t.Effect, Amount: t.Amount}
			switch t.Kind {
			case effect.TickExpired:
				ev.Kind = EventEffectExpired
			case effect.TickHeal:
				ev.Kind = EventEffectTick
				ev.Detail = "heal"
			default:
				ev.Kind = EventEffectTick
				ev.Detail = absorbedDetail(t.Absorbed)
			}
			b.emit(ev)
		}
	}

	for _, c := range standing(b.all) {
		b.dispatch(c, passive.Event{Kind: passive.EventTurnEnd, Other: b.firstOpponent(c)})
	}
}

// faintCheck removes combatants at 0 HP. The victim's DEATH_DEFIANCE gets a
// chance first; otherwise the last attacker's ON_KILL fires.
// Returns true if the battle ended.
func (b *Battle) faintCheck() bool {
	for _, c := range b.all {
		if c.IsFainted() || c.CurrentHP() > 0 {
			continue
		}

		b.dispatch(c, passive.Event{Kind: passive.EventLethal, Other: c.LastAttacker()})
		if c.CurrentHP() > 0 {
			b.emit(Event{Kind: EventSurvived, Actor: c.Name(), Amount: c.CurrentHP()})
			continue
		}

		c.Faint()
		killer := c.LastAttacker()
		b.emit(Event{Kind: EventFainted, Actor: c.Name(), Target: sourceName(killer)})
		slog.Debug("combatant fainted", "name", c.Name(), "turn", b.turn)

		if killer != nil && killer.IsStanding() {
			b.dispatch(killer, passive.Event{Kind: passive.EventKill, Other: c})
		}
	}

	aUp := len(standing(b.sides[0])) > 0
	bUp := len(standing(b.sides[1])) > 0
	switch {
	case aUp && bUp:
		return false
	case aUp:
		b.finish(ResultSideAWin, "")
	case bUp:
		b.finish(ResultSideBWin, "")
	default:
		b.finish(ResultDraw, "")
	}
	return true
}

func (b *Battle) finish(r Result, detail string) {
	b.result = r
	b.phase = PhaseBattleOver
	b.emit(Event{Kind: EventBattleOver, Detail: joinDetail(r.String(), detail)})
	slog.Debug("battle over", "result", r, "turn", b.turn)
}

// dispatch fires c's passives for ev and logs every activation.
func (b *Battle) dispatch(c *model.Combatant, ev passive.Event) {
	if c.IsFainted() {
		return
	}
	for _, act := range b.passives.Dispatch(c, ev) {
		b.emit(Event{
			Kind:   EventPassiveTriggered,
			Actor:  c.Name(),
			Target: sourceName(act.Target),
			Amount: act.Amount,
			Effect: act.Effect,
			Detail: act.Passive,
		})
	}
}

func slotName(s *model.MoveSlot) string {
	if s == nil {
		return ""
	}
	return s.Name()
}

func sourceName(c *model.Combatant) string {
	if c == nil {
		return ""
	}
	return c.Name()
}

func absorbedDetail(absorbed int) string {
	if absorbed <= 0 {
		return ""
	}
	return "absorbed " + strconv.Itoa(absorbed)
}

func joinDetail(a, b string) string {
	if b == "" {
		return a
	}
	return a + ": " + b
}
