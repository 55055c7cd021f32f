package battle

import (
	"fmt"

	"github.com/udisondev/riftduel/internal/data"
)

// EventKind classifies a turn log entry.
type EventKind int8

const (
	EventTurnStart EventKind = iota
	EventMoveUsed
	EventMiss
	EventDamage
	EventCritical
	EventEffectApplied
	EventEffectTick
	EventEffectExpired
	EventPassiveTriggered
	EventActionSkipped
	EventActionRejected
	EventItemUsed
	EventFainted
	EventSurvived
	EventBattleOver
)

var eventKindNames = [...]string{
	"TurnStart", "MoveUsed", "Miss", "Damage", "Critical",
	"EffectApplied", "EffectTick", "EffectExpired", "PassiveTriggered",
	"ActionSkipped", "ActionRejected", "ItemUsed", "Fainted", "Survived", "BattleOver",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", k)
	}
	return eventKindNames[k]
}

// Event is one structured turn log entry. It carries names and numbers only,
// so a renderer never has to touch combatant state.
type Event struct {
	Turn   int
	Kind   EventKind
	Actor  string
	Target string
	Move   string
	Amount int
	Effect data.EffectKind
	Detail string
}

func (e Event) String() string {
	s := fmt.Sprintf("[T%d] %s", e.Turn, e.Kind)
	if e.Actor != "" {
		s += " " + e.Actor
	}
	if e.Move != "" {
		s += " " + e.Move
	}
	if e.Target != "" {
		s += " -> " + e.Target
	}
	if e.Amount != 0 {
		s += fmt.Sprintf(" (%d)", e.Amount)
	}
	if e.Detail != "" {
		s += " " + e.Detail
	}
	return s
}

func (b *Battle) emit(ev Event) {
	ev.Turn = b.turn
	b.log = append(b.log, ev)
	if b.observer != nil {
		b.observer(ev)
	}
}
