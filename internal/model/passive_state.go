package model

import "github.com/udisondev/riftduel/internal/data"

// PassiveState is the mutable per-battle state of one passive.
type PassiveState struct {
	Template *data.PassiveTemplate

	Cooldown       int
	Stacks         int
	UsedThisBattle bool

	// TurnCounter counts turns since battle start (EVERY_N_TURNS, STACKING_TURN).
	TurnCounter int
	// AttackCounter counts attacks since battle start (EVERY_N_ATTACKS, FIRST_ATTACK).
	AttackCounter int
}

// NewPassiveState creates battle-start state for a passive template.
func NewPassiveState(t *data.PassiveTemplate) *PassiveState {
	return &PassiveState{Template: t}
}

// OnCooldown reports whether the passive is still recharging.
func (p *PassiveState) OnCooldown() bool { return p.Cooldown > 0 }

// Spent reports whether a once-per-battle passive has already fired.
func (p *PassiveState) Spent() bool {
	return p.Template.IsOncePerBattle() && p.UsedThisBattle
}

// TickCooldown decrements the cooldown by one turn.
func (p *PassiveState) TickCooldown() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
}

// Reset restores battle-start defaults.
func (p *PassiveState) Reset() {
	p.Cooldown = 0
	p.Stacks = 0
	p.UsedThisBattle = false
	p.TurnCounter = 0
	p.AttackCounter = 0
}
