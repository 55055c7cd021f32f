package model

import "github.com/udisondev/riftduel/internal/data"

// MoveSlot is a learned move with its own PP counter.
type MoveSlot struct {
	Template data.MoveTemplate
	PP       int
}

func newMoveSlot(t data.MoveTemplate) *MoveSlot {
	return &MoveSlot{Template: t, PP: t.PP}
}

// Name returns the move name.
func (s *MoveSlot) Name() string { return s.Template.Name }

// IsUltimate reports whether the slot holds the ultimate.
func (s *MoveSlot) IsUltimate() bool { return s.Template.IsUltimate }

// RestorePP adds PP up to the template maximum. Returns PP restored.
func (s *MoveSlot) RestorePP(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := s.PP
	s.PP = min(s.Template.PP, s.PP+amount)
	return s.PP - before
}

// CanUse reports move usability for a combatant:
// PP > 0, ultimate off cooldown, resource affordable.
func (c *Combatant) CanUse(s *MoveSlot) bool {
	if s == nil || s.PP <= 0 {
		return false
	}
	if s.IsUltimate() && c.ultimateCooldown > 0 {
		return false
	}
	return c.CanAfford(s.Template.Cost)
}

// UsableSlots returns all slots that pass CanUse.
func (c *Combatant) UsableSlots() []*MoveSlot {
	var out []*MoveSlot
	for _, s := range c.AllSlots() {
		if c.CanUse(s) {
			out = append(out, s)
		}
	}
	return out
}
