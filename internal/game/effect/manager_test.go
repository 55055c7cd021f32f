package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/model"
)

func newTarget(t *testing.T, hp, armor, mr float64) *model.Combatant {
	t.Helper()
	tmpl := data.TestChampion("Dummy", data.ClassTank, hp, 50, 0, armor, mr, 300)
	return model.NewCombatant(data.TestCatalog(), tmpl, 1)
}

func TestApply_SameKindStacks(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 500, 0, 0)

	e.Apply(c, data.EffectTemplate{Kind: data.EffectBurn, Duration: 2, Value: 10}, nil)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectBurn, Duration: 3, Value: 10}, nil)

	require.Len(t, c.Effects(), 2, "same-kind effects are independent entries")
	assert.Equal(t, 2, c.Effects()[0].Remaining)
	assert.Equal(t, 3, c.Effects()[1].Remaining)
}

func TestTickEndOfTurn_DOTMitigatedByCurrentDefense(t *testing.T) {
	tests := []struct {
		name string
		kind data.EffectKind
		want int
	}{
		// magic resist 100 → 50%, armor 300 → 75%
		{"burn uses magic resist", data.EffectBurn, 50},
		{"bleed uses armor", data.EffectBleed, 25},
		{"poison is true damage", data.EffectPoison, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(1)
			c := newTarget(t, 1000, 300, 100)
			e.Apply(c, data.EffectTemplate{Kind: tt.kind, Duration: 1, Value: 100}, nil)

			ticks := e.TickEndOfTurn(c)

			require.NotEmpty(t, ticks)
			assert.Equal(t, TickDamage, ticks[0].Kind)
			assert.Equal(t, tt.want, ticks[0].Amount)
			assert.Equal(t, 1000-tt.want, c.CurrentHP())
		})
	}
}

func TestTickEndOfTurn_DOTFloor(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 100, 0, 10000)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectBurn, Duration: 1, Value: 1}, nil)

	e.TickEndOfTurn(c)

	assert.Equal(t, 99, c.CurrentHP())
}

func TestStun_CountsSkippedActions(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 100, 0, 0)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectStun, Duration: 2}, nil)

	assert.True(t, c.IsStunned())
	assert.Empty(t, e.TickEndOfTurn(c))
	assert.True(t, c.IsStunned(), "ticks alone never wear a stun off")

	e.SpendStun(c)
	e.TickEndOfTurn(c)
	assert.True(t, c.IsStunned(), "one skipped action left")

	e.SpendStun(c)
	assert.False(t, c.IsStunned())

	ticks := e.TickEndOfTurn(c)
	assert.Empty(t, c.Effects())
	require.Len(t, ticks, 1)
	assert.Equal(t, TickExpired, ticks[0].Kind)
	assert.Equal(t, data.EffectStun, ticks[0].Effect)
}

func TestStatModifier_RevertsClampedDelta(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 100, 0, 0)
	c.ModifyStage(data.StatAttackDamage, 5)

	applied := e.Apply(c, data.EffectTemplate{Kind: data.EffectStatModifier, Duration: 1, Stat: data.StatAttackDamage, Stages: 3}, nil)

	assert.Equal(t, 1, applied.Stages, "clamped to +6")
	assert.Equal(t, data.MaxStage, c.Stage(data.StatAttackDamage))

	e.TickEndOfTurn(c)
	assert.Equal(t, 5, c.Stage(data.StatAttackDamage), "only the applied delta is reverted")
}

func TestSlow_AlwaysLowersSpeed(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 100, 0, 0)

	e.Apply(c, data.EffectTemplate{Kind: data.EffectSlow, Duration: 1}, nil)

	assert.Equal(t, -1, c.Stage(data.StatMoveSpeed))
	assert.Less(t, c.Speed(), 300.0)
}

func TestShield_PersistsUntilDepletedOrExpired(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 500, 0, 0)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectShield, Duration: 3, Value: 100}, nil)

	absorbed, hpLoss := c.TakeDamage(60, nil)
	assert.Equal(t, 60, absorbed)
	assert.Equal(t, 0, hpLoss)

	e.TickEndOfTurn(c)
	assert.Equal(t, 40, c.ShieldPool(), "left-over shield carries over")

	absorbed, hpLoss = c.TakeDamage(70, nil)
	assert.Equal(t, 40, absorbed)
	assert.Equal(t, 30, hpLoss)

	e.TickEndOfTurn(c)
	assert.False(t, c.HasEffect(data.EffectShield), "depleted shield is purged")
}

func TestRegeneration_HealsUpToMax(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 200, 0, 0)
	c.SetCurrentHP(180)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectRegeneration, Duration: 2, Value: 50}, nil)

	ticks := e.TickEndOfTurn(c)

	require.Len(t, ticks, 1)
	assert.Equal(t, TickHeal, ticks[0].Kind)
	assert.Equal(t, 20, ticks[0].Amount)
	assert.Equal(t, 200, c.CurrentHP())
}

func TestCleanse_RemovesOnlyNegative(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 200, 0, 0)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectBurn, Duration: 3, Value: 10}, nil)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectStatModifier, Duration: 3, Stat: data.StatArmor, Stages: -2}, nil)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectStatModifier, Duration: 3, Stat: data.StatAttackDamage, Stages: 1}, nil)
	e.Apply(c, data.EffectTemplate{Kind: data.EffectShield, Duration: 3, Value: 30}, nil)

	applied := e.Apply(c, data.EffectTemplate{Kind: data.EffectCleanse}, nil)

	assert.False(t, applied.Stored)
	assert.Equal(t, 2, applied.Amount)
	assert.Len(t, c.Effects(), 2)
	assert.Equal(t, 0, c.Stage(data.StatArmor), "debuff reverted")
	assert.Equal(t, 1, c.Stage(data.StatAttackDamage))
}

func TestPPRestore_CappedAtMax(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 200, 0, 0)
	slot := c.Moves()[0]
	slot.PP = 7

	applied := e.Apply(c, data.EffectTemplate{Kind: data.EffectPPRestore, Value: 5}, nil)

	assert.Equal(t, 3, applied.Amount)
	assert.Equal(t, slot.Template.PP, slot.PP)
	assert.Empty(t, c.Effects())
}

func TestDOT_CreditsSourceAsAttacker(t *testing.T) {
	e := NewEngine(1)
	c := newTarget(t, 200, 0, 0)
	src := newTarget(t, 200, 0, 0)

	e.Apply(c, data.EffectTemplate{Kind: data.EffectPoison, Duration: 1, Value: 10}, src)
	e.TickEndOfTurn(c)

	assert.Same(t, src, c.LastAttacker())
}
