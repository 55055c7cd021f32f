package passive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/game/effect"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/model"
)

func withPassive(t *testing.T, p *data.PassiveTemplate) *model.Combatant {
	t.Helper()
	tmpl := data.TestChampion("Owner", data.ClassFighter, 1000, 50, 0, 0, 0, 300)
	tmpl.Passive = p
	return model.NewCombatant(data.TestCatalog(), tmpl, 1)
}

func opponent(t *testing.T) *model.Combatant {
	t.Helper()
	return model.NewCombatant(data.TestCatalog(), data.TestChampion("Foe", data.ClassTank, 1000, 50, 0, 0, 0, 300), 1)
}

func newEngine(src roll.Source) *Engine {
	return NewEngine(src, effect.NewEngine(1))
}

func TestDeathDefiance_OncePerBattle(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Name: "Undying", Trigger: data.TriggerDeathDefiance, Action: data.ActionSurvive,
		Value: 10, TriggerChance: 100, MaxCooldown: data.OncePerBattle,
	})
	e := newEngine(roll.NewFixed(0))

	c.SetCurrentHP(0)
	acts := e.Dispatch(c, Event{Kind: EventLethal})
	require.Len(t, acts, 1)
	assert.Equal(t, 100, c.CurrentHP(), "10% of 1000")
	assert.True(t, c.Passives()[0].UsedThisBattle)

	c.SetCurrentHP(0)
	assert.Empty(t, e.Dispatch(c, Event{Kind: EventLethal}), "spent for the rest of the battle")
	assert.Zero(t, c.CurrentHP())
}

func TestSurvive_AtLeastOneHP(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerDeathDefiance, Action: data.ActionSurvive, TriggerChance: 100, MaxCooldown: data.OncePerBattle,
	})
	c.SetCurrentHP(0)

	newEngine(roll.NewFixed(0)).Dispatch(c, Event{Kind: EventLethal})

	assert.Equal(t, 1, c.CurrentHP())
}

func TestEveryNTurns_PeriodicGate(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerEveryNTurns, Action: data.ActionShield, N: 3, Value: 50, Value2: 2, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))

	var fired []int
	for turn := 1; turn <= 7; turn++ {
		if len(e.Dispatch(c, Event{Kind: EventTurnStart})) > 0 {
			fired = append(fired, turn)
		}
	}

	assert.Equal(t, []int{3, 6}, fired)
	assert.Positive(t, c.ShieldPool())
}

func TestEveryNAttacks_CountsAttacks(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerEveryNAttacks, Action: data.ActionRestoreResource, N: 2, Value: 10, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))

	assert.Empty(t, e.Dispatch(c, Event{Kind: EventAttack}))
	assert.Len(t, e.Dispatch(c, Event{Kind: EventAttack}), 1)
	assert.Empty(t, e.Dispatch(c, Event{Kind: EventTurnStart}), "other events don't count")
	assert.Empty(t, e.Dispatch(c, Event{Kind: EventAttack}))
}

func TestChance_ZeroAndHundred(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		fires  bool
	}{
		{"always", 100, true},
		{"never", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := withPassive(t, &data.PassiveTemplate{
				Trigger: data.TriggerStartOfTurn, Action: data.ActionHeal, Value: 10, TriggerChance: tt.chance,
			})
			src := roll.NewFixed(0)

			acts := newEngine(src).Dispatch(c, Event{Kind: EventTurnStart})

			assert.Equal(t, tt.fires, len(acts) == 1)
			assert.Zero(t, src.Calls(), "0 and 100 never roll")
		})
	}
}

func TestChance_Roll(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerStartOfTurn, Action: data.ActionStatBoost, Stat: data.StatArmor, Value: 1, TriggerChance: 30,
	})
	e := newEngine(roll.NewFixed(29, 30))

	assert.Len(t, e.Dispatch(c, Event{Kind: EventTurnStart}), 1)
	assert.Empty(t, e.Dispatch(c, Event{Kind: EventTurnStart}))
	assert.Equal(t, 1, c.Stage(data.StatArmor))
}

func TestCooldown_BlocksUntilTicked(t *testing.T) {
	foe := opponent(t)
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerOnAbilityHit, Action: data.ActionDamage, Value: 25, TriggerChance: 100, MaxCooldown: 2,
	})
	e := newEngine(roll.NewFixed(0))
	ev := Event{Kind: EventAbilityHit, Other: foe}

	require.Len(t, e.Dispatch(c, ev), 1)
	assert.Equal(t, 975, foe.CurrentHP())

	assert.Empty(t, e.Dispatch(c, ev))
	c.TickCooldowns()
	assert.Empty(t, e.Dispatch(c, ev))
	c.TickCooldowns()
	assert.Len(t, e.Dispatch(c, ev), 1)
}

func TestStackingAttack_FiresAtMaxStacks(t *testing.T) {
	foe := opponent(t)
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerStackingAttack, Action: data.ActionApplyEffect, MaxStacks: 3, TriggerChance: 100,
		Effect: &data.EffectTemplate{Kind: data.EffectBleed, Duration: 2, Value: 10},
	})
	e := newEngine(roll.NewFixed(0))
	ev := Event{Kind: EventAttack, Other: foe}

	assert.Empty(t, e.Dispatch(c, ev))
	assert.Empty(t, e.Dispatch(c, ev))
	acts := e.Dispatch(c, ev)
	require.Len(t, acts, 1)
	assert.Same(t, foe, acts[0].Target)
	require.Len(t, foe.Effects(), 1)
	assert.InDelta(t, 30, foe.Effects()[0].Value, 1e-9, "scaled by stacks")
	assert.Zero(t, c.Passives()[0].Stacks, "stacks reset after firing")
}

func TestFirstAttack_OnlyOnce(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerFirstAttack, Action: data.ActionStatBoost, Stat: data.StatAttackDamage, Value: 2, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))

	assert.Len(t, e.Dispatch(c, Event{Kind: EventAttack}), 1)
	assert.Empty(t, e.Dispatch(c, Event{Kind: EventAttack}))
	assert.Equal(t, 2, c.Stage(data.StatAttackDamage))
}

func TestRetaliation_DamagesAttacker(t *testing.T) {
	foe := opponent(t)
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerRetaliation, Action: data.ActionDamage, Value: 10, Value2: 20, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))

	acts := e.Dispatch(c, Event{Kind: EventDamaged, Other: foe, Damage: 100})

	require.Len(t, acts, 1)
	assert.Equal(t, 30, acts[0].Amount)
	assert.Equal(t, 970, foe.CurrentHP())
	assert.Same(t, c, foe.LastAttacker())

	assert.Empty(t, e.Dispatch(c, Event{Kind: EventDamaged, Other: foe}), "no damage, no retaliation")
}

func TestHPThreshold_OnlyOnCrossing(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerHPThreshold, Action: data.ActionHeal, N: 50, Value: 100, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))

	c.SetCurrentHP(400)
	assert.Len(t, e.Dispatch(c, Event{Kind: EventDamaged, Damage: 200, HPBefore: 60}), 1)
	assert.Equal(t, 500, c.CurrentHP())

	c.SetCurrentHP(300)
	assert.Empty(t, e.Dispatch(c, Event{Kind: EventDamaged, Damage: 100, HPBefore: 40}), "already below")
}

func TestOnLowHP(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerOnLowHP, Action: data.ActionHeal, N: 30, Value2: 10, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))

	c.SetCurrentHP(500)
	assert.Empty(t, e.Dispatch(c, Event{Kind: EventDamaged, Damage: 10}))

	c.SetCurrentHP(200)
	acts := e.Dispatch(c, Event{Kind: EventDamaged, Damage: 10})
	require.Len(t, acts, 1)
	assert.Equal(t, 100, acts[0].Amount)
}

func TestDispatch_IgnoresOtherEvents(t *testing.T) {
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerOnKill, Action: data.ActionStatBoost, Stat: data.StatMoveSpeed, Value: 2, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))

	assert.Empty(t, e.Dispatch(c, Event{Kind: EventTurnEnd}))
	assert.Len(t, e.Dispatch(c, Event{Kind: EventKill}), 1)
	assert.Equal(t, 2, c.Stage(data.StatMoveSpeed))
}

func TestDispatch_ZeroHPOnlyAnswersLethal(t *testing.T) {
	foe := opponent(t)
	c := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerRetaliation, Action: data.ActionDamage, Value: 300, TriggerChance: 100,
	})
	e := newEngine(roll.NewFixed(0))
	c.SetCurrentHP(0)

	assert.Empty(t, e.Dispatch(c, Event{Kind: EventDamaged, Other: foe, Damage: 500}))
	assert.Equal(t, 1000, foe.CurrentHP())

	undying := withPassive(t, &data.PassiveTemplate{
		Trigger: data.TriggerDeathDefiance, Action: data.ActionSurvive, Value: 10,
		TriggerChance: 100, MaxCooldown: data.OncePerBattle,
	})
	undying.SetCurrentHP(0)
	assert.Len(t, e.Dispatch(undying, Event{Kind: EventLethal, Other: foe}), 1)
	assert.Equal(t, 100, undying.CurrentHP())
}
