package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/riftduel/internal/config"
	"github.com/udisondev/riftduel/internal/data"
	"github.com/udisondev/riftduel/internal/game/combat"
	"github.com/udisondev/riftduel/internal/game/effect"
	"github.com/udisondev/riftduel/internal/game/roll"
	"github.com/udisondev/riftduel/internal/model"
)

func newResolver(src roll.Source) *Resolver {
	rules := config.DefaultBattle()
	fx := effect.NewEngine(rules.DamageFloor)
	return NewResolver(rules, src, combat.NewCalculator(rules, src), fx)
}

func build(t *testing.T, tmpl *data.ChampionTemplate, items ...*data.ItemTemplate) *model.Combatant {
	t.Helper()
	return model.NewCombatant(data.TestCatalog(), tmpl, 1, items...)
}

func mage(moves ...data.MoveTemplate) *data.ChampionTemplate {
	tmpl := data.TestChampion("Mage", data.ClassMage, 500, 10, 100, 10, 10, 330)
	tmpl.Resource = data.ResourceTemplate{Kind: data.ResourceMana, Max: 100, Regen: 10}
	tmpl.Moves = moves
	return tmpl
}

func dummy() *data.ChampionTemplate {
	return data.TestChampion("Dummy", data.ClassTank, 1000, 10, 0, 0, 0, 300)
}

func TestUseMove_HitDealsDamageAndSpends(t *testing.T) {
	bolt := data.TestMove("Bolt", data.DamageMagic, 50, 0, 0.5)
	bolt.Cost = 30
	a := build(t, mage(bolt))
	d := build(t, dummy())

	out, err := newResolver(roll.NewFixed(0, 99)).UseMove(a, a.Moves()[0], d)

	require.NoError(t, err)
	assert.True(t, out.Hit)
	assert.True(t, out.Dealt)
	assert.Equal(t, 100, out.Damage.Final)
	assert.Equal(t, 900, d.CurrentHP())
	assert.Equal(t, 9, a.Moves()[0].PP)
	assert.Equal(t, 70, a.Resource().Current)
}

func TestUseMove_MissStillCostsPP(t *testing.T) {
	bolt := data.TestMove("Bolt", data.DamageMagic, 50, 0, 0)
	bolt.Accuracy = 50
	a := build(t, mage(bolt))
	d := build(t, dummy())

	out, err := newResolver(roll.NewFixed(50)).UseMove(a, a.Moves()[0], d)

	require.NoError(t, err)
	assert.False(t, out.Hit)
	assert.False(t, out.ForcedMiss)
	assert.Equal(t, 9, a.Moves()[0].PP)
	assert.Equal(t, 1000, d.CurrentHP())
}

func TestUseMove_ForcedMissDoesNotRoll(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx *effect.Engine, a, d *model.Combatant)
	}{
		{"attacker blinded", func(fx *effect.Engine, a, _ *model.Combatant) {
			fx.Apply(a, data.EffectTemplate{Kind: data.EffectBlind, Duration: 1}, nil)
		}},
		{"defender stealthed", func(fx *effect.Engine, _, d *model.Combatant) {
			fx.Apply(d, data.EffectTemplate{Kind: data.EffectStealth, Duration: 1}, nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bolt := data.TestMove("Bolt", data.DamageMagic, 50, 0, 0)
			bolt.Accuracy = 90
			a := build(t, mage(bolt))
			d := build(t, dummy())
			tt.setup(effect.NewEngine(1), a, d)
			src := roll.NewFixed(0)

			out, err := newResolver(src).UseMove(a, a.Moves()[0], d)

			require.NoError(t, err)
			assert.True(t, out.ForcedMiss)
			assert.False(t, out.Hit)
			assert.Zero(t, src.Calls())
			assert.Equal(t, 9, a.Moves()[0].PP)
		})
	}
}

func TestUseMove_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(a *model.Combatant) *model.MoveSlot
		want  error
	}{
		{"out of PP", func(a *model.Combatant) *model.MoveSlot {
			a.Moves()[0].PP = 0
			return a.Moves()[0]
		}, ErrOutOfPP},
		{"ultimate on cooldown", func(a *model.Combatant) *model.MoveSlot {
			a.StartUltimateCooldown(2)
			return a.Ultimate()
		}, ErrUltimateOnCooldown},
		{"insufficient resource", func(a *model.Combatant) *model.MoveSlot {
			a.Spend(90)
			return a.Moves()[0]
		}, ErrInsufficientResource},
		{"unknown slot", func(a *model.Combatant) *model.MoveSlot {
			return a.Slot(7)
		}, ErrUnknownMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bolt := data.TestMove("Bolt", data.DamageMagic, 50, 0, 0)
			bolt.Cost = 20
			ult := data.TestMove("Final Spark", data.DamageMagic, 300, 0, 1)
			ult.IsUltimate = true
			ult.PP = 1
			tmpl := mage(bolt)
			tmpl.Ultimate = &ult
			a := build(t, tmpl)
			d := build(t, dummy())
			slot := tt.setup(a)

			var ppBefore int
			if slot != nil {
				ppBefore = slot.PP
			}
			resBefore := a.Resource().Current
			cdBefore := a.UltimateCooldown()
			src := roll.NewFixed(0)

			_, err := newResolver(src).UseMove(a, slot, d)

			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidAction)
			if slot != nil {
				assert.Equal(t, ppBefore, slot.PP)
			}
			assert.Equal(t, resBefore, a.Resource().Current)
			assert.Equal(t, cdBefore, a.UltimateCooldown())
			assert.Equal(t, 1000, d.CurrentHP())
			assert.Zero(t, src.Calls())
		})
	}
}

func TestUseMove_UltimateStartsCooldownOnMiss(t *testing.T) {
	ult := data.TestMove("Final Spark", data.DamageMagic, 300, 0, 1)
	ult.IsUltimate = true
	ult.Accuracy = 0
	tmpl := mage(data.TestMove("Bolt", data.DamageMagic, 50, 0, 0))
	tmpl.Ultimate = &ult
	a := build(t, tmpl)
	d := build(t, dummy())

	out, err := newResolver(roll.NewFixed(0)).UseMove(a, a.Ultimate(), d)

	require.NoError(t, err)
	assert.False(t, out.Hit)
	assert.Equal(t, config.DefaultBattle().UltimateCooldown, a.UltimateCooldown())
	assert.False(t, a.CanUse(a.Ultimate()))
}

func TestUseMove_EffectPayloadsRollIndependently(t *testing.T) {
	move := data.TestMove("Flame", data.DamageMagic, 10, 0, 0)
	move.Effects = []data.EffectPayload{
		{Effect: data.EffectTemplate{Kind: data.EffectBurn, Duration: 2, Value: 5}, Chance: 50},
		{Effect: data.EffectTemplate{Kind: data.EffectStun, Duration: 1}, Chance: 50},
		{Effect: data.EffectTemplate{Kind: data.EffectShield, Duration: 2, Value: 40}, Chance: 100, Target: data.TargetSelf},
	}
	a := build(t, mage(move))
	d := build(t, dummy())

	// accuracy always hits without a roll; crit chance 0; burn rolls 10, stun rolls 70
	out, err := newResolver(roll.NewFixed(10, 70)).UseMove(a, a.Moves()[0], d)

	require.NoError(t, err)
	require.Len(t, out.Effects, 2)
	assert.Equal(t, data.EffectBurn, out.Effects[0].Kind)
	assert.Same(t, d, out.Effects[0].Target)
	assert.Equal(t, data.EffectShield, out.Effects[1].Kind)
	assert.Same(t, a, out.Effects[1].Target)
	assert.False(t, d.IsStunned())
	assert.Equal(t, 40, a.ShieldPool())
}

func TestUseMove_HealthCost(t *testing.T) {
	cleaver := data.TestMove("Cleaver", data.DamagePhysical, 20, 0, 0)
	cleaver.Cost = 50
	tmpl := data.TestChampion("Mundo", data.ClassTank, 100, 10, 0, 0, 0, 300)
	tmpl.Resource = data.ResourceTemplate{Kind: data.ResourceHealthCost}
	tmpl.Moves = []data.MoveTemplate{cleaver}
	a := build(t, tmpl)
	d := build(t, dummy())
	r := newResolver(roll.NewFixed(0))

	_, err := r.UseMove(a, a.Moves()[0], d)
	require.NoError(t, err)
	assert.Equal(t, 50, a.CurrentHP())

	_, err = r.UseMove(a, a.Moves()[0], d)
	require.ErrorIs(t, err, ErrInsufficientResource, "can't pay with the last HP point")
	assert.Equal(t, 50, a.CurrentHP())
}

func TestUseItem(t *testing.T) {
	potion := &data.ItemTemplate{
		Name:    "Health Potion",
		OnUse:   &data.EffectTemplate{Kind: data.EffectRegeneration, Duration: 3, Value: 40},
		Charges: 1,
	}
	u := build(t, dummy(), potion)
	r := newResolver(roll.NewFixed(0))
	item := u.Items()[0]

	applied, err := r.UseItem(u, item)
	require.NoError(t, err)
	assert.True(t, applied.Stored)
	assert.Zero(t, item.Charges)
	assert.True(t, u.HasEffect(data.EffectRegeneration))

	_, err = r.UseItem(u, item)
	require.ErrorIs(t, err, ErrNoItemCharges)
	assert.ErrorIs(t, err, ErrInvalidAction)
}
