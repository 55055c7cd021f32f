package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/riftduel/internal/data"
)

func newTestCombatant(t *testing.T, hp float64, res data.ResourceTemplate) *Combatant {
	t.Helper()
	tmpl := data.TestChampion("Test", data.ClassFighter, hp, 50, 30, 20, 20, 330)
	tmpl.Resource = res
	return NewCombatant(data.TestCatalog(), tmpl, 1)
}

func TestEffectiveStat_Order(t *testing.T) {
	tmpl := data.TestChampion("Grower", data.ClassFighter, 100, 50, 0, 0, 0, 300)
	tmpl.Growth[data.StatHealth] = 0.1
	c := NewCombatant(data.TestCatalog(), tmpl, 11, &data.ItemTemplate{
		Name:    "Band",
		Flat:    map[data.StatKind]float64{data.StatHealth: 50},
		Percent: map[data.StatKind]float64{data.StatHealth: 0.1},
	})

	assert.InDelta(t, 200, c.BaseStatAtLevel(data.StatHealth), 1e-9)
	assert.InDelta(t, 275, c.EffectiveStat(data.StatHealth), 1e-9)

	c.ModifyStage(data.StatHealth, 2)
	assert.InDelta(t, 550, c.EffectiveStat(data.StatHealth), 1e-9)
	assert.InDelta(t, 200, c.BaseStatAtLevel(data.StatHealth), 1e-9, "stages never touch base")
}

func TestEffectiveStat_MonotonicInLevel(t *testing.T) {
	cat := data.DefaultCatalog()
	tmpl, err := cat.Champion("Malphite")
	require.NoError(t, err)
	c := NewCombatant(cat, tmpl, 1)

	for s := range data.NumStats {
		kind := data.StatKind(s)
		prev := c.EffectiveStat(kind)
		for lvl := 2; lvl <= data.MaxLevel; lvl++ {
			c.SetLevel(lvl)
			cur := c.EffectiveStat(kind)
			assert.GreaterOrEqual(t, cur, prev, "%s level %d", kind, lvl)
			prev = cur
		}
		c.SetLevel(1)
	}
}

func TestSetLevel_ClampsHP(t *testing.T) {
	tmpl := data.TestChampion("Grower", data.ClassFighter, 100, 50, 0, 0, 0, 300)
	tmpl.Growth[data.StatHealth] = 0.1
	c := NewCombatant(data.TestCatalog(), tmpl, 11)
	require.Equal(t, 200, c.CurrentHP())

	c.SetLevel(1)
	assert.Equal(t, 100, c.CurrentHP())

	c.SetLevel(500)
	assert.Equal(t, data.MaxLevel, c.Level())
}

func TestModifyStage_Clamp(t *testing.T) {
	c := newTestCombatant(t, 1000, data.ResourceTemplate{})

	assert.Equal(t, 4, c.ModifyStage(data.StatArmor, 4))
	assert.Equal(t, 2, c.ModifyStage(data.StatArmor, 4))
	assert.Equal(t, data.MaxStage, c.Stage(data.StatArmor))
	assert.Equal(t, -12, c.ModifyStage(data.StatArmor, -20))
	assert.Equal(t, data.MinStage, c.Stage(data.StatArmor))

	c.ModifyStage(data.StatHealth, -2)
	assert.Equal(t, 500, c.MaxHP())
	assert.Equal(t, 500, c.CurrentHP())
}

func TestEffectiveStat_StrictlyIncreasingInStage(t *testing.T) {
	c := newTestCombatant(t, 1000, data.ResourceTemplate{})
	c.ModifyStage(data.StatArmor, data.MinStage)

	prev := c.EffectiveStat(data.StatArmor)
	require.Positive(t, prev)
	for stage := data.MinStage + 1; stage <= data.MaxStage; stage++ {
		require.Equal(t, 1, c.ModifyStage(data.StatArmor, 1))
		cur := c.EffectiveStat(data.StatArmor)
		assert.Greater(t, cur, prev, "stage %d", stage)
		prev = cur
	}
}

func TestMitigation(t *testing.T) {
	assert.Zero(t, Mitigation(0, 0))
	assert.Zero(t, Mitigation(30, 50), "penetration never makes defense negative")
	assert.InDelta(t, 0.5, Mitigation(100, 0), 1e-9)
	assert.InDelta(t, 0.5, Mitigation(150, 50), 1e-9)
	assert.Less(t, Mitigation(1e9, 0), 1.0)
}

func TestPenetration_MarksmanPerLevel(t *testing.T) {
	cat := data.NewCatalog()
	tmpl := data.TestChampion("Adc", data.ClassMarksman, 500, 60, 0, 20, 20, 325)
	tmpl.ArmorPen = 5
	c := NewCombatant(cat, tmpl, 10, &data.ItemTemplate{Name: "Whisper", ArmorPen: 15})

	want := 5 + 15 + 10*cat.Classes[data.ClassMarksman].ArmorPenPerLevel
	assert.InDelta(t, want, c.Penetration(data.DamagePhysical), 1e-9)
	assert.Zero(t, c.Penetration(data.DamageTrue))
}

func TestTakeDamage_ShieldsInOrder(t *testing.T) {
	c := newTestCombatant(t, 1000, data.ResourceTemplate{})
	attacker := newTestCombatant(t, 1000, data.ResourceTemplate{})
	first := &StatusEffect{Kind: data.EffectShield, Remaining: 2, Pool: 30}
	second := &StatusEffect{Kind: data.EffectShield, Remaining: 2, Pool: 20}
	c.AddEffect(first)
	c.AddEffect(second)

	absorbed, lost := c.TakeDamage(40, attacker)
	assert.Equal(t, 40, absorbed)
	assert.Zero(t, lost)
	assert.Zero(t, first.Pool)
	assert.Equal(t, 10, second.Pool)
	assert.Same(t, attacker, c.LastAttacker())

	absorbed, lost = c.TakeDamage(100, attacker)
	assert.Equal(t, 10, absorbed)
	assert.Equal(t, 90, lost)
	assert.Equal(t, 910, c.CurrentHP())

	_, lost = c.TakeDamage(5000, attacker)
	assert.Equal(t, 910, lost)
	assert.Zero(t, c.CurrentHP())
	assert.False(t, c.IsStanding())
}

func TestHeal(t *testing.T) {
	c := newTestCombatant(t, 1000, data.ResourceTemplate{})
	c.SetCurrentHP(950)

	assert.Equal(t, 50, c.Heal(80))
	assert.Equal(t, 1000, c.CurrentHP())

	c.Faint()
	assert.Zero(t, c.Heal(100), "fainted cannot heal")
}

func TestResource_Consumable(t *testing.T) {
	c := newTestCombatant(t, 1000, data.ResourceTemplate{Kind: data.ResourceMana, Max: 100, Regen: 30})
	require.Equal(t, 100, c.Resource().Current)

	assert.False(t, c.Spend(120))
	assert.Equal(t, 100, c.Resource().Current)

	assert.True(t, c.Spend(70))
	assert.Equal(t, 30, c.Resource().Current)

	assert.Equal(t, 30, c.RegenTurn())
	assert.Equal(t, 30, c.RegenTurn())
	assert.Equal(t, 10, c.RegenTurn())
	assert.Equal(t, 100, c.Resource().Current)
	assert.Zero(t, c.GainResource(10), "mana does not build up")
}

func TestResource_BuildUp(t *testing.T) {
	c := newTestCombatant(t, 1000, data.ResourceTemplate{Kind: data.ResourceRage, Max: 100, Regen: 10})
	require.Zero(t, c.Resource().Current)

	assert.Zero(t, c.RegenTurn())
	assert.Equal(t, 30, c.GainResource(30))
	assert.Equal(t, 70, c.GainResource(90))
	assert.Equal(t, 100, c.Resource().Current)

	c.ResetForBattle()
	assert.Zero(t, c.Resource().Current)
}

func TestResource_HealthCost(t *testing.T) {
	c := newTestCombatant(t, 100, data.ResourceTemplate{Kind: data.ResourceHealthCost})

	assert.False(t, c.CanAfford(100), "cannot pay with the last HP point")
	assert.True(t, c.Spend(40))
	assert.Equal(t, 60, c.CurrentHP())
	assert.Zero(t, c.RestoreResource(50))
}

func TestCanUse(t *testing.T) {
	ult := data.TestMove("Ult", data.DamagePhysical, 100, 0, 0)
	ult.IsUltimate = true
	ult.Cost = 50
	tmpl := data.TestChampion("Test", data.ClassFighter, 1000, 50, 0, 0, 0, 330)
	tmpl.Ultimate = &ult
	tmpl.Resource = data.ResourceTemplate{Kind: data.ResourceMana, Max: 100}
	c := NewCombatant(data.TestCatalog(), tmpl, 1)

	require.Same(t, c.Ultimate(), c.Slot(len(c.Moves())))
	assert.Nil(t, c.Slot(7))
	assert.Len(t, c.UsableSlots(), 2)

	c.StartUltimateCooldown(2)
	assert.False(t, c.CanUse(c.Ultimate()))
	c.TickCooldowns()
	c.TickCooldowns()
	assert.True(t, c.CanUse(c.Ultimate()))

	c.Moves()[0].PP = 0
	assert.False(t, c.CanUse(c.Moves()[0]))
	assert.Equal(t, 3, c.Moves()[0].RestorePP(3))
	assert.Equal(t, c.Moves()[0].Template.PP-3, c.Moves()[0].RestorePP(100))
}

func TestResetForBattle(t *testing.T) {
	potion := &data.ItemTemplate{Name: "Potion", OnUse: &data.EffectTemplate{Kind: data.EffectRegeneration, Duration: 1, Value: 1}, Charges: 2}
	c := NewCombatant(data.TestCatalog(), data.TestChampion("Test", data.ClassFighter, 1000, 50, 0, 0, 0, 330), 1, potion)

	c.SetCurrentHP(10)
	c.ModifyStage(data.StatArmor, 3)
	c.AddEffect(&StatusEffect{Kind: data.EffectStun, Remaining: 2})
	c.Moves()[0].PP = 1
	c.Items()[0].Charges = 0
	c.StartUltimateCooldown(4)
	c.Faint()

	c.ResetForBattle()

	assert.Equal(t, 1000, c.CurrentHP())
	assert.False(t, c.IsFainted())
	assert.Zero(t, c.Stage(data.StatArmor))
	assert.Empty(t, c.Effects())
	assert.Equal(t, c.Moves()[0].Template.PP, c.Moves()[0].PP)
	assert.Equal(t, 2, c.Items()[0].Charges)
	assert.Zero(t, c.UltimateCooldown())
}

func TestNewCombatant_DoesNotAliasTemplate(t *testing.T) {
	tmpl := data.TestChampion("Test", data.ClassFighter, 1000, 50, 0, 0, 0, 330)
	c := NewCombatant(data.TestCatalog(), tmpl, 1)

	c.Moves()[0].Template.Name = "Changed"
	assert.Equal(t, "Strike", tmpl.Moves[0].Name)
}
