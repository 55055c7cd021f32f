package data

// EffectTemplate describes a status effect payload.
// Value semantics depend on Kind:
//   - StatModifier/Slow: Stages on Stat (Slow always targets move speed)
//   - Burn/Poison/Bleed: Value damage per turn
//   - Shield: Value absorption pool
//   - DamageReduction: Value percent (0-100)
//   - Regeneration: Value heal per turn
//   - PPRestore: Value PP restored to every move
type EffectTemplate struct {
	Kind     EffectKind
	Duration int
	Value    float64
	Stat     StatKind
	Stages   int
}

// EffectPayload is an effect attached to a move, rolled independently on hit.
type EffectPayload struct {
	Effect EffectTemplate
	Chance float64 // percent, 100 = always
	Target EffectTarget
}

// MoveTemplate is an immutable move definition.
type MoveTemplate struct {
	Name       string
	DamageType DamageType
	BaseDamage float64
	ADRatio    float64
	APRatio    float64
	Accuracy   float64 // percent
	PP         int
	Cost       int
	IsUltimate bool
	Effects    []EffectPayload
}

// DealsDamage reports whether the move goes through the damage calculator.
func (m *MoveTemplate) DealsDamage() bool {
	return m.BaseDamage > 0 || m.ADRatio > 0 || m.APRatio > 0
}

// PassiveTemplate is an immutable passive definition.
type PassiveTemplate struct {
	Name    string
	Trigger Trigger
	Action  PassiveAction

	Value  float64
	Value2 float64

	// N is the period for EVERY_N_* triggers and the HP percent for
	// ON_LOW_HP / HP_THRESHOLD.
	N int

	TriggerChance float64 // percent
	MaxCooldown   int     // turns; OncePerBattle (-1) for death-defiance style passives
	MaxStacks     int

	Stat   StatKind        // ActionStatBoost
	Effect *EffectTemplate // ActionApplyEffect
	Target EffectTarget
}

// IsOncePerBattle reports whether the passive uses the -1 cooldown sentinel.
func (p *PassiveTemplate) IsOncePerBattle() bool {
	return p.MaxCooldown == OncePerBattle
}

// ResourceTemplate describes the champion's resource pool.
type ResourceTemplate struct {
	Kind          ResourceKind
	Max           int
	Regen         int
	GainOnAttack  int
	GainOnDamaged int
}

// ChampionTemplate is immutable catalog data for one champion.
// Combatants copy what they need; the template itself is never mutated.
type ChampionTemplate struct {
	Name     string
	Class    Class
	Base     [NumStats]float64 // level 1 values
	Growth   map[StatKind]float64
	Resource ResourceTemplate
	Moves    []MoveTemplate // up to MaxRegularMoves
	Ultimate *MoveTemplate
	Passive  *PassiveTemplate

	ArmorPen   float64
	MagicPen   float64
	CritChance float64 // percent, added to class base
}

// ItemTemplate is immutable catalog data for one item.
type ItemTemplate struct {
	Name       string
	Flat       map[StatKind]float64
	Percent    map[StatKind]float64 // 0.1 = +10%
	CritChance float64
	ArmorPen   float64
	MagicPen   float64
	Passive    *PassiveTemplate
	OnUse      *EffectTemplate
	Charges    int
}

// Clone returns a deep copy so combatants never alias catalog slices and maps.
func (t *ChampionTemplate) Clone() *ChampionTemplate {
	c := *t
	if t.Growth != nil {
		c.Growth = make(map[StatKind]float64, len(t.Growth))
		for k, v := range t.Growth {
			c.Growth[k] = v
		}
	}
	c.Moves = make([]MoveTemplate, len(t.Moves))
	for i := range t.Moves {
		c.Moves[i] = t.Moves[i].clone()
	}
	if t.Ultimate != nil {
		u := t.Ultimate.clone()
		c.Ultimate = &u
	}
	if t.Passive != nil {
		c.Passive = t.Passive.Clone()
	}
	return &c
}

// Clone returns a deep copy of the item template.
func (t *ItemTemplate) Clone() *ItemTemplate {
	c := *t
	c.Flat = cloneStatMap(t.Flat)
	c.Percent = cloneStatMap(t.Percent)
	if t.Passive != nil {
		c.Passive = t.Passive.Clone()
	}
	if t.OnUse != nil {
		e := *t.OnUse
		c.OnUse = &e
	}
	return &c
}

// Clone returns a deep copy of the passive template.
func (p *PassiveTemplate) Clone() *PassiveTemplate {
	c := *p
	if p.Effect != nil {
		e := *p.Effect
		c.Effect = &e
	}
	return &c
}

func (m MoveTemplate) clone() MoveTemplate {
	m.Effects = append([]EffectPayload(nil), m.Effects...)
	return m
}

func cloneStatMap(m map[StatKind]float64) map[StatKind]float64 {
	if m == nil {
		return nil
	}
	c := make(map[StatKind]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
