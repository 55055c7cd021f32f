package data

import "fmt"

// Class is the champion archetype. Drives default growth rates and a few
// class-specific perks (Marksman armor penetration).
type Class int8

const (
	ClassTank Class = iota
	ClassFighter
	ClassAssassin
	ClassMage
	ClassSupport
	ClassMarksman
)

var classNames = [...]string{"Tank", "Fighter", "Assassin", "Mage", "Support", "Marksman"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", c)
	}
	return classNames[c]
}

// ParseClass resolves a class tag from catalog data.
func ParseClass(s string) (Class, error) {
	for i, name := range classNames {
		if name == s {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", s)
}

// StatKind identifies one of the six scalable stats.
type StatKind int8

const (
	StatHealth StatKind = iota
	StatAttackDamage
	StatAbilityPower
	StatArmor
	StatMagicResist
	StatMoveSpeed

	NumStats = 6
)

var statNames = [NumStats]string{"health", "attackDamage", "abilityPower", "armor", "magicResist", "moveSpeed"}

func (s StatKind) String() string {
	if s < 0 || int(s) >= NumStats {
		return fmt.Sprintf("Stat(%d)", s)
	}
	return statNames[s]
}

// ParseStat resolves a stat name from catalog data.
func ParseStat(s string) (StatKind, error) {
	for i, name := range statNames {
		if name == s {
			return StatKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", s)
}

// DamageType selects the defense stat used for mitigation.
type DamageType int8

const (
	DamagePhysical DamageType = iota // mitigated by armor
	DamageMagic                      // mitigated by magic resist
	DamageTrue                       // ignores mitigation
)

var damageTypeNames = [...]string{"Physical", "Magic", "True"}

func (d DamageType) String() string {
	if d < 0 || int(d) >= len(damageTypeNames) {
		return fmt.Sprintf("DamageType(%d)", d)
	}
	return damageTypeNames[d]
}

// ParseDamageType resolves a damage type tag from catalog data.
func ParseDamageType(s string) (DamageType, error) {
	for i, name := range damageTypeNames {
		if name == s {
			return DamageType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown damage type %q", s)
}

// ResourceKind is the champion's ability resource.
type ResourceKind int8

const (
	ResourceNone ResourceKind = iota
	ResourceMana
	ResourceEnergy
	ResourceRage
	ResourceFury
	ResourceFlow
	ResourceHeat
	ResourceBloodwell
	ResourceFerocity
	ResourceHealthCost
)

var resourceNames = [...]string{"None", "Mana", "Energy", "Rage", "Fury", "Flow", "Heat", "Bloodwell", "Ferocity", "HealthCost"}

func (r ResourceKind) String() string {
	if r < 0 || int(r) >= len(resourceNames) {
		return fmt.Sprintf("Resource(%d)", r)
	}
	return resourceNames[r]
}

// IsConsumable reports whether the resource drains on use and regenerates
// every turn. Build-up kinds start empty and only grow from combat actions.
func (r ResourceKind) IsConsumable() bool {
	return r == ResourceMana || r == ResourceEnergy
}

// IsBuildUp reports whether the resource climbs toward its cap from combat.
func (r ResourceKind) IsBuildUp() bool {
	switch r {
	case ResourceRage, ResourceFury, ResourceFlow, ResourceHeat, ResourceBloodwell, ResourceFerocity:
		return true
	}
	return false
}

// EffectKind is the closed set of status effects.
type EffectKind int8

const (
	EffectStatModifier EffectKind = iota // stage delta on Stat
	EffectBurn                           // magic DOT
	EffectPoison                         // true DOT
	EffectBleed                          // physical DOT
	EffectStun
	EffectSlow // negative speed stages
	EffectBlind
	EffectConfusion
	EffectShield
	EffectDamageReduction
	EffectStealth
	EffectRegeneration
	EffectCleanse
	EffectPPRestore
)

var effectNames = [...]string{
	"StatModifier", "Burn", "Poison", "Bleed", "Stun", "Slow", "Blind", "Confusion",
	"Shield", "DamageReduction", "Stealth", "Regeneration", "Cleanse", "PPRestore",
}

func (e EffectKind) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return fmt.Sprintf("Effect(%d)", e)
	}
	return effectNames[e]
}

// ParseEffectKind resolves an effect name from catalog data.
func ParseEffectKind(s string) (EffectKind, error) {
	for i, name := range effectNames {
		if name == s {
			return EffectKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q", s)
}

// IsInstant reports whether the effect resolves on apply and is never stored.
func (e EffectKind) IsInstant() bool {
	return e == EffectCleanse || e == EffectPPRestore
}

// IsDOT reports whether the effect deals damage every turn.
func (e EffectKind) IsDOT() bool {
	return e == EffectBurn || e == EffectPoison || e == EffectBleed
}

// DOTDamageType returns the damage type dealt by a DOT kind.
func (e EffectKind) DOTDamageType() DamageType {
	switch e {
	case EffectBurn:
		return DamageMagic
	case EffectBleed:
		return DamagePhysical
	default:
		return DamageTrue
	}
}

// Trigger is the closed set of passive trigger kinds.
type Trigger int8

const (
	TriggerOnAttack Trigger = iota
	TriggerOnDamaged
	TriggerOnLowHP
	TriggerOnKill
	TriggerOnCritical
	TriggerOnAbilityUse
	TriggerOnAbilityHit
	TriggerStartOfBattle
	TriggerStartOfTurn
	TriggerEndOfTurn
	TriggerEveryNTurns
	TriggerEveryNAttacks
	TriggerFirstAttack
	TriggerHPThreshold
	TriggerStackingAttack
	TriggerStackingTurn
	TriggerDeathDefiance
	TriggerRegeneration
	TriggerStealth
	TriggerRetaliation
)

var triggerNames = [...]string{
	"ON_ATTACK", "ON_DAMAGED", "ON_LOW_HP", "ON_KILL", "ON_CRITICAL", "ON_ABILITY_USE",
	"ON_ABILITY_HIT", "START_OF_BATTLE", "START_OF_TURN", "END_OF_TURN", "EVERY_N_TURNS",
	"EVERY_N_ATTACKS", "FIRST_ATTACK", "HP_THRESHOLD", "STACKING_ATTACK", "STACKING_TURN",
	"DEATH_DEFIANCE", "REGENERATION", "STEALTH", "RETALIATION",
}

func (t Trigger) String() string {
	if t < 0 || int(t) >= len(triggerNames) {
		return fmt.Sprintf("Trigger(%d)", t)
	}
	return triggerNames[t]
}

// ParseTrigger resolves a trigger tag from catalog data.
func ParseTrigger(s string) (Trigger, error) {
	for i, name := range triggerNames {
		if name == s {
			return Trigger(i), nil
		}
	}
	return 0, fmt.Errorf("unknown trigger %q", s)
}

// IsPeriodic reports whether the trigger is gated by counter % N.
func (t Trigger) IsPeriodic() bool {
	return t == TriggerEveryNTurns || t == TriggerEveryNAttacks
}

// IsStacking reports whether the trigger accumulates stacks.
func (t Trigger) IsStacking() bool {
	return t == TriggerStackingAttack || t == TriggerStackingTurn
}

// PassiveAction is what a passive does once triggered.
type PassiveAction int8

const (
	ActionHeal PassiveAction = iota
	ActionDamage
	ActionStatBoost
	ActionShield
	ActionApplyEffect
	ActionRestoreResource
	ActionSurvive
)

var passiveActionNames = [...]string{"Heal", "Damage", "StatBoost", "Shield", "ApplyEffect", "RestoreResource", "Survive"}

func (a PassiveAction) String() string {
	if a < 0 || int(a) >= len(passiveActionNames) {
		return fmt.Sprintf("PassiveAction(%d)", a)
	}
	return passiveActionNames[a]
}

// ParsePassiveAction resolves an action tag from catalog data.
func ParsePassiveAction(s string) (PassiveAction, error) {
	for i, name := range passiveActionNames {
		if name == s {
			return PassiveAction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown passive action %q", s)
}

// EffectTarget selects who receives a move or passive payload.
type EffectTarget int8

const (
	TargetOpponent EffectTarget = iota
	TargetSelf
)

// ParseEffectTarget resolves "self" / "opponent" (empty means opponent).
func ParseEffectTarget(s string) (EffectTarget, error) {
	switch s {
	case "", "opponent":
		return TargetOpponent, nil
	case "self":
		return TargetSelf, nil
	}
	return 0, fmt.Errorf("unknown effect target %q", s)
}

// Stage bounds and engine constants.
const (
	MinStage = -6
	MaxStage = 6

	MinLevel = 1
	MaxLevel = 100

	// OncePerBattle is the MaxCooldown sentinel for passives that fire at
	// most once until the battle is reset.
	OncePerBattle = -1

	// DefaultGrowthRate is used when neither the champion nor its class
	// defines a growth rate for a stat.
	DefaultGrowthRate = 0.05

	// MaxRegularMoves excludes the ultimate slot.
	MaxRegularMoves = 4
)
