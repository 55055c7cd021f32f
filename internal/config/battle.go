package config

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// LevelGapTier boosts damage when the attacker out-levels the defender by at least Gap.
type LevelGapTier struct {
	Gap        int     `yaml:"gap"`
	Multiplier float64 `yaml:"multiplier"`
}

// Battle holds the engine tunables.
type Battle struct {
	// DamageFloor is the minimum damage of a hit whose raw damage is positive.
	DamageFloor int `yaml:"damage_floor"`

	CritMultiplier   float64 `yaml:"crit_multiplier"`
	UltimateCooldown int     `yaml:"ultimate_cooldown"` // turns

	// LevelGapTiers are checked from the largest gap down; first match wins.
	LevelGapTiers []LevelGapTier `yaml:"level_gap_tiers"`

	// ConfusionFailChance is the percent chance a confused combatant loses its action.
	ConfusionFailChance float64 `yaml:"confusion_fail_chance"`

	// MaxTurns ends a battle as a draw (0 = unlimited).
	MaxTurns int `yaml:"max_turns"`
}

// DefaultBattle returns Battle rules with the standard balance values.
func DefaultBattle() Battle {
	return Battle{
		DamageFloor:      1,
		CritMultiplier:   2.0,
		UltimateCooldown: 4,
		LevelGapTiers: []LevelGapTier{
			{Gap: 20, Multiplier: 1.5},
			{Gap: 15, Multiplier: 1.3},
			{Gap: 10, Multiplier: 1.2},
		},
		ConfusionFailChance: 50,
		MaxTurns:            200,
	}
}

// LevelGapMultiplier returns the damage multiplier for attacker−defender level gap.
// Lower-level attackers get no penalty.
func (b Battle) LevelGapMultiplier(gap int) float64 {
	if gap <= 0 {
		return 1.0
	}
	for _, tier := range b.LevelGapTiers {
		if gap >= tier.Gap {
			return tier.Multiplier
		}
	}
	return 1.0
}

// Normalize sorts a private copy of the tiers by descending gap and replaces
// nonsensical values with defaults.
func (b *Battle) Normalize() {
	def := DefaultBattle()
	if b.DamageFloor < 0 {
		b.DamageFloor = def.DamageFloor
	}
	if b.CritMultiplier < 1 {
		b.CritMultiplier = def.CritMultiplier
	}
	if b.UltimateCooldown < 0 {
		b.UltimateCooldown = def.UltimateCooldown
	}
	if b.MaxTurns < 0 {
		b.MaxTurns = 0
	}
	b.LevelGapTiers = slices.Clone(b.LevelGapTiers)
	sort.SliceStable(b.LevelGapTiers, func(i, j int) bool {
		return b.LevelGapTiers[i].Gap > b.LevelGapTiers[j].Gap
	})
}

// LoadBattle loads battle rules from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattle(path string) (Battle, error) {
	cfg := DefaultBattle()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}
