package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML shape of a catalog file.
type catalogFile struct {
	Classes   map[string]classDef `yaml:"classes"`
	Champions []championDef       `yaml:"champions"`
	Items     []itemDef           `yaml:"items"`
}

type classDef struct {
	Growth           map[string]float64 `yaml:"growth"`
	ArmorPenPerLevel float64            `yaml:"armor_pen_per_level"`
	CritChance       float64            `yaml:"crit_chance"`
}

type championDef struct {
	Name       string             `yaml:"name"`
	Class      string             `yaml:"class"`
	Base       map[string]float64 `yaml:"base"`
	Growth     map[string]float64 `yaml:"growth"`
	Resource   resourceDef        `yaml:"resource"`
	Moves      []moveDef          `yaml:"moves"`
	Ultimate   *moveDef           `yaml:"ultimate"`
	Passive    *passiveDef        `yaml:"passive"`
	ArmorPen   float64            `yaml:"armor_pen"`
	MagicPen   float64            `yaml:"magic_pen"`
	CritChance float64            `yaml:"crit_chance"`
}

type resourceDef struct {
	Kind          string `yaml:"kind"`
	Max           int    `yaml:"max"`
	Regen         int    `yaml:"regen"`
	GainOnAttack  int    `yaml:"gain_on_attack"`
	GainOnDamaged int    `yaml:"gain_on_damaged"`
}

type moveDef struct {
	Name       string       `yaml:"name"`
	DamageType string       `yaml:"damage_type"`
	BaseDamage float64      `yaml:"base_damage"`
	ADRatio    float64      `yaml:"ad_ratio"`
	APRatio    float64      `yaml:"ap_ratio"`
	Accuracy   *float64     `yaml:"accuracy"`
	PP         int          `yaml:"pp"`
	Cost       int          `yaml:"cost"`
	Effects    []payloadDef `yaml:"effects"`
}

type effectDef struct {
	Kind     string  `yaml:"kind"`
	Duration int     `yaml:"duration"`
	Value    float64 `yaml:"value"`
	Stat     string  `yaml:"stat"`
	Stages   int     `yaml:"stages"`
}

type payloadDef struct {
	effectDef `yaml:",inline"`
	Chance    *float64 `yaml:"chance"`
	Target    string   `yaml:"target"`
}

type passiveDef struct {
	Name        string     `yaml:"name"`
	Trigger     string     `yaml:"trigger"`
	Action      string     `yaml:"action"`
	Value       float64    `yaml:"value"`
	Value2      float64    `yaml:"value2"`
	N           int        `yaml:"n"`
	Chance      *float64   `yaml:"chance"`
	MaxCooldown int        `yaml:"max_cooldown"`
	MaxStacks   int        `yaml:"max_stacks"`
	Stat        string     `yaml:"stat"`
	Target      string     `yaml:"target"`
	Effect      *effectDef `yaml:"effect"`
}

type itemDef struct {
	Name       string             `yaml:"name"`
	Flat       map[string]float64 `yaml:"flat"`
	Percent    map[string]float64 `yaml:"percent"`
	CritChance float64            `yaml:"crit_chance"`
	ArmorPen   float64            `yaml:"armor_pen"`
	MagicPen   float64            `yaml:"magic_pen"`
	Passive    *passiveDef        `yaml:"passive"`
	OnUse      *effectDef         `yaml:"on_use"`
	Charges    int                `yaml:"charges"`
}

// LoadCatalog reads a YAML catalog file and merges it over base.
// A nil base starts from an empty catalog with the default class table.
// Вызывается один раз при старте; результат только читается.
func LoadCatalog(path string, base *Catalog) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(raw, base)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	slog.Info("loaded catalog", "path", path, "champions", len(c.Champions), "items", len(c.Items))
	return c, nil
}

// ParseCatalog decodes YAML catalog data, merges it over base and validates the result.
func ParseCatalog(raw []byte, base *Catalog) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	c := base
	if c == nil {
		c = NewCatalog()
	}

	for name, def := range file.Classes {
		class, err := ParseClass(name)
		if err != nil {
			return nil, err
		}
		info := c.ClassInfo(class)
		for statName, rate := range def.Growth {
			stat, err := ParseStat(statName)
			if err != nil {
				return nil, fmt.Errorf("class %s: %w", name, err)
			}
			info.Growth[stat] = rate
		}
		info.ArmorPenPerLevel = def.ArmorPenPerLevel
		info.BaseCritChance = def.CritChance
		c.Classes[class] = info
	}

	for i := range file.Champions {
		t, err := convertChampionDef(c, &file.Champions[i])
		if err != nil {
			return nil, fmt.Errorf("champion %q: %w", file.Champions[i].Name, err)
		}
		c.AddChampion(t)
	}

	for i := range file.Items {
		t, err := convertItemDef(&file.Items[i])
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", file.Items[i].Name, err)
		}
		c.AddItem(t)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// convertChampionDef конвертирует championDef → ChampionTemplate.
func convertChampionDef(c *Catalog, def *championDef) (*ChampionTemplate, error) {
	class, err := ParseClass(def.Class)
	if err != nil {
		return nil, err
	}

	t := &ChampionTemplate{
		Name:       def.Name,
		Class:      class,
		ArmorPen:   def.ArmorPen,
		MagicPen:   def.MagicPen,
		CritChance: def.CritChance,
	}

	for statName, v := range def.Base {
		stat, err := ParseStat(statName)
		if err != nil {
			return nil, err
		}
		t.Base[stat] = v
	}
	if len(def.Growth) > 0 {
		if t.Growth, err = convertStatMap(def.Growth); err != nil {
			return nil, err
		}
	}

	kind := ResourceNone
	if def.Resource.Kind != "" {
		if kind, err = c.ResourceKind(def.Resource.Kind); err != nil {
			return nil, err
		}
	}
	t.Resource = ResourceTemplate{
		Kind:          kind,
		Max:           def.Resource.Max,
		Regen:         def.Resource.Regen,
		GainOnAttack:  def.Resource.GainOnAttack,
		GainOnDamaged: def.Resource.GainOnDamaged,
	}

	for i := range def.Moves {
		m, err := convertMoveDef(&def.Moves[i], false)
		if err != nil {
			return nil, err
		}
		t.Moves = append(t.Moves, m)
	}
	if def.Ultimate != nil {
		m, err := convertMoveDef(def.Ultimate, true)
		if err != nil {
			return nil, err
		}
		t.Ultimate = &m
	}
	if def.Passive != nil {
		if t.Passive, err = convertPassiveDef(def.Passive); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func convertMoveDef(def *moveDef, ultimate bool) (MoveTemplate, error) {
	m := MoveTemplate{
		Name:       def.Name,
		BaseDamage: def.BaseDamage,
		ADRatio:    def.ADRatio,
		APRatio:    def.APRatio,
		Accuracy:   100,
		PP:         def.PP,
		Cost:       def.Cost,
		IsUltimate: ultimate,
	}
	if def.Accuracy != nil {
		m.Accuracy = *def.Accuracy
	}
	if def.DamageType != "" {
		dt, err := ParseDamageType(def.DamageType)
		if err != nil {
			return m, fmt.Errorf("move %s: %w", def.Name, err)
		}
		m.DamageType = dt
	}
	for i := range def.Effects {
		p := &def.Effects[i]
		eff, err := convertEffectDef(&p.effectDef)
		if err != nil {
			return m, fmt.Errorf("move %s: %w", def.Name, err)
		}
		target, err := ParseEffectTarget(p.Target)
		if err != nil {
			return m, fmt.Errorf("move %s: %w", def.Name, err)
		}
		chance := 100.0
		if p.Chance != nil {
			chance = *p.Chance
		}
		m.Effects = append(m.Effects, EffectPayload{Effect: eff, Chance: chance, Target: target})
	}
	return m, nil
}

func convertEffectDef(def *effectDef) (EffectTemplate, error) {
	kind, err := ParseEffectKind(def.Kind)
	if err != nil {
		return EffectTemplate{}, err
	}
	e := EffectTemplate{Kind: kind, Duration: def.Duration, Value: def.Value, Stages: def.Stages}
	if def.Stat != "" {
		if e.Stat, err = ParseStat(def.Stat); err != nil {
			return e, err
		}
	}
	return e, nil
}

func convertPassiveDef(def *passiveDef) (*PassiveTemplate, error) {
	trigger, err := ParseTrigger(def.Trigger)
	if err != nil {
		return nil, err
	}
	action, err := ParsePassiveAction(def.Action)
	if err != nil {
		return nil, err
	}
	target, err := ParseEffectTarget(def.Target)
	if err != nil {
		return nil, err
	}
	p := &PassiveTemplate{
		Name:          def.Name,
		Trigger:       trigger,
		Action:        action,
		Value:         def.Value,
		Value2:        def.Value2,
		N:             def.N,
		TriggerChance: 100,
		MaxCooldown:   def.MaxCooldown,
		MaxStacks:     def.MaxStacks,
		Target:        target,
	}
	if def.Chance != nil {
		p.TriggerChance = *def.Chance
	}
	if def.Stat != "" {
		if p.Stat, err = ParseStat(def.Stat); err != nil {
			return nil, err
		}
	}
	if def.Effect != nil {
		eff, err := convertEffectDef(def.Effect)
		if err != nil {
			return nil, err
		}
		p.Effect = &eff
	}
	return p, nil
}

func convertItemDef(def *itemDef) (*ItemTemplate, error) {
	t := &ItemTemplate{
		Name:       def.Name,
		CritChance: def.CritChance,
		ArmorPen:   def.ArmorPen,
		MagicPen:   def.MagicPen,
		Charges:    def.Charges,
	}
	var err error
	if t.Flat, err = convertStatMap(def.Flat); err != nil {
		return nil, err
	}
	if t.Percent, err = convertStatMap(def.Percent); err != nil {
		return nil, err
	}
	if def.Passive != nil {
		if t.Passive, err = convertPassiveDef(def.Passive); err != nil {
			return nil, err
		}
	}
	if def.OnUse != nil {
		eff, err := convertEffectDef(def.OnUse)
		if err != nil {
			return nil, err
		}
		t.OnUse = &eff
	}
	return t, nil
}

func convertStatMap(in map[string]float64) (map[StatKind]float64, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[StatKind]float64, len(in))
	for name, v := range in {
		stat, err := ParseStat(name)
		if err != nil {
			return nil, err
		}
		out[stat] = v
	}
	return out, nil
}
