package data

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownChampion = errors.New("unknown champion")
	ErrUnknownItem     = errors.New("unknown item")
	ErrInvalidTemplate = errors.New("invalid template")
)

// Catalog is the read-only lookup table handed to the engine at construction.
// Nothing in it is mutated after load; lookups return clones.
type Catalog struct {
	Champions map[string]*ChampionTemplate
	Items     map[string]*ItemTemplate
	Classes   map[Class]ClassInfo

	// ResourceKinds maps catalog resource names to kinds.
	ResourceKinds map[string]ResourceKind
}

// NewCatalog creates an empty catalog with the default class table.
func NewCatalog() *Catalog {
	kinds := make(map[string]ResourceKind, len(resourceNames))
	for i, name := range resourceNames {
		kinds[name] = ResourceKind(i)
	}
	return &Catalog{
		Champions:     make(map[string]*ChampionTemplate),
		Items:         make(map[string]*ItemTemplate),
		Classes:       DefaultClassTable(),
		ResourceKinds: kinds,
	}
}

// Champion returns a copy of the named champion template.
func (c *Catalog) Champion(name string) (*ChampionTemplate, error) {
	t, ok := c.Champions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChampion, name)
	}
	return t.Clone(), nil
}

// Item returns a copy of the named item template.
func (c *Catalog) Item(name string) (*ItemTemplate, error) {
	t, ok := c.Items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	return t.Clone(), nil
}

// ChampionNames returns champion names in sorted order.
func (c *Catalog) ChampionNames() []string {
	names := make([]string, 0, len(c.Champions))
	for name := range c.Champions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResourceKind resolves a resource name.
func (c *Catalog) ResourceKind(name string) (ResourceKind, error) {
	k, ok := c.ResourceKinds[name]
	if !ok {
		return 0, fmt.Errorf("unknown resource kind %q", name)
	}
	return k, nil
}

// GrowthRate resolves the growth rate of a stat for a champion.
// Precedence: champion override → class default → DefaultGrowthRate.
func (c *Catalog) GrowthRate(t *ChampionTemplate, stat StatKind) float64 {
	if r, ok := t.Growth[stat]; ok {
		return r
	}
	if info, ok := c.Classes[t.Class]; ok {
		return info.Growth[stat]
	}
	return DefaultGrowthRate
}

// ClassInfo returns the class defaults, or a zero record with fallback
// growth if the class is missing from the table.
func (c *Catalog) ClassInfo(class Class) ClassInfo {
	if info, ok := c.Classes[class]; ok {
		return info
	}
	info := ClassInfo{Class: class}
	for i := range info.Growth {
		info.Growth[i] = DefaultGrowthRate
	}
	return info
}

// AddChampion registers a champion template.
func (c *Catalog) AddChampion(t *ChampionTemplate) {
	c.Champions[t.Name] = t
}

// AddItem registers an item template.
func (c *Catalog) AddItem(t *ItemTemplate) {
	c.Items[t.Name] = t
}

// Validate checks every template for data the engine assumes well-formed.
func (c *Catalog) Validate() error {
	for name, t := range c.Champions {
		if err := validateChampion(t); err != nil {
			return fmt.Errorf("champion %s: %w", name, err)
		}
	}
	for name, t := range c.Items {
		if t.Passive != nil {
			if err := validatePassive(t.Passive); err != nil {
				return fmt.Errorf("item %s: %w", name, err)
			}
		}
		if t.OnUse != nil && t.Charges <= 0 {
			return fmt.Errorf("item %s: %w: on-use item without charges", name, ErrInvalidTemplate)
		}
	}
	return nil
}

func validateChampion(t *ChampionTemplate) error {
	if t.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplate)
	}
	if t.Base[StatHealth] <= 0 {
		return fmt.Errorf("%w: base health must be positive", ErrInvalidTemplate)
	}
	if len(t.Moves) == 0 || len(t.Moves) > MaxRegularMoves {
		return fmt.Errorf("%w: %d moves (want 1..%d)", ErrInvalidTemplate, len(t.Moves), MaxRegularMoves)
	}
	for i := range t.Moves {
		if err := validateMove(&t.Moves[i]); err != nil {
			return err
		}
		if t.Moves[i].IsUltimate {
			return fmt.Errorf("%w: move %s flagged ultimate outside ultimate slot", ErrInvalidTemplate, t.Moves[i].Name)
		}
	}
	if t.Ultimate != nil {
		if err := validateMove(t.Ultimate); err != nil {
			return err
		}
		if !t.Ultimate.IsUltimate {
			return fmt.Errorf("%w: ultimate %s not flagged ultimate", ErrInvalidTemplate, t.Ultimate.Name)
		}
	}
	if t.Resource.Max < 0 || t.Resource.Regen < 0 {
		return fmt.Errorf("%w: negative resource values", ErrInvalidTemplate)
	}
	if t.Passive != nil {
		return validatePassive(t.Passive)
	}
	return nil
}

func validateMove(m *MoveTemplate) error {
	if m.Name == "" {
		return fmt.Errorf("%w: move without name", ErrInvalidTemplate)
	}
	if m.PP <= 0 {
		return fmt.Errorf("%w: move %s has no PP", ErrInvalidTemplate, m.Name)
	}
	if m.Accuracy < 0 || m.Accuracy > 100 {
		return fmt.Errorf("%w: move %s accuracy %.0f out of range", ErrInvalidTemplate, m.Name, m.Accuracy)
	}
	if m.Cost < 0 {
		return fmt.Errorf("%w: move %s negative cost", ErrInvalidTemplate, m.Name)
	}
	return nil
}

func validatePassive(p *PassiveTemplate) error {
	if p.Trigger.IsPeriodic() && p.N <= 0 {
		return fmt.Errorf("%w: passive %s periodic trigger without N", ErrInvalidTemplate, p.Name)
	}
	if p.Action == ActionApplyEffect && p.Effect == nil {
		return fmt.Errorf("%w: passive %s applies no effect", ErrInvalidTemplate, p.Name)
	}
	if p.Trigger == TriggerDeathDefiance && !p.IsOncePerBattle() {
		return fmt.Errorf("%w: passive %s death defiance must be once per battle", ErrInvalidTemplate, p.Name)
	}
	if p.MaxCooldown < OncePerBattle {
		return fmt.Errorf("%w: passive %s cooldown %d", ErrInvalidTemplate, p.Name, p.MaxCooldown)
	}
	return nil
}
