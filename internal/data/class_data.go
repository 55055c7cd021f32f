package data

// GrowthRates is the per-level growth tuple for the six scalable stats.
// A stat at level L is base × (1 + rate × (L−1)).
type GrowthRates [NumStats]float64

// ClassInfo holds class-wide defaults.
type ClassInfo struct {
	Class  Class
	Growth GrowthRates

	// ArmorPenPerLevel grants flat armor penetration of level × rate.
	ArmorPenPerLevel float64

	// BaseCritChance is the crit chance (percent) before items.
	BaseCritChance float64
}

// DefaultClassTable returns the class default table.
// Each call returns a fresh map; catalogs own their copy.
func DefaultClassTable() map[Class]ClassInfo {
	return map[Class]ClassInfo{
		ClassTank: {
			Class:          ClassTank,
			Growth:         GrowthRates{0.09, 0.04, 0.02, 0.06, 0.06, 0.01},
			BaseCritChance: 0,
		},
		ClassFighter: {
			Class:          ClassFighter,
			Growth:         GrowthRates{0.08, 0.05, 0.02, 0.05, 0.04, 0.01},
			BaseCritChance: 5,
		},
		ClassAssassin: {
			Class:          ClassAssassin,
			Growth:         GrowthRates{0.06, 0.06, 0.03, 0.03, 0.03, 0.015},
			BaseCritChance: 15,
		},
		ClassMage: {
			Class:          ClassMage,
			Growth:         GrowthRates{0.06, 0.02, 0.07, 0.03, 0.04, 0.01},
			BaseCritChance: 0,
		},
		ClassSupport: {
			Class:          ClassSupport,
			Growth:         GrowthRates{0.07, 0.03, 0.05, 0.04, 0.05, 0.01},
			BaseCritChance: 0,
		},
		ClassMarksman: {
			Class:            ClassMarksman,
			Growth:           GrowthRates{0.06, 0.06, 0.01, 0.03, 0.03, 0.01},
			ArmorPenPerLevel: 0.3,
			BaseCritChance:   20,
		},
	}
}
