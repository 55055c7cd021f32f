package data

import "log/slog"

// DefaultCatalog строит каталог из Go-литералов (championDefs, itemDefs).
// Every call builds fresh templates, so catalogs never share state.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, def := range championDefs() {
		c.AddChampion(def)
	}
	for _, def := range itemDefs() {
		c.AddItem(def)
	}
	slog.Debug("default catalog built", "champions", len(c.Champions), "items", len(c.Items))
	return c
}

func stats(hp, ad, ap, armor, mr, speed float64) [NumStats]float64 {
	return [NumStats]float64{hp, ad, ap, armor, mr, speed}
}

func championDefs() []*ChampionTemplate {
	return []*ChampionTemplate{
		{
			Name:     "Malphite",
			Class:    ClassTank,
			Base:     stats(574, 62, 0, 37, 32, 335),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 280, Regen: 20},
			Moves: []MoveTemplate{
				{Name: "Seismic Shard", DamageType: DamageMagic, BaseDamage: 70, APRatio: 0.6, Accuracy: 100, PP: 15, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -1}, Chance: 100}}},
				{Name: "Thunderclap", DamageType: DamagePhysical, BaseDamage: 30, ADRatio: 0.4, Accuracy: 100, PP: 20, Cost: 25},
				{Name: "Ground Slam", DamageType: DamageMagic, BaseDamage: 60, APRatio: 0.4, Accuracy: 95, PP: 15, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStatModifier, Duration: 3, Stat: StatAttackDamage, Stages: -1}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Unstoppable Force", DamageType: DamageMagic, BaseDamage: 200, APRatio: 0.8, Accuracy: 100, PP: 5, Cost: 100, IsUltimate: true,
				Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStun, Duration: 1}, Chance: 100}}},
			Passive: &PassiveTemplate{Name: "Granite Shield", Trigger: TriggerEveryNTurns, Action: ActionShield, N: 3, Value: 60, Value2: 3, TriggerChance: 100},
		},
		{
			Name:     "Leona",
			Class:    ClassTank,
			Base:     stats(576, 60, 0, 47, 32, 335),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 300, Regen: 15},
			Moves: []MoveTemplate{
				{Name: "Shield of Daybreak", DamageType: DamageMagic, BaseDamage: 40, APRatio: 0.3, Accuracy: 100, PP: 15, Cost: 35,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStun, Duration: 1}, Chance: 35}}},
				{Name: "Eclipse", Accuracy: 100, PP: 10, Cost: 60,
					Effects: []EffectPayload{
						{Effect: EffectTemplate{Kind: EffectStatModifier, Duration: 3, Stat: StatArmor, Stages: 2}, Chance: 100, Target: TargetSelf},
						{Effect: EffectTemplate{Kind: EffectStatModifier, Duration: 3, Stat: StatMagicResist, Stages: 2}, Chance: 100, Target: TargetSelf},
					}},
				{Name: "Zenith Blade", DamageType: DamageMagic, BaseDamage: 60, APRatio: 0.4, Accuracy: 95, PP: 15, Cost: 45},
			},
			Ultimate: &MoveTemplate{Name: "Solar Flare", DamageType: DamageMagic, BaseDamage: 150, APRatio: 0.8, Accuracy: 100, PP: 5, Cost: 100, IsUltimate: true,
				Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStun, Duration: 1}, Chance: 100}}},
			Passive: &PassiveTemplate{Name: "Sunlight", Trigger: TriggerOnAbilityHit, Action: ActionDamage, Value: 25, TriggerChance: 100, MaxCooldown: 2},
		},
		{
			Name:     "Darius",
			Class:    ClassFighter,
			Base:     stats(652, 64, 0, 39, 32, 340),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 263, Regen: 13},
			Moves: []MoveTemplate{
				{Name: "Decimate", DamageType: DamagePhysical, BaseDamage: 50, ADRatio: 1.0, Accuracy: 95, PP: 15, Cost: 30},
				{Name: "Crippling Strike", DamageType: DamagePhysical, BaseDamage: 20, ADRatio: 1.4, Accuracy: 100, PP: 20, Cost: 30,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -2}, Chance: 100}}},
				{Name: "Apprehend", Accuracy: 100, PP: 10, Cost: 45,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStatModifier, Duration: 3, Stat: StatArmor, Stages: -1}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Noxian Guillotine", DamageType: DamageTrue, BaseDamage: 150, ADRatio: 0.75, Accuracy: 100, PP: 5, Cost: 100, IsUltimate: true},
			Passive: &PassiveTemplate{Name: "Hemorrhage", Trigger: TriggerOnAttack, Action: ActionApplyEffect, TriggerChance: 100,
				Effect: &EffectTemplate{Kind: EffectBleed, Duration: 3, Value: 12}},
		},
		{
			Name:     "Tryndamere",
			Class:    ClassFighter,
			Base:     stats(696, 66, 0, 33, 32, 345),
			Resource: ResourceTemplate{Kind: ResourceFury, Max: 100, GainOnAttack: 10, GainOnDamaged: 5},
			Moves: []MoveTemplate{
				{Name: "Slash", DamageType: DamagePhysical, BaseDamage: 40, ADRatio: 1.0, Accuracy: 95, PP: 25},
				{Name: "Mocking Shout", Accuracy: 100, PP: 10,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStatModifier, Duration: 3, Stat: StatAttackDamage, Stages: -1}, Chance: 100}}},
				{Name: "Spinning Slash", DamageType: DamagePhysical, BaseDamage: 80, ADRatio: 1.3, APRatio: 0.8, Accuracy: 90, PP: 10, Cost: 25},
			},
			Ultimate: &MoveTemplate{Name: "Bloodlust", Accuracy: 100, PP: 5, Cost: 50, IsUltimate: true,
				Effects: []EffectPayload{
					{Effect: EffectTemplate{Kind: EffectRegeneration, Duration: 3, Value: 60}, Chance: 100, Target: TargetSelf},
					{Effect: EffectTemplate{Kind: EffectStatModifier, Duration: 3, Stat: StatAttackDamage, Stages: 2}, Chance: 100, Target: TargetSelf},
				}},
			Passive: &PassiveTemplate{Name: "Undying Rage", Trigger: TriggerDeathDefiance, Action: ActionSurvive, Value: 1, TriggerChance: 100, MaxCooldown: OncePerBattle},
		},
		{
			Name:     "Zed",
			Class:    ClassAssassin,
			Base:     stats(654, 63, 0, 32, 32, 345),
			Resource: ResourceTemplate{Kind: ResourceEnergy, Max: 200, Regen: 50},
			Moves: []MoveTemplate{
				{Name: "Razor Shuriken", DamageType: DamagePhysical, BaseDamage: 80, ADRatio: 1.1, Accuracy: 95, PP: 20, Cost: 75},
				{Name: "Shadow Slash", DamageType: DamagePhysical, BaseDamage: 70, ADRatio: 0.8, Accuracy: 100, PP: 20, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -1}, Chance: 100}}},
				{Name: "Living Shadow", Accuracy: 100, PP: 10, Cost: 40,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStealth, Duration: 1}, Chance: 100, Target: TargetSelf}}},
			},
			Ultimate: &MoveTemplate{Name: "Death Mark", DamageType: DamagePhysical, BaseDamage: 120, ADRatio: 1.5, Accuracy: 100, PP: 5, IsUltimate: true},
			Passive: &PassiveTemplate{Name: "Contempt for the Weak", Trigger: TriggerOnLowHP, Action: ActionDamage, N: 50, Value: 40, TriggerChance: 100, MaxCooldown: 3},
		},
		{
			Name:     "Talon",
			Class:    ClassAssassin,
			Base:     stats(658, 68, 0, 30, 39, 335),
			ArmorPen: 3,
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 400, Regen: 25},
			Moves: []MoveTemplate{
				{Name: "Noxian Diplomacy", DamageType: DamagePhysical, BaseDamage: 75, ADRatio: 1.1, Accuracy: 100, PP: 20, Cost: 30},
				{Name: "Rake", DamageType: DamagePhysical, BaseDamage: 50, ADRatio: 0.9, Accuracy: 90, PP: 15, Cost: 55,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -2}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Shadow Assault", DamageType: DamagePhysical, BaseDamage: 180, ADRatio: 1.0, Accuracy: 100, PP: 5, Cost: 100, IsUltimate: true,
				Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStealth, Duration: 1}, Chance: 100, Target: TargetSelf}}},
			Passive: &PassiveTemplate{Name: "Blade's End", Trigger: TriggerStackingAttack, Action: ActionApplyEffect, MaxStacks: 3, TriggerChance: 100,
				Effect: &EffectTemplate{Kind: EffectBleed, Duration: 2, Value: 10}},
		},
		{
			Name:     "Brand",
			Class:    ClassMage,
			Base:     stats(570, 57, 30, 22, 30, 340),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 469, Regen: 30},
			Moves: []MoveTemplate{
				{Name: "Sear", DamageType: DamageMagic, BaseDamage: 80, APRatio: 0.55, Accuracy: 90, PP: 15, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStun, Duration: 1}, Chance: 25}}},
				{Name: "Pillar of Flame", DamageType: DamageMagic, BaseDamage: 75, APRatio: 0.6, Accuracy: 95, PP: 15, Cost: 60},
				{Name: "Conflagration", DamageType: DamageMagic, BaseDamage: 70, APRatio: 0.45, Accuracy: 100, PP: 20, Cost: 70,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectBurn, Duration: 3, Value: 15}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Pyroclasm", DamageType: DamageMagic, BaseDamage: 150, APRatio: 0.5, Accuracy: 100, PP: 5, Cost: 100, IsUltimate: true,
				Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectBurn, Duration: 3, Value: 20}, Chance: 100}}},
			Passive: &PassiveTemplate{Name: "Blaze", Trigger: TriggerOnAbilityHit, Action: ActionApplyEffect, TriggerChance: 50,
				Effect: &EffectTemplate{Kind: EffectBurn, Duration: 2, Value: 10}},
		},
		{
			Name:     "Lux",
			Class:    ClassMage,
			Base:     stats(580, 54, 35, 21, 30, 330),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 480, Regen: 30},
			Moves: []MoveTemplate{
				{Name: "Light Binding", DamageType: DamageMagic, BaseDamage: 80, APRatio: 0.6, Accuracy: 85, PP: 10, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStun, Duration: 1}, Chance: 100}}},
				{Name: "Prismatic Barrier", Accuracy: 100, PP: 10, Cost: 60,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectShield, Duration: 2, Value: 80}, Chance: 100, Target: TargetSelf}}},
				{Name: "Lucent Singularity", DamageType: DamageMagic, BaseDamage: 70, APRatio: 0.65, Accuracy: 100, PP: 15, Cost: 70,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -1}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Final Spark", DamageType: DamageMagic, BaseDamage: 300, APRatio: 1.0, Accuracy: 100, PP: 5, Cost: 100, IsUltimate: true},
			Passive: &PassiveTemplate{Name: "Illumination", Trigger: TriggerOnAbilityHit, Action: ActionDamage, Value: 20, Value2: 0, TriggerChance: 100, MaxCooldown: 1},
		},
		{
			Name:     "Soraka",
			Class:    ClassSupport,
			Base:     stats(605, 50, 20, 32, 30, 325),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 425, Regen: 40},
			Moves: []MoveTemplate{
				{Name: "Starcall", DamageType: DamageMagic, BaseDamage: 85, APRatio: 0.35, Accuracy: 95, PP: 20, Cost: 45},
				{Name: "Astral Infusion", Accuracy: 100, PP: 10, Cost: 40,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectRegeneration, Duration: 2, Value: 50}, Chance: 100, Target: TargetSelf}}},
				{Name: "Equinox", DamageType: DamageMagic, BaseDamage: 70, APRatio: 0.4, Accuracy: 100, PP: 10, Cost: 70,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectBlind, Duration: 1}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Wish", Accuracy: 100, PP: 3, Cost: 100, IsUltimate: true,
				Effects: []EffectPayload{
					{Effect: EffectTemplate{Kind: EffectCleanse}, Chance: 100, Target: TargetSelf},
					{Effect: EffectTemplate{Kind: EffectRegeneration, Duration: 1, Value: 150}, Chance: 100, Target: TargetSelf},
				}},
			Passive: &PassiveTemplate{Name: "Salvation", Trigger: TriggerRegeneration, Action: ActionHeal, Value: 5, Value2: 1, TriggerChance: 100},
		},
		{
			Name:     "Rammus",
			Class:    ClassTank,
			Base:     stats(564, 55, 0, 36, 32, 335),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 310, Regen: 20},
			Moves: []MoveTemplate{
				{Name: "Powerball", DamageType: DamageMagic, BaseDamage: 100, APRatio: 1.0, Accuracy: 90, PP: 15, Cost: 60,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -2}, Chance: 100}}},
				{Name: "Defensive Ball Curl", Accuracy: 100, PP: 10, Cost: 40,
					Effects: []EffectPayload{
						{Effect: EffectTemplate{Kind: EffectStatModifier, Duration: 3, Stat: StatArmor, Stages: 3}, Chance: 100, Target: TargetSelf},
						{Effect: EffectTemplate{Kind: EffectDamageReduction, Duration: 2, Value: 15}, Chance: 100, Target: TargetSelf},
					}},
				{Name: "Frenzying Taunt", Accuracy: 100, PP: 10, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectConfusion, Duration: 2}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Soaring Slam", DamageType: DamageMagic, BaseDamage: 150, APRatio: 0.6, Accuracy: 100, PP: 5, Cost: 100, IsUltimate: true},
			Passive: &PassiveTemplate{Name: "Spiked Shell", Trigger: TriggerRetaliation, Action: ActionDamage, Value: 10, Value2: 20, TriggerChance: 100},
		},
		{
			Name:     "Jinx",
			Class:    ClassMarksman,
			Base:     stats(630, 59, 0, 26, 30, 325),
			Resource: ResourceTemplate{Kind: ResourceMana, Max: 260, Regen: 17},
			Moves: []MoveTemplate{
				{Name: "Switcheroo", DamageType: DamagePhysical, BaseDamage: 30, ADRatio: 1.1, Accuracy: 100, PP: 30},
				{Name: "Zap", DamageType: DamagePhysical, BaseDamage: 60, ADRatio: 1.4, Accuracy: 85, PP: 15, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -2}, Chance: 100}}},
				{Name: "Flame Chompers", DamageType: DamageMagic, BaseDamage: 70, APRatio: 1.0, Accuracy: 80, PP: 10, Cost: 70,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectStun, Duration: 1}, Chance: 100}}},
			},
			Ultimate: &MoveTemplate{Name: "Super Mega Death Rocket", DamageType: DamagePhysical, BaseDamage: 250, ADRatio: 1.5, Accuracy: 95, PP: 5, Cost: 100, IsUltimate: true},
			Passive: &PassiveTemplate{Name: "Get Excited", Trigger: TriggerOnKill, Action: ActionStatBoost, Stat: StatMoveSpeed, Value: 2, TriggerChance: 100},
		},
		{
			Name:     "Mundo",
			Class:    ClassFighter,
			Base:     stats(653, 61, 0, 32, 29, 345),
			Resource: ResourceTemplate{Kind: ResourceHealthCost},
			Moves: []MoveTemplate{
				{Name: "Infected Bonesaw", DamageType: DamageMagic, BaseDamage: 80, APRatio: 0.0, ADRatio: 0.2, Accuracy: 90, PP: 20, Cost: 50,
					Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectSlow, Duration: 2, Stages: -1}, Chance: 100}}},
				{Name: "Blunt Force Trauma", DamageType: DamagePhysical, BaseDamage: 20, ADRatio: 1.2, Accuracy: 100, PP: 20, Cost: 20},
			},
			Ultimate: &MoveTemplate{Name: "Maximum Dosage", Accuracy: 100, PP: 3, IsUltimate: true,
				Effects: []EffectPayload{{Effect: EffectTemplate{Kind: EffectRegeneration, Duration: 3, Value: 90}, Chance: 100, Target: TargetSelf}}},
			Passive: &PassiveTemplate{Name: "Goes Where He Pleases", Trigger: TriggerEndOfTurn, Action: ActionHeal, Value2: 2, TriggerChance: 100},
		},
	}
}

func itemDefs() []*ItemTemplate {
	return []*ItemTemplate{
		{Name: "Long Sword", Flat: map[StatKind]float64{StatAttackDamage: 10}},
		{Name: "Amplifying Tome", Flat: map[StatKind]float64{StatAbilityPower: 20}},
		{Name: "Cloth Armor", Flat: map[StatKind]float64{StatArmor: 15}},
		{Name: "Null-Magic Mantle", Flat: map[StatKind]float64{StatMagicResist: 25}},
		{Name: "Ruby Crystal", Flat: map[StatKind]float64{StatHealth: 150}},
		{Name: "Boots", Flat: map[StatKind]float64{StatMoveSpeed: 25}},
		{Name: "Infinity Edge", Flat: map[StatKind]float64{StatAttackDamage: 70}, CritChance: 20},
		{Name: "Rabadon's Deathcap", Flat: map[StatKind]float64{StatAbilityPower: 120}, Percent: map[StatKind]float64{StatAbilityPower: 0.35}},
		{Name: "Last Whisper", Flat: map[StatKind]float64{StatAttackDamage: 20}, ArmorPen: 15},
		{Name: "Void Staff", Flat: map[StatKind]float64{StatAbilityPower: 65}, MagicPen: 20},
		{Name: "Thornmail", Flat: map[StatKind]float64{StatArmor: 70},
			Passive: &PassiveTemplate{Name: "Thorns", Trigger: TriggerRetaliation, Action: ActionDamage, Value: 10, Value2: 10, TriggerChance: 100}},
		{Name: "Guardian Angel", Flat: map[StatKind]float64{StatAttackDamage: 40, StatArmor: 40},
			Passive: &PassiveTemplate{Name: "Rebirth", Trigger: TriggerDeathDefiance, Action: ActionSurvive, Value: 30, TriggerChance: 100, MaxCooldown: OncePerBattle}},
		{Name: "Health Potion", OnUse: &EffectTemplate{Kind: EffectRegeneration, Duration: 3, Value: 40}, Charges: 2},
		{Name: "Elixir of Iron", OnUse: &EffectTemplate{Kind: EffectStatModifier, Duration: 4, Stat: StatArmor, Stages: 1}, Charges: 1},
	}
}
