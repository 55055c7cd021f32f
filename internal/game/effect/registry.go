package effect

import "github.com/udisondev/riftduel/internal/data"

func init() {
	registerHandler(data.EffectStatModifier, statModifierEffect{})
	registerHandler(data.EffectSlow, slowEffect{})
	registerHandler(data.EffectBurn, dotEffect{})
	registerHandler(data.EffectPoison, dotEffect{})
	registerHandler(data.EffectBleed, dotEffect{})
	registerHandler(data.EffectStun, controlEffect{})
	registerHandler(data.EffectBlind, controlEffect{})
	registerHandler(data.EffectConfusion, controlEffect{})
	registerHandler(data.EffectStealth, controlEffect{})
	registerHandler(data.EffectShield, shieldEffect{})
	registerHandler(data.EffectDamageReduction, noop{})
	registerHandler(data.EffectRegeneration, regenEffect{})
	registerHandler(data.EffectCleanse, cleanseEffect{})
	registerHandler(data.EffectPPRestore, ppRestoreEffect{})
}
