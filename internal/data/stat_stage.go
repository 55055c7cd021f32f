package data

// StageMultipliers maps a stat stage (-6..+6, index stage+6) to its multiplier.
// Standard 2/(2-n) .. (2+n)/2 curve: 0.25× at -6, 1.0× at 0, 4.0× at +6.
var StageMultipliers = [MaxStage - MinStage + 1]float64{
	2.0 / 8, 2.0 / 7, 2.0 / 6, 2.0 / 5, 2.0 / 4, 2.0 / 3,
	1.0,
	3.0 / 2, 4.0 / 2, 5.0 / 2, 6.0 / 2, 7.0 / 2, 8.0 / 2,
}

// StageMultiplier returns the multiplier for a stage with bounds checking.
// Out-of-range stages return the boundary value.
func StageMultiplier(stage int) float64 {
	return StageMultipliers[ClampStage(stage)-MinStage]
}

// ClampStage clamps a stage counter to [MinStage, MaxStage].
func ClampStage(stage int) int {
	if stage < MinStage {
		return MinStage
	}
	if stage > MaxStage {
		return MaxStage
	}
	return stage
}

// ClampLevel clamps a champion level to [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
