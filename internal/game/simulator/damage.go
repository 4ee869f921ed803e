// Package simulator predicts the outcome of a character-versus-monster fight
// offline, either as an exact expected-value run or as a single random trial.
package simulator

import "math"

// critBonus is the extra damage fraction dealt by a critical hit.
const critBonus = 0.5

// maxResistance caps resistance on the upper end only.
const maxResistance = 100

// damageMultiplier converts a damage increase percentage into a multiplier.
func damageMultiplier(damageIncrease int) float64 {
	return 1 + float64(damageIncrease)*0.01
}

// resistanceMultiplier converts a resistance percentage into a multiplier.
// Resistance above 100 is clamped to 100; negative resistance is not clamped
// and amplifies damage.
func resistanceMultiplier(targetResistance int) float64 {
	res := targetResistance
	if res > maxResistance {
		res = maxResistance
	}
	return 1 - float64(res)*0.01
}

// CritlessMultiplier returns the damage multiplier of a non-critical hit.
//
// Postcondition: Returns 0 when targetResistance >= 100.
func CritlessMultiplier(damageIncrease, targetResistance int) float64 {
	return damageMultiplier(damageIncrease) * resistanceMultiplier(targetResistance)
}

// CritMultiplier returns the damage multiplier of a realized critical hit:
// the critless multiplier plus 50%.
func CritMultiplier(damageIncrease, targetResistance int) float64 {
	return CritlessMultiplier(damageIncrease, targetResistance) * (1 + critBonus)
}

// AverageMultiplier returns the expected damage multiplier given a critical
// strike chance in percent.
func AverageMultiplier(damageIncrease, criticalStrike, targetResistance int) float64 {
	return CritlessMultiplier(damageIncrease, targetResistance) *
		(1 + float64(criticalStrike)*0.01*critBonus)
}

// AverageDamage returns the expected damage of an attack against the given
// resistance.
//
// Postcondition: Non-decreasing in damageIncrease and non-increasing in
// targetResistance for attack >= 0 and criticalStrike >= 0.
func AverageDamage(attack, damageIncrease, criticalStrike, targetResistance int) float64 {
	return float64(attack) * AverageMultiplier(damageIncrease, criticalStrike, targetResistance)
}

// round rounds half away from zero to the nearest int.
func round(f float64) int {
	return int(math.Round(f))
}
