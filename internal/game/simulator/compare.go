package simulator

import "github.com/cory-johannsen/fightsim/internal/game/effect"

// AverageDamage variants below ignore mid-fight state; they compare static
// effect tables when ranking gear.

// AverageDamageOf returns the expected damage per turn of attacker against a
// target with no resistance, ignoring damage increases.
func AverageDamageOf(attacker effect.Table) float64 {
	total := 0.0
	for _, t := range effect.DamageTypes {
		total += AverageDamage(attacker.Attack(t), 0, attacker.CriticalStrike(), 0)
	}
	return total
}

// AverageDamageAgainst returns the expected damage per turn of attacker
// against target's resistances, ignoring damage increases.
func AverageDamageAgainst(attacker, target effect.Table) float64 {
	total := 0.0
	for _, t := range effect.DamageTypes {
		total += AverageDamage(attacker.Attack(t), 0, attacker.CriticalStrike(), target.Resistance(t))
	}
	return total
}

// AverageDamageAgainstWith returns the expected damage per turn of attacker
// against target when boost supplies the damage increases and extra critical
// strike.
func AverageDamageAgainstWith(attacker, boost, target effect.Table) float64 {
	total := 0.0
	for _, t := range effect.DamageTypes {
		total += AverageDamage(
			attacker.Attack(t),
			boost.DamageIncrease(t),
			attacker.CriticalStrike()+boost.CriticalStrike(),
			target.Resistance(t),
		)
	}
	return total
}

// DamageBoostAgainstWith returns the extra expected damage boost provides to
// attacker against target.
func DamageBoostAgainstWith(attacker, boost, target effect.Table) float64 {
	return AverageDamageAgainstWith(attacker, boost, target) - AverageDamageAgainst(attacker, target)
}

// DamageReductionAgainst returns how much expected damage per turn defender's
// resistances remove from attacker's attacks.
func DamageReductionAgainst(defender, attacker effect.Table) float64 {
	return AverageDamageOf(attacker) - AverageDamageAgainst(attacker, defender)
}

// CritlessDamageAgainst returns the summed, per-type rounded damage of a
// non-critical turn of attacker against target.
func CritlessDamageAgainst(attacker, target effect.Table) int {
	total := 0
	for _, t := range effect.DamageTypes {
		total += round(AverageDamage(attacker.Attack(t), attacker.DamageIncrease(t), 0, target.Resistance(t)))
	}
	return total
}
