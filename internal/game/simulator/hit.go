package simulator

import (
	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/game/effect"
)

// Hit is the damage of one damage type dealt during one turn.
type Hit struct {
	Type     effect.DamageType
	Damage   int
	Critical bool
}

// DeterministicHit builds the representative hit used by averaged mode. Its
// damage uses the expected multiplier and it is always flagged Critical, so
// lifesteal applies to every averaged hit as if it were the representative one.
// It is a modelling convention, not a rolled critical strike.
//
// Postcondition: Critical is true; Damage == round(AverageDamage(...)).
func DeterministicHit(attack, damageIncrease, criticalStrike int, t effect.DamageType, targetResistance int) Hit {
	return Hit{
		Type:     t,
		Damage:   round(AverageDamage(attack, damageIncrease, criticalStrike, targetResistance)),
		Critical: true,
	}
}

// StochasticHit builds a hit whose critical status was already rolled.
//
// Postcondition: Damage uses CritMultiplier when critical, CritlessMultiplier otherwise.
func StochasticHit(attack, damageIncrease int, t effect.DamageType, targetResistance int, critical bool) Hit {
	m := CritlessMultiplier(damageIncrease, targetResistance)
	if critical {
		m = CritMultiplier(damageIncrease, targetResistance)
	}
	return Hit{
		Type:     t,
		Damage:   round(float64(attack) * m),
		Critical: critical,
	}
}

// hitsAgainst computes one hit per damage type with a positive attack value.
// In stochastic mode a single crit roll governs every hit of the turn.
//
// Precondition: src must be non-nil when mode is Stochastic.
func hitsAgainst(attacker effect.Table, target *state, mode Mode, src dice.Source) []Hit {
	critical := false
	if mode == Stochastic {
		critical = dice.Succeeds(src, attacker.CriticalStrike())
	}
	var hits []Hit
	for _, t := range effect.DamageTypes {
		attack := attacker.Attack(t)
		if attack <= 0 {
			continue
		}
		if mode == Averaged {
			hits = append(hits, DeterministicHit(attack, attacker.DamageIncrease(t), attacker.CriticalStrike(), t, target.resistance(t)))
		} else {
			hits = append(hits, StochasticHit(attack, attacker.DamageIncrease(t), t, target.resistance(t), critical))
		}
	}
	return hits
}
