package simulator

import "github.com/cory-johannsen/fightsim/internal/game/effect"

const (
	secondsPerTurn     = 2
	minFightCooldown   = 5
	restHPPerSecond    = 5
	baseGatherCooldown = 30
)

// FightCooldown returns the cooldown in seconds triggered by a fight of the
// given length: two seconds per turn reduced by haste percent, at least 5.
//
// Postcondition: Returns >= 5.
func FightCooldown(haste, turns int) int {
	nominal := float64(turns * secondsPerTurn)
	cd := round(nominal - float64(haste)*0.01*nominal)
	return max(minFightCooldown, cd)
}

// GatherCooldown returns the cooldown in seconds of gathering a resource of
// the given level. cooldownReduction is usually negative.
func GatherCooldown(resourceLevel, cooldownReduction int) int {
	level := float64(resourceLevel)
	return round((baseGatherCooldown + level/2) * (1 + float64(cooldownReduction)*0.01))
}

// GatherCooldownWith returns GatherCooldown using the cooldown reduction that
// gear grants for skill.
func GatherCooldownWith(gear effect.Table, skill effect.Skill, resourceLevel int) int {
	return GatherCooldown(resourceLevel, gear.SkillCooldownReduction(skill))
}

// TimeToRest returns the seconds of rest needed to recover missingHP, at five
// health per second rounded up.
//
// Postcondition: Returns 0 when missingHP <= 0.
func TimeToRest(missingHP int) int {
	if missingHP <= 0 {
		return 0
	}
	return (missingHP + restHPPerSecond - 1) / restHPPerSecond
}
