package simulator

import (
	"time"

	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/game/effect"
)

// MaxTurns is the number of turns after which an undecided fight is lost.
// Such a fight reports Turns == MaxTurns, never MaxTurns+1.
const MaxTurns = 100

// Mode selects how hit damage is computed.
type Mode int

const (
	// Stochastic rolls one critical strike per attacker turn.
	Stochastic Mode = iota
	// Averaged uses expected damage and is fully deterministic.
	Averaged
)

// String returns the mode name used in configuration.
func (m Mode) String() string {
	switch m {
	case Stochastic:
		return "stochastic"
	case Averaged:
		return "averaged"
	default:
		return "unknown"
	}
}

// ParseMode maps a configuration name to a Mode.
//
// Postcondition: ok is false for unknown names.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "stochastic":
		return Stochastic, true
	case "averaged":
		return Averaged, true
	default:
		return 0, false
	}
}

// Outcome is the decided result of a fight.
type Outcome int

const (
	Win Outcome = iota
	Loss
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Character is the immutable character-side input of a fight.
type Character struct {
	Level int
	// Effects is the aggregated effect table of all equipped gear.
	Effects effect.Table
	// Utility1 and Utility2 are the effects of the items in the utility
	// slots; nil for an empty slot.
	Utility1 effect.Table
	Utility2 effect.Table
}

// Params tunes a single simulation.
type Params struct {
	Utility1Quantity int
	Utility2Quantity int
	// MissingHP is subtracted from the character's max health at fight start.
	MissingHP int
	Mode      Mode
	// IgnoreDeath keeps the character fighting at or below zero health; the
	// outcome then only reflects whether the monster died in time.
	IgnoreDeath bool
	// Source drives crit rolls in Stochastic mode. A nil Source falls back to
	// dice.NewCryptoSource. Never share a seeded source across concurrent fights.
	Source dice.Source
	// OnTurn, when non-nil, is called after each resolved turn.
	OnTurn func(TurnEvent)
}

// DefaultParams returns stochastic params with full utility stacks and no
// missing health.
func DefaultParams() Params {
	return Params{
		Utility1Quantity: 100,
		Utility2Quantity: 100,
		Mode:             Stochastic,
	}
}

// Averaged returns a copy of p in Averaged mode.
func (p Params) Averaged() Params {
	p.Mode = Averaged
	return p
}

// WithIgnoreDeath returns a copy of p with IgnoreDeath set.
func (p Params) WithIgnoreDeath() Params {
	p.IgnoreDeath = true
	return p
}

// Result is the outcome of a simulated fight.
type Result struct {
	// Turns is the number of turns consumed, including the deciding one.
	Turns int
	// HP and MonsterHP are the final healths; either may be <= 0.
	HP        int
	MonsterHP int
	// HPLost is the character's starting health minus its final health.
	HPLost  int
	Outcome Outcome
	// CooldownSeconds is the action cooldown the fight triggers.
	CooldownSeconds int
}

// IsWinning reports whether the character won.
func (r Result) IsWinning() bool { return r.Outcome == Win }

// IsLosing reports whether the character lost.
func (r Result) IsLosing() bool { return r.Outcome == Loss }

// Cooldown returns CooldownSeconds as a Duration.
func (r Result) Cooldown() time.Duration {
	return time.Duration(r.CooldownSeconds) * time.Second
}

// Fight simulates char against the monster described by monster.
// Participants act in descending initiative order fixed at fight start; the
// character acts first on ties.
//
// Precondition: monster carries the monster's base stats as effects (hp,
// attack_*, res_*, critical_strike, initiative) plus its special effects.
// Postcondition: Turns <= MaxTurns; CooldownSeconds >= 5. In Averaged mode the
// result depends only on the inputs.
func Fight(char Character, monster effect.Table, p Params) Result {
	src := p.Source
	if p.Mode == Stochastic && src == nil {
		src = dice.NewCryptoSource()
	}

	c := newCharacterState(char, p)
	m := newMonsterState(monster)

	order := [2]fighter{c, m}
	if m.initiative > c.initiative {
		order = [2]fighter{m, c}
	}

	turns := 0
	for turns < MaxTurns && c.alive() && m.hp > 0 {
		actor, target := order[turns%2], order[(turns+1)%2]
		hits := takeTurn(actor, target, p.Mode, src)
		turns++
		if p.OnTurn != nil {
			p.OnTurn(TurnEvent{
				Turn:              turns,
				Actor:             actor.kind(),
				Hits:              hits,
				ActorHP:           actor.base().hp,
				TargetHP:          target.base().hp,
				TargetResistances: target.base().res,
			})
		}
	}

	outcome := Win
	if m.hp > 0 || (c.hp <= 0 && !p.IgnoreDeath) {
		outcome = Loss
	}
	return Result{
		Turns:           turns,
		HP:              c.hp,
		MonsterHP:       m.hp,
		HPLost:          c.startingHP - c.hp,
		Outcome:         outcome,
		CooldownSeconds: FightCooldown(char.Effects.Haste(), turns),
	}
}
