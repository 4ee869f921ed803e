package simulator

import (
	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/game/effect"
)

const (
	baseHP         = 115
	hpPerLevel     = 5
	baseInitiative = 100

	// burnDecay is the factor applied to burning after each application.
	burnDecay = 0.90
	// healingPeriod is the turn interval of periodic healing.
	healingPeriod = 3
)

// Kind distinguishes the character side from the monster side.
type Kind int

const (
	KindCharacter Kind = iota
	KindMonster
)

// String returns a human-readable side label.
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// state is the fight-scoped mutable data shared by both sides.
//
// Invariant: res only ever decreases; turn starts at 1 and only increases.
type state struct {
	effects    effect.Table
	maxHP      int
	hp         int
	turn       int
	burning    int
	poisoned   int
	res        [len(effect.DamageTypes)]int
	initiative int
	// deathless keeps the side acting at or below zero health.
	deathless bool
}

func newState(effects effect.Table, maxHP, hp, initiative int) state {
	s := state{
		effects:    effects,
		maxHP:      maxHP,
		hp:         hp,
		turn:       1,
		initiative: initiative,
	}
	for _, t := range effect.DamageTypes {
		s.res[t] = effects.Resistance(t)
	}
	return s
}

func (s *state) resistance(t effect.DamageType) int { return s.res[t] }

func (s *state) alive() bool { return s.hp > 0 || s.deathless }

// heal raises health by amount, clamped to max health.
func (s *state) heal(amount int) {
	if missing := s.maxHP - s.hp; amount > missing {
		amount = missing
	}
	s.hp += amount
}

func (s *state) damage(amount int) { s.hp -= amount }

// sufferBurning applies the current burn then decays it.
//
// Postcondition: burning strictly decreases while positive and never goes negative.
func (s *state) sufferBurning() {
	s.damage(s.burning)
	next := round(float64(s.burning) * burnDecay)
	if next >= s.burning {
		next = s.burning - 1
	}
	if next < 0 {
		next = 0
	}
	s.burning = next
}

// corrupt drains the resistance of type t by this side's own corrupted value.
func (s *state) corrupt(t effect.DamageType) {
	s.res[t] -= s.effects.Corrupted()
}

// critlessDamageAgainst sums the rounded critless damage of every type
// against target's current resistances.
func (s *state) critlessDamageAgainst(target *state) int {
	total := 0
	for _, t := range effect.DamageTypes {
		total += round(AverageDamage(s.effects.Attack(t), s.effects.DamageIncrease(t), 0, target.resistance(t)))
	}
	return total
}

// fighter is one side of a fight. The scheduler drives both variants through
// this interface.
type fighter interface {
	kind() Kind
	base() *state
	// restoreIfLow consumes restoring utilities; a no-op for monsters.
	restoreIfLow()
}

// utilitySlot is one consumable utility slot of the character.
type utilitySlot struct {
	restore int
	charges int
}

type characterState struct {
	state
	startingHP int
	utilities  [2]utilitySlot
}

func newCharacterState(c Character, p Params) *characterState {
	maxHP := baseHP + hpPerLevel*c.Level + c.Effects.Health()
	starting := maxHP - p.MissingHP
	cs := &characterState{
		state:      newState(c.Effects, maxHP, starting, baseInitiative+c.Effects.Initiative()),
		startingHP: starting,
		utilities: [2]utilitySlot{
			{restore: c.Utility1.Restore(), charges: p.Utility1Quantity},
			{restore: c.Utility2.Restore(), charges: p.Utility2Quantity},
		},
	}
	cs.deathless = p.IgnoreDeath
	return cs
}

func (c *characterState) kind() Kind { return KindCharacter }
func (c *characterState) base() *state { return &c.state }

func (c *characterState) restoreIfLow() {
	for i := range c.utilities {
		u := &c.utilities[i]
		if u.charges > 0 && u.restore > 0 {
			c.heal(u.restore)
			u.charges--
		}
	}
}

type monsterState struct {
	state
}

func newMonsterState(effects effect.Table) *monsterState {
	hp := effects.Health()
	return &monsterState{state: newState(effects, hp, hp, effects.Initiative())}
}

func (m *monsterState) kind() Kind { return KindMonster }
func (m *monsterState) base() *state { return &m.state }
func (m *monsterState) restoreIfLow() {}

// TurnEvent describes one resolved turn.
type TurnEvent struct {
	// Turn is the fight-wide turn number, starting at 1.
	Turn int
	// Actor is the side that took the turn.
	Actor Kind
	// Hits are the hits landed this turn, in resolution order.
	Hits []Hit
	// ActorHP and TargetHP are the healths after the turn.
	ActorHP  int
	TargetHP int
	// TargetResistances are the target's resistances after the turn, indexed by DamageType.
	TargetResistances [4]int
}

// takeTurn executes one scheduled turn of self against target and returns the
// hits landed.
//
// Precondition: self and target are distinct sides of the same fight.
// Postcondition: self's turn counter is incremented unless the fight ended
// during the turn.
func takeTurn(self, target fighter, mode Mode, src dice.Source) []Hit {
	s, o := self.base(), target.base()

	if s.turn == s.effects.Reconstitution() {
		s.hp = s.maxHP
	}
	if s.hp < s.maxHP/2 {
		self.restoreIfLow()
	}
	if s.turn%healingPeriod == 0 {
		s.heal(round(float64(s.maxHP) * float64(s.effects.Healing()) * 0.01))
	}
	if s.burning > 0 {
		s.sufferBurning()
		if !s.alive() {
			return nil
		}
	}
	if s.poisoned > 0 {
		s.damage(s.poisoned)
		if !s.alive() {
			return nil
		}
	}
	if s.turn == 1 {
		o.burning = s.critlessDamageAgainst(o) * s.effects.Burn() / 100
		o.poisoned = s.effects.Poison()
	}

	hits := hitsAgainst(s.effects, o, mode, src)
	for i, h := range hits {
		o.damage(h.Damage)
		if h.Critical {
			s.heal(h.Damage * s.effects.Lifesteal() / 100)
		}
		if !o.alive() {
			return hits[:i+1]
		}
		if o.effects.Corrupted() > 0 {
			o.corrupt(h.Type)
		}
	}
	s.turn++
	return hits
}
