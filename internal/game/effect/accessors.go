package effect

// Health returns hp plus boost_hp.
func (t Table) Health() int { return t.Value(HP) + t.Value(BoostHP) }

// Heal returns the flat heal granted by consuming an item.
func (t Table) Heal() int { return t.Value(Heal) }

// Healing returns the percentage of max health healed every third turn.
func (t Table) Healing() int { return t.Value(Healing) }

// Restore returns the health restored by a utility item.
func (t Table) Restore() int { return t.Value(Restore) }

// Haste returns the fight cooldown reduction percentage.
func (t Table) Haste() int { return t.Value(Haste) }

// Initiative returns the raw initiative effect.
func (t Table) Initiative() int { return t.Value(Initiative) }

// Threat returns the threat effect.
func (t Table) Threat() int { return t.Value(Threat) }

// Attack returns the attack value for damage type d.
func (t Table) Attack(d DamageType) int { return t.Value(d.AttackCode()) }

// DamageIncrease returns the damage increase percentage for d: the generic dmg
// plus the typed dmg and boost_dmg codes.
func (t Table) DamageIncrease(d DamageType) int {
	return t.Value(Dmg) + t.Value(d.DamageCode()) + t.Value(d.BoostDamageCode())
}

// Resistance returns the resistance percentage for d.
func (t Table) Resistance(d DamageType) int { return t.Value(d.ResistanceCode()) }

// CriticalStrike returns the critical strike chance percentage.
func (t Table) CriticalStrike() int { return t.Value(CriticalStrike) }

// Poison returns the flat poison damage inflicted on the opponent each turn.
func (t Table) Poison() int { return t.Value(Poison) }

// Lifesteal returns the percentage of critical damage healed back.
func (t Table) Lifesteal() int { return t.Value(Lifesteal) }

// Burn returns the burn percentage applied on the first turn.
func (t Table) Burn() int { return t.Value(Burn) }

// Reconstitution returns the turn on which a full heal happens, 0 for none.
func (t Table) Reconstitution() int { return t.Value(Reconstitution) }

// Corrupted returns the resistance lost per hit taken.
func (t Table) Corrupted() int { return t.Value(Corrupted) }

// Wisdom returns the wisdom effect.
func (t Table) Wisdom() int { return t.Value(Wisdom) }

// Prospecting returns the prospecting effect.
func (t Table) Prospecting() int { return t.Value(Prospecting) }

// InventorySpace returns the extra inventory space granted.
func (t Table) InventorySpace() int { return t.Value(InventorySpace) }

// SkillCooldownReduction returns the cooldown reduction percentage for s.
// Tools carry negative values.
func (t Table) SkillCooldownReduction(s Skill) int { return t.Value(string(s)) }
