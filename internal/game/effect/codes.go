package effect

// Effect codes understood by the combat and skill formulas.
const (
	HP             = "hp"
	BoostHP        = "boost_hp"
	Heal           = "heal"
	Healing        = "healing"
	Restore        = "restore"
	Haste          = "haste"
	Dmg            = "dmg"
	CriticalStrike = "critical_strike"
	Poison         = "poison"
	Wisdom         = "wisdom"
	Lifesteal      = "lifesteal"
	Burn           = "burn"
	Reconstitution = "reconstitution"
	Corrupted      = "corrupted"
	Prospecting    = "prospecting"
	InventorySpace = "inventory_space"
	Initiative     = "initiative"
	Threat         = "threat"
)

// DamageType is one of the four elemental damage types.
type DamageType int

const (
	Fire DamageType = iota
	Earth
	Water
	Air
)

// DamageTypes lists every DamageType in evaluation order.
var DamageTypes = [...]DamageType{Fire, Earth, Water, Air}

// String returns the lowercase type name used in effect codes.
func (d DamageType) String() string {
	switch d {
	case Fire:
		return "fire"
	case Earth:
		return "earth"
	case Water:
		return "water"
	case Air:
		return "air"
	default:
		return "unknown"
	}
}

// AttackCode returns the attack code for d, e.g. "attack_fire".
func (d DamageType) AttackCode() string { return "attack_" + d.String() }

// DamageCode returns the damage-increase code for d, e.g. "dmg_fire".
func (d DamageType) DamageCode() string { return "dmg_" + d.String() }

// BoostDamageCode returns the consumable damage-boost code for d, e.g. "boost_dmg_fire".
func (d DamageType) BoostDamageCode() string { return "boost_dmg_" + d.String() }

// ResistanceCode returns the resistance code for d, e.g. "res_fire".
func (d DamageType) ResistanceCode() string { return "res_" + d.String() }

// ParseDamageType maps a type name back to its DamageType.
//
// Postcondition: ok is false for unknown names.
func ParseDamageType(s string) (DamageType, bool) {
	for _, d := range DamageTypes {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Skill is a gathering or crafting skill. Its name doubles as the effect code
// for the skill's cooldown reduction.
type Skill string

const (
	Mining          Skill = "mining"
	Woodcutting     Skill = "woodcutting"
	Fishing         Skill = "fishing"
	Alchemy         Skill = "alchemy"
	Weaponcrafting  Skill = "weaponcrafting"
	Gearcrafting    Skill = "gearcrafting"
	Jewelrycrafting Skill = "jewelrycrafting"
	Cooking         Skill = "cooking"
)
