// Package gear tracks the items a character has equipped and aggregates them
// into the simulator's character input.
package gear

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/fightsim/internal/game/effect"
	"github.com/cory-johannsen/fightsim/internal/game/item"
	"github.com/cory-johannsen/fightsim/internal/game/simulator"
)

// Slot identifies an equipment position on a character.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotShield    Slot = "shield"
	SlotHelmet    Slot = "helmet"
	SlotBodyArmor Slot = "body_armor"
	SlotLegArmor  Slot = "leg_armor"
	SlotBoots     Slot = "boots"
	SlotRing1     Slot = "ring1"
	SlotRing2     Slot = "ring2"
	SlotAmulet    Slot = "amulet"
	SlotArtifact1 Slot = "artifact1"
	SlotArtifact2 Slot = "artifact2"
	SlotArtifact3 Slot = "artifact3"
	SlotUtility1  Slot = "utility1"
	SlotUtility2  Slot = "utility2"
)

// Slots lists every slot in display order.
var Slots = []Slot{
	SlotWeapon, SlotShield, SlotHelmet, SlotBodyArmor, SlotLegArmor, SlotBoots,
	SlotRing1, SlotRing2, SlotAmulet,
	SlotArtifact1, SlotArtifact2, SlotArtifact3,
	SlotUtility1, SlotUtility2,
}

// slotTypes maps each slot to the item type it accepts.
var slotTypes = map[Slot]string{
	SlotWeapon:    item.TypeWeapon,
	SlotShield:    item.TypeShield,
	SlotHelmet:    item.TypeHelmet,
	SlotBodyArmor: item.TypeBodyArmor,
	SlotLegArmor:  item.TypeLegArmor,
	SlotBoots:     item.TypeBoots,
	SlotRing1:     item.TypeRing,
	SlotRing2:     item.TypeRing,
	SlotAmulet:    item.TypeAmulet,
	SlotArtifact1: item.TypeArtifact,
	SlotArtifact2: item.TypeArtifact,
	SlotArtifact3: item.TypeArtifact,
	SlotUtility1:  item.TypeUtility,
	SlotUtility2:  item.TypeUtility,
}

// ParseSlot maps a slot name to its Slot.
func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if _, ok := slotTypes[slot]; !ok {
		return "", fmt.Errorf("gear: unknown slot %q", s)
	}
	return slot, nil
}

// Accepts reports the item type the slot holds.
func (s Slot) Accepts() string { return slotTypes[s] }

// IsUtility reports whether s is one of the two utility slots.
func (s Slot) IsUtility() bool { return s == SlotUtility1 || s == SlotUtility2 }

// Gear is a set of equipped items.
// Invariant: each Slot holds at most one item whose type matches the slot.
type Gear struct {
	slots map[Slot]*item.Def
}

// New returns an empty Gear.
//
// Postcondition: all slots are empty.
func New() *Gear {
	return &Gear{slots: make(map[Slot]*item.Def)}
}

// FromCodes equips the items named by codes, keyed by slot name, from reg.
//
// Postcondition: Returns an error naming every unknown slot, unknown code, or
// type mismatch.
func FromCodes(reg *item.Registry, codes map[string]string) (*Gear, error) {
	g := New()
	var errs []error
	for name, code := range codes {
		slot, err := ParseSlot(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		def, ok := reg.Get(code)
		if !ok {
			errs = append(errs, fmt.Errorf("gear: slot %s: unknown item %q", name, code))
			continue
		}
		if err := g.Equip(slot, def); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

// Equip places def into slot, replacing any item already there.
//
// Precondition:  def must not be nil.
// Postcondition: on success Equipped(slot) == def.
func (g *Gear) Equip(slot Slot, def *item.Def) error {
	if def == nil {
		return errors.New("gear: Gear.Equip: def must not be nil")
	}
	want, ok := slotTypes[slot]
	if !ok {
		return fmt.Errorf("gear: unknown slot %q", slot)
	}
	if def.Type != want {
		return fmt.Errorf("gear: slot %s accepts %s, got %s %q", slot, want, def.Type, def.Code)
	}
	g.slots[slot] = def
	return nil
}

// Unequip empties slot.
//
// Postcondition: Equipped(slot) == nil.
func (g *Gear) Unequip(slot Slot) {
	delete(g.slots, slot)
}

// Equipped returns the item in slot, or nil if empty.
func (g *Gear) Equipped(slot Slot) *item.Def {
	return g.slots[slot]
}

// Clone returns an independent copy of g sharing the item definitions.
func (g *Gear) Clone() *Gear {
	out := New()
	for s, d := range g.slots {
		out.slots[s] = d
	}
	return out
}

// Effects sums the effects of every equipped item by code, utilities
// included, so boost_* codes on potions reach the fight. Restore is read from
// Utility1 and Utility2 only.
//
// Postcondition: Each code appears at most once; slots are visited in Slots order.
func (g *Gear) Effects() effect.Table {
	tables := make([]effect.Table, 0, len(g.slots))
	for _, s := range Slots {
		if d := g.slots[s]; d != nil {
			tables = append(tables, d.Effects)
		}
	}
	return effect.Sum(tables...)
}

// Utility1 returns the effects of the item in SlotUtility1, or nil.
func (g *Gear) Utility1() effect.Table { return g.utility(SlotUtility1) }

// Utility2 returns the effects of the item in SlotUtility2, or nil.
func (g *Gear) Utility2() effect.Table { return g.utility(SlotUtility2) }

func (g *Gear) utility(s Slot) effect.Table {
	if d := g.slots[s]; d != nil {
		return d.Effects
	}
	return nil
}

// Codes returns the equipped item code per slot name.
func (g *Gear) Codes() map[string]string {
	out := make(map[string]string, len(g.slots))
	for s, d := range g.slots {
		out[string(s)] = d.Code
	}
	return out
}

// Character builds the simulator input for a character of the given level
// wearing g.
func (g *Gear) Character(level int) simulator.Character {
	return simulator.Character{
		Level:    level,
		Effects:  g.Effects(),
		Utility1: g.Utility1(),
		Utility2: g.Utility2(),
	}
}
