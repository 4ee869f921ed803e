// Package item provides static item definitions loaded from YAML.
package item

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/fightsim/internal/game/effect"
)

// Type constants for Def.Type.
const (
	TypeWeapon     = "weapon"
	TypeShield     = "shield"
	TypeHelmet     = "helmet"
	TypeBodyArmor  = "body_armor"
	TypeLegArmor   = "leg_armor"
	TypeBoots      = "boots"
	TypeRing       = "ring"
	TypeAmulet     = "amulet"
	TypeArtifact   = "artifact"
	TypeUtility    = "utility"
	TypeConsumable = "consumable"
	TypeResource   = "resource"
	TypeRune       = "rune"
	TypeBag        = "bag"
)

// validTypes is the set of valid Def types.
var validTypes = map[string]bool{
	TypeWeapon:     true,
	TypeShield:     true,
	TypeHelmet:     true,
	TypeBodyArmor:  true,
	TypeLegArmor:   true,
	TypeBoots:      true,
	TypeRing:       true,
	TypeAmulet:     true,
	TypeArtifact:   true,
	TypeUtility:    true,
	TypeConsumable: true,
	TypeResource:   true,
	TypeRune:       true,
	TypeBag:        true,
}

// Def defines the static properties of an item loaded from YAML.
type Def struct {
	Code    string       `yaml:"code"`
	Name    string       `yaml:"name"`
	Type    string       `yaml:"type"`
	Level   int          `yaml:"level"`
	Effects effect.Table `yaml:"effects"`
}

// Validate checks that the Def satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *Def) Validate() error {
	var errs []error
	if d.Code == "" {
		errs = append(errs, errors.New("code must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !validTypes[d.Type] {
		errs = append(errs, fmt.Errorf("type %q is not a known item type", d.Type))
	}
	if d.Level < 1 {
		errs = append(errs, errors.New("level must be >= 1"))
	}
	for i, e := range d.Effects {
		if e.Code == "" {
			errs = append(errs, fmt.Errorf("effects[%d]: code must not be empty", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q validation failed: %w", d.Code, errors.Join(errs...))
	}
	return nil
}

// IsEquipment reports whether the item can be worn in a gear slot.
func (d *Def) IsEquipment() bool {
	switch d.Type {
	case TypeConsumable, TypeResource, TypeBag:
		return false
	default:
		return true
	}
}

// IsTool reports whether the item reduces the cooldown of some gathering skill.
func (d *Def) IsTool() bool {
	for _, s := range []effect.Skill{effect.Mining, effect.Woodcutting, effect.Fishing, effect.Alchemy} {
		if d.Effects.SkillCooldownReduction(s) < 0 {
			return true
		}
	}
	return false
}

// LoadItemFromBytes parses a single item definition from raw YAML bytes.
//
// Postcondition: Returns a validated *Def, or an error.
func LoadItemFromBytes(data []byte) (*Def, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing item YAML: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as a
// Def, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Defs or the first encountered error.
func LoadItems(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*Def
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		d, err := LoadItemFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", path, err)
		}
		items = append(items, d)
	}
	return items, nil
}
