// Package monster provides monster definitions loaded from YAML and converts
// them into the effect tables the simulator fights against.
package monster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/fightsim/internal/game/effect"
)

// Definition defines a monster kind loaded from YAML.
type Definition struct {
	Code           string         `yaml:"code"`
	Name           string         `yaml:"name"`
	Level          int            `yaml:"level"`
	HP             int            `yaml:"hp"`
	Attack         map[string]int `yaml:"attack"`
	Resistance     map[string]int `yaml:"resistance"`
	CriticalStrike int            `yaml:"critical_strike"`
	Initiative     int            `yaml:"initiative"`
	// Effects carries the monster's special effects (burn, poison,
	// reconstitution, corrupted, lifesteal, healing).
	Effects effect.Table `yaml:"effects"`
}

// Validate checks that the Definition satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *Definition) Validate() error {
	var errs []error
	if d.Code == "" {
		errs = append(errs, errors.New("code must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.Level < 1 {
		errs = append(errs, errors.New("level must be >= 1"))
	}
	if d.HP < 1 {
		errs = append(errs, errors.New("hp must be >= 1"))
	}
	if d.CriticalStrike < 0 || d.CriticalStrike > 100 {
		errs = append(errs, fmt.Errorf("critical_strike %d must be in [0, 100]", d.CriticalStrike))
	}
	for name, v := range d.Attack {
		if _, ok := effect.ParseDamageType(name); !ok {
			errs = append(errs, fmt.Errorf("attack: unknown damage type %q", name))
		}
		if v < 0 {
			errs = append(errs, fmt.Errorf("attack %s must be >= 0", name))
		}
	}
	for name := range d.Resistance {
		if _, ok := effect.ParseDamageType(name); !ok {
			errs = append(errs, fmt.Errorf("resistance: unknown damage type %q", name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("monster %q validation failed: %w", d.Code, errors.Join(errs...))
	}
	return nil
}

// Table folds the definition's base stats and special effects into one table.
//
// Postcondition: Base stats are emitted in damage-type order ahead of
// d.Effects, so an explicit entry in d.Effects overrides the base stat.
func (d *Definition) Table() effect.Table {
	out := effect.Table{{Code: effect.HP, Value: d.HP}}
	for _, t := range effect.DamageTypes {
		if v := d.Attack[t.String()]; v != 0 {
			out = append(out, effect.Effect{Code: t.AttackCode(), Value: v})
		}
	}
	for _, t := range effect.DamageTypes {
		if v := d.Resistance[t.String()]; v != 0 {
			out = append(out, effect.Effect{Code: t.ResistanceCode(), Value: v})
		}
	}
	if d.CriticalStrike != 0 {
		out = append(out, effect.Effect{Code: effect.CriticalStrike, Value: d.CriticalStrike})
	}
	if d.Initiative != 0 {
		out = append(out, effect.Effect{Code: effect.Initiative, Value: d.Initiative})
	}
	return append(out, d.Effects...)
}

// LoadFromBytes parses a single Definition from raw YAML bytes.
//
// Postcondition: Returns a validated *Definition, or an error.
func LoadFromBytes(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing monster YAML: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDefinitions reads all *.yaml and *.yml files from dir and returns the
// parsed definitions.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid definitions or the first encountered error.
func LoadDefinitions(dir string) ([]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading monsters dir %q: %w", dir, err)
	}

	var defs []*Definition
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		d, err := LoadFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		defs = append(defs, d)
	}
	return defs, nil
}
