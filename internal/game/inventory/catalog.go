package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Template is an equipment preset loaded from YAML. Fields that do not apply
// to Kind are ignored.
type Template struct {
	Name        string  `yaml:"name"`
	Kind        Kind    `yaml:"kind"`
	Cost        float64 `yaml:"cost"`
	Weight      float64 `yaml:"weight"`
	Damage      string  `yaml:"damage"`
	Reach       string  `yaml:"reach"`
	Parry       string  `yaml:"parry"`
	Accuracy    int     `yaml:"accuracy"`
	Range       string  `yaml:"range"`
	RateOfFire  string  `yaml:"rate_of_fire"`
	Shots       string  `yaml:"shots"`
	Bulk        string  `yaml:"bulk"`
	MinST       int     `yaml:"min_st"`
	Location    string  `yaml:"location"`
	DR          int     `yaml:"dr"`
	Description string  `yaml:"description"`
}

// Validate checks that the Template satisfies its invariants.
//
// Precondition: t is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (t *Template) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if t.Kind == "" {
		errs = append(errs, errors.New("kind must not be empty"))
	}
	if t.Cost < 0 {
		errs = append(errs, errors.New("cost must be >= 0"))
	}
	if t.Weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if t.Kind == KindMelee || t.Kind == KindRanged {
		if t.Damage == "" {
			errs = append(errs, fmt.Errorf("damage is required when kind is %s", t.Kind))
		}
	}
	if t.Kind == KindArmor && t.DR < 0 {
		errs = append(errs, errors.New("dr must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("equipment template validation failed: %v", errs)
	}
	return nil
}

// Item builds an unsaved item from the template.
//
// Precondition: t passed Validate.
func (t *Template) Item() Item {
	c := Common{Name: t.Name, Cost: t.Cost, Weight: t.Weight}
	switch t.Kind {
	case KindMelee:
		return &MeleeWeapon{Common: c, MeleeStats: MeleeStats{
			Damage: t.Damage, Reach: t.Reach, Parry: t.Parry, MinST: t.MinST,
		}}
	case KindRanged:
		return &RangedWeapon{Common: c, RangedStats: RangedStats{
			Damage: t.Damage, Accuracy: t.Accuracy, Range: t.Range, RateOfFire: t.RateOfFire,
			Shots: t.Shots, MinST: t.MinST, Bulk: t.Bulk,
		}}
	case KindArmor:
		return &Armor{Common: c, ArmorStats: ArmorStats{Location: t.Location, DR: t.DR}}
	default:
		return &Gear{Common: c, Description: t.Description}
	}
}

type templateFile struct {
	Equipment []*Template `yaml:"equipment"`
}

// LoadTemplates reads all *.yaml and *.yml files in dir. Each file holds a
// top-level "equipment" list.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid templates or the first encountered error.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadTemplates: cannot read directory %q: %w", dir, err)
	}

	var out []*Template
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadTemplates: cannot read file %q: %w", path, err)
		}
		var f templateFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("LoadTemplates: cannot parse file %q: %w", path, err)
		}
		for _, t := range f.Equipment {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("LoadTemplates: invalid item in %q: %w", path, err)
			}
			out = append(out, t)
		}
	}
	return out, nil
}
