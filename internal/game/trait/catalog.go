package trait

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Template is a catalog entry a player can add to a sheet.
type Template struct {
	Name        string `yaml:"name"`
	Kind        Kind   `yaml:"kind"`
	Cost        int    `yaml:"cost"`
	Level       *int   `yaml:"level"`
	Description string `yaml:"description"`
}

// Validate checks that the Template satisfies its invariants.
func (t *Template) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if t.Kind == "" {
		errs = append(errs, errors.New("kind must not be empty"))
	}
	if t.Level != nil && *t.Level < 1 {
		errs = append(errs, ErrInvalidLevel)
	}
	if len(errs) > 0 {
		return fmt.Errorf("trait template validation failed: %v", errs)
	}
	return nil
}

// Trait converts the template into a normalised Trait with the given ID.
func (t *Template) Trait(id string) Trait {
	out := Trait{ID: id, Name: t.Name, Kind: t.Kind, Cost: t.Cost, Description: t.Description}
	if t.Level != nil {
		lvl := *t.Level
		out.Level = &lvl
	}
	return out.Normalize()
}

type templateFile struct {
	Traits []*Template `yaml:"traits"`
}

// LoadTemplates reads all *.yaml and *.yml files in dir. Each file holds a
// top-level "traits" list.
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
		for _, t := range f.Traits {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("LoadTemplates: invalid trait in %q: %w", path, err)
			}
			out = append(out, t)
		}
	}
	return out, nil
}
