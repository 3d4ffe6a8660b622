package skill

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validAttributes lists the attributes a skill may be governed by.
var validAttributes = map[string]bool{"ST": true, "DX": true, "IQ": true, "HT": true}

// Template is a catalog entry a player can add to a sheet.
type Template struct {
	Name       string     `yaml:"name"`
	Attribute  string     `yaml:"attribute"`
	Difficulty Difficulty `yaml:"difficulty"`
	Preset     string     `yaml:"preset"`
}

// Validate checks that the Template satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (t *Template) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !validAttributes[t.Attribute] {
		errs = append(errs, fmt.Errorf("attribute must be one of ST, DX, IQ, HT; got %q", t.Attribute))
	}
	if len(errs) > 0 {
		return fmt.Errorf("skill template validation failed: %v", errs)
	}
	return nil
}

type templateFile struct {
	Skills []*Template `yaml:"skills"`
}

// LoadTemplates reads all *.yaml and *.yml files in dir. Each file holds a
// top-level "skills" list.
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
		for _, t := range f.Skills {
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("LoadTemplates: invalid skill in %q: %w", path, err)
			}
			out = append(out, t)
		}
	}
	return out, nil
}
