package skill

import "strings"

// Skill is a purchased or preset skill on a character sheet.
//
// Points must be 0 or a valid cost for Difficulty. When Points is 0 the
// computed level is unset and Preset, if non-empty, is the value to display.
type Skill struct {
	ID         string
	Name       string
	Attribute  string
	Difficulty Difficulty
	Points     int
	Preset     string
}

// Level returns the computed level given the governing attribute's value.
//
// Postcondition: ok is false iff Points == 0.
func (s Skill) Level(governing int) (int, bool) {
	return LevelForPoints(s.Points, s.Difficulty, governing)
}

// HasPreset reports whether a non-blank preset text is recorded.
func (s Skill) HasPreset() bool {
	return strings.TrimSpace(s.Preset) != ""
}
