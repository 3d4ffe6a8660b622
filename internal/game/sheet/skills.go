package sheet

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
)

// SkillSpec describes a skill to add.
type SkillSpec struct {
	Name       string
	Attribute  string
	Difficulty skill.Difficulty
	Points     int
	Preset     string
}

// SkillSpecFrom builds an unpurchased SkillSpec from a catalog template.
func SkillSpecFrom(t *skill.Template) SkillSpec {
	return SkillSpec{Name: t.Name, Attribute: t.Attribute, Difficulty: t.Difficulty, Preset: t.Preset}
}

// AddSkill adds a skill and returns its generated ID.
//
// Postcondition: Points must be 0 or a valid cost for Difficulty, Attribute
// must be a primary attribute, and Points must be affordable; otherwise an
// error is returned and the sheet is unchanged.
func (s *Sheet) AddSkill(spec SkillSpec) (string, error) {
	fields := []zap.Field{zap.String("skill", spec.Name)}
	if !attribute.IsPrimary(spec.Attribute) {
		err := fmt.Errorf("skill %q governed by %q: %w", spec.Name, spec.Attribute, ErrUnknownAttribute)
		s.reject("add skill", err, fields...)
		return "", err
	}
	if !skill.IsValidPointCost(spec.Points, spec.Difficulty) {
		err := fmt.Errorf("skill %q: %d points is not a valid cost at %s: %w",
			spec.Name, spec.Points, spec.Difficulty, ErrInvalidSkill)
		s.reject("add skill", err, fields...)
		return "", err
	}
	sk := skill.Skill{
		ID:         uuid.New().String(),
		Name:       spec.Name,
		Attribute:  spec.Attribute,
		Difficulty: spec.Difficulty,
		Points:     spec.Points,
		Preset:     spec.Preset,
	}
	next := s.build.clone()
	next.skills = append(next.skills, sk)
	if err := s.commit("add skill", next, append(fields, zap.String("id", sk.ID))...); err != nil {
		return "", err
	}
	return sk.ID, nil
}

// RemoveSkill removes the skill with id, refunding its points.
func (s *Sheet) RemoveSkill(id string) error {
	i, err := s.skillIndex("remove skill", id)
	if err != nil {
		return err
	}
	next := s.build.clone()
	next.skills = append(next.skills[:i], next.skills[i+1:]...)
	return s.commit("remove skill", next, zap.String("id", id))
}

// AdjustSkillPoints moves the skill with id to the next valid point cost in the
// sign of direction. Decrements always succeed; increments must be affordable.
func (s *Sheet) AdjustSkillPoints(id string, direction int) error {
	return s.updateSkill("adjust skill points", id, func(sk *skill.Skill) error {
		sk.Points = skill.NextValidPointCost(sk.Points, sk.Difficulty, direction)
		return nil
	})
}

// SetSkillLevel buys the cheapest point cost that reaches desired.
//
// Postcondition: returns an error wrapping ErrInfeasibleLevel when desired is
// below the difficulty's minimum relative level.
func (s *Sheet) SetSkillLevel(id string, desired int) error {
	return s.updateSkill("set skill level", id, func(sk *skill.Skill) error {
		points, err := skill.PointsForLevel(desired, sk.Difficulty, s.build.primaries.Value(sk.Attribute))
		if err != nil {
			return fmt.Errorf("skill %q: %w", sk.Name, err)
		}
		sk.Points = points
		return nil
	})
}

// SetSkillDifficulty changes the difficulty of the skill with id. Every table
// shares the same valid costs so the points invested are kept.
func (s *Sheet) SetSkillDifficulty(id string, d skill.Difficulty) error {
	return s.updateSkill("set skill difficulty", id, func(sk *skill.Skill) error {
		sk.Difficulty = d
		return nil
	})
}

// SetSkillAttribute changes the governing attribute of the skill with id.
func (s *Sheet) SetSkillAttribute(id, attr string) error {
	return s.updateSkill("set skill attribute", id, func(sk *skill.Skill) error {
		if !attribute.IsPrimary(attr) {
			return fmt.Errorf("skill %q governed by %q: %w", sk.Name, attr, ErrUnknownAttribute)
		}
		sk.Attribute = attr
		return nil
	})
}

// SetSkillPreset records the preset text shown while the skill is unset.
func (s *Sheet) SetSkillPreset(id, preset string) error {
	return s.updateSkill("set skill preset", id, func(sk *skill.Skill) error {
		sk.Preset = preset
		return nil
	})
}

// RenameSkill changes the display name of the skill with id.
func (s *Sheet) RenameSkill(id, name string) error {
	return s.updateSkill("rename skill", id, func(sk *skill.Skill) error {
		sk.Name = name
		return nil
	})
}

// Skill returns a copy of the skill with id.
func (s *Sheet) Skill(id string) (skill.Skill, bool) {
	for _, sk := range s.build.skills {
		if sk.ID == id {
			return sk, true
		}
	}
	return skill.Skill{}, false
}

func (s *Sheet) skillIndex(op, id string) (int, error) {
	for i, sk := range s.build.skills {
		if sk.ID == id {
			return i, nil
		}
	}
	err := fmt.Errorf("skill %q: %w", id, ErrUnknownSkill)
	s.reject(op, err, zap.String("id", id))
	return -1, err
}

func (s *Sheet) updateSkill(op, id string, fn func(*skill.Skill) error) error {
	i, err := s.skillIndex(op, id)
	if err != nil {
		return err
	}
	next := s.build.clone()
	if err := fn(&next.skills[i]); err != nil {
		s.reject(op, err, zap.String("id", id))
		return err
	}
	return s.commit(op, next, zap.String("id", id), zap.String("skill", next.skills[i].Name))
}
