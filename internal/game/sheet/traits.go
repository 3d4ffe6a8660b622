package sheet

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

// TraitSpec describes a trait to add. Cost is given as a magnitude; its sign
// is derived from Kind.
type TraitSpec struct {
	Name        string
	Kind        trait.Kind
	Cost        int
	Level       *int
	Description string
}

// TraitSpecFrom builds a TraitSpec from a catalog template.
func TraitSpecFrom(t *trait.Template) TraitSpec {
	return TraitSpec{Name: t.Name, Kind: t.Kind, Cost: t.Cost, Level: t.Level, Description: t.Description}
}

// AddTrait adds a trait and returns its generated ID. Advantages must be
// affordable; disadvantages always succeed.
func (s *Sheet) AddTrait(spec TraitSpec) (string, error) {
	t := trait.Trait{
		ID:          uuid.New().String(),
		Name:        spec.Name,
		Kind:        spec.Kind,
		Cost:        spec.Cost,
		Description: spec.Description,
	}
	if spec.Level != nil {
		lvl := *spec.Level
		t.Level = &lvl
	}
	t = t.Normalize()
	fields := []zap.Field{zap.String("trait", t.Name), zap.String("id", t.ID)}
	if err := t.Valid(); err != nil {
		err = fmt.Errorf("trait %q: %w: %w", t.Name, ErrInvalidTrait, err)
		s.reject("add trait", err, fields...)
		return "", err
	}
	next := s.build.clone()
	next.traits = append(next.traits, t)
	if err := s.commit("add trait", next, fields...); err != nil {
		return "", err
	}
	return t.ID, nil
}

// RemoveTrait removes the trait with id. Removing a disadvantage gives its
// points back to the build and must therefore be affordable.
func (s *Sheet) RemoveTrait(id string) error {
	i, err := s.traitIndex("remove trait", id)
	if err != nil {
		return err
	}
	next := s.build.clone()
	next.traits = append(next.traits[:i], next.traits[i+1:]...)
	return s.commit("remove trait", next, zap.String("id", id))
}

// EditTrait applies e to the trait with id. Kind and cost edits re-derive the
// cost sign.
func (s *Sheet) EditTrait(id string, e trait.Edit) error {
	i, err := s.traitIndex("edit trait", id)
	if err != nil {
		return err
	}
	next := s.build.clone()
	edited, err := trait.Apply(next.traits[i], e)
	if err != nil {
		err = fmt.Errorf("trait %q: %w: %w", id, ErrInvalidTrait, err)
		s.reject("edit trait", err, zap.String("id", id))
		return err
	}
	next.traits[i] = edited
	return s.commit("edit trait", next, zap.String("id", id), zap.String("trait", edited.Name))
}

// Trait returns a copy of the trait with id.
func (s *Sheet) Trait(id string) (trait.Trait, bool) {
	for _, t := range s.build.traits {
		if t.ID == id {
			if t.Level != nil {
				lvl := *t.Level
				t.Level = &lvl
			}
			return t, true
		}
	}
	return trait.Trait{}, false
}

func (s *Sheet) traitIndex(op, id string) (int, error) {
	for i, t := range s.build.traits {
		if t.ID == id {
			return i, nil
		}
	}
	err := fmt.Errorf("trait %q: %w", id, ErrUnknownTrait)
	s.reject(op, err, zap.String("id", id))
	return -1, err
}
