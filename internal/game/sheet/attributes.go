package sheet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
)

// SetPrimaryAttribute sets primary attribute id to value and rebases every
// secondary attribute, keeping each one's purchased delta.
//
// Postcondition: returns ErrUnknownAttribute, ErrBelowFloor or
// ErrInsufficientPoints without changing the sheet; otherwise the new value and
// rebased secondaries are in place.
func (s *Sheet) SetPrimaryAttribute(id string, value int) error {
	fields := []zap.Field{zap.String("attribute", id), zap.Int("value", value)}
	p, ok := s.build.primaries[id]
	if !ok {
		err := fmt.Errorf("primary %q: %w", id, ErrUnknownAttribute)
		s.reject("set primary", err, fields...)
		return err
	}
	if value < attribute.PrimaryFloor {
		err := fmt.Errorf("%s %d, floor %d: %w", id, value, attribute.PrimaryFloor, ErrBelowFloor)
		s.reject("set primary", err, fields...)
		return err
	}
	next := s.build.clone()
	p.Value = value
	next.primaries[id] = p
	next.secondaries = attribute.Rebase(next.primaries, next.secondaries)
	return s.commit("set primary", next, fields...)
}

// AdjustPrimaryAttribute moves primary attribute id one level in the sign of direction.
// A zero direction is a no-op.
func (s *Sheet) AdjustPrimaryAttribute(id string, direction int) error {
	p, ok := s.build.primaries[id]
	if !ok {
		return fmt.Errorf("primary %q: %w", id, ErrUnknownAttribute)
	}
	return s.SetPrimaryAttribute(id, p.Value+sign(direction))
}

// AdjustSecondaryAttribute moves secondary attribute id one step (1, or 0.25
// for Basic Speed) in the sign of direction. A decrement that would take the
// value below the attribute's floor is refused.
func (s *Sheet) AdjustSecondaryAttribute(id string, direction int) error {
	fields := []zap.Field{zap.String("attribute", id), zap.Int("direction", direction)}
	sec, ok := s.build.secondaries[id]
	if !ok {
		err := fmt.Errorf("secondary %q: %w", id, ErrUnknownAttribute)
		s.reject("adjust secondary", err, fields...)
		return err
	}
	if direction == 0 {
		return nil
	}
	value := sec.Value + float64(sign(direction))*attribute.StepFor(id)
	if floor := attribute.FloorFor(id); direction < 0 && value < floor {
		err := fmt.Errorf("%s %g, floor %g: %w", id, value, floor, ErrBelowFloor)
		s.reject("adjust secondary", err, fields...)
		return err
	}
	next := s.build.clone()
	sec.Value = value
	next.secondaries[id] = sec
	return s.commit("adjust secondary", next, fields...)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
