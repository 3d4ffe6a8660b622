// Package sheet owns the state of a single point-buy character build. Every
// mutator validates against the point budget, applies atomically and
// recomputes derived values before returning. Callers read the result through
// Snapshot.
package sheet

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/cost"
	"github.com/cory-johannsen/pointbuy/internal/game/ledger"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

// Rejection errors. A mutator returning one of these leaves the sheet unchanged.
var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrBelowFloor         = errors.New("value below floor")
	ErrUnknownSkill       = errors.New("unknown skill")
	ErrUnknownTrait       = errors.New("unknown trait")
	ErrInvalidSkill       = errors.New("invalid skill")
	ErrInvalidTrait       = errors.New("invalid trait")
)

// Re-exported so callers can match every rejection from this package.
var (
	ErrInfeasibleLevel  = skill.ErrInfeasibleLevel
	ErrUnknownAttribute = attribute.ErrUnknownAttribute
	ErrUnknownModifier  = cost.ErrUnknownModifier
)

// DefaultTotalPoints is the starting budget when Options leaves it unset.
const DefaultTotalPoints = 100

// Options configures a new Sheet.
type Options struct {
	TotalPoints int
	Costs       attribute.Costs
}

// build is the priced portion of a sheet. Mutators work on a clone and swap
// it in only when the change is accepted.
type build struct {
	primaries   attribute.Primaries
	secondaries attribute.Secondaries
	modifiers   *cost.ModifierSet
	skills      []skill.Skill
	traits      []trait.Trait
}

func (b build) clone() build {
	c := build{
		primaries:   make(attribute.Primaries, len(b.primaries)),
		secondaries: make(attribute.Secondaries, len(b.secondaries)),
		modifiers:   b.modifiers.Clone(),
		skills:      append([]skill.Skill(nil), b.skills...),
		traits:      make([]trait.Trait, len(b.traits)),
	}
	for k, v := range b.primaries {
		c.primaries[k] = v
	}
	for k, v := range b.secondaries {
		c.secondaries[k] = v
	}
	for i, t := range b.traits {
		if t.Level != nil {
			lvl := *t.Level
			t.Level = &lvl
		}
		c.traits[i] = t
	}
	return c
}

func (b build) spent() ledger.Breakdown {
	return ledger.Spent(ledger.Inputs{
		Primaries:   b.primaries,
		Secondaries: b.secondaries,
		Modifiers:   b.modifiers,
		Skills:      b.skills,
		Traits:      b.traits,
	})
}

// Sheet is a single character build. It is not safe for concurrent use.
type Sheet struct {
	logger  *zap.Logger
	total   int
	carried float64
	build   build
}

// New returns a sheet with every attribute at its base and nothing purchased.
//
// Precondition: logger is non-nil.
// Postcondition: returns an error only when opts.Costs fails validation.
func New(opts Options, logger *zap.Logger) (*Sheet, error) {
	costs := opts.Costs
	if costs.Primary == nil && costs.Secondary == nil {
		costs = attribute.DefaultCosts()
	}
	if err := costs.Validate(); err != nil {
		return nil, fmt.Errorf("sheet costs: %w", err)
	}
	total := opts.TotalPoints
	if total == 0 {
		total = DefaultTotalPoints
	}
	if total < 0 {
		total = 0
	}
	p := attribute.NewPrimaries(costs)
	return &Sheet{
		logger: logger,
		total:  total,
		build: build{
			primaries:   p,
			secondaries: attribute.NewSecondaries(p, costs),
			modifiers:   cost.NewModifierSet(attribute.ModifierKeys()...),
		},
	}, nil
}

// Remaining returns the unspent budget. It may be negative after the total is lowered.
func (s *Sheet) Remaining() int {
	return s.total - s.build.spent().Total()
}

// commit prices next against the current build and swaps it in when the
// marginal cost is affordable.
//
// Postcondition: on error the sheet is unchanged.
func (s *Sheet) commit(op string, next build, fields ...zap.Field) error {
	before := s.build.spent().Total()
	after := next.spent().Total()
	delta := after - before
	remaining := s.total - before
	if !ledger.CanAfford(delta, remaining) {
		err := fmt.Errorf("%s costs %d, %d remaining: %w", op, delta, remaining, ErrInsufficientPoints)
		s.reject(op, err, fields...)
		return err
	}
	s.build = next
	s.logger.Debug("sheet change applied",
		append(fields, zap.String("op", op), zap.Int("cost", delta), zap.Int("remaining", remaining-delta))...)
	return nil
}

func (s *Sheet) reject(op string, err error, fields ...zap.Field) {
	s.logger.Debug("sheet change rejected", append(fields, zap.String("op", op), zap.Error(err))...)
}

// SetTotalPoints sets the point budget. Negative totals are stored as 0.
// Lowering the total below what is already spent is allowed.
func (s *Sheet) SetTotalPoints(n int) {
	if n < 0 {
		n = 0
	}
	s.total = n
}

// SetTotalPointsText coerces text to an integer and sets the budget.
func (s *Sheet) SetTotalPointsText(text string) {
	s.SetTotalPoints(CoerceInt(text))
}

// TotalPoints returns the point budget.
func (s *Sheet) TotalPoints() int {
	return s.total
}

// SetCarriedWeight records the carried weight. Negative or non-finite values are
// stored as 0. Only encumbrance depends on it; the budget is never consulted.
func (s *Sheet) SetCarriedWeight(w float64) {
	s.carried = CoerceFloat(w)
	if s.carried < 0 {
		s.carried = 0
	}
}

// SetCarriedWeightText coerces text to a weight and records it.
func (s *Sheet) SetCarriedWeightText(text string) {
	s.SetCarriedWeight(CoerceFloat(text))
}

// CarriedWeight returns the recorded carried weight.
func (s *Sheet) CarriedWeight() float64 {
	return s.carried
}

// SetCostModifier sets the percentage modifier for key. Percent is clamped to
// [cost.MinPercent, cost.MaxPercent]. A change that raises the price of
// already-purchased levels must fit in the remaining budget.
func (s *Sheet) SetCostModifier(key string, percent int, enabled bool) error {
	next := s.build.clone()
	if err := next.modifiers.Set(key, percent, enabled); err != nil {
		s.reject("set modifier", err, zap.String("key", key))
		return err
	}
	return s.commit("set modifier", next, zap.String("key", key), zap.Int("percent", percent), zap.Bool("enabled", enabled))
}
