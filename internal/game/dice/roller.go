package dice

import "go.uber.org/zap"

// Roll evaluates expr using src.
//
// Precondition: expr.Count >= 1 and expr.Sides >= 2; src must be non-nil.
// Postcondition: every die is in [1, expr.Sides].
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	return RollResult{Expr: expr, Dice: rolled}
}

// Roller rolls against a Source and logs every roll.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr under label and logs the result at debug level.
func (r *Roller) Roll(label string, expr Expression) RollResult {
	result := Roll(expr, r.src)
	result.Label = label
	r.logger.Debug("dice roll",
		zap.String("label", label),
		zap.Stringer("expression", expr),
		zap.Ints("dice", result.Dice),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses expr and rolls it unlabeled.
//
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll("", e), nil
}
