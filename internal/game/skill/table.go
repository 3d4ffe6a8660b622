// Package skill maps invested character points to skill levels and back.
//
// Each difficulty class has one ascending cost table of (points, relative level)
// entries. Past the top entry every 4 further points buy one more level. Only
// tabulated or extrapolated costs are valid investments, so stepping helpers
// always land on a cost that changes the level by exactly one.
package skill

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// PointsPerExtraLevel is the price of each level beyond a table's top entry.
const PointsPerExtraLevel = 4

// ErrInfeasibleLevel is returned when a requested level lies below the lowest
// relative level a difficulty class can reach.
var ErrInfeasibleLevel = errors.New("skill level is infeasible")

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognised input.
var ErrUnknownDifficulty = errors.New("unknown skill difficulty")

// Difficulty is a skill's difficulty class.
type Difficulty int

// Difficulty classes, cheapest first.
const (
	Easy Difficulty = iota
	Average
	Hard
	VeryHard
)

// String returns the short GURPS abbreviation.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "E"
	case Average:
		return "A"
	case Hard:
		return "H"
	case VeryHard:
		return "VH"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Label returns the long display name.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy"
	case Average:
		return "Average"
	case Hard:
		return "Hard"
	case VeryHard:
		return "Very Hard"
	default:
		return d.String()
	}
}

// ParseDifficulty accepts "E", "A", "H", "VH" or the long names, case-insensitively.
//
// Postcondition: Returns a valid Difficulty or ErrUnknownDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "easy":
		return Easy, nil
	case "a", "average", "avg":
		return Average, nil
	case "h", "hard":
		return Hard, nil
	case "vh", "very_hard", "very-hard", "veryhard", "very hard":
		return VeryHard, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDifficulty)
}

// UnmarshalText lets Difficulty be decoded from YAML and config strings.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText encodes the short abbreviation.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type step struct {
	points   int
	relative int
}

var tables = map[Difficulty][]step{
	Easy: {
		{1, 0}, {2, 1}, {4, 2}, {8, 3}, {12, 4}, {16, 5},
	},
	Average: {
		{1, -1}, {2, 0}, {4, 1}, {8, 2}, {12, 3}, {16, 4}, {20, 5},
	},
	Hard: {
		{1, -2}, {2, -1}, {4, 0}, {8, 1}, {12, 2}, {16, 3}, {20, 4}, {24, 5},
	},
	VeryHard: {
		{1, -3}, {2, -2}, {4, -1}, {8, 0}, {12, 1}, {16, 2}, {20, 3}, {24, 4}, {28, 5},
	},
}

func tableFor(d Difficulty) []step {
	if t, ok := tables[d]; ok {
		return t
	}
	return tables[Average]
}

// MinRelativeLevel is the lowest relative level purchasable at difficulty d.
func MinRelativeLevel(d Difficulty) int {
	return tableFor(d)[0].relative
}

// RelativeLevel returns the level offset bought by points at difficulty d.
//
// Postcondition: ok is false iff points <= 0 (the skill is unset).
func RelativeLevel(points int, d Difficulty) (rel int, ok bool) {
	if points <= 0 {
		return 0, false
	}
	t := tableFor(d)
	top := t[len(t)-1]
	if points > top.points {
		return top.relative + (points-top.points)/PointsPerExtraLevel, true
	}
	// Greatest threshold <= points. points >= 1 so index 0 always qualifies.
	i := sort.Search(len(t), func(i int) bool { return t[i].points > points }) - 1
	return t[i].relative, true
}

// LevelForPoints returns governing + RelativeLevel(points, d).
//
// Postcondition: ok is false iff points <= 0.
func LevelForPoints(points int, d Difficulty, governing int) (level int, ok bool) {
	rel, ok := RelativeLevel(points, d)
	if !ok {
		return 0, false
	}
	return governing + rel, true
}

// PointsForLevel returns the cheapest investment reaching desired at difficulty d.
//
// Postcondition: Returns ErrInfeasibleLevel (wrapped) when desired-governing is below
// MinRelativeLevel(d); otherwise LevelForPoints(result, d, governing) == desired.
func PointsForLevel(desired int, d Difficulty, governing int) (int, error) {
	rel := desired - governing
	t := tableFor(d)
	if rel < t[0].relative {
		return 0, fmt.Errorf("level %d (%+d) at %s, minimum %+d: %w",
			desired, rel, d, t[0].relative, ErrInfeasibleLevel)
	}
	top := t[len(t)-1]
	if rel > top.relative {
		return top.points + PointsPerExtraLevel*(rel-top.relative), nil
	}
	for _, s := range t {
		if s.relative == rel {
			return s.points, nil
		}
	}
	// Tables are contiguous in relative level; unreachable for valid tables.
	return 0, fmt.Errorf("level %d at %s: %w", desired, d, ErrInfeasibleLevel)
}

// NextValidPointCost returns the nearest valid investment strictly above
// (direction > 0) or below (direction < 0) current. A zero direction returns current.
//
// Postcondition: result >= 0; result is 0, a tabulated cost, or an extrapolated cost.
func NextValidPointCost(current int, d Difficulty, direction int) int {
	t := tableFor(d)
	top := t[len(t)-1]
	switch {
	case direction > 0:
		if current < 0 {
			current = 0
		}
		for _, s := range t {
			if s.points > current {
				return s.points
			}
		}
		extra := (current-top.points)/PointsPerExtraLevel + 1
		return top.points + extra*PointsPerExtraLevel
	case direction < 0:
		if current <= t[0].points {
			return 0
		}
		if current > top.points {
			// Largest extrapolated cost strictly below current.
			extra := (current - top.points - 1) / PointsPerExtraLevel
			return top.points + extra*PointsPerExtraLevel
		}
		prev := 0
		for _, s := range t {
			if s.points >= current {
				break
			}
			prev = s.points
		}
		return prev
	default:
		return current
	}
}

// IsValidPointCost reports whether points is 0 or a tabulated/extrapolated cost.
func IsValidPointCost(points int, d Difficulty) bool {
	if points == 0 {
		return true
	}
	if points < 0 {
		return false
	}
	t := tableFor(d)
	top := t[len(t)-1]
	if points > top.points {
		return (points-top.points)%PointsPerExtraLevel == 0
	}
	for _, s := range t {
		if s.points == points {
			return true
		}
	}
	return false
}

// Describe renders the relative level for points against attr, e.g. "DX+2" or "IQ-1".
// An unset skill renders as "unset".
func Describe(points int, d Difficulty, attr string) string {
	rel, ok := RelativeLevel(points, d)
	if !ok {
		return "unset"
	}
	if rel == 0 {
		return attr
	}
	return fmt.Sprintf("%s%+d", attr, rel)
}

// Rating buckets a final skill level for display.
type Rating string

// Rating buckets.
const (
	RatingPoor      Rating = "Poor"
	RatingFair      Rating = "Fair"
	RatingGood      Rating = "Good"
	RatingExcellent Rating = "Excellent"
)

// RatingFor returns the display bucket for level.
func RatingFor(level int) Rating {
	switch {
	case level >= 20:
		return RatingExcellent
	case level >= 16:
		return RatingGood
	case level >= 12:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Automatic reports whether a level is high enough that routine uses need no roll.
func Automatic(level int) bool {
	return level >= 16
}
