package sheet

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CoerceFloat converts v to a float64. Empty, non-numeric, NaN and infinite
// input all become 0. It never fails.
func CoerceFloat(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CoerceInt converts v to an int, truncating any fraction and clamping to the
// int32 range. Input that CoerceFloat maps to 0 also maps to 0 here.
func CoerceInt(v any) int {
	f := CoerceFloat(v)
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
