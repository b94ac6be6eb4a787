package seasonality

import (
	"encoding/json"
	"math"
)

// MonthsInYear is the size of every calendar this package produces.
const MonthsInYear = 12

// AllMonths returns 1..12.
func AllMonths() []int {
	months := make([]int, MonthsInYear)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

// SanitizeMonths keeps the integer months in [1,12] from a decoded JSON list,
// drops duplicates and returns them ascending. Anything that is not a list
// yields an empty slice. Bad entries are skipped, never reported.
func SanitizeMonths(v any) []int {
	var seen [MonthsInYear + 1]bool

	switch items := v.(type) {
	case []any:
		for _, item := range items {
			if m, ok := monthValue(item); ok {
				seen[m] = true
			}
		}
	case []int:
		for _, m := range items {
			if m >= 1 && m <= MonthsInYear {
				seen[m] = true
			}
		}
	}

	out := make([]int, 0, MonthsInYear)
	for m := 1; m <= MonthsInYear; m++ {
		if seen[m] {
			out = append(out, m)
		}
	}
	return out
}

func monthValue(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f != math.Trunc(f) || f < 1 || f > MonthsInYear {
		return 0, false
	}
	return int(f), true
}

func contains(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
