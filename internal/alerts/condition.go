package alerts

import (
	"strconv"
	"strings"

	"github.com/fitlevel/fitlevel/internal/levels"
	"github.com/fitlevel/fitlevel/internal/store"
)

// evalCondition evaluates a rule condition string against a level record.
//
// Supported expressions (field operator value):
//
//	global_points < 1.5
//	beginner_count >= 3
//	advanced_count >= 4
//	global_level == BEGINNER
//	category.PUSH == BEGINNER
//
// Returns (fires bool, triggering value float64).
// Returns (false, 0) if the expression cannot be parsed or the field is unknown.
func evalCondition(cond string, rec *store.LevelRecord) (bool, float64) {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return false, 0
	}
	field, op, rhs := parts[0], parts[1], parts[2]

	switch {
	case field == "global_level":
		if op == "==" {
			return rec.Result.GlobalLevel == levels.Level(rhs), 0
		}
		return false, 0

	case strings.HasPrefix(field, "category."):
		if op != "==" {
			return false, 0
		}
		key := levels.Category(strings.TrimPrefix(field, "category."))
		lvl, ok := rec.Result.PerCategory[key]
		if !ok {
			return false, 0
		}
		return lvl == levels.Level(rhs), float64(lvl.Points())

	default:
		v, ok := numericField(field, rec)
		if !ok {
			return false, 0
		}
		threshold, err := strconv.ParseFloat(rhs, 64)
		if err != nil {
			return false, 0
		}
		return compareFloat(v, op, threshold), v
	}
}

// numericField maps a field name to its value in the record.
func numericField(field string, rec *store.LevelRecord) (float64, bool) {
	switch field {
	case "global_points":
		return rec.Result.GlobalPoints, true
	case "beginner_count":
		return float64(countLevel(rec, levels.LevelBeginner)), true
	case "intermediate_count":
		return float64(countLevel(rec, levels.LevelIntermediate)), true
	case "advanced_count":
		return float64(countLevel(rec, levels.LevelAdvanced)), true
	default:
		return 0, false
	}
}

func countLevel(rec *store.LevelRecord, want levels.Level) int {
	n := 0
	for _, l := range rec.Result.PerCategory {
		if l == want {
			n++
		}
	}
	return n
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) bool {
	switch op {
	case ">":
		return v > threshold
	case ">=":
		return v >= threshold
	case "<":
		return v < threshold
	case "<=":
		return v <= threshold
	case "==":
		return v == threshold
	default:
		return false
	}
}
