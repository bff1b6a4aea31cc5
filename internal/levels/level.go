package levels

import (
	"fmt"
	"strings"
)

// Level is the ordinal fitness classification for one category or globally.
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

// Points returns the stable integer rank used for averaging:
// BEGINNER=1, INTERMEDIATE=2, ADVANCED=3. Ordering and equality comparisons
// elsewhere use the Level values directly, never these ranks.
func (l Level) Points() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 0
	}
}

// Boundaries for bucketing an average rank back into a Level. Defined once
// so the naive bucketing and the corrective rule can never drift apart.
// Equivalent to round-half-up on the 1–3 rank scale.
const (
	intermediateMinPoints = 1.5
	advancedMinPoints     = 2.5
)

// LevelFromPoints buckets an average rank (range [1.0, 3.0]) into the
// nearest Level.
func LevelFromPoints(avg float64) Level {
	switch {
	case avg >= advancedMinPoints:
		return LevelAdvanced
	case avg >= intermediateMinPoints:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Category is one of the five fitness dimensions, each driven by one
// exercise measurement.
type Category string

const (
	CategoryLower Category = "LOWER" // squats
	CategoryPush  Category = "PUSH"  // push-ups
	CategoryPull  Category = "PULL"  // reverse snow angels
	CategoryCore  Category = "CORE"  // plank hold
	CategoryCond  Category = "COND"  // mountain climbers
)

// Categories fixes the canonical iteration order.
var Categories = []Category{
	CategoryLower,
	CategoryPush,
	CategoryPull,
	CategoryCore,
	CategoryCond,
}

// CategoryLevels maps each of the five categories to its Level.
// A well-formed value has exactly the five keys in Categories.
type CategoryLevels map[Category]Level

// PushupVariant identifies which push-up form a rep count was measured with.
type PushupVariant string

const (
	PushupClassic PushupVariant = "classic"
	PushupKnee    PushupVariant = "knee"
	PushupIncline PushupVariant = "incline"
	PushupWall    PushupVariant = "wall"
)

// ParsePushupVariant normalises s (trimmed, lowercased) and returns the
// matching variant, or an error for anything outside the closed set.
func ParsePushupVariant(s string) (PushupVariant, error) {
	switch v := PushupVariant(strings.ToLower(strings.TrimSpace(s))); v {
	case PushupClassic, PushupKnee, PushupIncline, PushupWall:
		return v, nil
	default:
		return "", fmt.Errorf("invalid push-up variant %q: want classic|knee|incline|wall", s)
	}
}
