package levels

// Aggregate combines per-category levels into a global Level and the raw
// average of their ranks.
//
// The average is the true numeric mean of the ranks and is never adjusted.
// The discrete level is the bucketed average, with one correction: a profile
// containing both a BEGINNER and an ADVANCED category is capped at
// INTERMEDIATE — overall capability is gated by the weak links. The cap only
// ever lowers the result.
func Aggregate(per CategoryLevels) (Level, float64) {
	var (
		sum         int
		hasBeginner bool
		hasAdvanced bool
	)
	for _, l := range per {
		sum += l.Points()
		switch l {
		case LevelBeginner:
			hasBeginner = true
		case LevelAdvanced:
			hasAdvanced = true
		}
	}

	avg := float64(sum) / float64(len(per))
	global := LevelFromPoints(avg)

	if hasBeginner && hasAdvanced && global == LevelAdvanced {
		global = LevelIntermediate
	}
	return global, avg
}
