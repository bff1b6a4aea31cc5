package levels

// TestResults holds one complete set of exercise measurements. All counts
// are non-negative integers; the HTTP layer validates before constructing,
// so this package does not re-validate.
type TestResults struct {
	// LOWER — squats in 60 seconds.
	MaxSquats int

	// PUSH — push-up rep count and the variant it was measured with.
	PushupsType PushupVariant
	MaxPushUps  int

	// PULL — reverse snow angels in 45 seconds.
	MaxReverseSnowAngels45s int

	// CORE — maximum plank hold in seconds.
	PlankMaxTimeSeconds int

	// COND — mountain climbers in 45 seconds.
	MountainClimbers45s int
}

// LevelResult is the full classification computed from one TestResults.
type LevelResult struct {
	// PerCategory holds the Level for each of the five categories.
	PerCategory CategoryLevels

	// GlobalLevel is the bucketed average, after the bimodal cap.
	GlobalLevel Level

	// GlobalPoints is the uncorrected average of the five ranks,
	// in [1.0, 3.0].
	GlobalPoints float64
}

// ComputeLevels runs the five category scorers and the aggregator.
// Identical input always yields identical output. The only error case is an
// unrecognised push-up variant, which is a contract violation by the caller.
func ComputeLevels(r TestResults) (LevelResult, error) {
	push, err := LevelPush(r.PushupsType, r.MaxPushUps)
	if err != nil {
		return LevelResult{}, err
	}

	per := CategoryLevels{
		CategoryLower: LevelLower(r.MaxSquats),
		CategoryPush:  push,
		CategoryPull:  LevelPull(r.MaxReverseSnowAngels45s),
		CategoryCore:  LevelCore(r.PlankMaxTimeSeconds),
		CategoryCond:  LevelCond(r.MountainClimbers45s),
	}

	global, avg := Aggregate(per)
	return LevelResult{
		PerCategory:  per,
		GlobalLevel:  global,
		GlobalPoints: avg,
	}, nil
}
