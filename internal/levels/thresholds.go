package levels

// thresholdPair partitions a measurement into the three levels. Both cutoffs
// are inclusive lower bounds of their own bucket:
//
//	v < low          → BEGINNER
//	low ≤ v < high   → INTERMEDIATE
//	v ≥ high         → ADVANCED
type thresholdPair struct {
	low, high int
}

// classify maps v to a Level. Negative input is treated as 0 — out-of-domain
// values extend the bottom bucket rather than failing.
func (p thresholdPair) classify(v int) Level {
	if v < 0 {
		v = 0
	}
	switch {
	case v >= p.high:
		return LevelAdvanced
	case v >= p.low:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Calibration constants per exercise.
var (
	lowerThresholds = thresholdPair{low: 21, high: 41} // squats in 60s
	pullThresholds  = thresholdPair{low: 11, high: 21} // reverse snow angels in 45s
	coreThresholds  = thresholdPair{low: 30, high: 75} // plank hold, seconds
	condThresholds  = thresholdPair{low: 30, high: 61} // mountain climbers in 45s
)

// pushupThresholds maps each push-up variant to its own pair. A wall push-up
// and a classic push-up represent different loads at the same rep count, so
// the pair must be selected before classification.
var pushupThresholds = map[PushupVariant]thresholdPair{
	PushupClassic: {low: 1, high: 11},
	PushupKnee:    {low: 1, high: 25},
	PushupIncline: {low: 5, high: 35},
	PushupWall:    {low: 10, high: 50},
}
