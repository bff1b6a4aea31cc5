package levels

import "fmt"

// LevelLower classifies a 60-second squat count.
func LevelLower(squats60s int) Level {
	return lowerThresholds.classify(squats60s)
}

// LevelPull classifies a 45-second reverse snow angel count.
func LevelPull(reps45s int) Level {
	return pullThresholds.classify(reps45s)
}

// LevelCore classifies a maximum plank hold in seconds.
func LevelCore(seconds int) Level {
	return coreThresholds.classify(seconds)
}

// LevelCond classifies a 45-second mountain climber count.
func LevelCond(reps45s int) Level {
	return condThresholds.classify(reps45s)
}

// LevelPush classifies a push-up rep count for the given variant. The variant
// selects the threshold pair before classification. An unrecognised variant
// is a contract violation — callers are expected to have validated it with
// ParsePushupVariant.
func LevelPush(variant PushupVariant, reps int) (Level, error) {
	p, ok := pushupThresholds[variant]
	if !ok {
		return "", fmt.Errorf("levels: unknown push-up variant %q", variant)
	}
	return p.classify(reps), nil
}
