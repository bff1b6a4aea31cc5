// Package levels computes fitness level classifications from exercise test
// results.
//
// scorer.go maps each raw measurement to a per-category Level using the
// threshold pairs defined in thresholds.go. The PUSH category selects its
// pair by push-up variant, since the same rep count carries a different load
// per variant. aggregate.go averages the five category ranks, buckets the
// average back into a Level, and caps bimodal profiles (BEGINNER and
// ADVANCED both present) at INTERMEDIATE.
//
// ComputeLevels is the entry point used by the HTTP layer. Every function in
// this package is pure: no I/O, no shared state, safe for concurrent use.
package levels
