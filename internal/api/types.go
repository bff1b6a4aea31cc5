package api

// SubmitRequest is the body for POST /api/v1/tests.
type SubmitRequest struct {
	UserID      string        `json:"user_id"`
	PushupsType string        `json:"pushups_type"`
	Results     SubmitResults `json:"results"`
}

// SubmitResults carries the five raw measurements of one fitness test.
// Pointer fields distinguish absent from zero so validation can report
// missing fields precisely.
type SubmitResults struct {
	MaxPushUps              *int `json:"max_push_ups"`
	MaxSquats               *int `json:"max_squats"`
	MaxReverseSnowAngels45s *int `json:"max_reverse_snow_angels_45s"`
	PlankMaxTimeSeconds     *int `json:"plank_max_time_seconds"`
	MountainClimbers45s     *int `json:"mountain_climbers_45s"`
}

// LevelsResponse is the wire form of a computed level classification.
// Per-category keys are the literal LOWER/PUSH/PULL/CORE/COND strings.
type LevelsResponse struct {
	PerCategory        map[string]string `json:"per_category"`
	GlobalLevel        string            `json:"global_level"`
	GlobalRawAvgPoints float64           `json:"global_level_raw_avg_points"`
}

// SubmitResponse is the payload for POST /api/v1/tests.
type SubmitResponse struct {
	LevelsID string         `json:"levels_id"`
	TestID   string         `json:"test_id"`
	Levels   LevelsResponse `json:"levels"`
}

// TestResponse is the payload for GET /api/v1/tests/{id}.
type TestResponse struct {
	TestID                  string `json:"test_id"`
	UserID                  string `json:"user_id"`
	PushupsType             string `json:"pushups_type"`
	MaxPushUps              int    `json:"max_push_ups"`
	MaxSquats               int    `json:"max_squats"`
	MaxReverseSnowAngels45s int    `json:"max_reverse_snow_angels_45s"`
	PlankMaxTimeSeconds     int    `json:"plank_max_time_seconds"`
	MountainClimbers45s     int    `json:"mountain_climbers_45s"`
	CreatedAt               string `json:"created_at"` // RFC3339
}

// LevelRecordResponse is the payload for GET /api/v1/levels/{id} and one
// entry of GET /api/v1/users/{id}/levels.
type LevelRecordResponse struct {
	LevelsID  string         `json:"levels_id"`
	UserID    string         `json:"user_id"`
	TestID    string         `json:"test_id"`
	Levels    LevelsResponse `json:"levels"`
	CreatedAt string         `json:"created_at"` // RFC3339
}

// SummaryResponse is the payload for GET /api/v1/summary and the WebSocket
// broadcast envelope data.
type SummaryResponse struct {
	RecordCount       int     `json:"record_count"`
	BeginnerCount     int     `json:"beginner_count"`
	IntermediateCount int     `json:"intermediate_count"`
	AdvancedCount     int     `json:"advanced_count"`
	AvgPoints         float64 `json:"avg_points"`
	CohortLevel       string  `json:"cohort_level,omitempty"`
	GeneratedAt       string  `json:"generated_at"` // RFC3339
}

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status     string `json:"status"`
	TestCount  int    `json:"test_count"`
	LevelCount int    `json:"level_count"`
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
