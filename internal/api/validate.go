package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitlevel/fitlevel/internal/levels"
)

// validateSubmit checks a submission before any record is created or the
// engine is invoked. It returns the first problem found as a message suitable
// for a 400 response body.
func validateSubmit(req *SubmitRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return errors.New("user_id must be a non-empty string")
	}
	if _, err := levels.ParsePushupVariant(req.PushupsType); err != nil {
		return err
	}

	fields := []struct {
		name  string
		value *int
	}{
		{"max_push_ups", req.Results.MaxPushUps},
		{"max_squats", req.Results.MaxSquats},
		{"max_reverse_snow_angels_45s", req.Results.MaxReverseSnowAngels45s},
		{"plank_max_time_seconds", req.Results.PlankMaxTimeSeconds},
		{"mountain_climbers_45s", req.Results.MountainClimbers45s},
	}
	for _, f := range fields {
		if f.value == nil {
			return fmt.Errorf("missing required result field: %s", f.name)
		}
		if *f.value < 0 {
			return fmt.Errorf("%s must be non-negative", f.name)
		}
	}
	return nil
}
