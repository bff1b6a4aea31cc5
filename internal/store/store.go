package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/fitlevel/fitlevel/internal/levels"
)

// TestRecord is one raw fitness test submission as stored, mirroring the
// field names the HTTP layer accepts.
type TestRecord struct {
	TestID string
	UserID string

	PushupsType             levels.PushupVariant
	MaxPushUps              int
	MaxSquats               int
	MaxReverseSnowAngels45s int
	PlankMaxTimeSeconds     int
	MountainClimbers45s     int

	CreatedAt time.Time
}

// LevelRecord is one computed level classification, linked to the submission
// it was derived from.
type LevelRecord struct {
	LevelsID string
	UserID   string
	TestID   string
	Result   levels.LevelResult

	CreatedAt time.Time
}

// Store is a thread-safe in-memory record store. Test submissions are keyed
// by test id, level records by levels id. When a retention TTL is set, a
// background goroutine (Run) evicts records older than the TTL; a TTL of
// zero keeps everything.
type Store struct {
	mu     sync.RWMutex
	tests  map[string]*TestRecord
	levels map[string]*LevelRecord
	ttl    time.Duration
	now    func() time.Time // injectable for deterministic tests
}

// New creates a Store with the given retention TTL (0 = keep everything).
func New(ttl time.Duration) *Store {
	return &Store{
		tests:  make(map[string]*TestRecord),
		levels: make(map[string]*LevelRecord),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured retention TTL.
func (s *Store) TTL() time.Duration { return s.ttl }

// PutTest stores rec under rec.TestID, stamping CreatedAt.
// Callers must not modify rec after calling PutTest.
func (s *Store) PutTest(rec *TestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.CreatedAt = s.now()
	s.tests[rec.TestID] = rec
}

// GetTest returns the submission for the given test id. Expired records are
// treated as not found.
func (s *Store) GetTest(testID string) (*TestRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tests[testID]
	if !ok || s.expired(rec.CreatedAt) {
		return nil, false
	}
	return rec, true
}

// PutLevels stores rec under rec.LevelsID, stamping CreatedAt.
// Callers must not modify rec after calling PutLevels.
func (s *Store) PutLevels(rec *LevelRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.CreatedAt = s.now()
	s.levels[rec.LevelsID] = rec
}

// GetLevels returns the level record for the given levels id. Expired
// records are treated as not found.
func (s *Store) GetLevels(levelsID string) (*LevelRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.levels[levelsID]
	if !ok || s.expired(rec.CreatedAt) {
		return nil, false
	}
	return rec, true
}

// ListLevels returns all live level records, newest first.
func (s *Store) ListLevels() []*LevelRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*LevelRecord, 0, len(s.levels))
	for _, rec := range s.levels {
		if !s.expired(rec.CreatedAt) {
			out = append(out, rec)
		}
	}
	sortNewestFirst(out)
	return out
}

// ListLevelsByUser returns all live level records for one user, newest first.
func (s *Store) ListLevelsByUser(userID string) []*LevelRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*LevelRecord
	for _, rec := range s.levels {
		if rec.UserID == userID && !s.expired(rec.CreatedAt) {
			out = append(out, rec)
		}
	}
	sortNewestFirst(out)
	return out
}

// Counts returns the total number of test and level records currently held,
// including any not-yet-evicted expired ones.
func (s *Store) Counts() (tests, levelRecords int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tests), len(s.levels)
}

// Evict removes records older than now minus the TTL and returns the number
// removed. A zero TTL makes Evict a no-op.
func (s *Store) Evict(now time.Time) int {
	if s.ttl == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.ttl)
	removed := 0
	for id, rec := range s.tests {
		if !rec.CreatedAt.After(cutoff) {
			delete(s.tests, id)
			removed++
		}
	}
	for id, rec := range s.levels {
		if !rec.CreatedAt.After(cutoff) {
			delete(s.levels, id)
			removed++
		}
	}
	return removed
}

// Run starts the background TTL eviction loop. It ticks at half the TTL
// interval (minimum 1 second) and blocks until ctx is cancelled. When no TTL
// is configured Run returns immediately — there is nothing to evict.
func (s *Store) Run(ctx context.Context) {
	if s.ttl == 0 {
		return
	}
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.Evict(now); n > 0 {
				slog.Debug("store: evicted expired records", "count", n)
			}
		}
	}
}

// expired reports whether a record created at t has outlived the TTL.
// Callers must hold at least a read lock.
func (s *Store) expired(t time.Time) bool {
	if s.ttl == 0 {
		return false
	}
	return !t.After(s.now().Add(-s.ttl))
}

// sortNewestFirst orders records by CreatedAt descending, breaking ties by
// id so repeated calls return a stable order.
func sortNewestFirst(recs []*LevelRecord) {
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].LevelsID < recs[j].LevelsID
	})
}
