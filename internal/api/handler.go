package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitlevel/fitlevel/internal/alerts"
	"github.com/fitlevel/fitlevel/internal/levels"
	"github.com/fitlevel/fitlevel/internal/store"
)

// Handler is the HTTP handler for all /api/v1/* endpoints.
// It validates submissions, runs the level engine, and reads records back
// from the store as JSON responses.
type Handler struct {
	store  *store.Store
	alerts *alerts.Engine
	mux    *http.ServeMux
}

// New creates a Handler wired to the given store and alert engine (which may
// be nil) and registers all routes.
func New(st *store.Store, alertEngine *alerts.Engine) http.Handler {
	h := &Handler{store: st, alerts: alertEngine, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/health", h.health)
	h.mux.HandleFunc("/api/v1/tests", h.submitTest)
	h.mux.HandleFunc("/api/v1/tests/", h.getTest)    // subtree — extracts {id}
	h.mux.HandleFunc("/api/v1/levels/", h.getLevels) // subtree — extracts {id}
	h.mux.HandleFunc("/api/v1/users/", h.userLevels) // /api/v1/users/{id}/levels
	h.mux.HandleFunc("/api/v1/summary", h.summary)
	h.mux.HandleFunc("/api/v1/alerts", h.listAlerts)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// submitTest handles POST /api/v1/tests — validate, compute, store, respond.
func (h *Handler) submitTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if err := validateSubmit(&req); err != nil {
		slog.Warn("api: submission rejected", "err", err)
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}

	// Safe after validateSubmit: variant parses and all fields are present.
	variant, _ := levels.ParsePushupVariant(req.PushupsType)

	result, err := levels.ComputeLevels(levels.TestResults{
		MaxSquats:               *req.Results.MaxSquats,
		PushupsType:             variant,
		MaxPushUps:              *req.Results.MaxPushUps,
		MaxReverseSnowAngels45s: *req.Results.MaxReverseSnowAngels45s,
		PlankMaxTimeSeconds:     *req.Results.PlankMaxTimeSeconds,
		MountainClimbers45s:     *req.Results.MountainClimbers45s,
	})
	if err != nil {
		slog.Error("api: level computation failed", "err", err)
		jsonErr(w, http.StatusInternalServerError, "internal server error")
		return
	}

	testRec := &store.TestRecord{
		TestID:                  uuid.NewString(),
		UserID:                  req.UserID,
		PushupsType:             variant,
		MaxPushUps:              *req.Results.MaxPushUps,
		MaxSquats:               *req.Results.MaxSquats,
		MaxReverseSnowAngels45s: *req.Results.MaxReverseSnowAngels45s,
		PlankMaxTimeSeconds:     *req.Results.PlankMaxTimeSeconds,
		MountainClimbers45s:     *req.Results.MountainClimbers45s,
	}
	h.store.PutTest(testRec)

	levelRec := &store.LevelRecord{
		LevelsID: uuid.NewString(),
		UserID:   req.UserID,
		TestID:   testRec.TestID,
		Result:   result,
	}
	h.store.PutLevels(levelRec)

	if h.alerts != nil {
		h.alerts.Evaluate(levelRec)
	}

	slog.Info("api: test result stored",
		"test_id", testRec.TestID,
		"levels_id", levelRec.LevelsID,
		"user_id", req.UserID,
		"global_level", result.GlobalLevel,
	)

	jsonResp(w, http.StatusCreated, SubmitResponse{
		LevelsID: levelRec.LevelsID,
		TestID:   testRec.TestID,
		Levels:   toLevelsResponse(result),
	})
}

// getTest handles GET /api/v1/tests/{id}.
func (h *Handler) getTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/tests/")
	rec, ok := h.store.GetTest(id)
	if id == "" || !ok {
		jsonErr(w, http.StatusNotFound, "test not found")
		return
	}

	jsonResp(w, http.StatusOK, TestResponse{
		TestID:                  rec.TestID,
		UserID:                  rec.UserID,
		PushupsType:             string(rec.PushupsType),
		MaxPushUps:              rec.MaxPushUps,
		MaxSquats:               rec.MaxSquats,
		MaxReverseSnowAngels45s: rec.MaxReverseSnowAngels45s,
		PlankMaxTimeSeconds:     rec.PlankMaxTimeSeconds,
		MountainClimbers45s:     rec.MountainClimbers45s,
		CreatedAt:               rec.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// getLevels handles GET /api/v1/levels/{id}.
func (h *Handler) getLevels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/levels/")
	rec, ok := h.store.GetLevels(id)
	if id == "" || !ok {
		jsonErr(w, http.StatusNotFound, "levels record not found")
		return
	}

	jsonResp(w, http.StatusOK, toLevelRecordResponse(rec))
}

// userLevels handles GET /api/v1/users/{id}/levels — level history.
func (h *Handler) userLevels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/users/")
	userID, tail, ok := strings.Cut(rest, "/")
	if !ok || userID == "" || tail != "levels" {
		jsonErr(w, http.StatusNotFound, "not found")
		return
	}

	recs := h.store.ListLevelsByUser(userID)
	out := make([]LevelRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toLevelRecordResponse(rec))
	}
	jsonResp(w, http.StatusOK, out)
}

// summary handles GET /api/v1/summary — level distribution across all live
// records.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, BuildSummary(h.store))
}

// listAlerts handles GET /api/v1/alerts — currently firing and recently
// resolved alerts.
func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.alerts == nil {
		jsonResp(w, http.StatusOK, []struct{}{})
		return
	}
	jsonResp(w, http.StatusOK, h.alerts.Active())
}

// health handles GET /api/v1/health — liveness and record counts.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	tests, levelRecs := h.store.Counts()
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		TestCount:  tests,
		LevelCount: levelRecs,
	})
}

// --- helpers ----------------------------------------------------------------

// BuildSummary computes the global level distribution across all live level
// records. Shared with the WebSocket hub, which broadcasts the same payload.
func BuildSummary(st *store.Store) SummaryResponse {
	recs := st.ListLevels()
	resp := SummaryResponse{
		RecordCount: len(recs),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if len(recs) == 0 {
		return resp
	}

	var totalPoints float64
	for _, rec := range recs {
		totalPoints += rec.Result.GlobalPoints
		switch rec.Result.GlobalLevel {
		case levels.LevelBeginner:
			resp.BeginnerCount++
		case levels.LevelIntermediate:
			resp.IntermediateCount++
		case levels.LevelAdvanced:
			resp.AdvancedCount++
		}
	}
	resp.AvgPoints = totalPoints / float64(len(recs))
	resp.CohortLevel = string(levels.LevelFromPoints(resp.AvgPoints))
	return resp
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}

// toLevelsResponse maps an engine result to its wire form.
func toLevelsResponse(res levels.LevelResult) LevelsResponse {
	per := make(map[string]string, len(res.PerCategory))
	for c, l := range res.PerCategory {
		per[string(c)] = string(l)
	}
	return LevelsResponse{
		PerCategory:        per,
		GlobalLevel:        string(res.GlobalLevel),
		GlobalRawAvgPoints: res.GlobalPoints,
	}
}

// toLevelRecordResponse maps a stored level record to its wire form.
func toLevelRecordResponse(rec *store.LevelRecord) LevelRecordResponse {
	return LevelRecordResponse{
		LevelsID:  rec.LevelsID,
		UserID:    rec.UserID,
		TestID:    rec.TestID,
		Levels:    toLevelsResponse(rec.Result),
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
