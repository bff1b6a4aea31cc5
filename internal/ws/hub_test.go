package ws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fitlevel/fitlevel/internal/levels"
	"github.com/fitlevel/fitlevel/internal/store"
	wsHub "github.com/fitlevel/fitlevel/internal/ws"
)

const testInterval = 20 * time.Millisecond

// --- helpers ----------------------------------------------------------------

func levelRec(id string, global levels.Level) *store.LevelRecord {
	per := make(levels.CategoryLevels, len(levels.Categories))
	for _, c := range levels.Categories {
		per[c] = global
	}
	return &store.LevelRecord{
		LevelsID: id,
		UserID:   "user-" + id,
		TestID:   "test-" + id,
		Result: levels.LevelResult{
			PerCategory:  per,
			GlobalLevel:  global,
			GlobalPoints: float64(global.Points()),
		},
	}
}

func newStore(recs ...*store.LevelRecord) *store.Store {
	st := store.New(0)
	for _, rec := range recs {
		st.PutLevels(rec)
	}
	return st
}

// startHub starts a test HTTP server with the hub as its handler.
// The hub's Run loop is started with a cancellable context.
func startHub(t *testing.T, st *store.Store) (wsURL string, hub *wsHub.Hub, cancel func()) {
	t.Helper()

	hub = wsHub.New(st, testInterval)
	ctx, cancelFn := context.WithCancel(context.Background())

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	go hub.Run(ctx)

	t.Cleanup(func() {
		cancelFn()
		srv.Close()
	})

	wsURL = "ws" + strings.TrimPrefix(srv.URL, "http")
	return wsURL, hub, cancelFn
}

// dial connects a WebSocket client to wsURL and returns the connection.
func dial(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readMessage reads one text message from conn with a short deadline.
func readMessage(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	return msg
}

// --- tests ------------------------------------------------------------------

func TestHub_Connect_ReceivesImmediateSummary(t *testing.T) {
	st := newStore(levelRec("a", levels.LevelAdvanced))
	wsURL, _, _ := startHub(t, st)

	conn := dial(t, wsURL)
	msg := readMessage(t, conn)

	var m map[string]interface{}
	if err := json.Unmarshal(msg, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["event"] != "summary" {
		t.Errorf("event: got %v, want summary", m["event"])
	}
	data, ok := m["data"].(map[string]interface{})
	if !ok {
		t.Fatal("data: missing or wrong type")
	}
	if data["record_count"].(float64) != 1 {
		t.Errorf("record_count: got %v, want 1", data["record_count"])
	}
	if data["generated_at"] == nil || data["generated_at"] == "" {
		t.Error("generated_at: missing")
	}
}

func TestHub_SummaryReflectsStore(t *testing.T) {
	st := newStore(
		levelRec("a", levels.LevelAdvanced),
		levelRec("b", levels.LevelBeginner),
	)
	wsURL, _, _ := startHub(t, st)

	conn := dial(t, wsURL)
	msg := readMessage(t, conn)

	var m wsHub.Message
	if err := json.Unmarshal(msg, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Data.RecordCount != 2 {
		t.Errorf("record_count: got %d, want 2", m.Data.RecordCount)
	}
	if m.Data.AdvancedCount != 1 || m.Data.BeginnerCount != 1 {
		t.Errorf("distribution: got %+v", m.Data)
	}
	if m.Data.AvgPoints != 2.0 {
		t.Errorf("avg_points: got %v, want 2.0", m.Data.AvgPoints)
	}
}

func TestHub_ReceivesPeriodicBroadcasts(t *testing.T) {
	st := newStore(levelRec("a", levels.LevelIntermediate))
	wsURL, _, _ := startHub(t, st)

	conn := dial(t, wsURL)
	readMessage(t, conn) // initial summary on connect

	// The ticker loop must deliver further messages.
	msg := readMessage(t, conn)
	var m wsHub.Message
	if err := json.Unmarshal(msg, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Event != "summary" {
		t.Errorf("event: got %q, want summary", m.Event)
	}
}

func TestHub_CountTracksClients(t *testing.T) {
	st := newStore()
	wsURL, hub, _ := startHub(t, st)

	if hub.Count() != 0 {
		t.Fatalf("Count: got %d, want 0", hub.Count())
	}

	conn := dial(t, wsURL)
	readMessage(t, conn)

	// Registration happens during ServeHTTP; poll briefly.
	deadline := time.Now().Add(time.Second)
	for hub.Count() != 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Count() != 1 {
		t.Errorf("Count after connect: got %d, want 1", hub.Count())
	}
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	st := newStore()
	wsURL, hub, cancel := startHub(t, st)

	conn := dial(t, wsURL)
	readMessage(t, conn)

	cancel()

	// After shutdown the hub should drop all clients.
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.Count() != 0 {
		t.Errorf("Count after shutdown: got %d, want 0", hub.Count())
	}
}
