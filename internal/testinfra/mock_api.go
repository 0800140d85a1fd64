// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package testinfra

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/ctfloyd/hazelmere-charts/internal/models"
	"github.com/ctfloyd/hazelmere-charts/internal/wire"
)

// MockAPI is an in-process Hazelmere API double backed by httptest. It serves
// the same routes as the real service, in both JSON and binary transports,
// and records per-route request counts so tests can assert on upstream
// traffic (dedup, breaker behavior).
type MockAPI struct {
	Server *httptest.Server

	mu            sync.Mutex
	users         []models.User
	snapshots     map[string][]models.Snapshot
	withDeltas    map[string]*models.SnapshotWithDeltas
	requestCounts map[string]int
	binary        bool
	intervalDelay time.Duration
	failRemaining int
	failStatus    int
	lastWindow    string

	upgrader websocket.Upgrader
	streams  map[string][]*websocket.Conn
}

// NewMockAPI starts a mock server and registers its shutdown with t.Cleanup.
func NewMockAPI(t *testing.T) *MockAPI {
	t.Helper()

	m := &MockAPI{
		snapshots:     make(map[string][]models.Snapshot),
		withDeltas:    make(map[string]*models.SnapshotWithDeltas),
		requestCounts: make(map[string]int),
		streams:       make(map[string][]*websocket.Conn),
	}

	r := chi.NewRouter()
	r.Get("/v1/health", m.handleHealth)
	r.Get("/v1/users", m.handleUsers)
	r.Post("/v1/snapshots", m.handleCreate)
	r.Get("/v1/snapshots/{userID}", m.handleAllSnapshots)
	r.Get("/v1/snapshots/{userID}/nearest", m.handleNearest)
	r.Get("/v1/snapshots/{userID}/interval", m.handleInterval)
	r.Get("/v1/snapshots/{userID}/deltas", m.handleDeltas)
	r.Get("/v1/snapshots/{userID}/stream", m.handleStream)

	m.Server = httptest.NewServer(r)
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the mock server's base URL.
func (m *MockAPI) URL() string { return m.Server.URL }

// AddUser registers a user served by /v1/users.
func (m *MockAPI) AddUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
}

// AddSnapshot stores a snapshot for a user. Snapshots are kept sorted by
// timestamp, matching the ordering contract of the real service.
func (m *MockAPI) AddSnapshot(s models.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := append(m.snapshots[s.UserID], s)
	sort.Slice(list, func(i, j int) bool { return list[i].Timestamp < list[j].Timestamp })
	m.snapshots[s.UserID] = list
}

// SetSnapshotWithDeltas sets the payload served by the deltas endpoint.
func (m *MockAPI) SetSnapshotWithDeltas(userID string, swd *models.SnapshotWithDeltas) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.withDeltas[userID] = swd
}

// ServeBinary switches the deltas endpoint between the binary wire transport
// and plain JSON.
func (m *MockAPI) ServeBinary(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.binary = enabled
}

// SetIntervalDelay adds artificial latency to the interval endpoint so tests
// can hold several identical requests in flight at once.
func (m *MockAPI) SetIntervalDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intervalDelay = d
}

// FailNext makes the next n requests (any route except the stream) respond
// with the given status code.
func (m *MockAPI) FailNext(n, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failRemaining = n
	m.failStatus = status
}

// RequestCount returns how many requests the route has served. Routes are
// identified by their short names: health, users, create, all, nearest,
// interval, deltas, stream.
func (m *MockAPI) RequestCount(route string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCounts[route]
}

// LastIntervalWindow returns the window parameter of the most recent
// interval request.
func (m *MockAPI) LastIntervalWindow() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastWindow
}

// begin records a request and reports whether it should be failed with the
// injected status. The returned delay is applied outside the lock.
func (m *MockAPI) begin(route string) (failStatus int, delay time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCounts[route]++
	if route == "interval" {
		delay = m.intervalDelay
	}
	if m.failRemaining > 0 {
		m.failRemaining--
		return m.failStatus, delay
	}
	return 0, delay
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (m *MockAPI) handleHealth(w http.ResponseWriter, r *http.Request) {
	if status, _ := m.begin("health"); status != 0 {
		http.Error(w, "injected failure", status)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (m *MockAPI) handleUsers(w http.ResponseWriter, r *http.Request) {
	if status, _ := m.begin("users"); status != 0 {
		http.Error(w, "injected failure", status)
		return
	}
	m.mu.Lock()
	users := append([]models.User(nil), m.users...)
	m.mu.Unlock()
	writeJSON(w, http.StatusOK, users)
}

func (m *MockAPI) handleCreate(w http.ResponseWriter, r *http.Request) {
	if status, _ := m.begin("create"); status != 0 {
		http.Error(w, "injected failure", status)
		return
	}
	var s models.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "malformed snapshot", http.StatusBadRequest)
		return
	}
	if s.ID == "" {
		s.ID = "snap-" + strconv.FormatInt(s.Timestamp, 10)
	}
	m.mu.Lock()
	list := append(m.snapshots[s.UserID], s)
	sort.Slice(list, func(i, j int) bool { return list[i].Timestamp < list[j].Timestamp })
	m.snapshots[s.UserID] = list
	m.mu.Unlock()
	writeJSON(w, http.StatusCreated, s)
}

func (m *MockAPI) handleAllSnapshots(w http.ResponseWriter, r *http.Request) {
	if status, _ := m.begin("all"); status != 0 {
		http.Error(w, "injected failure", status)
		return
	}
	m.mu.Lock()
	list := append([]models.Snapshot(nil), m.snapshots[chi.URLParam(r, "userID")]...)
	m.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (m *MockAPI) handleNearest(w http.ResponseWriter, r *http.Request) {
	if status, _ := m.begin("nearest"); status != 0 {
		http.Error(w, "injected failure", status)
		return
	}
	target, err := strconv.ParseInt(r.URL.Query().Get("timestamp"), 10, 64)
	if err != nil {
		http.Error(w, "missing timestamp", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	list := m.snapshots[chi.URLParam(r, "userID")]
	var best *models.Snapshot
	for i := range list {
		if best == nil || absDiff(list[i].Timestamp, target) < absDiff(best.Timestamp, target) {
			best = &list[i]
		}
	}
	m.mu.Unlock()

	if best == nil {
		http.Error(w, "no snapshots", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, best)
}

func (m *MockAPI) handleInterval(w http.ResponseWriter, r *http.Request) {
	status, delay := m.begin("interval")
	if delay > 0 {
		time.Sleep(delay)
	}
	if status != 0 {
		http.Error(w, "injected failure", status)
		return
	}

	q := r.URL.Query()
	start, _ := strconv.ParseInt(q.Get("start"), 10, 64)
	end, _ := strconv.ParseInt(q.Get("end"), 10, 64)

	m.mu.Lock()
	m.lastWindow = q.Get("window")
	var out []models.Snapshot
	for _, s := range m.snapshots[chi.URLParam(r, "userID")] {
		if s.Timestamp >= start && s.Timestamp <= end {
			out = append(out, s)
		}
	}
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (m *MockAPI) handleDeltas(w http.ResponseWriter, r *http.Request) {
	if status, _ := m.begin("deltas"); status != 0 {
		http.Error(w, "injected failure", status)
		return
	}

	m.mu.Lock()
	swd := m.withDeltas[chi.URLParam(r, "userID")]
	binary := m.binary
	m.mu.Unlock()

	if swd == nil {
		swd = &models.SnapshotWithDeltas{}
	}

	if binary {
		buf, err := wire.Encode(swd)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(buf)
		return
	}
	writeJSON(w, http.StatusOK, swd)
}

// streamEvent mirrors the wire shape of the snapshot-created event published
// by the real service.
type streamEvent struct {
	UserID   string          `json:"userId"`
	Snapshot models.Snapshot `json:"snapshot"`
}

func (m *MockAPI) handleStream(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requestCounts["stream"]++
	m.mu.Unlock()

	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	userID := chi.URLParam(r, "userID")

	m.mu.Lock()
	m.streams[userID] = append(m.streams[userID], conn)
	m.mu.Unlock()

	// Drain control frames until the peer goes away, then deregister.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		m.mu.Lock()
		conns := m.streams[userID]
		for i, c := range conns {
			if c == conn {
				m.streams[userID] = append(conns[:i], conns[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
		_ = conn.Close()
	}()
}

// PushSnapshot delivers a snapshot-created event to every stream subscriber
// of the user and returns how many connections received it.
func (m *MockAPI) PushSnapshot(s models.Snapshot) int {
	payload, err := json.Marshal(streamEvent{UserID: s.UserID, Snapshot: s})
	if err != nil {
		return 0
	}

	m.mu.Lock()
	conns := append([]*websocket.Conn(nil), m.streams[s.UserID]...)
	m.mu.Unlock()

	delivered := 0
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// CloseStreams force-closes every open stream connection, which makes
// subscribed clients observe a read error and reconnect.
func (m *MockAPI) CloseStreams() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for userID, conns := range m.streams {
		for _, conn := range conns {
			_ = conn.Close()
		}
		m.streams[userID] = nil
	}
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
