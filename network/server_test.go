package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// namedSystem is a minimal system so /systems can resolve names
type namedSystem struct {
	name string
}

func (s *namedSystem) Init()                          {}
func (s *namedSystem) Name() string                   { return s.name }
func (s *namedSystem) Priority() int                  { return parameter.PriorityWave }
func (s *namedSystem) Update()                        {}
func (s *namedSystem) EventTypes() []event.EventType  { return nil }
func (s *namedSystem) HandleEvent(ev event.GameEvent) {}

func newTestServer(t *testing.T) (*engine.World, *Server, *httptest.Server) {
	t.Helper()
	w := engine.NewTestWorld()
	w.Resources.Game.State.RunID = "run-1"
	w.AddSystem(&namedSystem{name: "wave"})

	cfg := DebugConfig("127.0.0.1:0")
	srv := NewServer(w, cfg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.CloseAll()
		ts.Close()
	})
	return w, srv, ts
}

// drainEvents empties the world queue
func drainEvents(w *engine.World) []event.GameEvent {
	var out []event.GameEvent
	w.RunSafe(func() {
		out = w.Resources.Event.Queue.Consume()
	})
	return out
}

func TestStatusEndpoint(t *testing.T) {
	w, _, ts := newTestServer(t)
	w.Resources.Status.Ints.Get("wave.number").Store(4)

	resp, err := http.Get(ts.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.RunID != "run-1" {
		t.Errorf("Expected run id run-1, got %q", status.RunID)
	}
	if status.Phase != "playing" {
		t.Errorf("Expected phase playing, got %q", status.Phase)
	}
	if len(status.Systems) != 1 || status.Systems[0] != "wave" {
		t.Errorf("Expected [wave], got %v", status.Systems)
	}
	if v, ok := status.Metrics["wave.number"].(float64); !ok || v != 4 {
		t.Errorf("Expected wave.number 4, got %v", status.Metrics["wave.number"])
	}
}

func TestHUDEndpoint(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/hud")
	if err != nil {
		t.Fatalf("GET /hud: %v", err)
	}
	defer resp.Body.Close()

	var hud engine.HUDSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&hud); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if hud.Wave != 1 || hud.WaveQuota != parameter.WaveInitialQuota {
		t.Errorf("Expected wave 1 quota %d, got wave %d quota %d", parameter.WaveInitialQuota, hud.Wave, hud.WaveQuota)
	}
}

func TestSystemCommandEndpoint(t *testing.T) {
	w, _, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/systems/wave/disable", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", resp.StatusCode)
	}

	events := drainEvents(w)
	if len(events) != 1 || events[0].Type != event.EventMetaSystemCommandRequest {
		t.Fatalf("Expected one system command event, got %v", events)
	}
	payload := events[0].Payload.(*event.MetaSystemCommandPayload)
	if payload.SystemName != "wave" || payload.Enabled {
		t.Errorf("Expected wave disabled, got %+v", payload)
	}
}

func TestSystemCommandRejects(t *testing.T) {
	_, _, ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"unknown system", http.MethodPost, "/systems/ghost/enable", http.StatusNotFound},
		{"bad action", http.MethodPost, "/systems/wave/toggle", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/systems/wave/enable", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestResetEndpoint(t *testing.T) {
	w, _, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	events := drainEvents(w)
	if len(events) != 1 || events[0].Type != event.EventGameReset {
		t.Errorf("Expected reset event, got %v", events)
	}
}

func TestInjectEndpoint(t *testing.T) {
	w, _, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/events/EventInventoryUseRequest", "application/json", strings.NewReader(`{"index": 2}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", resp.StatusCode)
	}

	events := drainEvents(w)
	if len(events) != 1 || events[0].Type != event.EventInventoryUseRequest {
		t.Fatalf("Expected inventory use event, got %v", events)
	}
	p, ok := events[0].Payload.(*event.InventoryUsePayload)
	if !ok || p.Index != 2 {
		t.Errorf("Expected index 2 payload, got %#v", events[0].Payload)
	}

	tests := []struct {
		name string
		body string
		want int
	}{
		{"EventGameOver", "{}", http.StatusNotFound},
		{"EventNope", "{}", http.StatusNotFound},
		{"EventInventoryUseRequest", "index: [", http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := http.Post(ts.URL+"/events/"+tt.name, "application/yaml", strings.NewReader(tt.body))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, resp.StatusCode)
		}
	}
	if n := len(drainEvents(w)); n != 0 {
		t.Errorf("Expected rejected injections to push nothing, got %d", n)
	}
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return f
}

func TestWebsocketStream(t *testing.T) {
	_, srv, ts := newTestServer(t)
	conn := dialWS(t, ts)

	hello := readFrame(t, conn)
	if hello.Type != MsgHello || hello.RunID != "run-1" {
		t.Errorf("Expected hello for run-1, got %+v", hello)
	}

	srv.BroadcastHUD()
	hud := readFrame(t, conn)
	if hud.Type != MsgHUD || hud.HUD == nil {
		t.Fatalf("Expected hud frame, got %+v", hud)
	}
	if hud.Seq <= hello.Seq {
		t.Errorf("Expected increasing sequence, got %d after %d", hud.Seq, hello.Seq)
	}

	srv.BroadcastEvent("wave 2 started")
	ev := readFrame(t, conn)
	if ev.Type != MsgEvent || ev.Event != "wave 2 started" {
		t.Errorf("Expected event frame, got %+v", ev)
	}
}

func TestWebsocketPeerLimit(t *testing.T) {
	w := engine.NewTestWorld()
	cfg := DebugConfig("127.0.0.1:0")
	cfg.MaxPeers = 1
	srv := NewServer(w, cfg)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	defer srv.CloseAll()

	dialWS(t, ts)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Expected second spectator to be rejected")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %v", resp)
	}
}

func TestBridgeDescribesEvents(t *testing.T) {
	tests := []struct {
		ev   event.GameEvent
		want string
	}{
		{event.GameEvent{Type: event.EventWaveStarted, Payload: &event.WavePayload{Number: 2, Quota: 8}}, "wave 2 started, quota 8"},
		{event.GameEvent{Type: event.EventWaveCleared, Payload: &event.WavePayload{Number: 2}}, "wave 2 cleared"},
		{event.GameEvent{Type: event.EventGameOver, Payload: &event.GameOverPayload{Score: 300, Wave: 3, Kills: 12}}, "game over: score 300, wave 3, kills 12"},
		{event.GameEvent{Type: event.EventGameReset}, "run reset"},
		{event.GameEvent{Type: event.EventSoundRequest}, ""},
	}

	for _, tt := range tests {
		if got := describe(tt.ev); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestServiceDisabledWithoutAddress(t *testing.T) {
	svc := NewService(nil)
	w := engine.NewTestWorld()

	if err := svc.Init(w); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if svc.Server() != nil || svc.Addr() != nil {
		t.Error("Expected inert service without address")
	}
	if len(w.Systems()) != 0 {
		t.Error("Expected no bridge system when disabled")
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestServiceLifecycle(t *testing.T) {
	svc := NewService(DebugConfig("127.0.0.1:0"))
	w := engine.NewTestWorld()

	if err := svc.Init(w); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(w.Systems()) != 1 || w.Systems()[0].Name() != "telemetry" {
		t.Errorf("Expected telemetry bridge registered, got %d systems", len(w.Systems()))
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := http.Get("http://" + svc.Addr().String() + "/status")
	if err != nil {
		t.Fatalf("GET /status: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Expected idempotent Stop, got %v", err)
	}
}

func postPause(t *testing.T, url string) (int, PauseResponse) {
	t.Helper()
	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	var pr PauseResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode, pr
}

func TestPauseEndpoint(t *testing.T) {
	w, srv, ts := newTestServer(t)

	if code, _ := postPause(t, ts.URL+"/pause"); code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without a clock, got %d", code)
	}

	cs := engine.NewClockScheduler(w, parameter.GameUpdateInterval)
	srv.SetPauser(cs)

	tests := []struct {
		name    string
		path    string
		paused  bool
		changed bool
	}{
		{"pause", "/pause", true, true},
		{"pause again", "/pause", true, false},
		{"resume", "/resume", false, true},
		{"resume again", "/resume", false, false},
	}
	for _, tt := range tests {
		code, pr := postPause(t, ts.URL+tt.path)
		if code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tt.name, code)
		}
		if pr.Paused != tt.paused || pr.Changed != tt.changed {
			t.Errorf("%s: expected paused %v changed %v, got %+v", tt.name, tt.paused, tt.changed, pr)
		}
	}

	postPause(t, ts.URL+"/pause")
	cs.Step(parameter.GameUpdateInterval)
	if cs.TickCount() != 0 {
		t.Errorf("Expected no tick while paused over HTTP, got %d", cs.TickCount())
	}
	if !srv.captureHUD().Paused {
		t.Errorf("Expected HUD to report pause")
	}

	resp, err := http.Get(ts.URL + "/pause")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET, got %d", resp.StatusCode)
	}
}
