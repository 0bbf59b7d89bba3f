package network

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
)

const maxInjectBody = 4096

// Pauser freezes and unfreezes the simulation clock
type Pauser interface {
	Pause() bool
	Resume() bool
	Paused() bool
}

// Server exposes run telemetry over HTTP and streams HUD frames to websocket spectators
// Every world read or event push happens under the world update lock
type Server struct {
	world    *engine.World
	config   *Config
	router   *mux.Router
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	peers map[string]*peer

	pauseMu sync.RWMutex
	pauser  Pauser

	seq      atomic.Uint64
	frames   atomic.Uint64
	rejected atomic.Uint64
}

// NewServer builds the router for world
func NewServer(world *engine.World, cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Server{
		world:  world,
		config: cfg,
		peers:  make(map[string]*peer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	r := mux.NewRouter()
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/hud", s.handleHUD).Methods(http.MethodGet)
	r.HandleFunc("/systems/{name}/{action:enable|disable}", s.handleSystemCommand).Methods(http.MethodPost)
	r.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	r.HandleFunc("/{action:pause|resume}", s.handlePause).Methods(http.MethodPost)
	r.HandleFunc("/events/{name}", s.handleInject).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWS)
	s.router = r

	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetPauser attaches the clock that /pause and /resume drive
// The scheduler is built after services initialize, so it arrives late
func (s *Server) SetPauser(p Pauser) {
	s.pauseMu.Lock()
	s.pauser = p
	s.pauseMu.Unlock()
}

// PeerCount returns connected spectators
func (s *Server) PeerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

func (s *Server) runID() string {
	return s.world.Resources.Game.State.RunID
}

func (s *Server) systemNames() []string {
	systems := s.world.Systems()
	names := make([]string, len(systems))
	for i, sys := range systems {
		names[i] = sys.Name()
	}
	return names
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		RunID:   s.runID(),
		Phase:   s.world.Resources.Game.State.Phase().String(),
		Paused:  s.world.Resources.Game.State.Paused(),
		Systems: s.systemNames(),
		Peers:   s.PeerCount(),
		Metrics: s.world.Resources.Status.SnapshotPrefix(r.URL.Query().Get("prefix")),
	}
	s.world.RunSafe(func() {
		resp.Frame = s.world.FrameNumber()
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHUD(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.captureHUD())
}

func (s *Server) handleSystemCommand(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	known := false
	for _, n := range s.systemNames() {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		http.Error(w, "unknown system", http.StatusNotFound)
		return
	}

	enabled := vars["action"] == "enable"
	s.world.RunSafe(func() {
		s.world.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{
			SystemName: name,
			Enabled:    enabled,
		})
	})
	writeJSON(w, http.StatusAccepted, SystemCommandResponse{System: name, Enabled: enabled})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.world.RunSafe(func() {
		s.world.PushEvent(event.EventGameReset, nil)
	})
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.pauseMu.RLock()
	p := s.pauser
	s.pauseMu.RUnlock()
	if p == nil {
		http.Error(w, "no clock attached", http.StatusServiceUnavailable)
		return
	}

	var changed bool
	if mux.Vars(r)["action"] == "pause" {
		changed = p.Pause()
	} else {
		changed = p.Resume()
	}
	writeJSON(w, http.StatusOK, PauseResponse{Paused: p.Paused(), Changed: changed})
}

// handleInject pushes an external request event, the body is its payload in YAML or JSON
func (s *Server) handleInject(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	et, ok := event.GetEventType(name)
	if !ok || !event.IsExternal(et) {
		http.Error(w, "unknown event", http.StatusNotFound)
		return
	}

	payload := event.NewPayloadStruct(et)
	if payload != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxInjectBody))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		if err := yaml.Unmarshal(body, payload); err != nil {
			http.Error(w, "bad payload: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	s.world.RunSafe(func() {
		s.world.PushEvent(et, payload)
	})
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if s.PeerCount() >= s.config.MaxPeers {
		s.rejected.Add(1)
		http.Error(w, "too many spectators", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[network] upgrade failed: %v", err)
		return
	}

	p := newPeer(conn, s.config)
	s.mu.Lock()
	s.peers[p.id] = p
	s.mu.Unlock()

	hello, err := s.encode(Frame{Type: MsgHello})
	if err == nil {
		p.enqueue(hello)
	}

	core.Go(p.writeLoop)
	core.Go(func() { p.readLoop(s.removePeer) })
}

func (s *Server) removePeer(p *peer) {
	s.mu.Lock()
	delete(s.peers, p.id)
	s.mu.Unlock()
}

// BroadcastHUD captures the HUD and offers it to every peer
func (s *Server) BroadcastHUD() {
	if s.PeerCount() == 0 {
		return
	}
	hud := s.captureHUD()
	s.Broadcast(Frame{Type: MsgHUD, HUD: &hud})
}

// BroadcastEvent offers a named game event to every peer
func (s *Server) BroadcastEvent(name string) {
	s.Broadcast(Frame{Type: MsgEvent, Event: name})
}

// Broadcast stamps and fans out a frame
func (s *Server) Broadcast(f Frame) {
	data, err := s.encode(f)
	if err != nil {
		log.Printf("[network] encode %s: %v", f.Type, err)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.peers {
		p.enqueue(data)
	}
	s.frames.Add(1)
}

// CloseAll disconnects every peer
func (s *Server) CloseAll() {
	s.mu.Lock()
	peers := s.peers
	s.peers = make(map[string]*peer)
	s.mu.Unlock()

	for _, p := range peers {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
		p.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.config.WriteTimeout))
		p.close()
	}
}

func (s *Server) captureHUD() engine.HUDSnapshot {
	var hud engine.HUDSnapshot
	s.world.RunSafe(func() {
		hud = engine.CaptureHUD(s.world)
	})
	return hud
}

func (s *Server) encode(f Frame) ([]byte, error) {
	f.RunID = s.runID()
	f.Seq = s.seq.Add(1)
	return json.Marshal(f)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[network] write response: %v", err)
	}
}
