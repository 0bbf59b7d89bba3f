package network

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// peer is one websocket subscriber
// Outbound frames go through a bounded queue; a full queue drops the frame, not the peer
type peer struct {
	id     string
	conn   *websocket.Conn
	config *Config

	send chan []byte
	done chan struct{}

	closeOnce sync.Once
	dropped   atomic.Uint64
}

func newPeer(conn *websocket.Conn, cfg *Config) *peer {
	return &peer{
		id:     uuid.NewString(),
		conn:   conn,
		config: cfg,
		send:   make(chan []byte, cfg.SendQueueSize),
		done:   make(chan struct{}),
	}
}

// enqueue offers a frame without blocking
func (p *peer) enqueue(data []byte) bool {
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case p.send <- data:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// close is idempotent
func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.conn.Close()
	})
}

// writeLoop drains the queue and pings on the heartbeat interval
func (p *peer) writeLoop() {
	ticker := time.NewTicker(p.config.HeartbeatInterval)
	defer ticker.Stop()
	defer p.close()

	for {
		select {
		case <-p.done:
			return
		case data := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(p.config.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("[network] peer %s write failed: %v", p.id, err)
				return
			}
		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(p.config.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound frames and detects disconnects
// Spectators are read-only; pongs extend the deadline
func (p *peer) readLoop(onClose func(*peer)) {
	defer func() {
		p.close()
		onClose(p)
	}()

	p.conn.SetReadLimit(4096)
	p.conn.SetReadDeadline(time.Now().Add(p.config.ReadTimeout))
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(p.config.ReadTimeout))
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}
