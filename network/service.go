package network

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
)

// Service runs the telemetry server as a hub-managed service
// A config without an address leaves the service inert
type Service struct {
	config *Config
	server *Server
	http   *http.Server

	listener net.Listener
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewService creates a telemetry service, nil config disables it
func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{
		config:   cfg,
		stopChan: make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "network"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service, registers the event bridge before the scheduler wires handlers
func (s *Service) Init(world *engine.World) error {
	if !s.config.Enabled() {
		return nil
	}
	s.server = NewServer(world, s.config)
	world.AddSystem(NewBridgeSystem(s.server))
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.server == nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.Wrapf(err, "telemetry listen %s", s.config.Address)
	}
	s.listener = ln
	s.http = &http.Server{
		Handler:      s.server.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.wg.Add(2)
	core.Go(func() {
		defer s.wg.Done()
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[network] serve: %v", err)
		}
	})
	core.Go(func() {
		defer s.wg.Done()
		s.broadcastLoop()
	})

	log.Printf("[network] telemetry listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address, nil before Start
func (s *Service) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Server returns the telemetry server, nil when disabled
func (s *Service) Server() *Server {
	return s.server
}

func (s *Service) broadcastLoop() {
	ticker := time.NewTicker(s.config.BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.server.BroadcastHUD()
		}
	}
}

// Stop implements service.Service
func (s *Service) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.server != nil {
			s.server.CloseAll()
		}
		if s.http != nil {
			ctx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
			defer cancel()
			err = s.http.Shutdown(ctx)
		}
		s.wg.Wait()
	})
	return err
}
