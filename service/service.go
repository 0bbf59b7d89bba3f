// Package service hosts process-level infrastructure that lives beside the
// simulation rather than inside it, such as the audio backend and the telemetry server
package service

import (
	"github.com/lixenwraith/wave-fighter/engine"
)

// Service is constructed by a factory, initialized against the world, started,
// and finally stopped by the Hub in reverse start order
type Service interface {
	Name() string

	// Dependencies name services whose Init must run first
	Dependencies() []string

	// Init may add systems or read world resources; no goroutines yet
	Init(world *engine.World) error

	Start() error

	// Stop is safe to call more than once
	Stop() error
}

// ResourceContributor publishes a service API into world resources, the hub
// calls Contribute right after Init while holding the world lock
type ResourceContributor interface {
	Contribute(res *engine.Resource)
}
