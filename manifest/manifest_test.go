package manifest

import (
	"testing"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/service"
)

func TestBuildSystems_PriorityOrder(t *testing.T) {
	RegisterSystems()
	w := engine.NewTestWorld()

	if err := BuildSystems(w); err != nil {
		t.Fatalf("BuildSystems: %v", err)
	}

	systems := w.Systems()
	if len(systems) != len(ActiveSystems()) {
		t.Fatalf("Expected %d systems, got %d", len(ActiveSystems()), len(systems))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("Expected ascending priority, %s (%d) before %s (%d)",
				systems[i-1].Name(), systems[i-1].Priority(), systems[i].Name(), systems[i].Priority())
		}
	}
	if systems[0].Name() != "movement" {
		t.Errorf("Expected movement first, got %s", systems[0].Name())
	}
}

func TestBuildServices(t *testing.T) {
	RegisterServices(ServiceOptions{Muted: true})
	hub := service.NewHub()

	if err := BuildServices(hub); err != nil {
		t.Fatalf("BuildServices: %v", err)
	}
	names := hub.Names()
	if len(names) != 2 {
		t.Fatalf("Expected 2 services, got %v", names)
	}

	// A muted audio service and a disabled network service initialize without devices or sockets
	w := engine.NewTestWorld()
	if err := hub.InitAll(w); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if w.Resources.Audio == nil {
		t.Errorf("Expected audio contributed")
	}
	if len(w.Systems()) != 0 {
		t.Errorf("Expected no telemetry bridge when network is disabled, got %d systems", len(w.Systems()))
	}
}
