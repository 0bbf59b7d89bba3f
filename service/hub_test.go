package service

import (
	"errors"
	"testing"

	"github.com/lixenwraith/wave-fighter/engine"
)

type fakeService struct {
	name    string
	deps    []string
	initErr error
	trace   *[]string
	stops   int
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(*engine.World) error {
	*f.trace = append(*f.trace, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.trace = append(*f.trace, "start:"+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	f.stops++
	*f.trace = append(*f.trace, "stop:"+f.name)
	return nil
}

type contributingService struct {
	fakeService
}

func (c *contributingService) Contribute(res *engine.Resource) {
	res.Game.State.RunID = "contributed"
}

func TestHubInitOrderFollowsDependencies(t *testing.T) {
	var trace []string
	h := NewHub()
	h.Register(&fakeService{name: "network", deps: []string{"audio"}, trace: &trace})
	h.Register(&fakeService{name: "audio", trace: &trace})

	if err := h.InitAll(engine.NewTestWorld()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(trace) != 2 || trace[0] != "init:audio" || trace[1] != "init:network" {
		t.Errorf("Expected audio before network, got %v", trace)
	}
}

func TestHubDuplicateRegistration(t *testing.T) {
	var trace []string
	h := NewHub()
	if err := h.Register(&fakeService{name: "audio", trace: &trace}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := h.Register(&fakeService{name: "audio", trace: &trace}); err == nil {
		t.Error("Expected duplicate registration to fail")
	}
}

func TestHubMissingDependency(t *testing.T) {
	var trace []string
	h := NewHub()
	h.Register(&fakeService{name: "network", deps: []string{"ghost"}, trace: &trace})

	if err := h.InitAll(engine.NewTestWorld()); err == nil {
		t.Error("Expected missing dependency error")
	}
}

func TestHubCycle(t *testing.T) {
	var trace []string
	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, trace: &trace})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, trace: &trace})

	if err := h.InitAll(engine.NewTestWorld()); err == nil {
		t.Error("Expected cycle error")
	}
}

func TestHubInitRollback(t *testing.T) {
	var trace []string
	h := NewHub()
	first := &fakeService{name: "a", trace: &trace}
	h.Register(first)
	h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: errors.New("boom"), trace: &trace})

	if err := h.InitAll(engine.NewTestWorld()); err == nil {
		t.Fatal("Expected init failure")
	}
	if first.stops != 1 {
		t.Errorf("Expected initialized service stopped once, got %d", first.stops)
	}
}

func TestHubContributeAndStopOrder(t *testing.T) {
	var trace []string
	w := engine.NewTestWorld()
	h := NewHub()
	h.Register(&contributingService{fakeService{name: "audio", trace: &trace}})
	h.Register(&fakeService{name: "network", deps: []string{"audio"}, trace: &trace})

	if err := h.InitAll(w); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w.Resources.Game.State.RunID != "contributed" {
		t.Errorf("Expected contributed run id, got %q", w.Resources.Game.State.RunID)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	trace = trace[:0]
	h.StopAll()
	if len(trace) != 2 || trace[0] != "stop:network" || trace[1] != "stop:audio" {
		t.Errorf("Expected reverse stop order, got %v", trace)
	}

	if _, ok := Lookup[*contributingService](h, "audio"); !ok {
		t.Error("Expected typed lookup to succeed")
	}
}

func TestHubSentinelErrors(t *testing.T) {
	var trace []string
	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, trace: &trace})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, trace: &trace})
	if err := h.InitAll(engine.NewTestWorld()); !errors.Is(err, ErrCycle) {
		t.Errorf("Expected ErrCycle, got %v", err)
	}

	h = NewHub()
	h.Register(&fakeService{name: "network", deps: []string{"ghost"}, trace: &trace})
	if err := h.InitAll(engine.NewTestWorld()); !errors.Is(err, ErrMissing) {
		t.Errorf("Expected ErrMissing, got %v", err)
	}

	h = NewHub()
	h.Register(&fakeService{name: "audio", trace: &trace})
	if err := h.Register(&fakeService{name: "audio", trace: &trace}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}
