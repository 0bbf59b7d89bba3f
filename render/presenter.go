package render

import (
	"sync"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/engine"
)

type visualEntry struct {
	kind  component.VisualKind
	label string
}

// TerminalPresenter tracks visual handles requested by the simulation
// Positions are read from the world each frame, the presenter only owns handle lifetime and labels
type TerminalPresenter struct {
	mu      sync.Mutex
	next    engine.VisualHandle
	visuals map[engine.VisualHandle]*visualEntry

	spawned   int
	destroyed int
}

// NewTerminalPresenter creates an empty presenter
func NewTerminalPresenter() *TerminalPresenter {
	return &TerminalPresenter{
		visuals: make(map[engine.VisualHandle]*visualEntry),
	}
}

// SpawnVisual implements engine.Presenter
func (p *TerminalPresenter) SpawnVisual(kind component.VisualKind, _ component.TransformComponent) engine.VisualHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next++
	p.visuals[p.next] = &visualEntry{kind: kind}
	p.spawned++
	return p.next
}

// DestroyVisual implements engine.Presenter, unknown handles are ignored
func (p *TerminalPresenter) DestroyVisual(h engine.VisualHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.visuals[h]; ok {
		delete(p.visuals, h)
		p.destroyed++
	}
}

// UpdateText implements engine.Presenter
func (p *TerminalPresenter) UpdateText(h engine.VisualHandle, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.visuals[h]; ok {
		v.label = text
	}
}

// Label returns the text attached to a handle
func (p *TerminalPresenter) Label(h engine.VisualHandle) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.visuals[h]; ok {
		return v.label
	}
	return ""
}

// Live reports whether a handle is alive
func (p *TerminalPresenter) Live(h engine.VisualHandle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.visuals[h]
	return ok
}

// Count returns live visuals of a kind
func (p *TerminalPresenter) Count(kind component.VisualKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, v := range p.visuals {
		if v.kind == kind {
			n++
		}
	}
	return n
}

// Stats returns lifetime spawn and destroy counts
func (p *TerminalPresenter) Stats() (spawned, destroyed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spawned, p.destroyed
}
