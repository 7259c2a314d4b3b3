package kb

import (
	"fmt"
	"sort"
	"sync"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// EventType indicates what kind of change happened in the KB.
type EventType int

const (
	EventInstallationUpdated EventType = iota
)

// Event is emitted to subscribers when something interesting happens.
type Event struct {
	Type         EventType
	Installation model.Installation
}

// KnowledgeBase is an in-memory, thread-safe store for concentrator
// installations. The computation core stays pure; the KB is the
// caller-side state the simulator loop and any serving layer share.
type KnowledgeBase struct {
	mu sync.RWMutex

	installations map[string]*model.Installation

	subs []func(Event)
}

// NewKnowledgeBase constructs an empty KB.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		installations: make(map[string]*model.Installation),
	}
}

// AddInstallation adds a new installation. It returns an error if the
// ID is empty or already exists.
func (kb *KnowledgeBase) AddInstallation(inst *model.Installation) error {
	if inst == nil || inst.ID == "" {
		return fmt.Errorf("nil or empty installation")
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()

	if _, exists := kb.installations[inst.ID]; exists {
		return fmt.Errorf("installation with ID %q already exists", inst.ID)
	}
	// store pointer so the tick loop can update the light source in place
	kb.installations[inst.ID] = inst
	return nil
}

// GetInstallation returns the installation with the given ID, or nil
// if not found.
func (kb *KnowledgeBase) GetInstallation(id string) *model.Installation {
	kb.mu.RLock()
	defer kb.mu.RUnlock()
	return kb.installations[id]
}

// ListInstallations returns a snapshot slice of all installations,
// ordered by ID for deterministic iteration.
func (kb *KnowledgeBase) ListInstallations() []*model.Installation {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	res := make([]*model.Installation, 0, len(kb.installations))
	for _, inst := range kb.installations {
		res = append(res, inst)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// UpdateLightSource replaces an installation's light source and
// notifies subscribers. The sun-tracking tick loop calls this once per
// simulated tick.
func (kb *KnowledgeBase) UpdateLightSource(id string, source model.LightSource) error {
	kb.mu.Lock()
	inst, ok := kb.installations[id]
	if !ok {
		kb.mu.Unlock()
		return fmt.Errorf("installation with ID %q not found", id)
	}
	inst.Source = source
	event := Event{
		Type:         EventInstallationUpdated,
		Installation: *inst, // copy for safety
	}
	subs := append([]func(Event){}, kb.subs...)
	kb.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// ReplaceSystem swaps an installation's optical system wholesale.
// Lenses are immutable values, so edits arrive as full replacements.
func (kb *KnowledgeBase) ReplaceSystem(id string, system model.OpticalSystem) error {
	kb.mu.Lock()
	inst, ok := kb.installations[id]
	if !ok {
		kb.mu.Unlock()
		return fmt.Errorf("installation with ID %q not found", id)
	}
	inst.System = system
	event := Event{
		Type:         EventInstallationUpdated,
		Installation: *inst,
	}
	subs := append([]func(Event){}, kb.subs...)
	kb.mu.Unlock()

	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// Subscribe registers a callback for KB events. It returns an unsubscribe function.
func (kb *KnowledgeBase) Subscribe(fn func(Event)) (unsubscribe func()) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.subs = append(kb.subs, fn)
	idx := len(kb.subs) - 1

	return func() {
		kb.mu.Lock()
		defer kb.mu.Unlock()
		if idx < 0 || idx >= len(kb.subs) {
			return
		}
		kb.subs = append(kb.subs[:idx], kb.subs[idx+1:]...)
		idx = -1
	}
}
