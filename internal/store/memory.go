package store

import (
	"context"
	"sync"
)

// MemoryGateway holds documents in process memory. Used by tests and by
// the "memory" storage driver.
type MemoryGateway struct {
	mu   sync.RWMutex
	docs map[string][]byte
	// FailSave, when set, is returned by every Save.
	FailSave error
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{docs: make(map[string][]byte)}
}

func (g *MemoryGateway) Load(_ context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	doc, ok := g.docs[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), doc...), nil
}

func (g *MemoryGateway) Save(_ context.Context, name string, doc []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSave != nil {
		return g.FailSave
	}
	g.docs[name] = append([]byte(nil), doc...)
	return nil
}

// Put seeds a raw document, bypassing FailSave.
func (g *MemoryGateway) Put(name string, doc []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.docs[name] = append([]byte(nil), doc...)
}
