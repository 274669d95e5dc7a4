package store

import (
	"context"
	"sort"
	"sync"

	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
)

// Memory is an in-memory store for development and testing. Designs are
// kept as serialized JSON so loads return independent copies, same as the
// durable backends.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Save(ctx context.Context, d *design.ArchitecturalDesign) (string, error) {
	data, err := design.MarshalDesign(d)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "encode design")
	}

	id := NewID()
	m.mu.Lock()
	m.docs[id] = data
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) Load(ctx context.Context, id string) (*design.ArchitecturalDesign, error) {
	m.mu.RLock()
	data, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "design %s not found", id)
	}

	d, err := design.UnmarshalDesign(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode design %s", id)
	}
	return d, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.docs, id)
	m.mu.Unlock()
	return nil
}

func (m *Memory) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Strings(ids)
	return ids, nil
}

func (m *Memory) Close() error { return nil }
