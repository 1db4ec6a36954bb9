package index

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/glint-dev/glint/pkg/value"
)

// Memory is an in-process index of documents keyed by path. Every
// mutation bumps the revision and publishes EventChanged on the bus.
//
// It exists so the view layer is runnable and testable end to end; a
// host with its own indexer only needs to satisfy Handle and publish
// EventChanged itself.
type Memory struct {
	bus *Bus

	mu       sync.RWMutex
	docs     map[string]*value.Record
	revision atomic.Uint64
}

// NewMemory creates an empty in-memory index publishing on bus.
func NewMemory(bus *Bus) *Memory {
	return &Memory{
		bus:  bus,
		docs: make(map[string]*value.Record),
	}
}

// Revision implements Handle.
func (m *Memory) Revision() uint64 {
	return m.revision.Load()
}

// Put stores or replaces a document and signals the change.
func (m *Memory) Put(path string, doc *value.Record) {
	m.mu.Lock()
	m.docs[path] = doc
	m.mu.Unlock()

	m.bump()
}

// Delete removes a document if present and signals the change.
func (m *Memory) Delete(path string) {
	m.mu.Lock()
	_, existed := m.docs[path]
	delete(m.docs, path)
	m.mu.Unlock()

	if existed {
		m.bump()
	}
}

// Get returns the document at path, or nil.
func (m *Memory) Get(path string) *value.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.docs[path]
}

// Paths returns all document paths in sorted order.
func (m *Memory) Paths() []string {
	m.mu.RLock()
	paths := make([]string, 0, len(m.docs))
	for p := range m.docs {
		paths = append(paths, p)
	}
	m.mu.RUnlock()

	sort.Strings(paths)
	return paths
}

// Len returns the number of documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *Memory) bump() {
	rev := m.revision.Add(1)
	if m.bus != nil {
		m.bus.Publish(EventChanged, rev)
	}
}
