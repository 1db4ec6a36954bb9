package index

import (
	"testing"

	"github.com/glint-dev/glint/pkg/value"
)

func TestMemoryPutGetDelete(t *testing.T) {
	bus := NewBus()
	m := NewMemory(bus)

	var events int
	bus.Subscribe(EventChanged, func(any) { events++ })

	m.Put("a.md", value.NewRecord().Set("x", value.Number(1)))
	m.Put("b.md", value.NewRecord())

	if m.Len() != 2 || m.Revision() != 2 || events != 2 {
		t.Fatalf("len=%d rev=%d events=%d", m.Len(), m.Revision(), events)
	}
	if doc := m.Get("a.md"); doc == nil {
		t.Fatal("document not stored")
	}

	paths := m.Paths()
	if len(paths) != 2 || paths[0] != "a.md" || paths[1] != "b.md" {
		t.Errorf("paths = %v", paths)
	}

	m.Delete("a.md")
	if m.Len() != 1 || m.Revision() != 3 {
		t.Errorf("delete not applied: len=%d rev=%d", m.Len(), m.Revision())
	}

	// Deleting an absent path neither bumps nor publishes.
	m.Delete("a.md")
	if m.Revision() != 3 || events != 3 {
		t.Errorf("phantom delete bumped revision: rev=%d events=%d", m.Revision(), events)
	}
}

func TestMemoryRevisionMonotonic(t *testing.T) {
	m := NewMemory(NewBus())

	var last uint64
	for i := 0; i < 10; i++ {
		m.Put("doc.md", value.NewRecord())
		if rev := m.Revision(); rev <= last {
			t.Fatalf("revision not monotonic: %d after %d", rev, last)
		} else {
			last = rev
		}
	}
}
