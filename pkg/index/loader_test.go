package index

import (
	"testing"

	"github.com/glint-dev/glint/pkg/value"
)

const testSnapshot = `
documents:
  notes/today.md:
    title: Today
    rating: 4.5
    done: false
    tags: [daily, log]
  notes/ideas.md:
    title: Ideas
`

func TestLoadSnapshotBytes(t *testing.T) {
	m := NewMemory(NewBus())

	n, err := LoadSnapshotBytes(m, []byte(testSnapshot))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 documents loaded, got %d", n)
	}
	if m.Len() != 2 {
		t.Errorf("expected 2 documents in index, got %d", m.Len())
	}

	doc := m.Get("notes/today.md")
	if doc == nil {
		t.Fatal("missing document notes/today.md")
	}

	title, _ := doc.Get("title")
	if title.Kind() != value.KindString || title.(value.String) != "Today" {
		t.Errorf("unexpected title: %v", title)
	}

	rating, _ := doc.Get("rating")
	if rating.Kind() != value.KindNumber {
		t.Errorf("expected rating Number, got %v", rating.Kind())
	}

	tags, _ := doc.Get("tags")
	list, ok := tags.(value.List)
	if !ok || len(list) != 2 {
		t.Errorf("expected tags list of 2, got %v", tags)
	}
}

func TestLoadSnapshotBadYAML(t *testing.T) {
	m := NewMemory(NewBus())
	if _, err := LoadSnapshotBytes(m, []byte("documents: [not a map")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadSnapshotAdvancesRevision(t *testing.T) {
	m := NewMemory(NewBus())
	before := m.Revision()

	if _, err := LoadSnapshotBytes(m, []byte(testSnapshot)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Revision() <= before {
		t.Error("loading documents should advance the revision")
	}
}
