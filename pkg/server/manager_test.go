package server

import "testing"

func TestSessionManager(t *testing.T) {
	m := NewSessionManager()

	a := &Session{ID: "a"}
	b := &Session{ID: "b"}
	m.Add(a)
	m.Add(b)

	if got := m.Get("a"); got != a {
		t.Fatal("Get returned wrong session")
	}
	if stats := m.Stats(); stats.Active != 2 || stats.Peak != 2 {
		t.Fatalf("stats = %+v", stats)
	}

	m.Remove("a")
	m.Remove("a") // idempotent

	stats := m.Stats()
	if stats.Active != 1 || stats.TotalClosed != 1 || stats.TotalCreated != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if m.Get("a") != nil {
		t.Error("removed session still resolvable")
	}
}
