package reactive

import "testing"

func TestMemoLazyAndCached(t *testing.T) {
	sig := NewSignal(2)
	computes := 0

	m := NewMemo(func() int {
		computes++
		return sig.Get() * 10
	})

	if computes != 0 {
		t.Errorf("memo should be lazy, got %d computes", computes)
	}

	if v := m.Get(); v != 20 {
		t.Errorf("expected 20, got %d", v)
	}
	if v := m.Get(); v != 20 {
		t.Errorf("expected 20, got %d", v)
	}
	if computes != 1 {
		t.Errorf("repeated reads should hit cache, got %d computes", computes)
	}
}

func TestMemoInvalidatesOnDependencyChange(t *testing.T) {
	sig := NewSignal(1)
	computes := 0

	m := NewMemo(func() int {
		computes++
		return sig.Get() + 1
	})

	if v := m.Get(); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}

	sig.Set(5)
	if v := m.Get(); v != 6 {
		t.Errorf("expected 6 after change, got %d", v)
	}
	if computes != 2 {
		t.Errorf("expected 2 computes, got %d", computes)
	}
}

func TestMemoRecomputesOncePerBatch(t *testing.T) {
	sig := NewSignal(0)
	computes := 0

	m := NewMemo(func() int {
		computes++
		return sig.Get()
	})

	_ = m.Get()

	Batch(func() {
		sig.Set(1)
		sig.Set(2)
		sig.Set(3)
	})

	if v := m.Get(); v != 3 {
		t.Errorf("expected 3, got %d", v)
	}
	if computes != 2 {
		t.Errorf("batched changes should cost one recompute, got %d", computes)
	}
}

func TestMemoPropagatesDirtyToSubscribers(t *testing.T) {
	sig := NewSignal(0)
	m := NewMemo(func() int { return sig.Get() })
	listener := newTestListener()

	WithListener(listener, func() {
		_ = m.Get()
	})

	sig.Set(1)
	if listener.dirtyCount() != 1 {
		t.Errorf("memo should propagate invalidation, got %d notifications", listener.dirtyCount())
	}
}

func TestMemoUnchangedValueDoesNotNotify(t *testing.T) {
	sig := NewSignal(1)
	m := NewMemo(func() int { return sig.Get() % 2 })
	listener := newTestListener()

	WithListener(listener, func() {
		_ = m.Get()
	})

	// 1 and 3 have the same parity, so the memo's value is unchanged.
	sig.Set(3)
	if listener.dirtyCount() != 0 {
		t.Errorf("unchanged memo value should not notify, got %d", listener.dirtyCount())
	}

	sig.Set(2)
	if listener.dirtyCount() != 1 {
		t.Errorf("changed memo value should notify once, got %d", listener.dirtyCount())
	}
}

func TestMemoCustomEqualsGatesNotification(t *testing.T) {
	sig := NewSignal(1)
	m := NewMemo(func() int {
		_ = sig.Get()
		return 42
	}).WithEquals(func(a, b int) bool { return true })
	listener := newTestListener()

	WithListener(listener, func() {
		_ = m.Get()
	})

	sig.Set(2)
	if listener.dirtyCount() != 0 {
		t.Errorf("always-equal comparator should suppress notification, got %d", listener.dirtyCount())
	}
}

func TestBatchCoalescesNotifications(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		_ = a.Get()
		_ = b.Get()
	})

	Batch(func() {
		a.Set(1)
		b.Set(1)
	})

	if listener.dirtyCount() != 1 {
		t.Errorf("batched updates should notify once, got %d", listener.dirtyCount())
	}
}
