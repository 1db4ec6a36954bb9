package reactive

import "testing"

func TestOwnerCleanupOrder(t *testing.T) {
	owner := NewOwner(nil)

	var order []int
	owner.OnCleanup(func() { order = append(order, 1) })
	owner.OnCleanup(func() { order = append(order, 2) })
	owner.OnCleanup(func() { order = append(order, 3) })

	owner.Dispose()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("cleanups should run in reverse order, got %v", order)
	}
}

func TestOwnerDisposeIdempotent(t *testing.T) {
	owner := NewOwner(nil)

	calls := 0
	owner.OnCleanup(func() { calls++ })

	owner.Dispose()
	owner.Dispose()

	if calls != 1 {
		t.Errorf("cleanup should run exactly once, got %d", calls)
	}
	if !owner.IsDisposed() {
		t.Error("owner should report disposed")
	}
}

func TestOwnerDisposesChildren(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	grandchild := NewOwner(child)

	disposed := make(map[string]bool)
	child.OnCleanup(func() { disposed["child"] = true })
	grandchild.OnCleanup(func() { disposed["grandchild"] = true })

	root.Dispose()

	if !disposed["child"] || !disposed["grandchild"] {
		t.Errorf("expected all descendants disposed, got %v", disposed)
	}
}

func TestOnCleanupAfterDisposeRunsImmediately(t *testing.T) {
	owner := NewOwner(nil)
	owner.Dispose()

	ran := false
	owner.OnCleanup(func() { ran = true })

	if !ran {
		t.Error("cleanup registered after dispose should run immediately")
	}
}

func TestOwnerScopedValues(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)

	type key struct{}
	root.SetValue(key{}, "root-value")

	if got := child.GetValue(key{}); got != "root-value" {
		t.Errorf("child should see ancestor value, got %v", got)
	}

	child.SetValue(key{}, "child-value")
	if got := child.GetValue(key{}); got != "child-value" {
		t.Errorf("nearest scope should win, got %v", got)
	}
	if got := root.GetValue(key{}); got != "root-value" {
		t.Errorf("parent scope should be unaffected, got %v", got)
	}
}

func TestOwnerDisposeReleasesEffectSubscriptions(t *testing.T) {
	owner := NewOwner(nil)
	sig := NewSignal(0)

	runs := 0
	WithOwner(owner, func() {
		CreateEffect(func() Cleanup {
			_ = sig.Get()
			runs++
			return nil
		})
	})

	if runs != 1 {
		t.Fatalf("effect should run once on creation, got %d", runs)
	}

	owner.Dispose()

	sig.Set(1)
	owner.RunPendingEffects()

	if runs != 1 {
		t.Errorf("disposed effect must not re-run, got %d runs", runs)
	}
}
