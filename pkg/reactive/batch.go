package reactive

// Batch groups multiple signal updates into a single notification phase.
// Updates inside the batch function are collected, deduplicated by
// listener ID, and delivered once when the outermost batch completes.
//
// Example:
//
//	Batch(func() {
//	    revision.Set(12)
//	    shown.Set(true)
//	})
//	// subscribers are notified once
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, listener := range updates {
		id := listener.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		listener.MarkDirty()
	}
}

// Untracked runs fn without tracking signal reads as dependencies.
// For single reads prefer signal.Peek(), which is clearer in intent.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}
