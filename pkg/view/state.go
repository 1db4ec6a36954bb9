package view

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/glint-dev/glint/pkg/index"
	"github.com/glint-dev/glint/pkg/reactive"
)

// Compute produces the next state value. It must be idempotent and
// side-effect free: overlapping invocations race and only the newest
// result is applied. There is no cancellation of an in-flight compute;
// superseded and post-teardown results are discarded, not applied.
type Compute[T any] func(ctx context.Context) (T, error)

// State mirrors an index-backed computed value into a reactive signal.
//
// The value starts at the initial given to NewState and is replaced by
// the result of one immediate first compute. After that it recomputes
// when:
//
//   - the index revision has advanced since the last recompute AND the
//     container is shown AND Settings.RefreshEnabled is true, on the
//     bus's index-changed event; or
//   - the container transitions to visible, regardless of revision,
//     to catch data that changed while the view was hidden.
//
// lastReload records the revision observed at the most recent trigger,
// updated synchronously at trigger time so an in-flight compute is not
// re-triggered redundantly by the same revision.
//
// Each trigger is tagged with a generation number; a resolution is
// applied only if it carries the newest generation. This preserves
// last-write-wins deterministically instead of relying on resolution
// order. Results are applied through the Dispatcher, so reads from the
// event loop always observe a serialized sequence of states.
type State[T any] struct {
	value *reactive.Signal[T]
	err   *reactive.Signal[error]

	rc      *RenderContext
	compute Compute[T]

	mu         sync.Mutex
	lastReload uint64
	generation uint64

	closed atomic.Bool

	busToken    index.Token
	showDispose func()
}

// NewState creates the state, registers its subscriptions on the
// context's owner, and triggers the first compute. All subscriptions
// are released exactly once when the owner is disposed or Close is
// called, whichever comes first.
func NewState[T any](rc *RenderContext, initial T, compute Compute[T]) *State[T] {
	s := &State[T]{
		value:   reactive.NewSignal(initial),
		err:     reactive.NewSignal[error](nil),
		rc:      rc,
		compute: compute,
	}

	s.busToken = rc.Bus.Subscribe(index.EventChanged, func(any) {
		s.onIndexChanged()
	})
	s.showDispose = rc.Container.OnShow(func() {
		s.onBecameVisible()
	})

	if rc.Owner != nil {
		rc.Owner.OnCleanup(s.Close)
	}

	s.trigger("initial")
	return s
}

// Value returns the current value, subscribing the current listener.
func (s *State[T]) Value() T {
	return s.value.Get()
}

// Peek returns the current value without subscribing.
func (s *State[T]) Peek() T {
	return s.value.Peek()
}

// Err returns the error from the most recently applied compute, or nil.
func (s *State[T]) Err() error {
	return s.err.Get()
}

// LastReload returns the revision observed at the most recent trigger.
func (s *State[T]) LastReload() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReload
}

// Close releases the bus and visibility subscriptions and discards any
// compute still in flight. Idempotent; no state mutation happens after
// the first Close.
func (s *State[T]) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.rc.Bus.Unsubscribe(s.busToken)
	s.showDispose()
}

// onIndexChanged handles the index-changed bus event.
func (s *State[T]) onIndexChanged() {
	if s.closed.Load() {
		return
	}
	if !s.rc.Settings.RefreshEnabled {
		return
	}
	if !s.rc.Container.IsShown() {
		return
	}

	s.mu.Lock()
	advanced := s.rc.Index.Revision() > s.lastReload
	s.mu.Unlock()

	if advanced {
		s.trigger("revision")
	}
}

// onBecameVisible handles a hidden-to-shown transition. Recomputes
// unconditionally: data may have changed while the view was hidden
// without the revision comparison catching it.
func (s *State[T]) onBecameVisible() {
	if s.closed.Load() {
		return
	}
	s.trigger("visibility")
}

// trigger starts one compute. lastReload and the generation advance
// synchronously, before the compute runs, so concurrent triggers
// observe them immediately.
func (s *State[T]) trigger(reason string) {
	s.mu.Lock()
	s.lastReload = s.rc.Index.Revision()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	metricRecomputes.WithLabelValues(reason).Inc()

	go func() {
		result, err := s.compute(context.Background())

		s.rc.Dispatcher.Dispatch(func() {
			s.apply(gen, result, err)
		})
	}()
}

// apply installs a compute result if it is still the newest one and the
// state has not been torn down. Stale and post-teardown resolutions are
// discarded silently.
func (s *State[T]) apply(gen uint64, result T, err error) {
	if s.closed.Load() {
		metricStaleDiscarded.Inc()
		return
	}

	s.mu.Lock()
	stale := gen != s.generation
	s.mu.Unlock()

	if stale {
		metricStaleDiscarded.Inc()
		return
	}

	if err != nil {
		slog.Warn("view state compute failed", "error", err)
		s.err.Set(err)
		return
	}

	// Both signals flip together; subscribers see one notification.
	reactive.Batch(func() {
		s.err.Set(nil)
		s.value.Set(result)
	})
}
