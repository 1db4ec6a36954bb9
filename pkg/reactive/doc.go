// Package reactive provides the subscription primitives the view layer
// is built on: signals (observable values), memos (cached derived
// values), effects (side effects with automatic dependency tracking),
// and owners (disposal scopes that release every subscription exactly
// once when a view unmounts).
//
// Dependency tracking is goroutine-local: reading a signal while a
// listener is installed subscribes that listener. All mutation in a
// running application is funneled through a single session event loop,
// so listeners observe a serialized sequence of updates.
package reactive
