// Package view is the reactive rendering layer: it mirrors the state
// of an external, continuously-mutating index into rendered markup and
// recursively renders the dynamic value model into output containers.
//
// The pieces fit together like this: a Tree mounts a Component into a
// Container under a RenderContext; the component creates States that
// compute values from the index and recompute on revision or
// visibility changes; a ValueRenderer turns computed values into
// markup nodes; markdown text delegates to the host's MarkupRenderer
// through the bridge. Unmounting the Tree disposes its owner, which
// releases every subscription exactly once; compute results resolving
// after teardown are discarded, never applied.
package view
