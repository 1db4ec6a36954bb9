// Package value defines the closed, dynamically-classified value model
// the view layer renders: scalars, dates, durations, links, embedded
// markup, opaque functions, lists, and records. Classification via Of
// is total and mutually exclusive; unrecognized shapes fall back to a
// textual value instead of failing.
package value
