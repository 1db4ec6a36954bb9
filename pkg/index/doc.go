// Package index provides the revision-counted index handle the view
// layer synchronizes against, the named-event bus that delivers change
// notifications, and an in-memory index implementation with a YAML
// snapshot loader.
package index
