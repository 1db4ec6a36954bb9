package index

// EventChanged is the bus event published whenever indexed data changes.
// The payload is the new revision (uint64).
const EventChanged = "index:changed"

// Handle exposes the revision counter of an external index.
//
// Revision is monotonic: it only increases, and two equal observations
// imply no data change occurred between them. (False negatives are
// possible - the revision may advance without a visible data change -
// but never false positives.)
type Handle interface {
	Revision() uint64
}
