package value

import (
	"strconv"
	"time"

	"github.com/glint-dev/glint/pkg/markup"
)

// Kind is the variant discriminator for Value. The set is closed: every
// value classifies as exactly one kind, and anything unrecognized is
// absorbed into KindString by Of rather than failing.
type Kind uint8

const (
	KindNull     Kind = iota // Absent value
	KindString               // UTF-8 text
	KindNumber               // float64
	KindBool                 // true/false
	KindDate                 // Calendar timestamp
	KindDuration             // Elapsed time
	KindLink                 // Reference to another document
	KindMarkup               // Pre-built markup subtree
	KindFunc                 // Opaque callable, never invoked
	KindList                 // Ordered sequence of values
	KindRecord               // Ordered key-value mapping
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindDate:
		return "Date"
	case KindDuration:
		return "Duration"
	case KindLink:
		return "Link"
	case KindMarkup:
		return "Markup"
	case KindFunc:
		return "Func"
	case KindList:
		return "List"
	case KindRecord:
		return "Record"
	default:
		return "Unknown"
	}
}

// Value is the closed variant the view layer renders. Instances are
// produced fresh on each compute and never mutated after construction.
type Value interface {
	Kind() Kind
}

// Null is the absent value.
type Null struct{}

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }

// String is a text value.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Number is a numeric value.
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// Text returns the canonical textual form: no exponent and no trailing
// zeros, so Number(1) renders as "1".
func (n Number) Text() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Bool is a boolean value.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Text returns "true" or "false".
func (b Bool) Text() string {
	return strconv.FormatBool(bool(b))
}

// Date is a calendar timestamp.
type Date struct {
	Time time.Time
}

// Kind implements Value.
func (Date) Kind() Kind { return KindDate }

// Duration is an elapsed-time value.
type Duration time.Duration

// Kind implements Value.
func (Duration) Kind() Kind { return KindDuration }

// Link references another document by path, with an optional display
// label.
type Link struct {
	Path    string
	Display string
}

// Kind implements Value.
func (Link) Kind() Kind { return KindLink }

// Markdown returns the link's markdown serialization.
func (l Link) Markdown() string {
	display := l.Display
	if display == "" {
		display = l.Path
	}
	return "[" + display + "](" + l.Path + ")"
}

// Markup carries a pre-built markup subtree that is embedded into the
// output directly, without re-parsing.
type Markup struct {
	Node *markup.Node
}

// Kind implements Value.
func (Markup) Kind() Kind { return KindMarkup }

// Func is an opaque callable. The renderer never invokes or introspects
// it; it exists so computed results containing functions degrade to a
// placeholder instead of failing.
type Func struct {
	Name string
}

// Kind implements Value.
func (Func) Kind() Kind { return KindFunc }

// List is an ordered sequence of values.
type List []Value

// Kind implements Value.
func (List) Kind() Kind { return KindList }

// Record is an ordered key-value mapping. A Record with an empty
// TypeName is a plain mapping; a non-empty TypeName marks an opaque
// typed object the renderer must not descend into.
type Record struct {
	// TypeName distinguishes tagged object instances from plain
	// mappings. Empty for plain mappings.
	TypeName string

	keys   []string
	fields map[string]Value
}

// Kind implements Value.
func (*Record) Kind() Kind { return KindRecord }

// NewRecord creates an empty plain record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// NewTypedRecord creates a record tagged with a type name. The renderer
// treats it as opaque.
func NewTypedRecord(typeName string) *Record {
	r := NewRecord()
	r.TypeName = typeName
	return r
}

// IsPlain reports whether the record is a plain mapping with no
// distinguishing runtime type.
func (r *Record) IsPlain() bool {
	return r.TypeName == ""
}

// Set adds or replaces a field, preserving first-insertion order.
func (r *Record) Set(key string, v Value) *Record {
	if _, exists := r.fields[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = v
	return r
}

// Get returns the field value and whether it exists.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Keys returns the field keys in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}
