package value

import (
	"testing"
	"time"
)

func TestNumberText(t *testing.T) {
	tests := []struct {
		in   Number
		want string
	}{
		{Number(1), "1"},
		{Number(1.5), "1.5"},
		{Number(0), "0"},
		{Number(-2.25), "-2.25"},
		{Number(1000000), "1000000"},
	}

	for _, tt := range tests {
		if got := tt.in.Text(); got != tt.want {
			t.Errorf("Number(%v).Text() = %q, want %q", float64(tt.in), got, tt.want)
		}
	}
}

func TestLinkMarkdown(t *testing.T) {
	l := Link{Path: "notes/today.md", Display: "Today"}
	if got := l.Markdown(); got != "[Today](notes/today.md)" {
		t.Errorf("unexpected markdown: %s", got)
	}

	// Display falls back to the path.
	bare := Link{Path: "notes/today.md"}
	if got := bare.Markdown(); got != "[notes/today.md](notes/today.md)" {
		t.Errorf("unexpected markdown: %s", got)
	}
}

func TestRecordOrderPreserved(t *testing.T) {
	r := NewRecord().
		Set("zebra", Number(1)).
		Set("apple", Number(2)).
		Set("mango", Number(3))

	keys := r.Keys()
	want := []string{"zebra", "apple", "mango"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("expected insertion order %v, got %v", want, keys)
		}
	}

	// Re-setting an existing key keeps its position.
	r.Set("apple", Number(4))
	if r.Keys()[1] != "apple" {
		t.Errorf("re-set key moved: %v", r.Keys())
	}
	if v, _ := r.Get("apple"); v.(Number) != 4 {
		t.Errorf("re-set key kept old value: %v", v)
	}
}

func TestRecordPlainVsTyped(t *testing.T) {
	if !NewRecord().IsPlain() {
		t.Error("untagged record should be plain")
	}
	if NewTypedRecord("Page").IsPlain() {
		t.Error("typed record should not be plain")
	}
}

func TestKindStrings(t *testing.T) {
	kinds := map[Kind]string{
		KindNull:     "Null",
		KindString:   "String",
		KindNumber:   "Number",
		KindBool:     "Bool",
		KindDate:     "Date",
		KindDuration: "Duration",
		KindLink:     "Link",
		KindMarkup:   "Markup",
		KindFunc:     "Func",
		KindList:     "List",
		KindRecord:   "Record",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind.String() = %q, want %q", got, want)
		}
	}
}

func TestEveryVariantHasDistinctKind(t *testing.T) {
	values := []Value{
		Null{},
		String("x"),
		Number(1),
		Bool(true),
		Date{Time: time.Now()},
		Duration(time.Second),
		Link{Path: "p"},
		Markup{},
		Func{},
		List{},
		NewRecord(),
	}

	seen := make(map[Kind]bool)
	for _, v := range values {
		if seen[v.Kind()] {
			t.Errorf("duplicate kind %v", v.Kind())
		}
		seen[v.Kind()] = true
	}
	if len(seen) != 11 {
		t.Errorf("expected 11 distinct kinds, got %d", len(seen))
	}
}
