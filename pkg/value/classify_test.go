package value

import (
	"testing"
	"time"
)

func TestOfScalars(t *testing.T) {
	tests := []struct {
		in   any
		want Kind
	}{
		{nil, KindNull},
		{"hello", KindString},
		{42, KindNumber},
		{int64(7), KindNumber},
		{uint8(3), KindNumber},
		{3.14, KindNumber},
		{true, KindBool},
		{time.Now(), KindDate},
		{5 * time.Minute, KindDuration},
	}

	for _, tt := range tests {
		if got := Of(tt.in).Kind(); got != tt.want {
			t.Errorf("Of(%v).Kind() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOfPassesThroughValues(t *testing.T) {
	l := Link{Path: "a.md"}
	if got := Of(l); got != (Value)(l) {
		t.Errorf("Of(Value) should pass through, got %v", got)
	}
}

func TestOfSlice(t *testing.T) {
	v := Of([]any{1, "a", nil})
	list, ok := v.(List)
	if !ok {
		t.Fatalf("expected List, got %T", v)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list))
	}
	if list[0].Kind() != KindNumber || list[1].Kind() != KindString || list[2].Kind() != KindNull {
		t.Errorf("unexpected item kinds: %v %v %v", list[0].Kind(), list[1].Kind(), list[2].Kind())
	}
}

func TestOfTypedSlice(t *testing.T) {
	v := Of([]int{1, 2, 3})
	list, ok := v.(List)
	if !ok {
		t.Fatalf("expected List, got %T", v)
	}
	if len(list) != 3 || list[0].Kind() != KindNumber {
		t.Errorf("unexpected classification: %#v", list)
	}
}

func TestOfMapIsPlainRecordWithSortedKeys(t *testing.T) {
	v := Of(map[string]any{"b": 2, "a": 1})
	r, ok := v.(*Record)
	if !ok {
		t.Fatalf("expected Record, got %T", v)
	}
	if !r.IsPlain() {
		t.Error("map should classify as a plain record")
	}
	keys := r.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("expected sorted keys, got %v", keys)
	}
}

func TestOfStructIsTypedRecord(t *testing.T) {
	type Page struct {
		Title string
		Size  int
	}
	v := Of(Page{Title: "t", Size: 3})
	r, ok := v.(*Record)
	if !ok {
		t.Fatalf("expected Record, got %T", v)
	}
	if r.IsPlain() {
		t.Error("struct should classify as a typed record")
	}
	if r.TypeName != "Page" {
		t.Errorf("expected TypeName Page, got %q", r.TypeName)
	}
}

func TestOfFunc(t *testing.T) {
	v := Of(func() {})
	if v.Kind() != KindFunc {
		t.Errorf("expected Func, got %v", v.Kind())
	}
}

func TestOfNilPointer(t *testing.T) {
	var p *int
	if got := Of(p).Kind(); got != KindNull {
		t.Errorf("nil pointer should be Null, got %v", got)
	}
}

func TestOfPointerDereferences(t *testing.T) {
	n := 5
	if got := Of(&n).Kind(); got != KindNumber {
		t.Errorf("pointer should classify its target, got %v", got)
	}
}

func TestOfUnrecognizedFallsBackToString(t *testing.T) {
	ch := make(chan int)
	v := Of(ch)
	if v.Kind() != KindString {
		t.Errorf("unrecognized shape should degrade to String, got %v", v.Kind())
	}
}
