package value

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/glint-dev/glint/pkg/markup"
)

// Of classifies an arbitrary Go value into exactly one variant. The
// classification is total: anything that matches no other variant is
// absorbed into a String via its %v form, never an error.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Number(x)
	case int8:
		return Number(x)
	case int16:
		return Number(x)
	case int32:
		return Number(x)
	case int64:
		return Number(x)
	case uint:
		return Number(x)
	case uint8:
		return Number(x)
	case uint16:
		return Number(x)
	case uint32:
		return Number(x)
	case uint64:
		return Number(x)
	case float32:
		return Number(x)
	case float64:
		return Number(x)
	case time.Time:
		return Date{Time: x}
	case time.Duration:
		return Duration(x)
	case *markup.Node:
		if x == nil {
			return Null{}
		}
		return Markup{Node: x}
	case []any:
		list := make(List, len(x))
		for i, item := range x {
			list[i] = Of(item)
		}
		return list
	case map[string]any:
		// Sort keys so classification of unordered Go maps is
		// deterministic.
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		r := NewRecord()
		for _, k := range keys {
			r.Set(k, Of(x[k]))
		}
		return r
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return Func{Name: rv.Type().String()}
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return Of(rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keys := make([]string, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				keys = append(keys, iter.Key().String())
			}
			sort.Strings(keys)

			r := NewRecord()
			for _, k := range keys {
				r.Set(k, Of(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()))
			}
			return r
		}
	case reflect.Slice, reflect.Array:
		list := make(List, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			list[i] = Of(rv.Index(i).Interface())
		}
		return list
	case reflect.Struct:
		// Structs carry identity beyond a plain mapping: expose their
		// fields but tag the record with the type name so the renderer
		// treats it as opaque.
		r := NewTypedRecord(rv.Type().Name())
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			r.Set(f.Name, Of(rv.Field(i).Interface()))
		}
		return r
	}

	// Textual dump fallback for everything unrecognized.
	return String(fmt.Sprintf("%v", v))
}
