package kind

import (
	"iter"
	"reflect"

	"github.com/MSyics/Jsonable/dyn"
)

// IsNullOrEmpty reports whether v is nil, an empty string, an empty node or
// an empty slice, array or map.
func IsNullOrEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *dyn.Node:
		return x.IsEmpty()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}

// Enumerate returns the elements of a slice, array, receivable channel or
// iter.Seq of any element type. Channels are drained until closed. Any other
// value, including strings, maps and nodes, yields an empty sequence.
func Enumerate(v any) iter.Seq[any] {
	if seq, ok := v.(iter.Seq[any]); ok && seq != nil {
		return seq
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := range rv.Len() {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}
	case reflect.Chan:
		if rv.IsNil() || rv.Type().ChanDir()&reflect.RecvDir == 0 {
			break
		}
		return func(yield func(any) bool) {
			for {
				x, ok := rv.Recv()
				if !ok || !yield(x.Interface()) {
					return
				}
			}
		}
	case reflect.Func:
		if rv.IsNil() || !isSeq(rv.Type()) {
			break
		}
		yt := rv.Type().In(0)
		return func(yield func(any) bool) {
			fn := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
				return []reflect.Value{reflect.ValueOf(yield(args[0].Interface())).Convert(yt.Out(0))}
			})
			rv.Call([]reflect.Value{fn})
		}
	}
	return func(func(any) bool) {}
}
