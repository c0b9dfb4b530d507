package kind

import (
	"encoding"
	"encoding/json"
	"iter"
	"reflect"
	"time"

	"github.com/MSyics/Jsonable/dyn"

	"github.com/google/uuid"
)

var (
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

	keyTypes = map[reflect.Type]bool{
		reflect.TypeFor[time.Time]():     true,
		reflect.TypeFor[time.Duration](): true,
		reflect.TypeFor[uuid.UUID]():     true,
	}
)

// Classify reports the JSON kind of v. It never fails: maps whose keys JSON
// cannot represent are Undefined and unrecognized values are Object.
// Receivable channels and iter.Seq functions of any element type are Array.
func Classify(v any) Kind {
	switch x := v.(type) {
	case nil:
		return Null
	case bool:
		if x {
			return True
		}
		return False
	case string:
		return String
	case json.Number:
		return Number
	case *dyn.Node:
		if x == nil {
			return Null
		}
		return Object
	case iter.Seq[any]:
		return Array
	}
	return classifyValue(reflect.ValueOf(v))
}

func classifyValue(rv reflect.Value) Kind {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return True
		}
		return False
	case reflect.String:
		return String
	case reflect.Map:
		if IsKeyType(rv.Type().Key()) {
			return Object
		}
		return Undefined
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			return Array
		}
	case reflect.Func:
		if isSeq(rv.Type()) {
			return Array
		}
	}
	if isNumber(rv.Type()) {
		return Number
	}
	return Object
}

// isSeq reports whether t has the shape of an iter.Seq of any element type.
func isSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumIn() == 1 && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

func isNumber(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsKeyType reports whether map keys of type t can be written as JSON object
// keys: strings, booleans, numbers, times, durations, UUIDs and anything
// implementing encoding.TextMarshaler.
func IsKeyType(t reflect.Type) bool {
	if keyTypes[t] || t.Implements(textMarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool:
		return true
	default:
		return isNumber(t)
	}
}
