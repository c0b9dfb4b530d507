package main

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/MSyics/Jsonable/dyn"
	"github.com/MSyics/Jsonable/kind"

	"github.com/goccy/go-yaml"
)

// parseValue reads a command line value. Anything yaml accepts is allowed,
// which includes json.
func parseValue(s string) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(s), &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromPlain(v), nil
}

// fromPlain converts decoded Go values into a node graph. Maps become nodes
// and all numbers become float64.
func fromPlain(v any) any {
	switch x := v.(type) {
	case nil, bool, string, float64, *dyn.Node:
		return v
	case yaml.MapSlice:
		res := dyn.New()
		for _, item := range x {
			res.Put(fmt.Sprint(item.Key), fromPlain(item.Value))
		}
		return res
	case map[string]any:
		res := dyn.New()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res.Put(k, fromPlain(x[k]))
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = fromPlain(e)
		}
		return res
	}
	if kind.Classify(v) != kind.Number {
		return v
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat():
		return rv.Float()
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	}
	return v
}
