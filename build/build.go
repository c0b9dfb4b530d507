// Package build turns parsed ir trees into dyn.Node graphs.
//
// Objects become *dyn.Node with every field assigned through Put, so empty
// nested objects from the source are confirmed members. Arrays become []any,
// numbers float64, and strings, booleans and null their Go counterparts.
package build

import (
	"github.com/MSyics/Jsonable/debug"
	"github.com/MSyics/Jsonable/dyn"
	"github.com/MSyics/Jsonable/ir"
)

func Build(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := dyn.New()
		for i, f := range node.Fields {
			res.Put(f, Build(node.Values[i]))
		}
		if debug.Build() {
			debug.Logger().Debug("build: object", "path", node.Path(), "fields", len(node.Fields))
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = Build(v)
		}
		if debug.Build() {
			debug.Logger().Debug("build: array", "path", node.Path(), "len", len(res))
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Float64 != nil {
			return *node.Float64
		}
		return 0.0
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}

// Object is Build for callers that expect an object at the root. It returns
// nil for any other type.
func Object(node *ir.Node) *dyn.Node {
	res, _ := Build(node).(*dyn.Node)
	return res
}
