// Package jsonable reads JSON into dynamically navigable dyn.Node graphs and
// writes them back.
//
// # Usage
//
//	v, err := jsonable.Parse(data)
//	if err != nil {
//	    return err
//	}
//	obj := v.(*dyn.Node)
//	obj.Node("server").Node("limits").Set("cpu", 2.0)
//	out, err := jsonable.MarshalIndent(obj, "  ")
//
// Reading members that do not exist never fails; it hands out placeholders
// which only appear in the output once something is assigned below them.
//
// # Related Packages
//
//   - github.com/MSyics/Jsonable/dyn - the node type
//   - github.com/MSyics/Jsonable/parse - JSON parsing
//   - github.com/MSyics/Jsonable/build - parsed tree to node graph
//   - github.com/MSyics/Jsonable/encode - JSON and YAML output
//   - github.com/MSyics/Jsonable/kind - value classification
package jsonable

import (
	"bytes"
	"io"

	"github.com/MSyics/Jsonable/build"
	"github.com/MSyics/Jsonable/dyn"
	"github.com/MSyics/Jsonable/encode"
	"github.com/MSyics/Jsonable/parse"
)

// Parse parses data and builds its value graph: a *dyn.Node for objects,
// []any for arrays, and nil, bool, float64 or string otherwise.
func Parse(data []byte, opts ...parse.ParseOption) (any, error) {
	node, err := parse.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return build.Build(node), nil
}

// Read is Parse for a stream. A nil reader or an empty stream yields nil.
func Read(r io.Reader, opts ...parse.ParseOption) (any, error) {
	if r == nil {
		return nil, nil
	}
	node, err := parse.Read(r, opts...)
	if err != nil {
		return nil, err
	}
	return build.Build(node), nil
}

// CreateObject returns a new node after passing it to init, if any.
func CreateObject(init func(*dyn.Node)) *dyn.Node {
	n := dyn.New()
	if init != nil {
		init(n)
	}
	return n
}

func Marshal(v any) ([]byte, error) {
	return marshal(v)
}

func MarshalIndent(v any, indent string) ([]byte, error) {
	return marshal(v, encode.Indent(indent))
}

func marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, opts...); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
