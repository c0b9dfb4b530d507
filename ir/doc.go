// Package ir provides the parsed representation of JSON documents.
//
// # Overview
//
// A parsed document is a tree of *Node. Each node has a Type and keeps its
// value in the field matching that type:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Number (the literal text) and Float64
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields[i] is the key for Values[i], in source order
//
// Nodes carry Parent, ParentIndex and ParentField so a value can report
// where it sits in the document:
//
//	path := node.Path() // e.g. "$.foo.bar[0]"
//
// The tree is produced by package parse and consumed by package build,
// which turns it into mutable dyn.Node graphs.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromFloat(1)})},
//	})
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation.
package ir
