// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "tags": [1, 2]}`))
//	if err != nil {
//	    return err
//	}
//
//	// from a stream, rejecting duplicate object keys
//	node, err := parse.Read(r, parse.AllowDuplicateNames(false))
//
// Object fields keep their source order. Numbers keep their literal text in
// Node.Number next to the float64 value. Empty input parses to a nil node.
//
// All syntax errors wrap ErrParse.
//
// # Related Packages
//
//   - github.com/MSyics/Jsonable/ir - parsed representation
//   - github.com/MSyics/Jsonable/build - builds dyn.Node graphs from ir
package parse
