package main

import (
	"strings"

	"github.com/MSyics/Jsonable/dyn"
)

// objectPath accepts "$", "$.a.b", ".a.b" and "a.b", returning "" for the
// document itself.
func objectPath(p string) string {
	p = strings.TrimPrefix(p, "$")
	return strings.TrimPrefix(p, ".")
}

func lookup(doc any, path string) any {
	if path == "" {
		return doc
	}
	node, ok := doc.(*dyn.Node)
	if !ok {
		return nil
	}
	return node.GetPath(path)
}
