package dyn

import (
	"fmt"
	"strings"
)

// String renders the confirmed members as consecutive "[key, value]" pairs
// with values in their default format. An empty node renders as "".
func (n *Node) String() string {
	b := &strings.Builder{}
	for k, v := range n.Members() {
		fmt.Fprintf(b, "[%s, %v]", k, v)
	}
	return b.String()
}

// ToMap converts the confirmed members of n to plain Go values: nodes become
// map[string]any and arrays are converted element by element.
func (n *Node) ToMap() map[string]any {
	if n == nil {
		return nil
	}
	res := make(map[string]any, len(n.members))
	for k, v := range n.Members() {
		res[k] = Plain(v)
	}
	return res
}

// Plain is ToMap for any value of a node graph.
func Plain(v any) any {
	switch x := v.(type) {
	case *Node:
		if x == nil {
			return nil
		}
		return x.ToMap()
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = Plain(e)
		}
		return res
	default:
		return v
	}
}
