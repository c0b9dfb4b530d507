package dyn

import "strings"

// GetPath resolves a dot separated path with Get, one segment at a time. It
// returns nil as soon as a segment resolves to something other than a node.
func (n *Node) GetPath(path string) any {
	var cur any = n
	for _, seg := range strings.Split(path, ".") {
		node, ok := cur.(*Node)
		if !ok || node == nil {
			return nil
		}
		cur = node.Get(seg)
	}
	return cur
}

// SetPath assigns value at a dot separated path, creating placeholders for
// missing intermediate members, and returns the node that received value.
// It returns nil when an intermediate member is not a node.
func (n *Node) SetPath(path string, value any) *Node {
	return n.assignPath(path, value, (*Node).Set)
}

// PutPath is SetPath using Put for the final member.
func (n *Node) PutPath(path string, value any) *Node {
	return n.assignPath(path, value, (*Node).Put)
}

func (n *Node) assignPath(path string, value any, assign func(*Node, string, any) *Node) *Node {
	segs := strings.Split(path, ".")
	cur := n
	for _, seg := range segs[:len(segs)-1] {
		cur = cur.Node(seg)
		if cur == nil {
			return nil
		}
	}
	return assign(cur, segs[len(segs)-1], value)
}

// Path returns the location of n below its root, e.g. "$.a.b".
func (n *Node) Path() string {
	p := n.Parent()
	if p == nil || !n.hasKey {
		return "$"
	}
	k := n.key
	if k == "" || strings.ContainsAny(k, "'.*$[] ") {
		k = "'" + strings.ReplaceAll(k, "'", "\\'") + "'"
	}
	return p.Path() + "." + k
}

