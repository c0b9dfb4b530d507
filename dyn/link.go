package dyn

import "github.com/MSyics/Jsonable/debug"

// linkParents confirms n in its parent once n has confirmed members and
// continues with the parent. It stops at the first ancestor that already has
// the member confirmed, which is also what bounds recursion when listeners
// mutate the graph.
func linkParents(n *Node) bool {
	if n == nil {
		return false
	}
	if len(n.members) == 0 {
		return false
	}
	p := n.Parent()
	if p == nil || !n.hasKey {
		return false
	}
	if _, ok := p.members[n.key]; ok {
		return false
	}
	p.confirm(n.key, n)
	if debug.Link() {
		debug.Logger().Debug("dyn: confirmed placeholder", "path", n.Path())
	}
	p.notify(n.key)
	return linkParents(p)
}
