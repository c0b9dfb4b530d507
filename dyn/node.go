package dyn

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"weak"
)

// Node is a dynamic JSON object. The zero value is an empty, unattached node
// ready for use.
type Node struct {
	members map[string]any
	order   []string
	pending map[string]any

	parent weak.Pointer[Node]
	key    string
	hasKey bool

	listeners []listener
	nextID    ListenerID
}

func New() *Node {
	return &Node{}
}

func blank(key string) bool {
	return strings.TrimSpace(key) == ""
}

func (n *Node) init() {
	if n.members == nil {
		n.members = map[string]any{}
	}
	if n.pending == nil {
		n.pending = map[string]any{}
	}
}

// Get returns the member stored under key. A blank key yields nil. When no
// member exists, Get returns a new empty placeholder node attached under key
// which stays invisible to serialization until something is assigned below
// it.
func (n *Node) Get(key string) any {
	if n == nil || blank(key) {
		return nil
	}
	if v, ok := n.members[key]; ok {
		return v
	}
	if v, ok := n.pending[key]; ok {
		return v
	}
	n.init()
	child := &Node{parent: weak.Make(n), key: key, hasKey: true}
	n.pending[key] = child
	return child
}

// Node is Get for callers that expect an object. It returns nil when the
// member holds anything other than a node.
func (n *Node) Node(key string) *Node {
	c, _ := n.Get(key).(*Node)
	return c
}

// Set stores value under key and returns n. A blank key is ignored and Set
// returns nil.
//
// A *Node value is moved under n: its parent and key are overwritten even if
// it was filed elsewhere. It becomes a confirmed member of n only once it has
// confirmed members of its own; an empty node assigned over a confirmed
// member withdraws that member. Any other value is confirmed immediately and
// n itself is confirmed in its parent chain. A key that stays confirmed keeps
// its position.
func (n *Node) Set(key string, value any) *Node {
	return n.assign(key, value, false)
}

// Put is Set, except that a *Node value is confirmed right away even when it
// is empty. It is how decoded documents keep their empty objects.
func (n *Node) Put(key string, value any) *Node {
	return n.assign(key, value, true)
}

func (n *Node) assign(key string, value any, keepEmpty bool) *Node {
	if n == nil || blank(key) {
		return nil
	}
	n.init()
	child, ok := value.(*Node)
	if !ok || child == nil {
		n.confirm(key, value)
		n.notify(key)
		linkParents(n)
		return n
	}
	child.parent = weak.Make(n)
	child.key = key
	child.hasKey = true
	n.pending[key] = child
	if child.IsEmpty() && !keepEmpty {
		n.unconfirm(key)
		n.notify(key)
		return n
	}
	if n.Has(key) || keepEmpty {
		n.confirm(key, child)
		n.notify(key)
		linkParents(n)
		return n
	}
	n.notify(key)
	linkParents(child)
	return n
}

// Add is Set.
func (n *Node) Add(key string, value any) *Node {
	return n.Set(key, value)
}

// Remove deletes key from both confirmed and pending members.
func (n *Node) Remove(key string) *Node {
	if n == nil {
		return nil
	}
	n.unconfirm(key)
	delete(n.pending, key)
	return n
}

// Clear deletes every member.
func (n *Node) Clear() *Node {
	if n == nil {
		return nil
	}
	clear(n.members)
	clear(n.pending)
	n.order = n.order[:0]
	return n
}

func (n *Node) confirm(key string, value any) {
	n.init()
	if _, ok := n.members[key]; !ok {
		n.order = append(n.order, key)
	}
	n.members[key] = value
	n.pending[key] = value
}

func (n *Node) unconfirm(key string) {
	if _, ok := n.members[key]; !ok {
		return
	}
	delete(n.members, key)
	if i := slices.Index(n.order, key); i >= 0 {
		n.order = slices.Delete(n.order, i, i+1)
	}
}

func (n *Node) IsEmpty() bool {
	return n == nil || len(n.members) == 0
}

// Len is the number of confirmed members.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.members)
}

// Has reports whether key is a confirmed member.
func (n *Node) Has(key string) bool {
	if n == nil {
		return false
	}
	_, ok := n.members[key]
	return ok
}

// Keys returns the confirmed keys in confirmation order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	return slices.Clone(n.order)
}

// Members iterates the confirmed members in confirmation order.
func (n *Node) Members() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if n == nil {
			return
		}
		for _, k := range n.order {
			if !yield(k, n.members[k]) {
				return
			}
		}
	}
}

// DynamicKeys returns every key n can resolve without creating a new
// placeholder, confirmed or not, sorted.
func (n *Node) DynamicKeys() []string {
	if n == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(n.pending))
}

// Parent returns the node n is filed under, or nil for a root or when the
// parent is no longer referenced anywhere else.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent.Value()
}

// Key returns the key n is filed under in its parent.
func (n *Node) Key() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.key, n.hasKey
}
