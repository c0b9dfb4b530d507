package dyn

// Listener is called after key was stored on n.
type Listener func(n *Node, key string)

type ListenerID uint64

type listener struct {
	id ListenerID
	fn Listener
}

// Listen registers fn for change notifications on n and returns an id for
// Unlisten.
func (n *Node) Listen(fn Listener) ListenerID {
	n.nextID++
	n.listeners = append(n.listeners, listener{id: n.nextID, fn: fn})
	return n.nextID
}

// Unlisten removes the listener registered under id. It reports whether a
// listener was removed.
func (n *Node) Unlisten(id ListenerID) bool {
	for i := range n.listeners {
		if n.listeners[i].id == id {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Node) notify(key string) {
	if len(n.listeners) == 0 {
		return
	}
	// listeners may (un)register while being called
	ls := make([]listener, len(n.listeners))
	copy(ls, n.listeners)
	for _, l := range ls {
		l.fn(n, key)
	}
}
