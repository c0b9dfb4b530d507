// Package dyn provides Node, a mutable JSON object that can be navigated and
// assigned along paths that do not exist yet.
//
// # Confirmed and pending members
//
// A Node keeps two sets of members. Confirmed members are the ones that were
// assigned a value; they are the only members that are serialized. Pending
// members additionally hold placeholder nodes handed out when Get misses:
//
//	n := dyn.New()
//	n.Node("a").Node("b")   // two placeholders, n is still empty
//	n.Node("a").Set("c", 1) // confirms n.a and n.a.c
//
// Assigning below a placeholder confirms the placeholder in its parent, and
// that confirmation repeats upward until it reaches a node that already has
// the member confirmed.
//
// # Change notification
//
// Listeners registered with Listen are called synchronously with the node and
// key every time Set stores a member and every time a placeholder is promoted
// into its parent. Get, Remove and Clear never notify.
//
// # Serialization
//
// Node implements json.Marshaler and emits its confirmed members in the order
// they were first confirmed. An empty node is {}.
//
// # Thread Safety
//
// A node graph must only be used from one goroutine at a time.
package dyn
