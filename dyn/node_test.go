package dyn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetBlankKey(t *testing.T) {
	n := New()
	for _, key := range []string{"", " ", "\t\n"} {
		if v := n.Get(key); v != nil {
			t.Errorf("Get(%q) = %v, want nil", key, v)
		}
		if res := n.Set(key, 1.0); res != nil {
			t.Errorf("Set(%q) = %v, want nil", key, res)
		}
	}
	if !n.IsEmpty() || len(n.DynamicKeys()) != 0 {
		t.Errorf("blank keys must not create members, got %v", n.DynamicKeys())
	}
}

func TestGetMissingReturnsPlaceholder(t *testing.T) {
	n := New()
	for _, key := range []string{"_0_", "0", "a b"} {
		c, ok := n.Get(key).(*Node)
		if !ok || c == nil {
			t.Fatalf("Get(%q) = %#v, want placeholder node", key, n.Get(key))
		}
		if !c.IsEmpty() {
			t.Errorf("placeholder %q is not empty", key)
		}
		if c.Parent() != n {
			t.Errorf("placeholder %q has wrong parent", key)
		}
		if k, ok := c.Key(); !ok || k != key {
			t.Errorf("placeholder key = %q, %v; want %q", k, ok, key)
		}
		if n.Get(key) != any(c) {
			t.Errorf("second Get(%q) returned a different placeholder", key)
		}
	}
	if n.Len() != 0 || !n.IsEmpty() {
		t.Errorf("probing confirmed members: %v", n.Keys())
	}
	if diff := cmp.Diff([]string{"0", "_0_", "a b"}, n.DynamicKeys()); diff != "" {
		t.Errorf("DynamicKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetThenGet(t *testing.T) {
	n := New()
	child := New().Set("x", 1.0)
	arr := []any{1.0, "two"}
	tests := []struct {
		key string
		val any
	}{
		{"num", 0.0},
		{"str", "s"},
		{"null", nil},
		{"bool", true},
		{"node", child},
		{"arr", arr},
	}
	for i, tt := range tests {
		before := n.Len()
		if res := n.Set(tt.key, tt.val); res != n {
			t.Fatalf("Set(%q) did not return the receiver", tt.key)
		}
		if n.Len() != before+1 {
			t.Errorf("Set(%q): Len() = %d, want %d", tt.key, n.Len(), i+1)
		}
		got := n.Get(tt.key)
		switch want := tt.val.(type) {
		case *Node:
			if got != any(want) {
				t.Errorf("Get(%q) is not the assigned node", tt.key)
			}
		case []any:
			g, ok := got.([]any)
			if !ok || &g[0] != &want[0] {
				t.Errorf("Get(%q) is not the assigned slice", tt.key)
			}
		default:
			if got != want {
				t.Errorf("Get(%q) = %v, want %v", tt.key, got, want)
			}
		}
	}
}

func TestSetOverwrite(t *testing.T) {
	n := New()
	n.Set("_0_", 0.0)
	n.Set("0", 0.0)
	n.Set("_0_", 1.0)
	if got := n.Get("_0_"); got != 1.0 {
		t.Errorf("Get(_0_) = %v, want 1", got)
	}
	if got := n.Get("0"); got != 0.0 {
		t.Errorf("Get(0) = %v, want 0", got)
	}
	if diff := cmp.Diff([]string{"_0_", "0"}, n.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveAndClear(t *testing.T) {
	n := New()
	n.Set("_0_", 0.0)
	n.Set("_1_", 1.0)
	_ = n.Get("probe")
	if res := n.Remove("_0_"); res != n {
		t.Fatal("Remove did not return the receiver")
	}
	if n.Has("_0_") || n.Len() != 1 {
		t.Errorf("after Remove: Has=%v Len=%d", n.Has("_0_"), n.Len())
	}
	n.Remove("missing")
	if diff := cmp.Diff([]string{"_1_"}, n.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if res := n.Clear(); res != n {
		t.Fatal("Clear did not return the receiver")
	}
	if n.Len() != 0 || !n.IsEmpty() || len(n.DynamicKeys()) != 0 {
		t.Errorf("after Clear: Len=%d dynamic=%v", n.Len(), n.DynamicKeys())
	}
	n.Set("again", true)
	if diff := cmp.Diff([]string{"again"}, n.Keys()); diff != "" {
		t.Errorf("Keys() after reuse mismatch (-want +got):\n%s", diff)
	}
}

func TestNilReceiver(t *testing.T) {
	var n *Node
	if n.Get("a") != nil || n.Node("a") != nil || n.Set("a", 1.0) != nil {
		t.Error("nil node should absorb Get/Node/Set")
	}
	if !n.IsEmpty() || n.Len() != 0 || n.Has("a") || n.Keys() != nil {
		t.Error("nil node should be empty")
	}
	if n.Remove("a") != nil || n.Clear() != nil {
		t.Error("nil node Remove/Clear should return nil")
	}
	if n.String() != "" {
		t.Errorf("String() = %q", n.String())
	}
}

func TestNodeOnPrimitive(t *testing.T) {
	n := New().Set("a", 1.0)
	if n.Node("a") != nil {
		t.Error("Node on a number member should be nil")
	}
	if n.Node("a").Node("b").Set("c", 1.0) != nil {
		t.Error("chain through a primitive should be absorbed")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"empty", New(), ""},
		{"one", New().Set("_0_", 0), "[_0_, 0]"},
		{"two", New().Set("a", "x").Set("b", true), "[a, x][b, true]"},
		{"nested", New().Set("a", New().Set("b", 1.5)), "[a, [b, 1.5]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringIgnoresPlaceholders(t *testing.T) {
	n := New()
	_ = n.Node("a").Get("b")
	if got := n.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestMembersOrderAndBreak(t *testing.T) {
	n := New().Set("c", 1.0).Set("a", 2.0).Set("b", 3.0)
	var keys []string
	for k := range n.Members() {
		keys = append(keys, k)
		if k == "a" {
			break
		}
	}
	if diff := cmp.Diff([]string{"c", "a"}, keys); diff != "" {
		t.Errorf("Members() mismatch (-want +got):\n%s", diff)
	}
}

func TestToMap(t *testing.T) {
	n := New()
	n.SetPath("a.b", 1.0)
	n.Set("arr", []any{New().Set("x", "y"), 2.0})
	_ = n.Get("probe")
	want := map[string]any{
		"a":   map[string]any{"b": 1.0},
		"arr": []any{map[string]any{"x": "y"}, 2.0},
	}
	if diff := cmp.Diff(want, n.ToMap()); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}
}
