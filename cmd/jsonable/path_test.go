package main

import (
	"testing"

	"github.com/MSyics/Jsonable"
	"github.com/MSyics/Jsonable/kind"
)

func TestObjectPath(t *testing.T) {
	for in, want := range map[string]string{
		"$":     "",
		"":      "",
		"$.a.b": "a.b",
		".a":    "a",
		"a.b":   "a.b",
	} {
		if got := objectPath(in); got != want {
			t.Errorf("objectPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	doc, err := jsonable.Parse([]byte(`{"a": {"b": [1]}, "s": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want kind.Kind
	}{
		{"", kind.Object},
		{"a", kind.Object},
		{"a.b", kind.Array},
		{"s", kind.String},
		{"s.t", kind.Null},
		{"missing", kind.Object},
	}
	for _, tt := range tests {
		if got := kind.Classify(lookup(doc, tt.path)); got != tt.want {
			t.Errorf("lookup(%q) is %s, want %s", tt.path, got, tt.want)
		}
	}
	if lookup("scalar", "a") != nil {
		t.Error("lookup into a scalar should be nil")
	}
}
