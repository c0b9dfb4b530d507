package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/MSyics/Jsonable/ir"

	"github.com/google/go-cmp/cmp"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Type
	}{
		{`null`, ir.NullType},
		{`true`, ir.BoolType},
		{`false`, ir.BoolType},
		{`"s"`, ir.StringType},
		{`-1.5e3`, ir.NumberType},
		{`[]`, ir.ArrayType},
		{`{}`, ir.ObjectType},
		{" \n\t{\"a\": 1} \n", ir.ObjectType},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if n.Type != tt.want {
				t.Errorf("type = %s, want %s", n.Type, tt.want)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	n, err := Parse([]byte(`{"b": 0.1, "a": [true, "xA", null], "c": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, n.Fields); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
	num := n.Values[0]
	if num.Number != "0.1" || num.Float64 == nil || *num.Float64 != 0.1 {
		t.Errorf("number = %q %v", num.Number, num.Float64)
	}
	arr := n.Values[1]
	if len(arr.Values) != 3 || !arr.Values[0].Bool || arr.Values[1].String != "xA" || arr.Values[2].Type != ir.NullType {
		t.Errorf("array parsed wrong: %+v", arr.Values)
	}
	if got := arr.Values[2].Path(); got != "$.a[2]" {
		t.Errorf("path = %q", got)
	}
	if obj := n.Values[2]; obj.Type != ir.ObjectType || len(obj.Fields) != 0 {
		t.Errorf("empty object parsed wrong: %+v", obj)
	}
}

func TestParseNestedObjects(t *testing.T) {
	n, err := Parse([]byte(`{"a":1,"b":[1,{"c":2}],"d":{"e":{"f":"g"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "d"}, n.Fields); diff != "" {
		t.Errorf("field mismatch (-want +got):\n%s", diff)
	}
	inner := n.Values[1].Values[1]
	if diff := cmp.Diff([]string{"c"}, inner.Fields); diff != "" {
		t.Errorf("inner field mismatch (-want +got):\n%s", diff)
	}
	if got := inner.Values[0].Path(); got != "$.b[1].c" {
		t.Errorf("path = %q", got)
	}
	leaf := n.Values[2].Values[0].Values[0]
	if leaf.String != "g" || leaf.Path() != "$.d.e.f" {
		t.Errorf("leaf = %q at %s", leaf.String, leaf.Path())
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "  \n"} {
		n, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q) error %v", in, err)
		}
		if n != nil {
			t.Errorf("Parse(%q) = %+v, want nil", in, n)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
	}{
		{"unterminated", `{"a": 1`, nil},
		{"unterminated nested", `{"a":1,"b":[1,{"c":`, nil},
		{"missing value", `{"a":}`, nil},
		{"trailing garbage", `{"a":1} x`, nil},
		{"number overflow", `1e400`, nil},
		{"member overflow", `{"n":[-1e400]}`, nil},
		{"bad literal", `tru`, nil},
		{"stray close", `}`, nil},
		{"trailing comma", `[1,]`, nil},
		{"trailing value", `{} {}`, nil},
		{"duplicate", `{"a":1,"a":2}`, nil},
		{"depth", `{"a":{"b":[1]}}`, []ParseOption{MaxDepth(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in), tt.opts...)
			if !errors.Is(err, ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse([]byte(`{"a":[1,{"b":1e999}]}`))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
	if !strings.Contains(err.Error(), "a: [1]: b: number out of range") {
		t.Errorf("err = %v", err)
	}
}

func TestParseOptions(t *testing.T) {
	n, err := Parse([]byte(`{"a":1,"a":2}`), AllowDuplicateNames(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Fields) != 2 {
		t.Errorf("fields = %v", n.Fields)
	}
	if _, err := Parse([]byte(`{"a":{"b":[1]}}`), MaxDepth(3)); err != nil {
		t.Errorf("depth 3 should be accepted: %v", err)
	}
	if _, err := Parse([]byte("\"\xff\""), AllowInvalidUTF8(true)); err != nil {
		t.Errorf("invalid utf8 should be accepted: %v", err)
	}
	if _, err := Parse([]byte("\"\xff\"")); !errors.Is(err, ErrParse) {
		t.Errorf("invalid utf8 should be rejected by default: %v", err)
	}
}

func TestRead(t *testing.T) {
	n, err := Read(strings.NewReader(`[1, [2, 3]]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Values) != 2 || len(n.Values[1].Values) != 2 {
		t.Errorf("nested arrays parsed wrong: %+v", n)
	}
}
