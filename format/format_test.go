package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"j", JSONFormat, false},
		{"json", JSONFormat, false},
		{"y", YAMLFormat, false},
		{"yaml", YAMLFormat, false},
		{"xml", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("err = %v, want ErrBadFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil {
		t.Fatal(err)
	}
	if !f.IsYAML() || f.IsJSON() || f.Suffix() != ".yaml" || f.String() != "yaml" {
		t.Errorf("unexpected yaml format state %v", f)
	}
	if Format(7).Suffix() != "" {
		t.Error("unknown format should have no suffix")
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Error("expected error for unknown format")
	}
}
