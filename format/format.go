// Package format names the output formats jsonable can encode to.
package format

import (
	"errors"
	"fmt"
)

// Format selects how encode writes a value graph.
type Format int

const (
	// JSONFormat is the default, compact or indented per encode.Indent.
	JSONFormat Format = iota
	// YAMLFormat writes block YAML keeping member order.
	YAMLFormat
)

// ErrBadFormat is returned for names ParseFormat does not know.
var ErrBadFormat = errors.New("bad format")

// ParseFormat accepts "json", "yaml" and their one letter forms "j" and "y".
func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// String returns the long name, or an error text for unknown values.
func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// MarshalText fails for values outside the declared constants.
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

// UnmarshalText accepts anything ParseFormat does, so formats can be read
// from flags and TOML files.
func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsJSON and IsYAML report which format f is.
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix is the file extension for documents in f, ".json" or ".yaml", or
// "" when f is unknown.
func (f Format) Suffix() string {
	switch f {
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}
