package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/MSyics/Jsonable/dyn"

	"github.com/goccy/go-yaml"
)

func encodeYAML(v any, w io.Writer, es *EncState) error {
	n := 2
	if es.indent != "" && strings.TrimLeft(es.indent, " ") == "" {
		n = len(es.indent)
	}
	d, err := yaml.MarshalWithOptions(toYAML(v), yaml.Indent(n), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node graphs to ordered yaml maps so member order survives.
func toYAML(v any) any {
	switch x := v.(type) {
	case *dyn.Node:
		if x == nil {
			return nil
		}
		res := yaml.MapSlice{}
		for k, val := range x.Members() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(val)})
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = toYAML(e)
		}
		return res
	default:
		return v
	}
}
