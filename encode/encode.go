package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MSyics/Jsonable/dyn"
	"github.com/MSyics/Jsonable/format"
	"github.com/MSyics/Jsonable/kind"

	"github.com/go-json-experiment/json/jsontext"
)

var ErrUnsupported = errors.New("unsupported value")

type EncState struct {
	format     format.Format
	indent     string
	escapeHTML bool
	depth      int

	Color func(kind.Kind, ColorAttr, string) string
}

func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := &bytes.Buffer{}
	var err error
	switch {
	case es.format.IsYAML():
		err = encodeYAML(v, buf, es)
	case es.Color != nil:
		err = encodeColored(v, buf, es)
	default:
		err = encodeJSON(v, buf, es)
	}
	if err != nil {
		return err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}

func encodeJSON(v any, w io.Writer, es *EncState) error {
	opts := []jsontext.Options{jsontext.EscapeForHTML(es.escapeHTML)}
	if es.indent != "" {
		opts = append(opts, jsontext.WithIndent(es.indent))
	}
	if err := dyn.EncodeValue(jsontext.NewEncoder(w, opts...), v); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return nil
}

// encodeColored mirrors the layout of encodeJSON while wrapping each token
// in its color.
func encodeColored(v any, w *bytes.Buffer, es *EncState) error {
	k := kind.Classify(v)
	switch x := v.(type) {
	case *dyn.Node:
		if x == nil {
			break
		}
		if x.IsEmpty() {
			w.WriteString(es.Color(kind.Object, SepColor, "{}"))
			return nil
		}
		w.WriteString(es.Color(kind.Object, SepColor, "{"))
		es.depth++
		i := 0
		for key, val := range x.Members() {
			if i > 0 {
				w.WriteString(es.Color(kind.Object, SepColor, ","))
			}
			i++
			writeNL(w, es)
			q, err := quote(key, es)
			if err != nil {
				return err
			}
			w.WriteString(es.Color(kind.Object, FieldColor, q))
			w.WriteString(es.Color(kind.Object, SepColor, ":"))
			if es.indent != "" {
				w.WriteByte(' ')
			}
			if err := encodeColored(val, w, es); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		es.depth--
		writeNL(w, es)
		w.WriteString(es.Color(kind.Object, SepColor, "}"))
		return nil
	case []any:
		if len(x) == 0 {
			w.WriteString(es.Color(kind.Array, SepColor, "[]"))
			return nil
		}
		w.WriteString(es.Color(kind.Array, SepColor, "["))
		es.depth++
		for i, e := range x {
			if i > 0 {
				w.WriteString(es.Color(kind.Array, SepColor, ","))
			}
			writeNL(w, es)
			if err := encodeColored(e, w, es); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		es.depth--
		writeNL(w, es)
		w.WriteString(es.Color(kind.Array, SepColor, "]"))
		return nil
	}
	// scalars and foreign values: let the json encoder render them compactly
	buf := &bytes.Buffer{}
	sub := *es
	sub.indent = ""
	if err := encodeJSON(v, buf, &sub); err != nil {
		return err
	}
	w.WriteString(es.Color(k, ValueColor, strings.TrimRight(buf.String(), "\n")))
	return nil
}

func writeNL(w *bytes.Buffer, es *EncState) {
	if es.indent == "" {
		return
	}
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(es.indent, es.depth))
}

func quote(s string, es *EncState) (string, error) {
	d, err := jsontext.AppendQuote(nil, s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	if es.escapeHTML {
		d = escapeHTML(d)
	}
	return string(d), nil
}

func escapeHTML(d []byte) []byte {
	r := strings.NewReplacer("<", `\u003c`, ">", `\u003e`, "&", `\u0026`)
	return []byte(r.Replace(string(d)))
}
