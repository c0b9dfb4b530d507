package dyn

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo writes the confirmed members of n as a JSON object.
func (n *Node) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for k, v := range n.Members() {
		if err := enc.WriteToken(jsontext.String(k)); err != nil {
			return err
		}
		if err := EncodeValue(enc, v); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

func (n *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := n.MarshalJSONTo(jsontext.NewEncoder(buf)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeValue writes any value that can appear in a node graph. Values other
// than nil, bool, float64, string, *Node and []any are handed to the json
// package.
func EncodeValue(enc *jsontext.Encoder, v any) error {
	switch x := v.(type) {
	case nil:
		return enc.WriteToken(jsontext.Null)
	case bool:
		return enc.WriteToken(jsontext.Bool(x))
	case string:
		return enc.WriteToken(jsontext.String(x))
	case float64:
		return enc.WriteToken(jsontext.Float(x))
	case *Node:
		if x == nil {
			return enc.WriteToken(jsontext.Null)
		}
		return x.MarshalJSONTo(enc)
	case []any:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for i, e := range x {
			if err := EncodeValue(enc, e); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	default:
		return json.MarshalEncode(enc, v, json.Deterministic(true))
	}
}
