package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MSyics/Jsonable/debug"
	"github.com/MSyics/Jsonable/ir"

	"github.com/go-json-experiment/json/jsontext"
)

var (
	ErrParse = errors.New("parse error")

	errDepth = errors.New("maximum depth exceeded")
	errRange = errors.New("number out of range")
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	if debug.Parse() {
		debug.Logger().Debug("parse: input", "bytes", len(d))
	}
	return Read(bytes.NewReader(d), opts...)
}

// Read parses exactly one JSON value from r. An empty stream yields a nil
// node and no error.
func Read(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	dec := jsontext.NewDecoder(r, pOpts.decodeOpts()...)
	if dec.PeekKind() == 0 {
		if _, err := dec.ReadToken(); err != io.EOF {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, nil
	}
	res, err := parseValue(dec, pOpts, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.ReadValue(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		debug.Logger().Debug("parse: done", "type", res.Type, "offset", dec.InputOffset())
	}
	return res, nil
}

func parseValue(dec *jsontext.Decoder, opts *parseOpts, depth int) (*ir.Node, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return ir.Null(), nil
	case 't', 'f':
		return ir.FromBool(tok.Bool()), nil
	case '"':
		return ir.FromString(tok.String()), nil
	case '0':
		lit := tok.String()
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s at offset %d", errRange, lit, dec.InputOffset())
		}
		return ir.FromNumber(lit, f), nil
	case '{':
		if err := checkDepth(dec, opts, depth); err != nil {
			return nil, err
		}
		res := ir.FromKeyVals(nil)
		for dec.PeekKind() != '}' {
			kTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// tokens are invalidated by the next decoder call
			key := kTok.String()
			v, err := parseValue(dec, opts, depth+1)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			res.AddField(key, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	case '[':
		if err := checkDepth(dec, opts, depth); err != nil {
			return nil, err
		}
		res := ir.FromSlice(nil)
		for dec.PeekKind() != ']' {
			v, err := parseValue(dec, opts, depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", len(res.Values), err)
			}
			res.Append(v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unexpected token %s at offset %d", tok, dec.InputOffset())
	}
}

func checkDepth(dec *jsontext.Decoder, opts *parseOpts, depth int) error {
	if opts.maxDepth > 0 && depth >= opts.maxDepth {
		return fmt.Errorf("%w (%d) at offset %d", errDepth, opts.maxDepth, dec.InputOffset())
	}
	return nil
}
