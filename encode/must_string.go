package encode

import (
	"bytes"
	"strings"
)

// String encodes v without the trailing newline.
func String(v any, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func MustString(v any, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
