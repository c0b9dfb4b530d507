package parse

import "github.com/go-json-experiment/json/jsontext"

type parseOpts struct {
	duplicateNames bool
	invalidUTF8    bool
	maxDepth       int
}

func (o *parseOpts) decodeOpts() []jsontext.Options {
	return []jsontext.Options{
		jsontext.AllowDuplicateNames(o.duplicateNames),
		jsontext.AllowInvalidUTF8(o.invalidUTF8),
	}
}

type ParseOption func(*parseOpts)

// AllowDuplicateNames accepts objects repeating a key; the last value wins
// when the tree is built.
func AllowDuplicateNames(v bool) ParseOption {
	return func(o *parseOpts) { o.duplicateNames = v }
}

func AllowInvalidUTF8(v bool) ParseOption {
	return func(o *parseOpts) { o.invalidUTF8 = v }
}

// MaxDepth limits nesting of objects and arrays. Zero means no limit beyond
// the decoder's own.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
