// Package encode writes dyn.Node graphs as JSON or YAML.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)                       // compact JSON
//	err := encode.Encode(node, w, encode.Indent("  "))          // indented JSON
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// Only confirmed members of a node are written, in confirmation order, and
// every document ends with a newline.
//
// # Related Packages
//
//   - github.com/MSyics/Jsonable/dyn - the node type being encoded
//   - github.com/MSyics/Jsonable/format - output formats
package encode
