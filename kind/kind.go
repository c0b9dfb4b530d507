// Package kind classifies arbitrary Go values by the JSON value they would
// encode to, for code that inspects dyn.Node contents generically.
package kind

import "fmt"

type Kind int

const (
	Undefined Kind = iota
	Null
	True
	False
	String
	Number
	Array
	Object
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Undefined: "Undefined",
		Null:      "Null",
		True:      "True",
		False:     "False",
		String:    "String",
		Number:    "Number",
		Array:     "Array",
		Object:    "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Undefined": Undefined,
		"Null":      Null,
		"True":      True,
		"False":     False,
		"String":    String,
		"Number":    Number,
		"Array":     Array,
		"Object":    Object,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{Undefined, Null, True, False, String, Number, Array, Object}
}
