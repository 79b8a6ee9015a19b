package ir

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// FromYAML parses YAML text into a Node, keeping mapping key order.
func FromYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromAny(v)
}

// EncodeYAML writes node as YAML text in insertion order.
func EncodeYAML(y *Node, w io.Writer) error {
	d, err := yaml.Marshal(ToAny(y))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func MustYAMLString(y *Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeYAML(y, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
