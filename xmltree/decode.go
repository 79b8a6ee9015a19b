package xmltree

import (
	"github.com/wolfsoftware/go-dataconv/ir"
)

// Decode parses XML text and folds it into the keyed-mapping form.
// The root tag is kept as the sole top-level key, so decoding
// <person>...</person> yields {"person": {...}}.
func Decode(data []byte) (*ir.Node, error) {
	root, err := Parse(data)
	if err != nil {
		return nil, err
	}
	res := ir.NewObject()
	res.Set(root.Tag, DecodeElement(root))
	return res, nil
}

// DecodeElement computes an element's own decoded value per the
// folding rules: a bare text leaf when the element has text and no
// children, otherwise a mapping of "@"-prefixed attributes, folded
// children, and an optional "#text" entry.
func DecodeElement(el *Element) *ir.Node {
	if len(el.Children) == 0 && el.Text != "" {
		return ir.FromString(el.Text)
	}
	res := ir.NewObject()
	for _, a := range el.Attrs {
		res.Set("@"+a.Name, ir.FromString(a.Value))
	}
	for _, child := range el.Children {
		val := DecodeElement(child)
		prev := res.Get(child.Tag)
		switch {
		case prev == nil:
			res.Set(child.Tag, val)
		case prev.Type == ir.ArrayType:
			prev.Values = append(prev.Values, val)
		default:
			// second occurrence of the tag promotes to a
			// sequence, keeping document order
			res.Set(child.Tag, ir.FromSlice([]*ir.Node{prev, val}))
		}
	}
	if el.Text != "" {
		res.Set("#text", ir.FromString(el.Text))
	}
	return res
}
