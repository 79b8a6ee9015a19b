package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/wolfsoftware/go-dataconv/debug"
)

// maxDepth bounds element nesting on both directions so adversarial
// documents cannot exhaust the stack.
const maxDepth = 1000

// Parse converts XML text into an Element tree.
//
// The decoder runs in strict mode with an empty custom entity table:
// undeclared entities are a parse error and DTDs or entity
// declarations are rejected with ErrSecurity before anything is
// expanded.
func Parse(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.Entity = map[string]string{}

	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= maxDepth {
				return nil, fmt.Errorf("%w: document nested deeper than %d elements", ErrParse, maxDepth)
			}
			el := &Element{Tag: xmlName(t.Name)}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: xmlName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrParse)
				}
				root = el
			} else {
				p := stack[len(stack)-1]
				p.Children = append(p.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			el := stack[len(stack)-1]
			el.Text = strings.TrimSpace(el.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, fmt.Errorf("%w: text outside of root element", ErrParse)
				}
				continue
			}
			// direct text only: character data after the first
			// child belongs to nobody, as in the mapping model
			el := stack[len(stack)-1]
			if len(el.Children) == 0 {
				el.Text += string(t)
			}
		case xml.Directive:
			return nil, fmt.Errorf("%w: DTD and entity declarations are not allowed", ErrSecurity)
		case xml.Comment, xml.ProcInst:
			// skipped
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	if debug.Codec() {
		debug.Logf("xmltree: parsed root %q with %d children\n", root.Tag, len(root.Children))
	}
	return root, nil
}

// xmlName flattens a resolved name back to prefix:local form. The
// codec is namespace-unaware; prefixes are kept literally.
func xmlName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
