package xmltree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/wolfsoftware/go-dataconv/debug"
	"github.com/wolfsoftware/go-dataconv/ir"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`

type EncState struct {
	indent int
	header bool
	root   string
	Color  func(ColorAttr, string) string
}

// Encode writes node as a pretty-printed XML document. Mapping keys
// become child elements, sequence items become repeated <item>
// elements, scalars become element text. Keys that are not valid XML
// names fail with ErrEncode rather than corrupting the output.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, header: true, root: "root"}
	for _, opt := range opts {
		opt(es)
	}
	root := &Element{Tag: es.root}
	if !validName(es.root) {
		return fmt.Errorf("%w: %q is not a valid element name", ErrEncode, es.root)
	}
	if err := build(node, root, 0); err != nil {
		return err
	}
	if debug.Codec() {
		debug.Logf("xmltree: encoding root %q with %d children\n", root.Tag, len(root.Children))
	}
	if es.header {
		if err := writeString(w, es.color(DeclColor, xmlDecl)+"\n"); err != nil {
			return err
		}
	}
	return writeElement(root, w, es, 0)
}

// build grows the element tree under parent from a structured value.
func build(y *ir.Node, parent *Element, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: value nested deeper than %d levels", ErrEncode, maxDepth)
	}
	switch y.Type {
	case ir.ObjectType:
		for i, field := range y.Fields {
			if !validName(field) {
				return fmt.Errorf("%w: %q is not a valid element name", ErrEncode, field)
			}
			child := &Element{Tag: field}
			parent.Children = append(parent.Children, child)
			if err := build(y.Values[i], child, depth+1); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for _, item := range y.Values {
			child := &Element{Tag: "item"}
			parent.Children = append(parent.Children, child)
			if err := build(item, child, depth+1); err != nil {
				return err
			}
		}
	default:
		parent.Text = scalarText(y)
	}
	return nil
}

// scalarText renders a leaf value as element text. Null renders as
// empty text; numbers keep their source literal.
func scalarText(y *ir.Node) string {
	switch y.Type {
	case ir.NullType:
		return ""
	case ir.BoolType:
		return strconv.FormatBool(y.Bool)
	case ir.NumberType:
		if y.Number != "" {
			return y.Number
		}
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return ""
	default:
		return y.String
	}
}

func writeElement(el *Element, w io.Writer, es *EncState, depth int) error {
	ind := strings.Repeat(" ", es.indent*depth)
	open := ind + "<" + es.color(TagColor, el.Tag)
	for _, a := range el.Attrs {
		open += " " + es.color(AttrNameColor, a.Name) +
			`="` + es.color(AttrValueColor, escapeAttr(a.Value)) + `"`
	}
	switch {
	case len(el.Children) == 0 && el.Text == "":
		return writeString(w, open+"/>\n")
	case len(el.Children) == 0:
		return writeString(w, open+">"+es.color(TextColor, escapeText(el.Text))+
			"</"+es.color(TagColor, el.Tag)+">\n")
	default:
		if err := writeString(w, open+">\n"); err != nil {
			return err
		}
		if el.Text != "" {
			childInd := strings.Repeat(" ", es.indent*(depth+1))
			if err := writeString(w, childInd+es.color(TextColor, escapeText(el.Text))+"\n"); err != nil {
				return err
			}
		}
		for _, child := range el.Children {
			if err := writeElement(child, w, es, depth+1); err != nil {
				return err
			}
		}
		return writeString(w, ind+"</"+es.color(TagColor, el.Tag)+">\n")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
	"\n", "&#10;", "\t", "&#9;",
)

func escapeText(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// validName checks XML Name production, sans namespace awareness.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
