package xmltree

import "strings"

// Element is a single node of a parsed XML document. Text holds the
// element's direct text content before its first child, trimmed of
// surrounding whitespace; empty means absent.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

type Attr struct {
	Name  string
	Value string
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find walks a slash-separated tag path and returns the first match,
// or nil.
func (e *Element) Find(path string) *Element {
	cur := e
	for _, tag := range strings.Split(path, "/") {
		var next *Element
		for _, child := range cur.Children {
			if child.Tag == tag {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
