// Package ir provides the structured value model shared by the JSON,
// YAML, XML and in-memory mapping forms.
//
// # Overview
//
// A Node is a tagged union over null, bool, number, string, array and
// object. Objects keep their keys in insertion order, so a document
// round-tripped through the IR keeps the field order of its source
// text. Numbers carry their source literal alongside parsed int64 and
// float64 views, so a JSON integer stays an integer on the YAML side
// and vice versa.
//
// # Usage
//
//	node, err := ir.FromJSON([]byte(`{"name": "John", "age": 30}`))
//	...
//	out := ir.MustYAMLString(node)
//
// # Related Packages
//
//   - github.com/wolfsoftware/go-dataconv/xmltree - XML element tree codec
//   - github.com/wolfsoftware/go-dataconv/format - format tags
package ir
