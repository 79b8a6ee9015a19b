// Package xmltree converts between XML element trees and the
// structured value model.
//
// # Overview
//
// Decoding folds an element tree into a keyed mapping: attributes
// become "@"-prefixed keys, direct text with children present lands
// under "#text", and repeated same-tag siblings collapse into a single
// key holding a sequence in document order. A single occurrence is
// stored bare, so one child and a one-element list are
// indistinguishable on the way back; that ambiguity is part of the
// mapping, not a defect.
//
// Encoding walks a structured value into elements: mapping keys name
// child elements, sequence items become repeated <item> elements, and
// scalars become element text. Output is pretty-printed with an XML
// declaration header.
//
// The parser is strict and refuses DTDs and entity declarations
// outright, so no external resource is ever resolved.
//
// # Usage
//
//	node, err := xmltree.Decode([]byte(`<person id="5"><name>John</name></person>`))
//	...
//	err = xmltree.Encode(node, os.Stdout, xmltree.RootTag("doc"))
//
// # Related Packages
//
//   - github.com/wolfsoftware/go-dataconv/ir - structured value model
package xmltree
