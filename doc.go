// Package dataconv converts data between JSON, XML, YAML and an
// in-memory keyed-mapping form, pivoting everything through the
// structured value model in ir.
//
// # Usage
//
//	c, err := dataconv.New(`<person><name>John</name></person>`, "xml")
//	...
//	out, err := c.ToJSON()
//
// Converting to XML always passes through the element tree codec;
// JSON and YAML targets never touch XML unless the source is XML.
// Same-format conversions are not offered and fail with
// ErrUnsupported.
//
// Every error returned by this package wraps ErrConvert; the
// classification, unsupported-conversion, parse and security kinds
// can be told apart with errors.Is when needed.
//
// # Related Packages
//
//   - github.com/wolfsoftware/go-dataconv/ir - structured value model
//   - github.com/wolfsoftware/go-dataconv/xmltree - XML element tree codec
//   - github.com/wolfsoftware/go-dataconv/format - format tags
package dataconv
