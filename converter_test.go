package dataconv

import (
	"errors"
	"strings"
	"testing"

	"github.com/wolfsoftware/go-dataconv/ir"
	"github.com/wolfsoftware/go-dataconv/xmltree"
)

func mustNew(t *testing.T, data any, dataType string) *Converter {
	t.Helper()
	c, err := New(data, dataType)
	if err != nil {
		t.Fatalf("New(%q): %v", dataType, err)
	}
	return c
}

func jsonEqual(t *testing.T, got, want string) {
	t.Helper()
	g, err := ir.FromJSON([]byte(got))
	if err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, got)
	}
	w, err := ir.FromJSON([]byte(want))
	if err != nil {
		t.Fatalf("bad expected JSON: %v", err)
	}
	if !ir.Equal(g, w) {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestToJSONFromDict(t *testing.T) {
	c := mustNew(t, map[string]any{"name": "John", "age": 30}, "dict")
	out, err := c.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	jsonEqual(t, out, `{"age":30,"name":"John"}`)
}

func TestToJSONFromXML(t *testing.T) {
	c := mustNew(t, `<person><name>John</name><age>30</age></person>`, "xml")
	out, err := c.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	jsonEqual(t, out, `{"person":{"name":"John","age":"30"}}`)
}

func TestToJSONFromYAML(t *testing.T) {
	c := mustNew(t, "name: John\nage: 30\n", "yaml")
	out, err := c.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	// YAML and JSON share the model; the integer survives
	if out != `{"name":"John","age":30}` {
		t.Errorf("unexpected output %s", out)
	}
}

func parseXML(t *testing.T, out string) *xmltree.Element {
	t.Helper()
	root, err := xmltree.Parse([]byte(out))
	if err != nil {
		t.Fatalf("output is not XML: %v\n%s", err, out)
	}
	return root
}

func TestToXMLFromDict(t *testing.T) {
	c := mustNew(t, map[string]any{"person": map[string]any{"name": "John", "age": 30}}, "dict")
	out, err := c.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing declaration header:\n%s", out)
	}
	root := parseXML(t, out)
	if root.Tag != "root" {
		t.Errorf("root tag %q, want root", root.Tag)
	}
	if el := root.Find("person/name"); el == nil || el.Text != "John" {
		t.Errorf("person/name: %v", el)
	}
	if el := root.Find("person/age"); el == nil || el.Text != "30" {
		t.Errorf("person/age: %v", el)
	}
}

func TestToXMLFromDictFlat(t *testing.T) {
	// a direct dict without wrapping key hangs off the root
	c := mustNew(t, map[string]any{"name": "John", "age": 30}, "dict")
	out, err := c.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	root := parseXML(t, out)
	if el := root.Find("name"); el == nil || el.Text != "John" {
		t.Errorf("name: %v", el)
	}
	if el := root.Find("age"); el == nil || el.Text != "30" {
		t.Errorf("age: %v", el)
	}
}

func TestToXMLFromJSON(t *testing.T) {
	c := mustNew(t, `{"person": {"name": "John", "age": 30}}`, "json")
	out, err := c.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	root := parseXML(t, out)
	if root.Tag != "root" {
		t.Errorf("root tag %q, want root", root.Tag)
	}
	if el := root.Find("person/name"); el == nil || el.Text != "John" {
		t.Errorf("person/name: %v", el)
	}
	if el := root.Find("person/age"); el == nil || el.Text != "30" {
		t.Errorf("person/age: %v", el)
	}
}

func TestToXMLFromYAML(t *testing.T) {
	c := mustNew(t, "name: John\nage: 30\n", "yaml")
	out, err := c.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	root := parseXML(t, out)
	if el := root.Find("name"); el == nil || el.Text != "John" {
		t.Errorf("name: %v", el)
	}
	if el := root.Find("age"); el == nil || el.Text != "30" {
		t.Errorf("age: %v", el)
	}
}

func TestToYAMLFromDict(t *testing.T) {
	c := mustNew(t, map[string]any{"name": "John", "age": 30}, "dict")
	out, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	back, err := ir.FromYAML([]byte(out))
	if err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	want, _ := ir.FromJSON([]byte(`{"age":30,"name":"John"}`))
	if !ir.Equal(back, want) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestToYAMLFromJSON(t *testing.T) {
	c := mustNew(t, `{"name": "John", "age": 30}`, "json")
	out, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if out != "name: John\nage: 30\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestToYAMLFromXML(t *testing.T) {
	c := mustNew(t, `<person><name>John</name><age>30</age></person>`, "xml")
	out, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	back, err := ir.FromYAML([]byte(out))
	if err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	want, _ := ir.FromJSON([]byte(`{"person":{"name":"John","age":"30"}}`))
	if !ir.Equal(back, want) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestUnsupportedDataType(t *testing.T) {
	_, err := New("some data", "unsupported")
	if err == nil {
		t.Fatalf("expected classification error")
	}
	if !errors.Is(err, ErrClassification) {
		t.Errorf("error %v does not wrap ErrClassification", err)
	}
	if !errors.Is(err, ErrConvert) {
		t.Errorf("error %v does not wrap ErrConvert", err)
	}
}

func TestSameFormatConversion(t *testing.T) {
	tests := []struct {
		dataType string
		call     func(c *Converter) (string, error)
	}{
		{"json", (*Converter).ToJSON},
		{"xml", (*Converter).ToXML},
		{"yaml", (*Converter).ToYAML},
	}
	for _, tc := range tests {
		c := mustNew(t, "payload", tc.dataType)
		_, err := tc.call(c)
		if err == nil {
			t.Errorf("%s: expected unsupported conversion error", tc.dataType)
			continue
		}
		if !errors.Is(err, ErrUnsupported) || !errors.Is(err, ErrConvert) {
			t.Errorf("%s: wrong error kind: %v", tc.dataType, err)
		}
	}
}

func TestPayloadShape(t *testing.T) {
	// text source with a non-text payload
	c := mustNew(t, map[string]any{"a": 1}, "xml")
	if _, err := c.ToJSON(); !errors.Is(err, ErrClassification) {
		t.Errorf("xml source with mapping payload: %v", err)
	}
	// dict source with a text payload
	c = mustNew(t, `{"a": 1}`, "dict")
	if _, err := c.ToXML(); !errors.Is(err, ErrClassification) {
		t.Errorf("dict source with text payload: %v", err)
	}
	// dict source with an unrepresentable payload
	c = mustNew(t, struct{}{}, "dict")
	if _, err := c.ToJSON(); !errors.Is(err, ErrClassification) {
		t.Errorf("dict source with struct payload: %v", err)
	}
}

func TestErrorKinds(t *testing.T) {
	c := mustNew(t, `{"broken":`, "json")
	if _, err := c.ToXML(); !errors.Is(err, ErrParse) || !errors.Is(err, ErrConvert) {
		t.Errorf("malformed json: %v", err)
	}

	c = mustNew(t, `<a><b></a>`, "xml")
	if _, err := c.ToJSON(); !errors.Is(err, ErrParse) {
		t.Errorf("malformed xml: %v", err)
	}

	c = mustNew(t, `<!DOCTYPE foo [<!ENTITY x SYSTEM "file:///etc/passwd">]><foo>&x;</foo>`, "xml")
	_, err := c.ToJSON()
	if !errors.Is(err, ErrSecurity) {
		t.Errorf("xxe document: %v", err)
	}
	if errors.Is(err, ErrParse) {
		t.Errorf("security rejection must be distinct from parse errors: %v", err)
	}
}

func TestBytesPayload(t *testing.T) {
	c := mustNew(t, []byte(`<a>hi</a>`), "xml")
	out, err := c.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if out != `{"a":"hi"}` {
		t.Errorf("unexpected output %s", out)
	}
}

func TestDictToXML(t *testing.T) {
	out, err := DictToXML(map[string]any{"person": map[string]any{"name": "John", "age": 30}}, "")
	if err != nil {
		t.Fatalf("DictToXML: %v", err)
	}
	root := parseXML(t, out)
	if root.Tag != "root" {
		t.Errorf("root tag %q, want root", root.Tag)
	}
	if el := root.Find("person/name"); el == nil || el.Text != "John" {
		t.Errorf("person/name: %v", el)
	}

	out, err = DictToXML(map[string]any{"a": "b"}, "doc")
	if err != nil {
		t.Fatalf("DictToXML: %v", err)
	}
	if root := parseXML(t, out); root.Tag != "doc" {
		t.Errorf("root tag %q, want doc", root.Tag)
	}
}

func TestJSONToXML(t *testing.T) {
	out, err := JSONToXML(map[string]any{"person": map[string]any{"name": "John", "age": 30}}, "")
	if err != nil {
		t.Fatalf("JSONToXML: %v", err)
	}
	root := parseXML(t, out)
	if el := root.Find("person/age"); el == nil || el.Text != "30" {
		t.Errorf("person/age: %v", el)
	}
}

func TestXMLToJSON(t *testing.T) {
	out, err := XMLToJSON(`<person><name>John</name><age>30</age></person>`)
	if err != nil {
		t.Fatalf("XMLToJSON: %v", err)
	}
	jsonEqual(t, out, `{"person":{"name":"John","age":"30"}}`)
}

func TestYAMLToDict(t *testing.T) {
	node, err := YAMLToDict("name: John\nage: 30\n")
	if err != nil {
		t.Fatalf("YAMLToDict: %v", err)
	}
	want, _ := ir.FromJSON([]byte(`{"name":"John","age":30}`))
	if !ir.Equal(node, want) {
		t.Errorf("unexpected mapping %s", ir.MustJSONString(node))
	}

	if _, err := YAMLToDict("a: [1,\n"); !errors.Is(err, ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}
