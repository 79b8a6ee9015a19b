package dataconv

import (
	"bytes"
	"fmt"

	"github.com/wolfsoftware/go-dataconv/debug"
	"github.com/wolfsoftware/go-dataconv/format"
	"github.com/wolfsoftware/go-dataconv/ir"
	"github.com/wolfsoftware/go-dataconv/xmltree"
)

// Converter holds one immutable payload and its declared source
// format. Text sources (json, xml, yaml) carry string or []byte
// payloads; the dict source carries a native mapping value accepted
// by ir.FromAny.
type Converter struct {
	data   any
	format format.Format
}

// New builds a Converter. A dataType outside json, xml, dict and yaml
// fails immediately with ErrClassification; payload shape is checked
// when a conversion is requested.
func New(data any, dataType string) (*Converter, error) {
	f, err := format.ParseFormat(dataType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}
	return &Converter{data: data, format: f}, nil
}

func (c *Converter) Format() format.Format { return c.format }

// ToJSON converts the payload to JSON text.
func (c *Converter) ToJSON() (string, error) {
	if debug.Convert() {
		debug.Logf("dataconv: %s -> json\n", c.format)
	}
	switch c.format {
	case format.XMLFormat:
		node, err := c.decodeXML()
		if err != nil {
			return "", err
		}
		return ir.MustJSONString(node), nil
	case format.YAMLFormat:
		node, err := c.parseYAML()
		if err != nil {
			return "", err
		}
		return ir.MustJSONString(node), nil
	case format.DictFormat:
		node, err := c.dict()
		if err != nil {
			return "", err
		}
		return ir.MustJSONString(node), nil
	default:
		return "", fmt.Errorf("%w: %s source for JSON conversion", ErrUnsupported, c.format)
	}
}

// ToXML converts the payload to pretty-printed XML text with root tag
// "root".
func (c *Converter) ToXML() (string, error) {
	if debug.Convert() {
		debug.Logf("dataconv: %s -> xml\n", c.format)
	}
	switch c.format {
	case format.JSONFormat:
		node, err := c.parseJSON()
		if err != nil {
			return "", err
		}
		return encodeXML(node, "")
	case format.DictFormat:
		node, err := c.dict()
		if err != nil {
			return "", err
		}
		return encodeXML(node, "")
	case format.YAMLFormat:
		node, err := c.parseYAML()
		if err != nil {
			return "", err
		}
		return encodeXML(node, "")
	default:
		return "", fmt.Errorf("%w: %s source for XML conversion", ErrUnsupported, c.format)
	}
}

// ToYAML converts the payload to YAML text.
func (c *Converter) ToYAML() (string, error) {
	if debug.Convert() {
		debug.Logf("dataconv: %s -> yaml\n", c.format)
	}
	switch c.format {
	case format.JSONFormat:
		node, err := c.parseJSON()
		if err != nil {
			return "", err
		}
		return encodeYAML(node)
	case format.DictFormat:
		node, err := c.dict()
		if err != nil {
			return "", err
		}
		return encodeYAML(node)
	case format.XMLFormat:
		node, err := c.decodeXML()
		if err != nil {
			return "", err
		}
		return encodeYAML(node)
	default:
		return "", fmt.Errorf("%w: %s source for YAML conversion", ErrUnsupported, c.format)
	}
}

// text returns the payload as text for the json, xml and yaml
// sources.
func (c *Converter) text() (string, error) {
	switch t := c.data.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	}
	return "", fmt.Errorf("%w: %s payload must be text, got %T", ErrClassification, c.format, c.data)
}

// dict returns the payload as a mapping node for the dict source.
func (c *Converter) dict() (*ir.Node, error) {
	node, err := ir.FromAny(c.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: dict payload must be a mapping, got %s", ErrClassification, node.Type)
	}
	return node, nil
}

func (c *Converter) parseJSON() (*ir.Node, error) {
	text, err := c.text()
	if err != nil {
		return nil, err
	}
	node, err := ir.FromJSON([]byte(text))
	if err != nil {
		return nil, convErr(err)
	}
	return node, nil
}

func (c *Converter) parseYAML() (*ir.Node, error) {
	text, err := c.text()
	if err != nil {
		return nil, err
	}
	node, err := ir.FromYAML([]byte(text))
	if err != nil {
		return nil, convErr(err)
	}
	return node, nil
}

func (c *Converter) decodeXML() (*ir.Node, error) {
	text, err := c.text()
	if err != nil {
		return nil, err
	}
	node, err := xmltree.Decode([]byte(text))
	if err != nil {
		return nil, convErr(err)
	}
	return node, nil
}

func encodeXML(node *ir.Node, rootTag string) (string, error) {
	buf := bytes.NewBuffer(nil)
	opts := []xmltree.EncodeOption{xmltree.RootTag(rootTag)}
	if err := xmltree.Encode(node, buf, opts...); err != nil {
		return "", convErr(err)
	}
	return buf.String(), nil
}

func encodeYAML(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := ir.EncodeYAML(node, buf); err != nil {
		return "", convErr(err)
	}
	return buf.String(), nil
}

// DictToXML converts a mapping value to XML text without constructing
// a Converter. An empty rootTag means "root".
func DictToXML(data any, rootTag string) (string, error) {
	node, err := ir.FromAny(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassification, err)
	}
	return encodeXML(node, rootTag)
}

// JSONToXML converts an already-parsed JSON value to XML text. It is
// an alias of DictToXML.
func JSONToXML(data any, rootTag string) (string, error) {
	return DictToXML(data, rootTag)
}

// XMLToJSON decodes XML text and serializes the resulting mapping as
// JSON text.
func XMLToJSON(xmlText string) (string, error) {
	node, err := xmltree.Decode([]byte(xmlText))
	if err != nil {
		return "", convErr(err)
	}
	return ir.MustJSONString(node), nil
}

// YAMLToDict parses YAML text into the keyed-mapping form.
func YAMLToDict(yamlText string) (*ir.Node, error) {
	node, err := ir.FromYAML([]byte(yamlText))
	if err != nil {
		return nil, convErr(err)
	}
	return node, nil
}
