package format

import (
	"errors"
	"fmt"
)

// Format identifies a declared source representation for conversion.
type Format int

const (
	JSONFormat Format = iota
	XMLFormat
	DictFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("unsupported data type")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"json": JSONFormat,
		"xml":  XMLFormat,
		"dict": DictFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case DictFormat:
		return []byte("dict"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsDict() bool { return f == DictFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
// The dict format is in-memory only and has no extension.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case XMLFormat:
		return ".xml"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{JSONFormat, XMLFormat, DictFormat, YAMLFormat}
}
