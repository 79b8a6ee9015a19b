package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// FromJSON parses JSON text into a Node. Object key order and number
// literals survive as written.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	y, err := parseJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrParse)
	}
	return y, nil
}

func parseJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("unexpected end of input")
	}
	if err != nil {
		return nil, err
	}
	return parseJSONToken(dec, tok)
}

func parseJSONToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			res := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				// duplicate keys keep the first position, last value
				res.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := &Node{Type: ArrayType}
			for dec.More() {
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case json.Number:
		return FromNumberLiteral(string(t)), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// FromNumberLiteral builds a number node from its textual form,
// keeping the literal verbatim.
func FromNumberLiteral(lit string) *Node {
	y := &Node{Type: NumberType, Number: lit}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		y.Int64 = &i
		return y
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		y.Float64 = &f
	}
	return y
}

// EncodeJSON writes node as compact JSON text in insertion order.
func EncodeJSON(y *Node, w io.Writer) error {
	buf := bytes.NewBuffer(nil)
	encodeJSON(y, buf)
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeJSON(y *Node, buf *bytes.Buffer) {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		buf.WriteString(jsonNumberText(y))
	case StringType:
		writeJSONString(buf, y.String)
	case ArrayType:
		buf.WriteByte('[')
		for i, elt := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeJSON(elt, buf)
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, field := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, field)
			buf.WriteByte(':')
			encodeJSON(y.Values[i], buf)
		}
		buf.WriteByte('}')
	}
}

func jsonNumberText(y *Node) string {
	if y.Number != "" {
		return y.Number
	}
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return "0"
}

func writeJSONString(buf *bytes.Buffer, s string) {
	for _, r := range s {
		if r == '"' || r == '\\' || r < 0x20 || r == utf8.RuneError {
			writeJSONStringSlow(buf, s)
			return
		}
	}
	buf.WriteByte('"')
	buf.WriteString(s)
	buf.WriteByte('"')
}

// writeJSONStringSlow defers to encoding/json, without the HTML
// escaping of json.Marshal.
func writeJSONStringSlow(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(s)
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}

func MustJSONString(y *Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeJSON(y, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
