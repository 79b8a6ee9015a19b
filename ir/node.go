package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a single structured value. Values are built per conversion
// and never mutated once handed to a caller.
//
// Objects store keys in Fields and values in Values at matching
// indices, preserving insertion order. Arrays use Values only.
// Numbers keep the source literal in Number; Int64 and Float64 hold
// parsed views when the literal fits.
type Node struct {
	Type Type

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

func FromSlice(vals []*Node) *Node {
	return &Node{Type: ArrayType, Values: vals}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// FromMap builds an object node with keys in sorted order. Use
// NewObject plus Set when insertion order matters.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// Get returns the value stored under field, or nil.
func (y *Node) Get(field string) *Node {
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set stores val under field, replacing in place if the field exists
// and appending otherwise.
func (y *Node) Set(field string, val *Node) {
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, val)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
