package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// FromAny converts a native Go value into a Node. Ordered inputs
// (yaml.MapSlice, *Node) keep their key order; plain Go maps are
// keyed in sorted order for determinism.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t.Clone(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return FromNumberLiteral(string(t)), nil
	case yaml.MapSlice:
		res := NewObject()
		for _, item := range t {
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(fmt.Sprint(item.Key), val)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			val, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case map[string]string:
		res := NewObject()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			res.Set(key, FromString(t[key]))
		}
		return res, nil
	case []any:
		vals := make([]*Node, len(t))
		for i, item := range t {
			val, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return FromSlice(vals), nil
	case []string:
		vals := make([]*Node, len(t))
		for i, s := range t {
			vals[i] = FromString(s)
		}
		return FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a structured value", v)
	}
}

func fromUint(v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromInt(int64(v))
	}
	return FromNumberLiteral(strconv.FormatUint(v, 10))
}

// ToAny converts a Node into native Go values. Objects come back as
// yaml.MapSlice so the YAML leg keeps key order.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, field := range y.Fields {
			res[i] = yaml.MapItem{Key: field, Value: ToAny(y.Values[i])}
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case BoolType:
		return y.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
