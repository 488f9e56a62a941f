package value

import (
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/samber/lo"
)

// FromNative imports a weakly-typed native graph. The accepted node kinds,
// in precedence order: an existing Value (cloned), time.Time, []byte, any
// Go boolean/integer/float, string, a URL (coerced to Text by its string
// form, a deliberate one-way special case), slices and arrays, and maps
// with string keys. One unacceptable node anywhere fails the whole import
// with an *InvalidValueError; there is never a partial result.
//
// Narrow numeric widths widen on import (int32 comes back out of ToNative
// as int64), so the export round-trip is exact only for graphs in the
// shapes ToNative itself produces, which is also everything the codec
// produces.
func FromNative(node any) (Value, error) {
	return fromNative(node, "$")
}

func fromNative(node any, path string) (Value, error) {
	switch t := node.(type) {
	case nil:
		return nil, &InvalidValueError{Path: path, Node: node}
	case Value:
		return t.Clone(), nil
	case time.Time:
		return NewDate(t), nil
	case []byte:
		return NewBinary(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(uint64(t)), nil
	case uint8:
		return Uint(uint64(t)), nil
	case uint16:
		return Uint(uint64(t)), nil
	case uint32:
		return Uint(uint64(t)), nil
	case uint64:
		return Uint(t), nil
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case string:
		return Text(t), nil
	case *url.URL:
		if t == nil {
			return nil, &InvalidValueError{Path: path, Node: node}
		}
		return Text(t.String()), nil
	case url.URL:
		return Text(t.String()), nil
	case []any:
		out := make([]Value, len(t))
		for i, elem := range t {
			v, err := fromNative(elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &List{values: out}, nil
	case map[string]any:
		out := make(map[string]Value, len(t))
		for k, elem := range t {
			v, err := fromNative(elem, fmt.Sprintf("%s.%s", path, k))
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return &Map{values: out}, nil
	}
	return fromNativeReflect(node, path)
}

// fromNativeReflect handles sequence and mapping shapes beyond the []any
// and map[string]any fast paths, e.g. []string or map[string]int.
func fromNativeReflect(node any, path string) (Value, error) {
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return NewBinary(rv.Bytes()), nil
		}
		out := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := fromNative(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &List{values: out}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &InvalidValueError{Path: path, Node: node}
		}
		out := make(map[string]Value, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k := it.Key().String()
			v, err := fromNative(it.Value().Interface(), fmt.Sprintf("%s.%s", path, k))
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return &Map{values: out}, nil
	}
	return nil, &InvalidValueError{Path: path, Node: node}
}

// ToNative exports the structural inverse of FromNative. It is total: every
// variant has exactly one native shape. Date becomes time.Time, Binary a
// fresh []byte, Number whichever of bool/int64/uint64/float64 it carries,
// Text a string, List a []any and Map a map[string]any.
func ToNative(v Value) any {
	switch t := v.(type) {
	case Date:
		return time.Time(t)
	case Binary:
		out := make([]byte, len(t))
		copy(out, t)
		return out
	case Number:
		switch t.kind {
		case numberBool:
			return t.b
		case numberInt:
			return t.i
		case numberUint:
			return t.u
		default:
			return t.f
		}
	case Text:
		return string(t)
	case *List:
		return lo.Map(t.values, func(child Value, _ int) any {
			return ToNative(child)
		})
	case *Map:
		out := make(map[string]any, len(t.values))
		for k, child := range t.values {
			out[k] = ToNative(child)
		}
		return out
	}
	return nil
}
