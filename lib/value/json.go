package value

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/buger/jsonparser"
)

// FromJSON builds a Value from a JSON literal: booleans and numbers become
// Numbers, strings Text, arrays Lists, objects Maps. JSON null has no
// property-list form and fails the whole parse with an *InvalidValueError.
// Dates and Binary cannot be spelled in JSON and arrive as Text, so ToJSON
// followed by FromJSON is lossy for those two variants, the same one-way
// shape as the URL coercion in FromNative.
func FromJSON(data []byte) (Value, error) {
	vdata, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, &CodecError{Op: "parse json", Err: err}
	}
	return parseJSON(vdata, vtype)
}

func parseJSON(vdata []byte, vtype jsonparser.ValueType) (Value, error) {
	switch vtype {
	case jsonparser.Boolean:
		v, err := jsonparser.ParseBoolean(vdata)
		if err != nil {
			return nil, &CodecError{Op: "parse json", Err: err}
		}
		return Bool(v), nil
	case jsonparser.Number:
		if v, err := jsonparser.ParseInt(vdata); err == nil {
			return Int(v), nil
		}
		v, err := jsonparser.ParseFloat(vdata)
		if err != nil {
			return nil, &CodecError{Op: "parse json", Err: err}
		}
		return Double(v), nil
	case jsonparser.String:
		v, err := jsonparser.ParseString(vdata)
		if err != nil {
			return nil, &CodecError{Op: "parse json", Err: err}
		}
		return Text(v), nil
	case jsonparser.Array:
		ret := NewList()
		var errs []error
		handler := func(elem []byte, dataType jsonparser.ValueType, offset int, err error) {
			if err != nil {
				errs = append(errs, err)
				return
			}
			v, err := parseJSON(elem, dataType)
			if err != nil {
				errs = append(errs, err)
				return
			}
			ret.values = append(ret.values, v)
		}
		if _, err := jsonparser.ArrayEach(vdata, handler); err != nil {
			return nil, &CodecError{Op: "parse json", Err: err}
		}
		if len(errs) != 0 {
			return nil, errs[0]
		}
		return ret, nil
	case jsonparser.Object:
		ret := NewMap(nil)
		handler := func(key []byte, elem []byte, dataType jsonparser.ValueType, offset int) error {
			k, err := jsonparser.ParseString(key)
			if err != nil {
				return err
			}
			v, err := parseJSON(elem, dataType)
			if err != nil {
				return err
			}
			ret.values[k] = v
			return nil
		}
		if err := jsonparser.ObjectEach(vdata, handler); err != nil {
			var iv *InvalidValueError
			var ce *CodecError
			if errors.As(err, &iv) || errors.As(err, &ce) {
				return nil, err
			}
			return nil, &CodecError{Op: "parse json", Err: err}
		}
		return ret, nil
	case jsonparser.Null:
		return nil, &InvalidValueError{Path: "$", Node: nil}
	default:
		return nil, &InvalidValueError{Path: "$", Node: vdata}
	}
}

// ToJSON renders v as JSON. Total except for non-finite reals, which JSON
// cannot spell.
func ToJSON(v Value) ([]byte, error) {
	return json.Marshal(v)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.RFC3339))
}

func (b Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (n Number) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case numberBool:
		return json.Marshal(n.b)
	case numberInt:
		return json.Marshal(n.i)
	case numberUint:
		return json.Marshal(n.u)
	default:
		return json.Marshal(n.f)
	}
}

func (s Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.values)
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.values)
}

// render backs every variant's String with its JSON form; map keys come out
// sorted, matching the canonical key order the codec boundary uses.
func render(v Value) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "<unrenderable " + TypeName(v) + ">"
	}
	return string(data)
}
