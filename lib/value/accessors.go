package value

import (
	"time"

	"github.com/samber/mo"
)

// Typed accessors. Each returns the payload when the value holds that
// variant and None otherwise; none of them can fail. The numeric readings
// (AsBool, AsInt, AsFloat, AsDouble) are present for any Number regardless
// of how it was constructed, coercing with ordinary Go conversions.

func AsDate(v Value) mo.Option[time.Time] {
	if d, ok := v.(Date); ok {
		return mo.Some(time.Time(d))
	}
	return mo.None[time.Time]()
}

func AsBinary(v Value) mo.Option[[]byte] {
	if b, ok := v.(Binary); ok {
		out := make([]byte, len(b))
		copy(out, b)
		return mo.Some(out)
	}
	return mo.None[[]byte]()
}

func AsNumber(v Value) mo.Option[Number] {
	if n, ok := v.(Number); ok {
		return mo.Some(n)
	}
	return mo.None[Number]()
}

func AsBool(v Value) mo.Option[bool] {
	if n, ok := v.(Number); ok {
		return mo.Some(n.Bool())
	}
	return mo.None[bool]()
}

func AsInt(v Value) mo.Option[int64] {
	if n, ok := v.(Number); ok {
		return mo.Some(n.Int())
	}
	return mo.None[int64]()
}

func AsFloat(v Value) mo.Option[float32] {
	if n, ok := v.(Number); ok {
		return mo.Some(n.Float())
	}
	return mo.None[float32]()
}

func AsDouble(v Value) mo.Option[float64] {
	if n, ok := v.(Number); ok {
		return mo.Some(n.Double())
	}
	return mo.None[float64]()
}

func AsText(v Value) mo.Option[string] {
	if s, ok := v.(Text); ok {
		return mo.Some(string(s))
	}
	return mo.None[string]()
}

func AsList(v Value) mo.Option[*List] {
	if l, ok := v.(*List); ok && l != nil {
		return mo.Some(l)
	}
	return mo.None[*List]()
}

func AsMap(v Value) mo.Option[*Map] {
	if m, ok := v.(*Map); ok && m != nil {
		return mo.Some(m)
	}
	return mo.None[*Map]()
}

// Variant predicates; exactly one is true for any Value.

func IsDate(v Value) bool {
	_, ok := v.(Date)
	return ok
}

func IsBinary(v Value) bool {
	_, ok := v.(Binary)
	return ok
}

func IsNumber(v Value) bool {
	_, ok := v.(Number)
	return ok
}

func IsText(v Value) bool {
	_, ok := v.(Text)
	return ok
}

func IsList(v Value) bool {
	_, ok := v.(*List)
	return ok
}

func IsMap(v Value) bool {
	_, ok := v.(*Map)
	return ok
}
