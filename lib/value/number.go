package value

import (
	"math"
	"strconv"
)

type numberKind uint8

const (
	numberBool numberKind = iota
	numberInt
	numberUint
	numberReal
)

// Number is the numeric variant. One payload serves the boolean, integer
// and floating-point readings, but the representation it was constructed
// with is kept: Bool(true), Int(1) and Double(1) are three distinct values
// that compare unequal. The one exception is within the integer class,
// where Int and Uint compare numerically: the codec is free to hand back
// either width for the same serialized integer.
type Number struct {
	kind numberKind
	b    bool
	i    int64
	u    uint64
	f    float64
}

func Bool(b bool) Number      { return Number{kind: numberBool, b: b} }
func Int(i int64) Number      { return Number{kind: numberInt, i: i} }
func Uint(u uint64) Number    { return Number{kind: numberUint, u: u} }
func Double(f float64) Number { return Number{kind: numberReal, f: f} }

// Bool reads the payload as a boolean: any nonzero numeric is true.
func (n Number) Bool() bool {
	switch n.kind {
	case numberBool:
		return n.b
	case numberInt:
		return n.i != 0
	case numberUint:
		return n.u != 0
	default:
		return n.f != 0
	}
}

// Int reads the payload as a signed integer, truncating a real toward zero.
func (n Number) Int() int64 {
	switch n.kind {
	case numberBool:
		if n.b {
			return 1
		}
		return 0
	case numberInt:
		return n.i
	case numberUint:
		return int64(n.u)
	default:
		return int64(n.f)
	}
}

// Float reads the payload at single precision.
func (n Number) Float() float32 {
	return float32(n.Double())
}

// Double reads the payload at double precision.
func (n Number) Double() float64 {
	switch n.kind {
	case numberBool:
		if n.b {
			return 1
		}
		return 0
	case numberInt:
		return float64(n.i)
	case numberUint:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n Number) isValue() {}

func (n Number) Equal(right Value) bool {
	o, ok := right.(Number)
	if !ok {
		return false
	}
	switch {
	case n.kind == numberBool || o.kind == numberBool:
		return n.kind == o.kind && n.b == o.b
	case n.kind == numberReal || o.kind == numberReal:
		if n.kind != o.kind {
			return false
		}
		// NaN equals NaN so that Equal stays reflexive.
		return n.f == o.f || (math.IsNaN(n.f) && math.IsNaN(o.f))
	default:
		return integerEq(n, o)
	}
}

func integerEq(a, b Number) bool {
	switch {
	case a.kind == numberInt && b.kind == numberInt:
		return a.i == b.i
	case a.kind == numberUint && b.kind == numberUint:
		return a.u == b.u
	case a.kind == numberInt:
		return a.i >= 0 && uint64(a.i) == b.u
	default:
		return b.i >= 0 && uint64(b.i) == a.u
	}
}

func (n Number) Clone() Value {
	return n
}

func (n Number) String() string {
	switch n.kind {
	case numberBool:
		return strconv.FormatBool(n.b)
	case numberInt:
		return strconv.FormatInt(n.i, 10)
	case numberUint:
		return strconv.FormatUint(n.u, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}
