package value

import (
	"bytes"
	"iter"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Value is a single property-list node. The set of implementations is
// closed: Date, Binary, Number, Text, *List and *Map, nothing else.
type Value interface {
	isValue()
	// Equal reports structural equality: same variant and equal payload,
	// recursively for containers. Map entry order never matters.
	Equal(right Value) bool
	// Clone returns a deep copy sharing no children with the receiver.
	Clone() Value
	String() string
	// Entries yields (key, child) pairs for containers and nothing for
	// leaves. See iterate.go.
	Entries() iter.Seq2[string, Value]
}

var (
	_ Value = Date{}
	_ Value = Binary(nil)
	_ Value = Number{}
	_ Value = Text("")
	_ Value = (*List)(nil)
	_ Value = (*Map)(nil)
)

// Date is an instant in time. NewDate normalizes to UTC with whole-second
// precision so that every codec format round-trips it exactly (the XML
// property-list form carries seconds only).
type Date time.Time

func NewDate(t time.Time) Date {
	return Date(t.UTC().Truncate(time.Second))
}

func (d Date) isValue() {}
func (d Date) Equal(right Value) bool {
	o, ok := right.(Date)
	return ok && time.Time(d).Equal(time.Time(o))
}
func (d Date) Clone() Value {
	return d
}
func (d Date) Time() time.Time {
	return time.Time(d)
}
func (d Date) String() string {
	return render(d)
}

// Binary is an immutable byte sequence. Both the constructor and the
// accessors copy, so no caller ever holds a reference into the payload.
type Binary []byte

func NewBinary(b []byte) Binary {
	out := make(Binary, len(b))
	copy(out, b)
	return out
}

func (b Binary) isValue() {}
func (b Binary) Equal(right Value) bool {
	o, ok := right.(Binary)
	return ok && bytes.Equal(b, o)
}
func (b Binary) Clone() Value {
	return NewBinary(b)
}
func (b Binary) String() string {
	return render(b)
}

// Text is a string payload.
type Text string

func (s Text) isValue() {}
func (s Text) Equal(right Value) bool {
	o, ok := right.(Text)
	return ok && o == s
}
func (s Text) Clone() Value {
	return s
}
func (s Text) String() string {
	return render(s)
}

// List is an ordered sequence of child Values.
type List struct {
	values []Value
}

func NewList(values ...Value) *List {
	return &List{values: append(make([]Value, 0, len(values)), values...)}
}

func (l *List) isValue() {}
func (l *List) Len() int {
	return len(l.values)
}
func (l *List) Equal(right Value) bool {
	r, ok := right.(*List)
	if !ok || r == nil || len(r.values) != len(l.values) {
		return false
	}
	for i, lv := range l.values {
		if !lv.Equal(r.values[i]) {
			return false
		}
	}
	return true
}
func (l *List) Clone() Value {
	clone := make([]Value, len(l.values))
	for i, v := range l.values {
		clone[i] = v.Clone()
	}
	return &List{values: clone}
}
func (l *List) String() string {
	return render(l)
}

// Map associates unique text keys with child Values. Entry order carries no
// meaning.
type Map struct {
	values map[string]Value
}

func NewMap(values map[string]Value) *Map {
	out := make(map[string]Value, len(values))
	for k, v := range values {
		out[k] = v
	}
	return &Map{values: out}
}

func (m *Map) isValue() {}
func (m *Map) Len() int {
	return len(m.values)
}

// Keys returns the map's keys in sorted order.
func (m *Map) Keys() []string {
	keys := lo.Keys(m.values)
	sort.Strings(keys)
	return keys
}

func (m *Map) Equal(right Value) bool {
	r, ok := right.(*Map)
	if !ok || r == nil || len(r.values) != len(m.values) {
		return false
	}
	for k, lv := range m.values {
		rv, ok := r.values[k]
		if !ok || !lv.Equal(rv) {
			return false
		}
	}
	return true
}
func (m *Map) Clone() Value {
	clone := make(map[string]Value, len(m.values))
	for k, v := range m.values {
		clone[k] = v.Clone()
	}
	return &Map{values: clone}
}
func (m *Map) String() string {
	return render(m)
}
