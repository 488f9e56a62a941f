package value

import "github.com/samber/mo"

// Get is the read half of the dual-mode subscript: an int key indexes a
// List, a string key looks up a Map. Every other combination (wrong
// variant, negative or out-of-range index, missing key) is None, never an
// error.
func Get[K int | string](v Value, key K) mo.Option[Value] {
	switch k := any(key).(type) {
	case int:
		if l, ok := v.(*List); ok && l != nil && k >= 0 && k < len(l.values) {
			return mo.Some(l.values[k])
		}
	case string:
		if m, ok := v.(*Map); ok && m != nil {
			if child, ok := m.values[k]; ok {
				return mo.Some(child)
			}
		}
	}
	return mo.None[Value]()
}

// Set is the write half and the only mutation surface. A present
// replacement assigns; None clears: a List element is removed and the tail
// shifts down, a Map entry is deleted. Assigning past the end of a List
// does not append. Combinations that do not apply to the current variant
// are silent no-ops.
func Set[K int | string](v Value, key K, val mo.Option[Value]) {
	repl, present := val.Get()
	if repl == nil {
		present = false
	}
	switch k := any(key).(type) {
	case int:
		l, ok := v.(*List)
		if !ok || l == nil || k < 0 || k >= len(l.values) {
			return
		}
		if present {
			l.values[k] = repl
		} else {
			l.values = append(l.values[:k], l.values[k+1:]...)
		}
	case string:
		m, ok := v.(*Map)
		if !ok || m == nil {
			return
		}
		if present {
			m.values[k] = repl
		} else {
			delete(m.values, k)
		}
	}
}
