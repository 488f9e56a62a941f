package value

import (
	"iter"
	"strconv"
)

// Entries sequences are lazy and restartable: ranging a second time replays
// from the start. They are read-only views: mutating through Set while
// ranging a List is as unsupported as mutating any Go slice mid-iteration.

var noEntries iter.Seq2[string, Value] = func(yield func(string, Value) bool) {}

func (d Date) Entries() iter.Seq2[string, Value]   { return noEntries }
func (b Binary) Entries() iter.Seq2[string, Value] { return noEntries }
func (n Number) Entries() iter.Seq2[string, Value] { return noEntries }
func (s Text) Entries() iter.Seq2[string, Value]   { return noEntries }

// Entries yields the elements keyed by their decimal position, "0" first.
func (l *List) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, v := range l.values {
			if !yield(strconv.Itoa(i), v) {
				return
			}
		}
	}
}

// Entries yields the map's entries in unspecified order.
func (m *Map) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for k, v := range m.values {
			if !yield(k, v) {
				return
			}
		}
	}
}
