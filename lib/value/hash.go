package value

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/zeebo/xxh3"
)

// Variant tags for hashing. Int and Uint share one tag: they are one
// equality class and must hash alike.
const (
	hashDate byte = iota + 1
	hashBinary
	hashBool
	hashInteger
	hashReal
	hashText
	hashList
	hashMap
)

// quietNaN stands in for every NaN payload, keeping Hash consistent with
// Equal (which treats all NaNs as one value).
var quietNaN = math.Float64bits(math.NaN())

// Hash returns a structural hash: v.Equal(u) implies Hash(v) == Hash(u).
// Map entries combine commutatively so entry order cannot leak in.
func Hash(v Value) uint64 {
	h := xxh3.New()
	writeHash(h, v)
	return h.Sum64()
}

func writeHash(h *xxh3.Hasher, v Value) {
	var buf [8]byte
	switch t := v.(type) {
	case Date:
		h.Write([]byte{hashDate})
		binary.BigEndian.PutUint64(buf[:], uint64(time.Time(t).UnixNano()))
		h.Write(buf[:])
	case Binary:
		h.Write([]byte{hashBinary})
		binary.BigEndian.PutUint64(buf[:], uint64(len(t)))
		h.Write(buf[:])
		h.Write(t)
	case Number:
		writeNumberHash(h, t, buf[:])
	case Text:
		h.Write([]byte{hashText})
		binary.BigEndian.PutUint64(buf[:], uint64(len(t)))
		h.Write(buf[:])
		h.Write([]byte(t))
	case *List:
		h.Write([]byte{hashList})
		binary.BigEndian.PutUint64(buf[:], uint64(len(t.values)))
		h.Write(buf[:])
		for _, child := range t.values {
			writeHash(h, child)
		}
	case *Map:
		var xored, summed uint64
		for k, child := range t.values {
			eh := xxh3.New()
			binary.BigEndian.PutUint64(buf[:], uint64(len(k)))
			eh.Write(buf[:])
			eh.Write([]byte(k))
			writeHash(eh, child)
			e := eh.Sum64()
			xored ^= e
			summed += e
		}
		h.Write([]byte{hashMap})
		binary.BigEndian.PutUint64(buf[:], uint64(len(t.values)))
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], xored)
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], summed)
		h.Write(buf[:])
	}
}

func writeNumberHash(h *xxh3.Hasher, n Number, buf []byte) {
	switch n.kind {
	case numberBool:
		h.Write([]byte{hashBool})
		if n.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case numberInt:
		// Two's complement, same bytes a numerically-equal Uint writes.
		h.Write([]byte{hashInteger})
		binary.BigEndian.PutUint64(buf, uint64(n.i))
		h.Write(buf)
	case numberUint:
		h.Write([]byte{hashInteger})
		binary.BigEndian.PutUint64(buf, n.u)
		h.Write(buf)
	default:
		bits := math.Float64bits(n.f)
		if n.f == 0 {
			bits = 0 // -0.0 equals +0.0
		}
		if math.IsNaN(n.f) {
			bits = quietNaN
		}
		h.Write([]byte{hashReal})
		binary.BigEndian.PutUint64(buf, bits)
		h.Write(buf)
	}
}
