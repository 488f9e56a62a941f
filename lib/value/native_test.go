package value

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNativeLeaves(t *testing.T) {
	when := time.Date(2024, 5, 4, 3, 2, 1, 0, time.UTC)
	scenarios := []struct {
		node any
		e    Value
	}{
		{when, NewDate(when)},
		{[]byte{1, 2}, NewBinary([]byte{1, 2})},
		{true, Bool(true)},
		{int(47), Int(47)},
		{int8(-3), Int(-3)},
		{int16(300), Int(300)},
		{int32(5), Int(5)},
		{int64(-9), Int(-9)},
		{uint(7), Uint(7)},
		{uint8(255), Uint(255)},
		{uint16(9), Uint(9)},
		{uint32(9), Uint(9)},
		{uint64(math.MaxUint64), Uint(math.MaxUint64)},
		{float32(0.5), Double(0.5)},
		{float64(2.5), Double(2.5)},
		{"hi", Text("hi")},
	}
	for _, scene := range scenarios {
		got, err := FromNative(scene.node)
		require.NoError(t, err, "importing %T", scene.node)
		assert.True(t, got.Equal(scene.e), "importing %#v: got %s, want %s", scene.node, got, scene.e)
	}
}

func TestFromNativeContainers(t *testing.T) {
	got, err := FromNative(map[string]any{
		"tags":  []any{"x", int64(2), true},
		"inner": map[string]any{"r": 0.5},
	})
	require.NoError(t, err)
	expected := NewMap(map[string]Value{
		"tags":  NewList(Text("x"), Int(2), Bool(true)),
		"inner": NewMap(map[string]Value{"r": Double(0.5)}),
	})
	assert.True(t, got.Equal(expected), "got %s", got)
}

func TestFromNativeTypedContainers(t *testing.T) {
	got, err := FromNative([]string{"a", "b"})
	require.NoError(t, err)
	assert.True(t, got.Equal(NewList(Text("a"), Text("b"))))

	got, err = FromNative(map[string]int{"n": 3})
	require.NoError(t, err)
	assert.True(t, got.Equal(NewMap(map[string]Value{"n": Int(3)})))

	type raw []byte
	got, err = FromNative(raw{1, 2})
	require.NoError(t, err)
	assert.True(t, got.Equal(NewBinary([]byte{1, 2})))
}

func TestFromNativeAcceptsValue(t *testing.T) {
	l := NewList(Int(1))
	got, err := FromNative(map[string]any{"nested": l})
	require.NoError(t, err)
	assert.True(t, got.Equal(NewMap(map[string]Value{"nested": NewList(Int(1))})))

	// the import clones, so the source stays detached
	inner, _ := Get(got, "nested").Get()
	assert.NotSame(t, l, inner)
}

func TestLocatorCoercesToText(t *testing.T) {
	u, err := url.Parse("https://example.com/a?b=1")
	require.NoError(t, err)

	got, err := FromNative(u)
	require.NoError(t, err)
	assert.True(t, got.Equal(Text("https://example.com/a?b=1")))

	got, err = FromNative(*u)
	require.NoError(t, err)
	assert.True(t, got.Equal(Text("https://example.com/a?b=1")))

	// the coercion is one-way: the exported graph holds a plain string
	assert.Equal(t, "https://example.com/a?b=1", ToNative(got))
}

func TestFromNativeFailureIsTotal(t *testing.T) {
	_, err := FromNative([]any{"ok", struct{}{}, "also ok"})
	require.Error(t, err)
	var iv *InvalidValueError
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "$[1]", iv.Path)

	_, err = FromNative(map[string]any{"good": 1, "bad": map[string]any{"deep": make(chan int)}})
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "$.bad.deep", iv.Path)

	_, err = FromNative(nil)
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "$", iv.Path)

	_, err = FromNative(map[int]any{1: "x"})
	require.ErrorAs(t, err, &iv)
}

func TestNativeRoundTrip(t *testing.T) {
	when := time.Date(2024, 5, 4, 3, 2, 1, 0, time.UTC)
	g := map[string]any{
		"name":  "Ada",
		"count": int64(3),
		"max":   uint64(9),
		"ratio": 0.5,
		"ok":    true,
		"blob":  []byte{1, 2, 3},
		"when":  when,
		"tags":  []any{"x", "y", int64(-1)},
		"inner": map[string]any{"empty": []any{}},
	}
	v, err := FromNative(g)
	require.NoError(t, err)
	assert.Equal(t, g, ToNative(v))
}

func TestToNativeShapes(t *testing.T) {
	assert.Equal(t, int64(47), ToNative(Int(47)))
	assert.Equal(t, uint64(9), ToNative(Uint(9)))
	assert.Equal(t, true, ToNative(Bool(true)))
	assert.Equal(t, 2.5, ToNative(Double(2.5)))
	assert.Equal(t, "hi", ToNative(Text("hi")))
	assert.Equal(t, []any{int64(1)}, ToNative(NewList(Int(1))))
	assert.Equal(t, map[string]any{"a": "x"}, ToNative(NewMap(map[string]Value{"a": Text("x")})))
}

func TestToNativeBinaryDetached(t *testing.T) {
	b := NewBinary([]byte{1, 2})
	out := ToNative(b).([]byte)
	out[0] = 9
	assert.True(t, b.Equal(NewBinary([]byte{1, 2})))
}
