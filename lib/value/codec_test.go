package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifyEncodeDecode(t *testing.T, v Value, format Format) {
	t.Helper()
	data, err := Encode(v, format)
	require.NoError(t, err, "encoding %s as %s", v, format)
	u, err := Decode(data)
	require.NoError(t, err, "decoding %s bytes of %s", format, v)
	assert.True(t, u.Equal(v), "%s round trip: got %s, want %s", format, u, v)
	assert.True(t, v.Equal(u))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	document := NewMap(map[string]Value{
		"title":   Text("zoo"),
		"count":   Int(47),
		"weight":  Double(2.5),
		"alive":   Bool(true),
		"dead":    Bool(false),
		"neg":     Int(-411414141),
		"raw":     NewBinary([]byte{0x00, 0xff, 0x10}),
		"seen":    NewDate(time.Date(2024, 5, 4, 3, 2, 1, 0, time.UTC)),
		"animals": NewList(Text("Mammal"), Text("Reptile"), Text("Amphibian")),
		"nested": NewMap(map[string]Value{
			"empty list": NewList(),
			"empty map":  NewMap(nil),
			"mixed":      NewList(Int(1), Double(0.25), Text("x"), Bool(true)),
		}),
	})
	for _, format := range []Format{BinaryFormat, XMLFormat} {
		verifyEncodeDecode(t, document, format)
		for _, v := range sampleValues() {
			verifyEncodeDecode(t, v, format)
		}
	}
}

func TestDecodeInvalidBytes(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{},
		[]byte("not a plist at all"),
		[]byte("bplist0"),
	} {
		_, err := Decode(data)
		require.Error(t, err, "decoding %q", data)
		var ce *CodecError
		assert.ErrorAs(t, err, &ce)
	}
}

func TestDecodeXMLText(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>name</key>
	<string>Ada</string>
	<key>count</key>
	<integer>3</integer>
	<key>ok</key>
	<true/>
</dict>
</plist>`)
	v, err := Decode(data)
	require.NoError(t, err)
	expected := NewMap(map[string]Value{
		"name":  Text("Ada"),
		"count": Int(3),
		"ok":    Bool(true),
	})
	assert.True(t, v.Equal(expected), "got %s", v)
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	_, err := Encode(Int(1), Format(99))
	require.Error(t, err)
	var ce *CodecError
	assert.ErrorAs(t, err, &ce)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "binary", BinaryFormat.String())
	assert.Equal(t, "xml", XMLFormat.String())
}
