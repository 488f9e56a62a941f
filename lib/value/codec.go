package value

import (
	"fmt"

	"howett.net/plist"
)

// Format selects the serialized byte form. The byte-level encoding itself
// belongs to the codec (howett.net/plist); this package only exports the
// native graph and hands it over. The OpenStep-family forms are not offered
// because they cannot carry dates or booleans losslessly, which would break
// the Decode∘Encode identity.
type Format uint8

const (
	BinaryFormat Format = iota
	XMLFormat
)

func (f Format) String() string {
	switch f {
	case BinaryFormat:
		return "binary"
	case XMLFormat:
		return "xml"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

func (f Format) external() (int, error) {
	switch f {
	case BinaryFormat:
		return plist.BinaryFormat, nil
	case XMLFormat:
		return plist.XMLFormat, nil
	default:
		return 0, fmt.Errorf("unsupported format %s", f)
	}
}

// Encode serializes v in the given format. For any Value built through this
// package's constructors the codec accepts the exported graph, so an error
// here means the codec itself failed; it surfaces as a *CodecError.
func Encode(v Value, format Format) ([]byte, error) {
	ext, err := format.external()
	if err != nil {
		return nil, &CodecError{Op: "encode", Err: err}
	}
	data, err := plist.Marshal(ToNative(v), ext)
	if err != nil {
		return nil, &CodecError{Op: "encode", Err: err}
	}
	return data, nil
}

// Decode deserializes any supported format (the codec sniffs it) and
// imports the resulting graph. Invalid bytes are a *CodecError; a decoded
// graph containing a node outside the property-list set (a plist UID, say)
// is an *InvalidValueError from the import.
func Decode(data []byte) (Value, error) {
	var node any
	if _, err := plist.Unmarshal(data, &node); err != nil {
		return nil, &CodecError{Op: "decode", Err: err}
	}
	return FromNative(node)
}
