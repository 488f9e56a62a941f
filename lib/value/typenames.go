package value

import "reflect"

type _types struct {
	Date   reflect.Type
	Binary reflect.Type
	Number reflect.Type
	Text   reflect.Type
	List   reflect.Type
	Map    reflect.Type
	Any    reflect.Type
}

var Types _types

func init() {
	Types = _types{
		Date:   reflect.TypeOf(Date{}),
		Binary: reflect.TypeOf(Binary(nil)),
		Number: reflect.TypeOf(Number{}),
		Text:   reflect.TypeOf(Text("")),
		List:   reflect.TypeOf((*List)(nil)),
		Map:    reflect.TypeOf((*Map)(nil)),
		Any:    reflect.TypeOf((*Value)(nil)).Elem(),
	}
}

// TypeName names v's variant for diagnostics.
func TypeName(v Value) string {
	switch reflect.TypeOf(v) {
	case Types.Date:
		return "Date"
	case Types.Binary:
		return "Binary"
	case Types.Number:
		return "Number"
	case Types.Text:
		return "Text"
	case Types.List:
		return "List"
	case Types.Map:
		return "Map"
	default:
		return "Unknown"
	}
}
