package value

import "fmt"

// InvalidValueError reports a native node with no property-list form. The
// whole import fails; Path locates the offending node ($-rooted, e.g.
// "$.pets[2]") so the caller can diagnose without re-walking the graph.
type InvalidValueError struct {
	Path string
	Node any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid native value at %s: %T is not a property list type", e.Path, e.Node)
}

// CodecError forwards a rejection from the external codec, unmodified.
type CodecError struct {
	Op  string
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("plist %s: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
