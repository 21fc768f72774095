package event

import (
	"errors"
	"fmt"
)

// MalformedLineError reports a wire line that no grammar entry recognized,
// not even the catch-all. The batch containing it fails as a whole.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed event line %q: no grammar entry matched", e.Line)
}

// AmbiguousMatchError reports a line matched by more than one specific
// grammar entry. The grammar is meant to be mutually exclusive, so this is
// a library bug rather than bad wire data.
type AmbiguousMatchError struct {
	Line  string
	Kinds []EventKind
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("event line %q matched %d grammar entries %v: grammar entries must be mutually exclusive", e.Line, len(e.Kinds), e.Kinds)
}

// FieldDecodeError reports a captured field whose value could not be decoded
// into the event's typed form.
type FieldDecodeError struct {
	Event EventKind
	Field string
	Value string
	Err   error
}

func (e *FieldDecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s field %q: bad value %q: %v", e.Event, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("decode %s field %q: bad value %q", e.Event, e.Field, e.Value)
}

func (e *FieldDecodeError) Unwrap() error { return e.Err }

// errUnknownEvent marks a line whose event name has no specific grammar
// entry. Parse and the stream driver skip such lines and keep going.
var errUnknownEvent = errors.New("unrecognized event name")
