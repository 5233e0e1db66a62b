package xml

import (
	"errors"
	"fmt"
)

// errorKind distinguishes the four error cases of the pipeline without
// exposing separate exported error types for each.
type errorKind int

const (
	errGeneric errorKind = iota
	errEndTagMismatch
	errUnresolvedEntity
	errLeftoverAttrs
)

// Error is the single error value the pipeline ever returns. It carries a
// human-readable message and, where available, the Event that provoked it.
//
// Callers that need to distinguish the end-tag-mismatch or leftover-attrs
// cases programmatically can use Mismatch or Leftover.
type Error struct {
	kind    errorKind
	msg     string
	event   Event
	actual  QName
	attrs   []RawAttr
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("xml: %s: %v", e.msg, e.wrapped)
	}
	return "xml: " + e.msg
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// Event returns the Event that provoked the error, if any.
func (e *Error) Event() (Event, bool) {
	if e.event == nil {
		return nil, false
	}
	return e.event, true
}

// Mismatch reports the actual end-tag QName when err is an end-tag
// mismatch error.
func Mismatch(err error) (QName, bool) {
	var xe *Error
	if errors.As(err, &xe) && xe.kind == errEndTagMismatch {
		return xe.actual, true
	}
	return QName{}, false
}

// Leftover reports the unconsumed attribute list when err is a residue
// (leftover attributes) error.
func Leftover(err error) ([]RawAttr, bool) {
	var xe *Error
	if errors.As(err, &xe) && xe.kind == errLeftoverAttrs {
		return xe.attrs, true
	}
	return nil, false
}

func newError(msg string, event Event) *Error {
	return &Error{kind: errGeneric, msg: msg, event: event}
}

func newWrappedError(msg string, err error) *Error {
	return &Error{kind: errGeneric, msg: msg, wrapped: err}
}

func newEndTagMismatch(expected, actual QName) *Error {
	return &Error{
		kind: errEndTagMismatch,
		msg:  fmt.Sprintf("end tag %s does not match begin tag %s", actual, expected),
		actual: actual,
	}
}

func newUnresolvedEntityError(name string) *Error {
	return &Error{kind: errUnresolvedEntity, msg: fmt.Sprintf("unresolved entity &%s;", name)}
}

func newLeftoverAttrsError(attrs []RawAttr) *Error {
	return &Error{kind: errLeftoverAttrs, msg: fmt.Sprintf("unparsed attributes: %v", attrs), attrs: attrs}
}
