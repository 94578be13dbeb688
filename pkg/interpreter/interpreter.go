// Package interpreter normalizes device, transport and chain errors into a
// closed set of internal kinds with fixed user-facing content.
package interpreter

import (
	"context"
	"errors"
	"fmt"
)

// InternalError is the only error shape that crosses the system boundary.
// Title and Description are safe to display; Context is structured detail
// intended for logs only.
type InternalError struct {
	Kind        Kind
	Title       string
	Description string
	Operation   string
	Context     map[string]interface{}
}

func (e *InternalError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("%s: %s: %s", e.Operation, e.Kind, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

// New builds an InternalError of the given kind with its fixed content.
func New(kind Kind, operation string) *InternalError {
	d := details[kind]
	return &InternalError{
		Kind:        kind,
		Title:       d.title,
		Description: d.description,
		Operation:   operation,
	}
}

// WithContext attaches a structured detail entry and returns the error for
// chaining. Context values are never surfaced in Title or Description.
func (e *InternalError) WithContext(key string, value interface{}) *InternalError {
	if e.Context == nil {
		e.Context = map[string]interface{}{}
	}
	e.Context[key] = value
	return e
}

// ReturnCodeError wraps a raw device protocol return word. The device
// layer produces it; only this package reads the code.
type ReturnCodeError struct {
	Code uint16
}

func (e *ReturnCodeError) Error() string {
	return fmt.Sprintf("device return code 0x%04x", e.Code)
}

// returnCodeKinds maps every known device protocol return word to exactly
// one internal kind. Unlisted codes fall back to KindUnknown.
var returnCodeKinds = map[uint16]Kind{
	0x5515: KindLockedDevice,
	0x5501: KindTransactionRejected,
	0x6400: KindUnknown,
	0x6700: KindBadRequest,
	0x6982: KindLockedDevice,
	0x6983: KindBadRequest,
	0x6984: KindBadRequest,
	0x6985: KindTransactionRejected,
	0x6986: KindTransactionRejected,
	0x6a80: KindBadRequest,
	0x6b00: KindBadRequest,
	0x6d00: KindAppNotOpen,
	0x6e00: KindAppNotOpen,
	0x6e01: KindAppNotOpen,
	0x6f00: KindUnknown,
	0x6f01: KindUnknown,
}

// Interpret converts any error into an InternalError. It is idempotent:
// an error that is already internal is returned unchanged. A nil error
// interprets to nil.
func Interpret(err error, operation string) *InternalError {
	if err == nil {
		return nil
	}

	var internal *InternalError
	if errors.As(err, &internal) {
		return internal
	}

	var rc *ReturnCodeError
	if errors.As(err, &rc) {
		kind, ok := returnCodeKinds[rc.Code]
		if !ok {
			kind = KindUnknown
		}
		return New(kind, operation).WithContext("returnCode", fmt.Sprintf("0x%04x", rc.Code))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return New(KindConnectionTimeout, operation)
	}

	return New(KindUnknown, operation).WithContext("cause", err.Error())
}

// IsKind reports whether err is an InternalError of the given kind.
func IsKind(err error, kind Kind) bool {
	var internal *InternalError
	if !errors.As(err, &internal) {
		return false
	}
	return internal.Kind == kind
}
