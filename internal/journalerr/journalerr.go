// Package journalerr defines the error kinds shared across the journal
// engine and its callers (CLI, JSON-RPC surface).
package journalerr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure a journal operation produced.
type Kind string

const (
	KindInvalidArgument     Kind = "InvalidArgument"
	KindNotFound            Kind = "NotFound"
	KindInvalidReference    Kind = "InvalidReference"
	KindTemplateRequired    Kind = "TemplateRequired"
	KindTemplateNotFound    Kind = "TemplateNotFound"
	KindMissingField        Kind = "MissingTemplateField"
	KindDuplicateContent    Kind = "DuplicateContent"
	KindAppendOnlyViolation Kind = "AppendOnlyViolation"
	KindLockTimeout         Kind = "LockTimeout"
	KindIoFailure           Kind = "IoFailure"
	KindCodecError          Kind = "CodecError"
)

// Error is a journal-level error tagged with a Kind, wrapping an
// underlying cause where one exists.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error of the given kind with no wrapped cause.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given kind around an existing cause.
func Wrap(kind Kind, message string, cause error) error {
	if cause == nil {
		return New(kind, message)
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind carried by err, or "" if err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ExitCode maps a Kind to the CLI exit-code contract.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindInvalidArgument, KindTemplateRequired, KindTemplateNotFound, KindMissingField:
		return 4
	case KindNotFound:
		return 3
	case KindInvalidReference, KindDuplicateContent, KindLockTimeout, KindIoFailure, KindCodecError, KindAppendOnlyViolation:
		return 1
	default:
		return 1
	}
}
