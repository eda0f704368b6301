/**
 * Copyright (c) 2026, The GraphQL Compose Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "compose.CreateType".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther           ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindNameConflict                   // A name collides with a built-in scalar or an existing registration.
	ErrKindNotFound                       // A field, value or registry name does not exist.
	ErrKindParse                          // An SDL fragment does not parse as exactly one supported declaration.
	ErrKindUnknownType                    // A wrapped-string or bare name cannot be resolved to any known type.
	ErrKindInvalidArgument                // Structurally invalid call arguments.
	ErrKindMaterialization                // Thunk failure or invalid resolved value during materialization.
	ErrKindCoercion                       // Failed to coerce a value for the desired GraphQL type.
	ErrKindInternal                       // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindNameConflict:
		return "name conflict"
	case ErrKindNotFound:
		return "not found"
	case ErrKindParse:
		return "parse error"
	case ErrKindUnknownType:
		return "unknown type"
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindMaterialization:
		return "materialization error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// An Error describes an error found while composing or materializing a type graph. It carries the
// failing operation and an error kind so callers can dispatch on the failure class without string
// matching.
//
// Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html
type Error struct {
	// Message describes the error.
	Message string

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error.
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an error value from its arguments. The variadic arguments may contain an Op, an
// ErrKind and an underlying error in any order. Kind is propagated from the underlying error when
// not given explicitly.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Propagate the kind from the underlying error when one is not provided in argument.
	if e.Kind == ErrKindOther {
		if prev, ok := e.Err.(*Error); ok {
			e.Kind = prev.Kind
		}
	}

	return e
}

// WrapError wraps an error with a message to provide more context.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but formats the message with fmt.Sprintf.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrKind carried by err, or ErrKindOther when err is not an *Error.
func KindOf(err error) ErrKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrKindOther
}

// IsKindOf returns true when err carries the given kind, looking through wrapped *Error values.
func IsKindOf(err error, kind ErrKind) bool {
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// IsNameConflict returns true when err is classified as a name conflict.
func IsNameConflict(err error) bool { return IsKindOf(err, ErrKindNameConflict) }

// IsNotFound returns true when err is classified as not found.
func IsNotFound(err error) bool { return IsKindOf(err, ErrKindNotFound) }

// IsParseError returns true when err is classified as a parse error.
func IsParseError(err error) bool { return IsKindOf(err, ErrKindParse) }

// IsUnknownType returns true when err is classified as an unknown type reference.
func IsUnknownType(err error) bool { return IsKindOf(err, ErrKindUnknownType) }

// IsInvalidArgument returns true when err is classified as an invalid argument.
func IsInvalidArgument(err error) bool { return IsKindOf(err, ErrKindInvalidArgument) }

// IsMaterializationError returns true when err is classified as a materialization failure.
func IsMaterializationError(err error) bool { return IsKindOf(err, ErrKindMaterialization) }

// errorMarshaller implements jsoniter.ValEncoder to encode an Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	e := (*Error)(ptr)
	return len(e.Message) == 0 && e.Err == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	e := (*Error)(ptr)
	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(e.Message)
	if len(e.Op) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("op")
		stream.WriteString(string(e.Op))
	}
	if e.Kind != ErrKindOther {
		stream.WriteMore()
		stream.WriteObjectField("kind")
		stream.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		stream.WriteMore()
		stream.WriteObjectField("error")
		stream.WriteString(e.Err.Error())
	}
	stream.WriteObjectEnd()
}

// MarshalJSON serializes the error to JSON.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

func init() {
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}
