package bodycodec

import (
	"errors"
	"reflect"
)

var (
	// ErrEncodingFailed is returned when a value cannot be converted to the
	// required body representation. Every EncodeError matches it.
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrNoEncoder is returned when no encoder is registered for a content type.
	ErrNoEncoder = errors.New("no encoder for content type")

	// ErrUnsupportedDataType is returned when a form value holds a type the
	// form encoder cannot represent.
	ErrUnsupportedDataType = errors.New("unsupported data type")

	// ErrUnsupportedFormFieldsType is returned when the form fields type is unsupported.
	ErrUnsupportedFormFieldsType = errors.New("unsupported form fields type")

	// ErrRequestCreationFailed is returned when a template cannot be
	// materialized into an http.Request.
	ErrRequestCreationFailed = errors.New("failed to create request")
)

// EncodeError describes a failed body encoding. ValueType is the runtime
// type of the value, BodyType the type it was to be encoded as; either may
// be nil. Cause carries the underlying serialization error when one exists.
type EncodeError struct {
	ValueType reflect.Type
	BodyType  reflect.Type
	Message   string
	Cause     error
}

func (e *EncodeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrEncodingFailed.Error()
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap reports both ErrEncodingFailed and the underlying cause, so
// errors.Is works against either.
func (e *EncodeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrEncodingFailed, e.Cause}
	}
	return []error{ErrEncodingFailed}
}

// encodeFailed wraps a serialization library error into an EncodeError.
func encodeFailed(v any, bodyType reflect.Type, cause error) *EncodeError {
	return &EncodeError{
		ValueType: reflect.TypeOf(v),
		BodyType:  bodyType,
		Cause:     cause,
	}
}
