package errors

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Fault codes used by the meeting client. They classify failures that are not
// reported through an envelope and must reach the caller as Go errors.
const (
	CodeUnknown   = 500
	CodeEncode    = 520
	CodeTransport = 521
	CodeDecode    = 522
	CodeConfig    = 523

	// CodeFailedEnvelope marks an attempt to read a payload from a failure envelope
	CodeFailedEnvelope = 524
)

const (
	metadataSeparator = ", "
	metadataPrefix    = "metadata={"
	metadataSuffix    = "}"
	causePrefix       = "cause="
)

// Status is the serializable part of an Error
type Status struct {
	Code     int               `json:"code,omitempty"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error is a structured fault carrying a code, a message, request metadata
// and an optional cause
type Error struct {
	Status
	cause error
}

// Error returns a human-readable message including metadata and cause
func (e *Error) Error() string {
	var msg strings.Builder

	msg.WriteString("code=")
	msg.WriteString(strconv.Itoa(e.Code))
	msg.WriteString(metadataSeparator)
	msg.WriteString("message=")
	msg.WriteString(e.Message)

	if len(e.Metadata) > 0 {
		msg.WriteString(metadataSeparator)
		msg.WriteString(metadataPrefix)
		first := true
		for k, v := range e.Metadata {
			if !first {
				msg.WriteString(", ")
			}
			msg.WriteString(k)
			msg.WriteByte('=')
			msg.WriteString(v)
			first = false
		}
		msg.WriteString(metadataSuffix)
	}

	if e.cause != nil {
		msg.WriteString(metadataSeparator)
		msg.WriteString(causePrefix)
		msg.WriteString(e.cause.Error())
	}

	return msg.String()
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithMetadata returns a copy of e with m merged into its metadata
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}

	err := e.clone()
	if err.Metadata == nil {
		err.Metadata = make(map[string]string, len(m))
	}
	maps.Copy(err.Metadata, m)
	return err
}

// WithCause returns a copy of e with cause attached
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}

	err := e.clone()
	err.cause = cause
	return err
}

func (e *Error) clone() *Error {
	return &Error{
		Status: Status{
			Code:     e.Code,
			Message:  e.Message,
			Metadata: maps.Clone(e.Metadata),
		},
		cause: e.cause,
	}
}

// Is reports whether err is an *Error with the same code and message
func (e *Error) Is(err error) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return e.Code == ge.Code && e.Message == ge.Message
	}
	return false
}

// GetCode returns the fault code
func (e *Error) GetCode() int {
	return e.Code
}

// GetMessage returns the fault message
func (e *Error) GetMessage() string {
	return e.Message
}

// GetMetadata returns a copy of the metadata
func (e *Error) GetMetadata() map[string]string {
	if len(e.Metadata) == 0 {
		return nil
	}
	return maps.Clone(e.Metadata)
}

// GetCause returns the underlying cause
func (e *Error) GetCause() error {
	return e.cause
}

// New creates an error with the given code and formatted message
func New(code int, format string, args ...any) *Error {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	return &Error{
		Status: Status{
			Code:    code,
			Message: message,
		},
	}
}

// FromError converts a generic error to *Error
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	return New(CodeUnknown, "%v", err).WithCause(err)
}

// Wrap wraps err with a code and message. Returns nil if err is nil.
func Wrap(err error, code int, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return New(code, format, args...).WithCause(err)
}

// Code returns the fault code of err, or CodeUnknown if err is not an *Error
func Code(err error) int {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return CodeUnknown
}
