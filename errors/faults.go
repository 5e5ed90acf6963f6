package errors

import goerrors "errors"

// Constructors for the faults the meeting client does not translate into an envelope

// Encode reports a request body that could not be marshalled
func Encode(cause error, method, path string) *Error {
	return New(CodeEncode, "encode request body").WithCause(cause).
		WithMetadata(map[string]string{"method": method, "path": path})
}

// Transport reports a request that never produced a response
func Transport(cause error, method, path string) *Error {
	return New(CodeTransport, "send request").WithCause(cause).
		WithMetadata(map[string]string{"method": method, "path": path})
}

// Decode reports a response body that is not valid JSON
func Decode(cause error, method, path string, status int) *Error {
	return New(CodeDecode, "decode response body (status %d)", status).WithCause(cause).
		WithMetadata(map[string]string{"method": method, "path": path})
}

// Config reports an invalid or unreadable client configuration
func Config(format string, args ...any) *Error {
	return New(CodeConfig, format, args...)
}

// IsTransport reports whether err is a transport fault
func IsTransport(err error) bool {
	return Code(err) == CodeTransport
}

// IsDecode reports whether err is a decode fault
func IsDecode(err error) bool {
	return Code(err) == CodeDecode
}

// Is forwards to the standard library so callers need a single errors import
func Is(err, target error) bool { return goerrors.Is(err, target) }

// As forwards to the standard library
func As(err error, target any) bool { return goerrors.As(err, target) }
