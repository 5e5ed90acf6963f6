package http

// EncodeError reports a request body that could not be JSON-encoded
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "encode request body: " + e.Err.Error() }
func (e *EncodeError) Unwrap() error { return e.Err }

// SendError reports a failure to send the request or read its response
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return "send request: " + e.Err.Error() }
func (e *SendError) Unwrap() error { return e.Err }
