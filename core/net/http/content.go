package http

import "net/http"

// Common Content-Types
const (
	ContentTypeJSON = "application/json"
)

// Common header names
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

// Methods used by the meeting API
const (
	MethodGet   = http.MethodGet
	MethodPost  = http.MethodPost
	MethodPatch = http.MethodPatch
)
