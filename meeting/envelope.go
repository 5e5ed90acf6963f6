package meeting

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/kochabx/meetclient/errors"
)

// Envelope is the normalized outcome of a call: either a JSON payload or a
// failure message. Ordinary remote failures are envelopes, never Go errors.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Ok wraps a successful JSON payload
func Ok(data []byte) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps a failure message
func Fail(msg string) Envelope {
	return Envelope{Error: msg}
}

// Get looks up a gjson path in the payload; the result is empty on failure envelopes
func (e Envelope) Get(path string) gjson.Result {
	if !e.Success {
		return gjson.Result{}
	}
	return gjson.GetBytes(e.Data, path)
}

// Decode unmarshals the payload into v
func (e Envelope) Decode(v any) error {
	if !e.Success {
		return errors.New(errors.CodeFailedEnvelope, "cannot decode failed envelope: %s", e.Error)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return errors.New(errors.CodeDecode, "decode payload").WithCause(err)
	}
	return nil
}

// record returns the payload, unwrapping a {"success":..,"data":..} wrapper
// when the service sends one
func (e Envelope) record() Envelope {
	if inner := e.Get("data"); inner.IsObject() || inner.IsArray() {
		return Ok([]byte(inner.Raw))
	}
	return e
}
