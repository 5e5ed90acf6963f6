package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeConfig, "missing %s", "api key")
	assert.Equal(t, CodeConfig, err.GetCode())
	assert.Equal(t, "missing api key", err.GetMessage())
	assert.Equal(t, "code=523, message=missing api key", err.Error())
}

func TestWithMetadata(t *testing.T) {
	err := New(CodeTransport, "send request")

	assert.Same(t, err, err.WithMetadata(nil))

	withMeta := err.WithMetadata(map[string]string{"path": "/api/x"})
	assert.NotSame(t, err, withMeta)
	assert.Nil(t, err.GetMetadata())
	assert.Equal(t, "/api/x", withMeta.GetMetadata()["path"])
}

func TestFaults(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name  string
		err   *Error
		code  int
		check func(error) bool
	}{
		{"transport", Transport(cause, "GET", "/api/meeting-requests"), CodeTransport, IsTransport},
		{"decode", Decode(cause, "GET", "/api/meeting-requests", 502), CodeDecode, IsDecode},
		{"encode", Encode(cause, "POST", "/api/discord/dm"), CodeEncode, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.GetCode())
			assert.ErrorIs(t, tt.err, cause)
			assert.NotEmpty(t, tt.err.GetMetadata()["method"])
			if tt.check != nil {
				assert.True(t, tt.check(tt.err))
			}
		})
	}
}

func TestDecodeWithoutCause(t *testing.T) {
	err := Decode(nil, "GET", "/api/meeting-requests", 200)
	require.NotNil(t, err)
	assert.True(t, IsDecode(err))
	assert.Nil(t, err.GetCause())
}

func TestFromError(t *testing.T) {
	std := errors.New("boom")
	wrapped := FromError(std)
	assert.Equal(t, CodeUnknown, wrapped.GetCode())
	assert.ErrorIs(t, wrapped, std)

	existing := New(CodeDecode, "bad body")
	assert.Same(t, existing, FromError(existing))
	assert.Nil(t, FromError(nil))
}

func TestCode(t *testing.T) {
	assert.Equal(t, CodeUnknown, Code(errors.New("plain")))
	assert.Equal(t, CodeTransport, Code(Wrap(Transport(nil, "GET", "/"), CodeTransport, "outer")))
	assert.Nil(t, Wrap(nil, CodeTransport, "nothing"))
}
