package id

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id1 := New()
	id2 := New()

	assert.Len(t, id1, 36)
	assert.NotEqual(t, id1, id2)
	_, err := uuid.Parse(id1)
	assert.NoError(t, err)
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"propagated", WithRequestID(context.Background(), "req-1"), "req-1"},
		{"empty ignored", WithRequestID(context.Background(), ""), ""},
		{"absent", context.Background(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequestID(tt.ctx)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.Len(t, got, 36)
		})
	}
}

func TestFromContextNil(t *testing.T) {
	_, ok := FromContext(nil)
	assert.False(t, ok)
}

func BenchmarkRequestID(b *testing.B) {
	ctx := WithRequestID(context.Background(), "req-1")
	for b.Loop() {
		_ = RequestID(ctx)
	}
}
