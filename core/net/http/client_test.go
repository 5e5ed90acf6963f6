package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Method string          `json:"method"`
	Path   string          `json:"path"`
	Body   json.RawMessage `json:"body,omitempty"`
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		if r.URL.Path == "/created" {
			w.WriteHeader(http.StatusCreated)
		}
		_ = json.NewEncoder(w).Encode(echo{Method: r.Method, Path: r.URL.Path, Body: body})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDo_GET(t *testing.T) {
	srv := echoServer(t)

	resp, err := New().Do(context.Background(), MethodGet, srv.URL+"/api/meeting-requests", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got echo
	require.NoError(t, json.Unmarshal(resp.Body, &got))
	assert.Equal(t, MethodGet, got.Method)
	assert.Equal(t, "/api/meeting-requests", got.Path)
	assert.Empty(t, got.Body)
}

func TestDo_JSONBody(t *testing.T) {
	srv := echoServer(t)

	resp, err := New().Do(context.Background(), MethodPost, srv.URL+"/created", map[string]string{"discordUid": "42"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got echo
	require.NoError(t, json.Unmarshal(resp.Body, &got))
	assert.JSONEq(t, `{"discordUid":"42"}`, string(got.Body))
}

func TestDo_Headers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ContentTypeJSON, r.Header.Get(HeaderContentType))
		assert.Equal(t, "Bearer k", r.Header.Get(HeaderAuthorization))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := New().Do(context.Background(), MethodGet, srv.URL, nil,
		WithHeader(map[string]string{HeaderAuthorization: "Bearer k"}))
	require.NoError(t, err)
}

func TestDo_ReaderBody(t *testing.T) {
	srv := echoServer(t)

	resp, err := New().Do(context.Background(), MethodPatch, srv.URL, strings.NewReader(`{"raw":true}`))
	require.NoError(t, err)

	var got echo
	require.NoError(t, json.Unmarshal(resp.Body, &got))
	assert.JSONEq(t, `{"raw":true}`, string(got.Body))
}

func TestDo_EncodeError(t *testing.T) {
	_, err := New().Do(context.Background(), MethodPost, "http://127.0.0.1:0", map[string]any{"bad": make(chan int)})

	var encErr *EncodeError
	assert.True(t, errors.As(err, &encErr))
}

func TestDo_SendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New().Do(context.Background(), MethodGet, url, nil)

	var sendErr *SendError
	assert.True(t, errors.As(err, &sendErr))
}

func TestDo_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New().Do(ctx, MethodGet, srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	c := New(WithClient(custom), WithClient(nil))
	assert.Same(t, custom, c.client)
}

func BenchmarkDo(b *testing.B) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New()
	body := map[string]string{"discordUid": "1", "message": "hi"}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Do(context.Background(), MethodPost, srv.URL, body); err != nil {
				b.Fatalf("request failed: %v", err)
			}
		}
	})
}
