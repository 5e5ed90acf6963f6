package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"sync"
)

const (
	defaultBufferSize = 4096
	maxBufferSize     = 1024 * 1024
)

// Doer sends a single request and returns the fully read response
type Doer interface {
	Do(ctx context.Context, method, url string, body any, opts ...RequestOption) (*Response, error)
}

// Response is a response whose body has already been read and closed
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client sends JSON requests and reads responses fully before returning
type Client struct {
	client     *http.Client
	bufferPool sync.Pool
}

// Option configures the HTTP client
type Option func(*Client)

// WithClient sets a custom *http.Client, e.g. one with a timeout or custom transport
func WithClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// New creates a client. The zero configuration uses a plain *http.Client
// with no timeout; it is shared by all requests, so connections are pooled.
func New(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{},
		bufferPool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, defaultBufferSize))
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestOptions struct {
	header map[string]string
}

// RequestOption configures one request
type RequestOption func(*requestOptions)

// WithHeader sets headers for the request, overriding the JSON content type if given
func WithHeader(header map[string]string) RequestOption {
	return func(o *requestOptions) {
		maps.Copy(o.header, header)
	}
}

// Do encodes body as JSON (nil sends no body, io.Reader is sent verbatim),
// sends the request and returns the read response. The response body is
// always closed before Do returns.
func (c *Client) Do(ctx context.Context, method, url string, body any, opts ...RequestOption) (*Response, error) {
	o := requestOptions{header: map[string]string{HeaderContentType: ContentTypeJSON}}
	for _, opt := range opts {
		opt(&o)
	}

	req, err := c.newRequest(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for k, v := range o.header {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &SendError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SendError{Err: err}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	switch v := body.(type) {
	case nil:
		return http.NewRequestWithContext(ctx, method, url, nil)
	case io.Reader:
		return http.NewRequestWithContext(ctx, method, url, v)
	default:
		return c.newJSONRequest(ctx, method, url, v)
	}
}

func (c *Client) newJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	buf := c.getBuffer()
	defer c.putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, &EncodeError{Err: err}
	}

	// the pooled buffer is reused after return, so the request gets its own copy
	return http.NewRequestWithContext(ctx, method, url, bytes.NewReader(bytes.Clone(buf.Bytes())))
}

func (c *Client) getBuffer() *bytes.Buffer {
	buf := c.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer drops oversized buffers instead of pooling them
func (c *Client) putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxBufferSize {
		c.bufferPool.Put(buf)
	}
}
