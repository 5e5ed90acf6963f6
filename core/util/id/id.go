package id

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// New 生成 UUID v4
func New() string {
	return uuid.NewString()
}

// WithRequestID 将请求 ID 写入 context，空值忽略
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, reqID)
}

// FromContext 读取 context 中的请求 ID
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	reqID, ok := ctx.Value(requestIDKey{}).(string)
	return reqID, ok && reqID != ""
}

// RequestID 返回 context 中的请求 ID，不存在时生成新的
func RequestID(ctx context.Context) string {
	if reqID, ok := FromContext(ctx); ok {
		return reqID
	}
	return New()
}
