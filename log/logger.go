package log

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/kochabx/meetclient/log/desensitize"
	"github.com/kochabx/meetclient/log/writer"
)

// Logger 日志记录器
type Logger struct {
	zerolog.Logger
	hook   *desensitize.Hook
	out    io.Writer
	closer io.Closer
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// Hook 返回脱敏钩子，未设置时为 nil
func (l *Logger) Hook() *desensitize.Hook {
	return l.hook
}

// Close 释放文件 writer
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// build 先收集选项，再根据输出和脱敏钩子构建 zerolog.Logger
func build(w io.Writer, opts []Option) *Logger {
	l := &Logger{}
	for _, opt := range opts {
		opt(l)
	}
	if w == nil {
		w = writer.Console(l.out)
	}
	if l.hook != nil {
		w = desensitize.NewWriter(w, l.hook)
	}

	l.Logger = zerolog.New(w).With().Timestamp().Logger()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// New 创建控制台 Logger
func New(opts ...Option) *Logger {
	return build(nil, opts)
}

// NewFile 创建文件 Logger
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := writer.File(c.toWriterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	l := build(fw, opts)
	l.closer = fw
	return l, nil
}

// NewMulti 同时输出到文件和控制台
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := writer.File(c.toWriterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	probe := &Logger{}
	for _, opt := range opts {
		opt(probe)
	}

	l := build(zerolog.MultiLevelWriter(fw, writer.Console(probe.out)), opts)
	l.closer = fw
	return l, nil
}
