package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/kochabx/meetclient/log/desensitize"
)

// Option Logger 选项
type Option func(*Logger)

// WithLevel 设置日志级别
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) {
		l.Logger = l.Logger.Level(level)
	}
}

// WithCaller 记录调用位置
func WithCaller() Option {
	return func(l *Logger) {
		l.Logger = l.Logger.With().Caller().Logger()
	}
}

// WithDesensitize 设置脱敏钩子
func WithDesensitize(hook *desensitize.Hook) Option {
	return func(l *Logger) {
		l.hook = hook
	}
}

// WithOutput 替换控制台输出目标，主要用于测试
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}
