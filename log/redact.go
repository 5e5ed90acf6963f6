package log

import "github.com/kochabx/meetclient/log/desensitize"

func defaultHook() *desensitize.Hook {
	return desensitize.NewHook(desensitize.BuiltinRules()...)
}

// NewRedacted 创建带内置脱敏规则的控制台 Logger
func NewRedacted(opts ...Option) *Logger {
	return New(append([]Option{WithDesensitize(defaultHook())}, opts...)...)
}
