package log

import "github.com/rs/zerolog"

// G 全局日志实例，默认带内置脱敏规则
var G = New(WithDesensitize(defaultHook()))

// SetGlobalLogger 替换全局日志实例
func SetGlobalLogger(logger *Logger) {
	G = logger
}

// SetGlobalLevel 设置全局日志实例的级别
func SetGlobalLevel(level zerolog.Level) {
	G.Logger = G.Logger.Level(level)
}

func Debug() *zerolog.Event { return G.Debug() }
func Info() *zerolog.Event  { return G.Info() }
func Warn() *zerolog.Event  { return G.Warn() }

// Error 带堆栈的 error 事件
func Error() *zerolog.Event { return G.Error().Stack() }
