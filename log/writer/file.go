package writer

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateMode 日志轮转模式
type RotateMode int

const (
	// RotateModeTime 按时间轮转
	RotateModeTime RotateMode = iota
	// RotateModeSize 按大小轮转
	RotateModeSize
)

func (m RotateMode) String() string {
	switch m {
	case RotateModeTime:
		return "time"
	case RotateModeSize:
		return "size"
	default:
		return "unknown"
	}
}

// RotateConfig 文件输出配置
type RotateConfig struct {
	Mode     RotateMode
	Dir      string
	Filename string
	Ext      string

	// 按时间轮转，单位小时
	MaxAgeHours   int
	RotationHours int

	// 按大小轮转
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// File 创建文件 writer，返回值同时实现 io.Closer
func File(c RotateConfig) (io.WriteCloser, error) {
	switch c.Mode {
	case RotateModeTime:
		w, err := rotatelogs.New(
			c.path("%Y%m%d%H%M"),
			rotatelogs.WithLinkName(c.path("")),
			rotatelogs.WithMaxAge(time.Duration(c.MaxAgeHours)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(c.RotationHours)*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create time rotate writer: %w", err)
		}
		return w, nil
	case RotateModeSize:
		return &lumberjack.Logger{
			Filename:   c.path(""),
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
			Compress:   c.Compress,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported rotate mode: %v", c.Mode)
	}
}

func (c *RotateConfig) path(format string) string {
	name := c.Filename
	if format != "" {
		name += "." + format
	}
	return filepath.Join(c.Dir, name+"."+c.Ext)
}
