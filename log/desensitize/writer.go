package desensitize

import "io"

// Writer 包装 writer，写入前脱敏
type Writer struct {
	writer io.Writer
	hook   *Hook
}

// NewWriter 创建脱敏 writer
func NewWriter(writer io.Writer, hook *Hook) *Writer {
	if writer == nil {
		panic("writer cannot be nil")
	}
	if hook == nil {
		panic("hook cannot be nil")
	}
	return &Writer{writer: writer, hook: hook}
}

// Write 实现 io.Writer。返回值始终为 len(p)，以免 zerolog 误报短写
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 || w.hook.RuleCount() == 0 {
		return w.writer.Write(p)
	}

	text := string(p)
	masked := w.hook.Desensitize(text)
	if masked == text {
		return w.writer.Write(p)
	}

	if _, err := io.WriteString(w.writer, masked); err != nil {
		return 0, err
	}
	return len(p), nil
}
