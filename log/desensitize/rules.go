package desensitize

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
)

// Rule 脱敏规则
type Rule interface {
	Name() string
	Enabled() bool
	SetEnabled(enabled bool)
	Process(s string) string
}

// ContentRule 按正则匹配整段内容进行替换
type ContentRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
	enabled     atomic.Bool
}

// NewContentRule 创建内容规则
func NewContentRule(name, pattern, replacement string) (*ContentRule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name cannot be empty")
	}
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	r := &ContentRule{name: name, pattern: regex, replacement: replacement}
	r.enabled.Store(true)
	return r, nil
}

// MustNewContentRule 创建内容规则，失败时 panic
func MustNewContentRule(name, pattern, replacement string) *ContentRule {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *ContentRule) Name() string            { return r.name }
func (r *ContentRule) Enabled() bool           { return r.enabled.Load() }
func (r *ContentRule) SetEnabled(enabled bool) { r.enabled.Store(enabled) }

func (r *ContentRule) Process(s string) string {
	if !r.Enabled() {
		return s
	}
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// FieldRule 替换 JSON 中指定字段的字符串值
type FieldRule struct {
	name        string
	fields      []string
	replacement string
	jsonPattern *regexp.Regexp
	enabled     atomic.Bool
}

// NewFieldRule 创建字段规则，字段名大小写不敏感
func NewFieldRule(name, replacement string, fieldNames ...string) (*FieldRule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name cannot be empty")
	}
	if len(fieldNames) == 0 {
		return nil, fmt.Errorf("field name cannot be empty")
	}

	quoted := make([]string, 0, len(fieldNames))
	for _, f := range fieldNames {
		if f == "" {
			return nil, fmt.Errorf("field name cannot be empty")
		}
		quoted = append(quoted, regexp.QuoteMeta(f))
	}

	jsonPattern, err := regexp.Compile(fmt.Sprintf(`(?i)"(%s)"\s*:\s*"(?:[^"\\]|\\.)*"`, strings.Join(quoted, "|")))
	if err != nil {
		return nil, fmt.Errorf("failed to compile json pattern: %w", err)
	}

	r := &FieldRule{name: name, fields: fieldNames, replacement: replacement, jsonPattern: jsonPattern}
	r.enabled.Store(true)
	return r, nil
}

// MustNewFieldRule 创建字段规则，失败时 panic
func MustNewFieldRule(name, replacement string, fieldNames ...string) *FieldRule {
	rule, err := NewFieldRule(name, replacement, fieldNames...)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *FieldRule) Name() string            { return r.name }
func (r *FieldRule) Enabled() bool           { return r.enabled.Load() }
func (r *FieldRule) SetEnabled(enabled bool) { r.enabled.Store(enabled) }

// Process 保留原字段名，只替换值
func (r *FieldRule) Process(s string) string {
	if !r.Enabled() {
		return s
	}
	return r.jsonPattern.ReplaceAllString(s, fmt.Sprintf(`"$1":"%s"`, r.replacement))
}
