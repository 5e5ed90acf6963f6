package desensitize

import (
	"slices"
	"sync"
)

// Hook 脱敏钩子，按添加顺序应用规则
type Hook struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewHook 创建脱敏钩子
func NewHook(rules ...Rule) *Hook {
	h := &Hook{}
	for _, r := range rules {
		h.AddRule(r)
	}
	return h
}

// AddRule 添加规则，同名规则会被替换
func (h *Hook) AddRule(rule Rule) {
	if rule == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if i := h.index(rule.Name()); i >= 0 {
		h.rules[i] = rule
		return
	}
	h.rules = append(h.rules, rule)
}

// AddContentRule 添加内容规则
func (h *Hook) AddContentRule(name, pattern, replacement string) error {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// AddFieldRule 添加字段规则
func (h *Hook) AddFieldRule(name, replacement string, fieldNames ...string) error {
	rule, err := NewFieldRule(name, replacement, fieldNames...)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// RemoveRule 移除规则
func (h *Hook) RemoveRule(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(name)
	if i < 0 {
		return false
	}
	h.rules = slices.Delete(h.rules, i, i+1)
	return true
}

// GetRule 获取规则
func (h *Hook) GetRule(name string) (Rule, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i := h.index(name); i >= 0 {
		return h.rules[i], true
	}
	return nil, false
}

// RuleCount 规则数量
func (h *Hook) RuleCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rules)
}

// Desensitize 对字符串依次应用所有启用的规则
func (h *Hook) Desensitize(s string) string {
	if s == "" {
		return s
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, rule := range h.rules {
		if rule.Enabled() {
			s = rule.Process(s)
		}
	}
	return s
}

func (h *Hook) index(name string) int {
	return slices.IndexFunc(h.rules, func(r Rule) bool { return r.Name() == name })
}
