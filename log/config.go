package log

import "github.com/kochabx/meetclient/log/writer"

// FileConfig 日志文件配置，零值字段在创建时填充默认值
type FileConfig struct {
	Dir        string            `json:"dir" mapstructure:"dir"`
	Filename   string            `json:"filename" mapstructure:"filename"`
	Ext        string            `json:"ext" mapstructure:"ext"`
	RotateMode writer.RotateMode `json:"rotate_mode" mapstructure:"rotate_mode"`

	MaxAgeHours   int `json:"max_age_hours" mapstructure:"max_age_hours"`
	RotationHours int `json:"rotation_hours" mapstructure:"rotation_hours"`

	MaxSizeMB  int  `json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `json:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `json:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `json:"compress" mapstructure:"compress"`
}

func (c FileConfig) withDefaults() FileConfig {
	def := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	defInt := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
	}

	def(&c.Dir, "log")
	def(&c.Filename, "meetclient")
	def(&c.Ext, "log")
	defInt(&c.MaxAgeHours, 24)
	defInt(&c.RotationHours, 1)
	defInt(&c.MaxSizeMB, 100)
	defInt(&c.MaxBackups, 5)
	defInt(&c.MaxAgeDays, 30)
	return c
}

func (c FileConfig) toWriterConfig() writer.RotateConfig {
	c = c.withDefaults()
	return writer.RotateConfig{
		Mode:          c.RotateMode,
		Dir:           c.Dir,
		Filename:      c.Filename,
		Ext:           c.Ext,
		MaxAgeHours:   c.MaxAgeHours,
		RotationHours: c.RotationHours,
		MaxSizeMB:     c.MaxSizeMB,
		MaxBackups:    c.MaxBackups,
		MaxAgeDays:    c.MaxAgeDays,
		Compress:      c.Compress,
	}
}
