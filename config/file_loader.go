package config

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/kochabx/meetclient/core/validator"
	"github.com/kochabx/meetclient/errors"
)

// FileLoader loads configuration from a file with environment overrides
type FileLoader struct {
	viper    *viper.Viper
	validate validator.Validator
	optional bool
}

// FileLoaderOption configures a FileLoader
type FileLoaderOption func(*FileLoader)

// WithEnvPrefix binds each key to PREFIX_KEY (dots become underscores)
func WithEnvPrefix(prefix string, keys ...string) FileLoaderOption {
	return func(l *FileLoader) {
		l.viper.SetEnvPrefix(prefix)
		for _, k := range keys {
			_ = l.viper.BindEnv(k)
		}
	}
}

// WithEnvBinding binds key to the first set variable among envNames, ignoring any prefix
func WithEnvBinding(key string, envNames ...string) FileLoaderOption {
	return func(l *FileLoader) {
		_ = l.viper.BindEnv(append([]string{key}, envNames...)...)
	}
}

// WithDefaults registers default values for keys absent from file and environment
func WithDefaults(defaults map[string]any) FileLoaderOption {
	return func(l *FileLoader) {
		for k, v := range defaults {
			l.viper.SetDefault(k, v)
		}
	}
}

// WithOptionalFile makes a missing config file non-fatal
func WithOptionalFile() FileLoaderOption {
	return func(l *FileLoader) {
		l.optional = true
	}
}

// NewFileLoader creates a loader for name (e.g. "meetclient.yaml") searched in paths.
// The config type is taken from the file extension.
func NewFileLoader(name string, paths []string, v *viper.Viper, validate validator.Validator, opts ...FileLoaderOption) *FileLoader {
	ext := filepath.Ext(name)

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(strings.TrimSuffix(name, ext))
	v.SetConfigType(strings.TrimPrefix(ext, "."))

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	l := &FileLoader{viper: v, validate: validate}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements Loader
func (l *FileLoader) Load(target any) error {
	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !l.optional || !errors.As(err, &notFound) {
			return errors.Config("read config").WithCause(err)
		}
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return errors.Config("parse config").WithCause(err)
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return errors.Config("config validation failed").WithCause(err)
		}
	}

	return nil
}

// Watch implements Loader
func (l *FileLoader) Watch(callback func()) error {
	l.viper.OnConfigChange(func(fsnotify.Event) {
		if callback != nil {
			callback()
		}
	})
	l.viper.WatchConfig()
	return nil
}
