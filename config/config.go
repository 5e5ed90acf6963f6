package config

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/kochabx/meetclient/core/validator"
	"github.com/kochabx/meetclient/log"
)

// Config loads a target struct and keeps it current when watching
type Config struct {
	mu       sync.RWMutex
	viper    *viper.Viper
	validate validator.Validator
	target   any
	loader   Loader
	onChange func()
}

// New creates a Config for target. Without WithLoader, a FileLoader for
// "meetclient.yaml" in the working directory is used.
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:    viper.New(),
		validate: validator.Validate,
		target:   target,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		c.loader = NewFileLoader("meetclient.yaml", []string{"."}, c.viper, c.validate)
	}

	return c
}

// Load reads the configuration into the target
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loader.Load(c.target)
}

// Read runs fn while holding the read lock, so that fn observes a complete target
func (c *Config) Read(fn func(target any)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.target)
}

// Watch reloads the target whenever the loader reports a change
func (c *Config) Watch() error {
	return c.loader.Watch(func() {
		log.Info().Msg("config change detected")

		if err := c.Load(); err != nil {
			log.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		log.Info().Msg("config reloaded successfully")
		if c.onChange != nil {
			c.onChange()
		}
	})
}

// GetViper returns the underlying viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}
