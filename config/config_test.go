package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/meetclient/core/validator"
	"github.com/kochabx/meetclient/errors"
)

type endpoint struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	APIKey  string        `mapstructure:"api_key" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func writeFile(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meetclient.yaml"), []byte(body), 0o600))
}

func newLoader(dir string, opts ...FileLoaderOption) (*viper.Viper, *FileLoader) {
	v := viper.New()
	return v, NewFileLoader("meetclient.yaml", []string{dir}, v, validator.Validate, opts...)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base_url: https://meet.example.com/\napi_key: k-1\ntimeout: 3s\n")

	var cfg endpoint
	v, loader := newLoader(dir)
	c := New(&cfg, WithViper(v), WithLoader(loader))
	require.NoError(t, c.Load())

	assert.Equal(t, "https://meet.example.com/", cfg.BaseURL)
	assert.Equal(t, "k-1", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Same(t, v, c.GetViper())
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base_url: https://meet.example.com\n")
	t.Setenv("MEETING_API_KEY", "from-env")

	var cfg endpoint
	_, loader := newLoader(dir, WithEnvPrefix("MEETING", "base_url", "api_key"))
	require.NoError(t, New(&cfg, WithLoader(loader)).Load())
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestOptionalFileWithDefaults(t *testing.T) {
	t.Setenv("MEETING_API_KEY", "k")

	var cfg endpoint
	_, loader := newLoader(t.TempDir(),
		WithOptionalFile(),
		WithEnvPrefix("MEETING", "base_url", "api_key"),
		WithDefaults(map[string]any{"base_url": "http://localhost:3000"}),
	)
	require.NoError(t, New(&cfg, WithLoader(loader)).Load())
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
}

func TestMissingFile(t *testing.T) {
	var cfg endpoint
	_, loader := newLoader(t.TempDir())
	err := New(&cfg, WithLoader(loader)).Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfig, errors.Code(err))
}

func TestValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base_url: not-a-url\n")

	var cfg endpoint
	_, loader := newLoader(dir)
	err := New(&cfg, WithLoader(loader)).Load()
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))
}

type fakeLoader struct {
	loads   atomic.Int32
	trigger func()
}

func (f *fakeLoader) Load(target any) error {
	f.loads.Add(1)
	target.(*endpoint).APIKey = "reloaded"
	return nil
}

func (f *fakeLoader) Watch(callback func()) error {
	f.trigger = callback
	return nil
}

func TestWatchReloads(t *testing.T) {
	var cfg endpoint
	loader := &fakeLoader{}
	changed := false
	c := New(&cfg, WithLoader(loader), WithOnChange(func() { changed = true }))

	require.NoError(t, c.Watch())
	require.NotNil(t, loader.trigger)
	loader.trigger()

	assert.Equal(t, int32(1), loader.loads.Load())
	assert.True(t, changed)
	c.Read(func(target any) {
		assert.Equal(t, "reloaded", target.(*endpoint).APIKey)
	})
}
