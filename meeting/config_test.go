package meeting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/meetclient/config"
	"github.com/kochabx/meetclient/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MEETING_BASE_URL", "MEETING_API_KEY", "MEETING_API_KEY_ENV", "MEETING_TIMEOUT", "DISCORD_BOT_API_KEY"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "meetclient.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	file := writeConfig(t, "base_url: https://meet.example/\napi_key: secret\ntimeout: 5s\n")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "https://meet.example/", cfg.BaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, DefaultAPIKeyEnv, cfg.APIKeyEnv)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	assert.Equal(t, "https://meet.example", New(cfg).BaseURL())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	clearEnv(t)
	file := writeConfig(t, "base_url: https://meet.example\napi_key: from-file\n")
	t.Setenv("MEETING_API_KEY", "from-env")
	t.Setenv("MEETING_API_KEY_ENV", "MEETING_API_KEY")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "MEETING_API_KEY", cfg.APIKeyEnv)
}

func TestLoadConfigEnvOnly(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("MEETING_BASE_URL", "http://localhost:3000")
	t.Setenv("DISCORD_BOT_API_KEY", "bot-key")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "bot-key", cfg.APIKey)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadConfigErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfig, errors.Code(err))
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "base_url: https://meet.example\n"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfig, errors.Code(err))
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "base_url: not a url\napi_key: k\n"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfig, errors.Code(err))
	})
}

type reloader struct {
	base    string
	trigger func()
}

func (r *reloader) Load(target any) error {
	cfg := target.(*Config)
	cfg.BaseURL, cfg.APIKey = r.base, "k"
	return nil
}

func (r *reloader) Watch(callback func()) error {
	r.trigger = callback
	return nil
}

func TestReloadRebuildsClient(t *testing.T) {
	var cfg Config
	loader := &reloader{base: "http://one.example/"}

	var client *Client
	c := config.New(&cfg, config.WithLoader(loader), config.WithOnChange(func() {
		client = New(cfg)
	}))
	require.NoError(t, c.Load())
	client = New(cfg)
	first := client
	require.NoError(t, c.Watch())

	loader.base = "http://two.example"
	loader.trigger()

	assert.Equal(t, "http://one.example", first.BaseURL())
	assert.Equal(t, "http://two.example", client.BaseURL())
}
