package meeting

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/kochabx/meetclient/config"
	"github.com/kochabx/meetclient/core/validator"
)

// DefaultAPIKeyEnv is the variable named in the invalid-key message unless overridden
const DefaultAPIKeyEnv = "DISCORD_BOT_API_KEY"

// Config holds the client construction parameters
type Config struct {
	BaseURL string `json:"base_url" mapstructure:"base_url" validate:"required,url"`
	APIKey  string `json:"api_key" mapstructure:"api_key" validate:"required"`

	// APIKeyEnv is quoted in the message returned for a 401 response
	APIKeyEnv string `json:"api_key_env" mapstructure:"api_key_env"`

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout" validate:"gte=0"`
}

// LoadConfig reads Config from file (YAML, JSON or TOML by extension) with
// environment overrides: MEETING_BASE_URL, MEETING_API_KEY (falling back to
// DISCORD_BOT_API_KEY), MEETING_API_KEY_ENV and MEETING_TIMEOUT. An empty
// file loads from the environment only.
//
// The result is a snapshot. A Client never sees later changes; callers that
// want hot reload use config.New with WithOnChange and Watch, and build a new
// Client in the callback.
func LoadConfig(file string) (Config, error) {
	var cfg Config

	opts := []config.FileLoaderOption{
		config.WithEnvPrefix("MEETING", "base_url", "api_key_env", "timeout"),
		config.WithEnvBinding("api_key", "MEETING_API_KEY", DefaultAPIKeyEnv),
		config.WithDefaults(map[string]any{"api_key_env": DefaultAPIKeyEnv}),
	}

	name, dir := "meetclient.yaml", "."
	if file == "" {
		opts = append(opts, config.WithOptionalFile())
	} else {
		name, dir = filepath.Base(file), filepath.Dir(file)
	}

	v := viper.New()
	loader := config.NewFileLoader(name, []string{dir}, v, validator.Validate, opts...)
	if err := config.New(&cfg, config.WithViper(v), config.WithLoader(loader)).Load(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
