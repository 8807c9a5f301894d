package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/samvad-hq/defamation-console/pkg/httpclient"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName      string        `mapstructure:"app_name"`
	Env          string        `mapstructure:"app_env"`
	LogLevel     string        `mapstructure:"log_level"`
	APIBase      string        `mapstructure:"api_base"`
	APITimeoutMs int64         `mapstructure:"api_timeout_ms"`
	APITimeout   time.Duration `mapstructure:"-"`
	ListenAddr   string        `mapstructure:"listen_addr"`
}

// Load reads configuration from environment variables and the optional configs/.env file.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "defamation-console")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base", httpclient.DefaultBaseURL)
	v.SetDefault("api_timeout_ms", httpclient.DefaultTimeout.Milliseconds())
	v.SetDefault("listen_addr", ":8080")

	// Only the names below are read; the first one that is set wins.
	// VITE_API_BASE lets one .env serve the web frontend too.
	for key, env := range map[string]string{"app_name": "APP_NAME", "app_env": "APP_ENV", "log_level": "LOG_LEVEL"} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	if err := v.BindEnv("api_base", "DEFAMATION_API_BASE", "VITE_API_BASE"); err != nil {
		return nil, fmt.Errorf("bind api_base: %w", err)
	}
	if err := v.BindEnv("api_timeout_ms", "DEFAMATION_API_TIMEOUT_MS"); err != nil {
		return nil, fmt.Errorf("bind api_timeout_ms: %w", err)
	}
	if err := v.BindEnv("listen_addr", "DEFAMATION_LISTEN_ADDR"); err != nil {
		return nil, fmt.Errorf("bind listen_addr: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIBase = ResolveBaseURL(cfg.APIBase)

	if cfg.APITimeoutMs <= 0 {
		return nil, fmt.Errorf("invalid api_timeout_ms (must be positive milliseconds)")
	}
	cfg.APITimeout = time.Duration(cfg.APITimeoutMs) * time.Millisecond

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return nil, fmt.Errorf("listen_addr must not be empty")
	}

	return &cfg, nil
}

// ResolveBaseURL returns override, or the default base URL when override is blank.
func ResolveBaseURL(override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	return httpclient.DefaultBaseURL
}

// Client returns the request client settings.
func (c *Config) Client() httpclient.ClientConfig {
	return httpclient.ClientConfig{
		BaseURL: c.APIBase,
		Timeout: c.APITimeout,
	}
}
