package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Bind the flat environment variable names the webhook has
	// historically been configured with
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".jellygate"))
		}

		// Check /etc
		v.AddConfigPath("/etc/jellygate/")
	}

	// Read config file. A missing file is fine when no explicit path was
	// given: environment-only deployments are supported.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults
	v.SetDefault("tmdb.url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.region", "US")

	// Outbound call timeout in seconds
	v.SetDefault("timeout", 10)

	// Policy defaults: fail closed when the availability check itself
	// could not be performed
	v.SetDefault("policy.on_lookup_failure", "decline")

	// Server defaults
	v.SetDefault("server.bind_address", "0.0.0.0")
	v.SetDefault("server.port", 8087)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps flat environment variable names onto config keys
func bindEnv(v *viper.Viper) {
	v.BindEnv("tmdb.url", "TMDB_URL_BASE")
	v.BindEnv("tmdb.api_key", "TMDB_API_KEY")
	v.BindEnv("tmdb.region", "TMDB_REGION")
	v.BindEnv("jellyseerr.url", "JELLYSEERR_URL_BASE")
	v.BindEnv("jellyseerr.api_key", "JELLYSEERR_API_KEY")
	v.BindEnv("jellyfin.url", "JELLYFIN_URL_BASE")
	v.BindEnv("jellyfin.api_key", "JELLYFIN_API_KEY")
	v.BindEnv("providers", "PROVIDER_LIST")
	v.BindEnv("timeout", "TIMEOUT")
	v.BindEnv("server.bind_address", "BIND_ADDRESS")
	v.BindEnv("server.port", "PORT")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.URL == "" {
		return fmt.Errorf("tmdb.url is required")
	}

	if cfg.TMDB.APIKey == "" {
		return fmt.Errorf("tmdb.api_key must be set to a valid API key")
	}

	if cfg.TMDB.Region == "" {
		return fmt.Errorf("tmdb.region is required")
	}

	if cfg.Jellyseerr.URL == "" {
		return fmt.Errorf("jellyseerr.url is required")
	}

	if cfg.Jellyseerr.APIKey == "" {
		return fmt.Errorf("jellyseerr.api_key must be set to a valid API key")
	}

	if cfg.Jellyfin.Enabled {
		if cfg.Jellyfin.URL == "" {
			return fmt.Errorf("jellyfin.url is required when jellyfin is enabled")
		}
		if cfg.Jellyfin.APIKey == "" {
			return fmt.Errorf("jellyfin.api_key is required when jellyfin is enabled")
		}
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds")
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", cfg.Server.Port)
	}

	switch cfg.Policy.OnLookupFailure {
	case "approve", "decline":
	default:
		return fmt.Errorf("invalid policy.on_lookup_failure: %s (must be 'approve' or 'decline')", cfg.Policy.OnLookupFailure)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
