package config

// Config represents the complete configuration structure
type Config struct {
	TMDB       TMDBConfig       `mapstructure:"tmdb"`
	Jellyseerr JellyseerrConfig `mapstructure:"jellyseerr"`
	Jellyfin   JellyfinConfig   `mapstructure:"jellyfin"`
	Providers  []string         `mapstructure:"providers"`
	Policy     PolicyConfig     `mapstructure:"policy"`
	Server     ServerConfig     `mapstructure:"server"`
	Timeout    int              `mapstructure:"timeout"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API connection details and the lookup region
type TMDBConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
	Region string `mapstructure:"region"`
}

// JellyseerrConfig holds Jellyseerr API connection details
type JellyseerrConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// JellyfinConfig holds Jellyfin API connection details.
// Jellyfin is only needed for the library scan command, so it can stay
// disabled for pure webhook deployments.
type JellyfinConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	APIKey  string `mapstructure:"api_key"`
}

// PolicyConfig controls how verdicts are reached
type PolicyConfig struct {
	// OnLookupFailure decides the verdict when the provider lookup itself
	// fails: "approve" or "decline".
	OnLookupFailure string `mapstructure:"on_lookup_failure"`
	// Rule is an optional expression overriding the default verdict logic.
	Rule string `mapstructure:"rule"`
}

// ServerConfig contains webhook listener settings
type ServerConfig struct {
	BindAddress string `mapstructure:"bind_address"`
	Port        int    `mapstructure:"port"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
