package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"jellygate/config"
	"jellygate/decision"
	"jellygate/jellyfin"
	"jellygate/jellyseerr"
	"jellygate/tmdb"
)

var (
	cfgFile          string
	cfg              *config.Config
	logger           zerolog.Logger
	tmdbClient       *tmdb.Client
	jellyseerrClient *jellyseerr.Client
	jellyfinClient   *jellyfin.Client
	engine           *decision.Engine
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jellygate",
	Short: "Auto-approve or decline Jellyseerr movie requests based on streaming availability",
	Long: `jellygate listens for Jellyseerr webhook notifications and checks whether
the requested movie is already streamable on one of your allow-listed
services. Requests for streamable movies are declined with the provider
names listed; everything else is approved.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp loads configuration and constructs the API clients and the
// decision engine
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	timeout := time.Duration(cfg.Timeout) * time.Second

	// Create TMDB client
	tmdbClient, err = tmdb.NewClient(cfg.TMDB.URL, cfg.TMDB.APIKey, logger, tmdb.WithTimeout(timeout))
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	// Create Jellyseerr client
	jellyseerrClient, err = jellyseerr.NewClient(cfg.Jellyseerr.URL, cfg.Jellyseerr.APIKey, logger, jellyseerr.WithTimeout(timeout))
	if err != nil {
		return fmt.Errorf("failed to create Jellyseerr client: %w", err)
	}

	// Create Jellyfin client if enabled
	if cfg.Jellyfin.Enabled {
		jellyfinClient, err = jellyfin.NewClient(cfg.Jellyfin.URL, cfg.Jellyfin.APIKey, logger, jellyfin.WithTimeout(timeout))
		if err != nil {
			return fmt.Errorf("failed to create Jellyfin client: %w", err)
		}
		logger.Info().Msg("Jellyfin integration enabled")
	}

	engine, err = decision.NewEngine(tmdbClient, jellyseerrClient, decision.Options{
		Providers:       cfg.Providers,
		Region:          cfg.TMDB.Region,
		OnLookupFailure: cfg.Policy.OnLookupFailure,
		Rule:            cfg.Policy.Rule,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create decision engine: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
