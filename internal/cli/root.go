package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/levosilimo/steamlens/internal/cli/config"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	quiet   bool
	verbose bool

	// Global logger
	logger *slog.Logger
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "steamlens",
		Short: "Inspect Steam community profiles and equipped items",
		Long: `steamlens is a companion tool for inspecting Steam community profiles.

It resolves a profile reference (vanity name, numeric id or profile URL) to
a stable account id, fetches the profile's mini-profile presentation and the
community items it currently has equipped, and enriches every item with its
community market listing and live price.

Vanity name resolution works best with a Steam Web API key (steamlens config
set api_key <key>); without one a slower fallback resolver is used.`,
		Example: `  # Inspect a profile by vanity name
  steamlens inspect Levosilimo

  # Inspect by full profile URL
  steamlens inspect https://steamcommunity.com/profiles/76561198083722517

  # Open the interactive dashboard
  steamlens dashboard

  # Store an API key for vanity resolution
  steamlens config set api_key ABCDEF0123456789`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger based on flags
			if err := initLogger(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			// Initialize config
			if err := initConfig(); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/steamlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))
	rootCmd.AddCommand(NewInspectCommand())
	rootCmd.AddCommand(NewDashboardCommand())
	rootCmd.AddCommand(config.NewCommand())

	return rootCmd
}

// initLogger initializes the global logger based on flags
func initLogger(out io.Writer) error {
	var level slog.Level
	var handler slog.Handler

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if jsonOut {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("get user home directory: %w", err)
		}

		// Search config in ~/.config/steamlens directory
		configDir := filepath.Join(home, ".config", "steamlens")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetDefault("language", "english")

	viper.SetEnvPrefix("STEAMLENS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	return logger
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}
