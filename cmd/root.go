package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"
	"github.com/spf13/cobra"
)

const (
	app = "hirecheck"
)

// cmdConfig holds all configuration for the command line
type cmdConfig struct {
	Format string `env:"LOG_FORMAT" env-default:"text" env-description:"Log output format (text or json)"`
	Level  string `env:"LOG_LEVEL" env-default:"info" env-description:"Log level (debug, info, warn, error)"`
}

var (
	// Used for flags.
	storagePath  string
	engineConfig string
	debug        bool

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hirecheck scores candidates against job requirements and recommends a hiring decision",
		Long: `hirecheck combines resume analysis, skill matching, experience, interview performance
and cultural fit into a weighted assessment report with a hiring recommendation.

Documents are JSON files; see 'hirecheck assess --help' for the expected inputs.`,
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "document storage directory (default $STORAGE_PATH or ./storage)")
	rootCmd.PersistentFlags().StringVar(&engineConfig, "config", "", "YAML or JSON file overriding the assessment tables (default $ENGINE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
}

// newLogger reads the logging environment and builds the process logger
func newLogger() (*slog.Logger, error) {
	var conf cmdConfig
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, fmt.Errorf("load command config: %w", err)
	}
	if debug {
		conf.Level = "debug"
	}
	return createLogger(conf), nil
}

// createLogger creates a slog logger from the configuration
func createLogger(conf cmdConfig) *slog.Logger {
	var level slog.Level
	switch conf.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var zerologLogger zerolog.Logger
	if conf.Format == "json" {
		zerologLogger = zerolog.New(os.Stderr)
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()
	}

	logger := slog.New(slogzerolog.Option{
		Level:  level,
		Logger: &zerologLogger,
	}.NewZerologHandler())

	log.SetFlags(0)
	slog.SetDefault(logger)

	return logger
}
