package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kfreiman/hirecheck/internal/mcp"
)

var mcpPort int

// mcpServerCmd represents the mcp-server command
var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Start an MCP server exposing ingestion, assessment and report tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger, err := newLogger()
		if err != nil {
			return err
		}

		cfg, err := loadServerConfig()
		if err != nil {
			logger.ErrorContext(ctx, "failed to load MCP config",
				"error", err,
			)
			return err
		}
		if mcpPort > 0 {
			cfg = cfg.WithPort(mcpPort)
		}

		logger.InfoContext(ctx, "mcp server starting",
			"port", cfg.Port,
			"storage_path", cfg.StoragePath,
			"storage_ttl", cfg.StorageTTL,
			"cleanup_interval", cfg.CleanupInterval,
			"engine_config", cfg.EngineConfig,
		)

		srv, err := mcp.NewServer(cfg, logger)
		if err != nil {
			logger.ErrorContext(ctx, "failed to create MCP server",
				"error", err,
			)
			return err
		}

		if err := srv.ListenAndServe(ctx); err != nil {
			logger.ErrorContext(ctx, "MCP server stopped with error",
				"error", err,
			)
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

// loadServerConfig reads the environment and applies the persistent flags on top
func loadServerConfig() (mcp.Config, error) {
	cfg, err := mcp.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if storagePath != "" {
		cfg = cfg.WithStoragePath(storagePath)
	}
	if engineConfig != "" {
		cfg = cfg.WithEngineConfig(engineConfig)
	}
	return cfg, nil
}

func init() {
	mcpServerCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (default $PORT or 8080)")
	rootCmd.AddCommand(mcpServerCmd)
}
