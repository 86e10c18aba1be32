package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/bobmcallan/retell-mcp/internal/app"
	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/config"
	"github.com/bobmcallan/retell-mcp/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long:  `Starts the MCP server on stdio, or on streamable HTTP at /mcp with health, version and metrics endpoints.`,
		RunE:  runServe,
	}
	cmd.Flags().Bool("stdio", false, "Serve MCP over stdin/stdout (overrides config)")
	cmd.Flags().IntP("port", "p", 0, "HTTP port (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, files, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stdio, _ := cmd.Flags().GetBool("stdio")
	port, _ := cmd.Flags().GetInt("port")
	config.ApplyFlagOverrides(cfg, stdio, port)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w\nValues can be set via TOML file, RETELL_* environment variables, or CLI flags", err)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)
	logger.Info().
		Str("transport", cfg.Server.Transport).
		Str("config_files", fmt.Sprintf("%v", files)).
		Str("version", common.GetFullVersion()).
		Msg("configuration loaded")

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to initialize application")
		return err
	}
	defer application.Close()

	if cfg.Server.Transport == "stdio" {
		logger.Info().Msg("serving MCP on stdio")
		return mcpserver.ServeStdio(application.MCPServer)
	}

	return serveHTTP(application, logger)
}

func serveHTTP(application *app.App, logger *common.Logger) error {
	srv := server.New(application)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-serverErrors:
		return err
	case <-sigChan:
		logger.Info().Msg("shutdown signal received")
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Str("error", err.Error()).Msg("server shutdown failed")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
