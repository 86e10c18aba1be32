// Package app assembles the server's components from configuration.
package app

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/config"
	"github.com/bobmcallan/retell-mcp/internal/flow"
	"github.com/bobmcallan/retell-mcp/internal/handlers"
	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/tools"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Client    *retell.Client
	Patcher   *flow.Patcher
	Registry  *tools.Registry
	MCPServer *server.MCPServer
	Metrics   *prometheus.Registry

	// HTTP handlers
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	MCPHandler     http.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	a := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: prometheus.NewRegistry(),
	}
	a.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a.Client = retell.NewClient(cfg.Retell.BaseURL, cfg.Retell.APIKey, cfg.Retell.GetTimeout(), logger,
		retell.WithUploadDir(cfg.Retell.UploadDir))
	a.Patcher = flow.NewPatcher(a.Client, logger)

	registry, err := tools.NewRegistry(logger, tools.NewMetrics(a.Metrics),
		tools.Catalog(a.Client, a.Patcher, cfg.Server.Name)...)
	if err != nil {
		return nil, err
	}
	a.Registry = registry
	a.MCPServer = tools.NewMCPServer(cfg.Server.Name, registry)

	a.initHandlers()

	logger.Info().
		Int("tools", len(registry.Names())).
		Str("retell_url", a.Client.BaseURL()).
		Bool("file_uploads", cfg.Retell.UploadDir != "").
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(a.Logger, len(a.Registry.Names()))
	a.VersionHandler = handlers.NewVersionHandler(a.Config.Server.Name)
	a.MCPHandler = tools.NewHTTPHandler(a.MCPServer)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close releases pooled connections to the platform.
func (a *App) Close() {
	if a.Client != nil {
		a.Client.CloseIdleConnections()
	}
	a.Logger.Debug().Msg("application closed")
}
