package config

import "github.com/bobmcallan/retell-mcp/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:      "retell-mcp",
			Transport: "stdio",
			Host:      "localhost",
			Port:      4250,
		},
		Retell: RetellConfig{
			BaseURL: "https://api.retellai.com",
			Timeout: "60s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/retell-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
