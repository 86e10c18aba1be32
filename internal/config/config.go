package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/retell-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Retell  RetellConfig         `toml:"retell"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name      string `toml:"name" validate:"required"`
	Transport string `toml:"transport" validate:"oneof=stdio http"`
	Host      string `toml:"host"`
	Port      int    `toml:"port" validate:"gte=1,lte=65535"`
}

// RetellConfig contains settings for the voice platform API.
type RetellConfig struct {
	BaseURL string `toml:"base_url" validate:"required,url"`
	APIKey  string `toml:"api_key" validate:"required"`
	Timeout string `toml:"timeout"`
	// UploadDir is the only directory knowledge base file sources may be
	// read from. Empty disables file sources.
	UploadDir string `toml:"upload_dir" validate:"omitempty,dir"`
}

// GetTimeout parses and returns the request timeout.
func (c *RetellConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// Address returns host:port for the HTTP transport.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files. Missing files are skipped.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies RETELL_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("RETELL_API_KEY"); key != "" {
		config.Retell.APIKey = key
	}
	if url := os.Getenv("RETELL_BASE_URL"); url != "" {
		config.Retell.BaseURL = strings.TrimRight(url, "/")
	}
	if timeout := os.Getenv("RETELL_TIMEOUT"); timeout != "" {
		config.Retell.Timeout = timeout
	}
	if dir := os.Getenv("RETELL_UPLOAD_DIR"); dir != "" {
		config.Retell.UploadDir = dir
	}
	if transport := os.Getenv("RETELL_MCP_TRANSPORT"); transport != "" {
		config.Server.Transport = strings.ToLower(transport)
	}
	if host := os.Getenv("RETELL_MCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("RETELL_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("RETELL_MCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, stdio bool, port int) {
	if stdio {
		config.Server.Transport = "stdio"
	}
	if port > 0 {
		config.Server.Port = port
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
