package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "retell-mcp",
		Short:         "MCP server for the Retell voice agent platform",
		Long:          `retell-mcp exposes Retell calls, agents, phone numbers, knowledge bases, LLMs, conversation flows and batch tests as MCP tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			common.LoadVersionFromFile()
		},
	}

	root.PersistentFlags().StringArrayP("config", "c", nil, "Configuration file path (can be specified multiple times)")

	root.AddCommand(newServeCmd(), newToolsCmd(), newVersionCmd())
	return root
}

// loadConfig reads the --config files, or the first discovered file when none
// are given.
func loadConfig(cmd *cobra.Command) (*config.Config, []string, error) {
	files, _ := cmd.Flags().GetStringArray("config")
	if len(files) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				files = append(files, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(files...)
	return cfg, files, err
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried first, with CWD fallbacks after.
func configSearchPaths() []string {
	candidates := []string{
		"retell-mcp.toml",
		"config/retell-mcp.toml",
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, "retell-mcp.toml"),
		filepath.Join(binDir, "config", "retell-mcp.toml"),
	}
	paths = append(paths, candidates...)

	// Deduplicate via absolute path.
	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
