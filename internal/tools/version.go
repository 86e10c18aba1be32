package tools

import (
	"context"

	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/schema"
)

// versionInfo holds version fields for the running server.
type versionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit"`
}

// VersionOperation reports the server build. It makes no platform request.
func VersionOperation(name string) Operation {
	return Operation{
		Name:        "get_version",
		Description: "Get the MCP server version and build. Use this to verify connectivity.",
		Effect:      EffectRead,
		Params:      []schema.Param{},
		Handler: func(context.Context, schema.Args) (any, error) {
			return versionInfo{
				Name:    name,
				Version: common.GetVersion(),
				Build:   common.GetBuild(),
				Commit:  common.GetGitCommit(),
			}, nil
		},
	}
}
