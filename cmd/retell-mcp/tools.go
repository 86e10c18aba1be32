package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/retell-mcp/internal/app"
	"github.com/bobmcallan/retell-mcp/internal/common"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server exposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			application, err := app.New(cfg, common.NewSilentLogger())
			if err != nil {
				return err
			}
			defer application.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range application.Registry.Names() {
				op, _, _ := application.Registry.Operation(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, op.Effect, op.Description)
			}
			return w.Flush()
		},
	}
}
