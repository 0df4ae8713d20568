package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulnverified/prowl/internal/modules"
)

func newModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List all modules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Subdomains modules")
			for _, m := range modules.AllSubdomainModules() {
				fmt.Fprintf(out, "    %s: %s\n", m.Name(), m.Description())
			}

			fmt.Fprintln(out, "HTTP modules")
			for _, m := range modules.AllHTTPModules() {
				fmt.Fprintf(out, "    %s: %s\n", m.Name(), m.Description())
			}
		},
	}
}
