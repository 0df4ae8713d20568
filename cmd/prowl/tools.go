package main

import (
	"github.com/spf13/cobra"

	"github.com/vulnverified/prowl/internal/tools"
)

func newToolsCommand() *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Standalone helper tools",
	}

	dnsquatCmd := &cobra.Command{
		Use:   "dnsquat <domain> <tld>",
		Short: "Generate bit-flip squatting permutations of a domain",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			tools.DNSQuat(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	toolsCmd.AddCommand(dnsquatCmd)

	return toolsCmd
}
