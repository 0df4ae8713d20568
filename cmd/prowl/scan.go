package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vulnverified/prowl/internal/output"
	"github.com/vulnverified/prowl/internal/profile"
	"github.com/vulnverified/prowl/internal/scanner"
)

func newScanCommand() *cobra.Command {
	var (
		aggressive bool
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "scan <target>",
		Short: "Scan a target domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.ToLower(strings.TrimSpace(args[0]))
			if target == "" {
				return fmt.Errorf("target is required")
			}

			format, err := output.ParseFormat(strings.ToLower(outputFlag))
			if err != nil {
				return err
			}

			// Respect NO_COLOR env var.
			noColor := false
			if _, ok := os.LookupEnv("NO_COLOR"); ok {
				noColor = true
			}

			// Ctrl+C tears the pipeline down through the context.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			go func() {
				<-sigCh
				fmt.Fprintln(os.Stderr, "\nInterrupted, cleaning up...")
				cancel()
			}()

			prof := profile.Default()
			if aggressive {
				prof = profile.Aggressive()
			}

			rep, err := scanner.New().Scan(ctx, target, prof)
			if err != nil {
				return err
			}

			if format == output.FormatJSON {
				return output.WriteJSON(os.Stdout, rep)
			}
			output.WriteText(os.Stdout, rep, noColor)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&aggressive, "aggressive", "a", false, "Use aggressive modules")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format. Valid values are [text, json]")

	return cmd
}
