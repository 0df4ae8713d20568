package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "prowl",
		Short:        "Map your external attack surface",
		Long:         "External attack-surface scanner — subdomain enumeration, DNS filtering, port scanning and HTTP misconfiguration probing.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(debug)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Display debug logs")

	root.Version = version
	root.SetVersionTemplate("prowl {{.Version}}\n")

	root.AddCommand(newScanCommand(), newModulesCommand(), newToolsCommand())

	return root
}

// configureLogging sets the global level from the PROWL_LOG environment
// variable (info by default); --debug forces debug.
func configureLogging(debug bool) {
	level := zerolog.InfoLevel
	if env := os.Getenv("PROWL_LOG"); env != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			level = parsed
		}
	}
	if debug {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
