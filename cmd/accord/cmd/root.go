// Package cmd provides the CLI commands for accord.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accord-sh/accord/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "accord",
	Short: "accord - conflict-detection engine for document-collaboration events",
	Long: `accord classifies a stream of document-collaboration events (create, edit,
move, delete, permission change, rename) against administrator-declared
action constraints, flagging events that violate one or more rules.

Quick start:
  accord classify --constraints constraints.json --events events.json

Configuration:
  Config is loaded from accord.yaml in the current directory, $HOME/.accord/,
  or /etc/accord/, and printed by "accord config". The classify, bench and
  query commands take their settings from their flags only.

  Environment variables can override config values with the ACCORD_ prefix.
  Example: ACCORD_BUILD_MODE=strict

Commands:
  classify    Build an engine and classify an event batch
  bench       Repeat build+classify and report timing
  query       Query a constraint batch with a CEL expression
  config      Print the effective configuration as YAML
  version     Print version information`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./accord.yaml)")
}

func initConfig() {
	config.InitViper(cfgFile)
}
