package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accord-sh/accord/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `config loads configuration from environment, file, and defaults (in that
order of precedence) and prints the result as YAML, the same format the
config file itself uses.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigRaw()
	if err != nil {
		return err
	}

	out, err := config.DumpYAML(cfg)
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
