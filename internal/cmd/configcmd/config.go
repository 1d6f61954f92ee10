// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cheetah-fmt/internal/config"
)

// envVars are the environment variables that override the config file.
var envVars = []string{"CTFMT_EXTENSIONS", "CTFMT_EXCLUDE", "CTFMT_JOBS", "CTFMT_OUTPUT"}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ctfmt configuration",
		Long:  `Commands for viewing and clearing ctfmt configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// configPath resolves the --config flag against the default location.
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}
