// Package root provides the root command for the ctfmt CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cheetah-fmt/internal/cmd/completion"
	"github.com/open-cli-collective/cheetah-fmt/internal/cmd/configcmd"
	"github.com/open-cli-collective/cheetah-fmt/internal/cmd/format"
	initcmd "github.com/open-cli-collective/cheetah-fmt/internal/cmd/init"
	"github.com/open-cli-collective/cheetah-fmt/internal/version"
)

// NewCmdRoot creates the root command for ctfmt.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctfmt",
		Short: "A re-indenter for Cheetah templates",
		Long: `ctfmt re-indents Cheetah templates that mix HTML markup,
#if/#for/#def directives and embedded JavaScript or CSS.

Only leading whitespace is rewritten, four spaces per nesting level.

Get started by running: ctfmt format -r <dir>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/ctfmt/config.yml)")
	cmd.PersistentFlags().String("output", "", "output format: table, json, plain (default: table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")

	// Set version template
	cmd.SetVersionTemplate("ctfmt version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(format.NewCmdFormat())
	cmd.AddCommand(format.NewCmdCheck())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
