package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cheetah-fmt/internal/batch"
	"github.com/open-cli-collective/cheetah-fmt/internal/config"
	"github.com/open-cli-collective/cheetah-fmt/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective ctfmt configuration with the source of each value.`,
		Example: `  # Show current config
  ctfmt config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			output, _ := cmd.Flags().GetString("output")
			return runShow(configPath(cmd), output, noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath, output string, noColor bool, w io.Writer) error {
	// Load file config (may not exist)
	_, fileErr := config.Load(configPath)

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if output == "" {
		output = cfg.OutputFormat
	}
	if err := view.ValidateFormat(output); err != nil {
		return err
	}

	r := view.NewRenderer(view.Format(output), noColor)
	r.SetWriter(w)

	if r.Format() == view.FormatJSON {
		return r.RenderJSON(cfg)
	}

	printField := func(label, value, fallback, envVar string) {
		source := "config"
		switch {
		case os.Getenv(envVar) != "":
			source = envVar
		case value == "":
			value, source = fallback, "default"
		}
		r.RenderKeyValue(label, fmt.Sprintf("%s  (source: %s)", value, source))
	}

	jobs := ""
	if cfg.Jobs > 0 {
		jobs = strconv.Itoa(cfg.Jobs)
	}

	printField("Extensions", strings.Join(cfg.Extensions, ", "), strings.Join(batch.DefaultExtensions, ", "), "CTFMT_EXTENSIONS")
	printField("Exclude", strings.Join(cfg.Exclude, ", "), "-", "CTFMT_EXCLUDE")
	printField("Jobs", jobs, "number of CPUs", "CTFMT_JOBS")
	printField("Output", cfg.OutputFormat, string(view.FormatTable), "CTFMT_OUTPUT")

	r.RenderText("")
	r.RenderText("Config file: " + configPath)
	if fileErr != nil {
		r.RenderText("(file not found)")
	}

	return nil
}
