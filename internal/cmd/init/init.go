// Package init provides the init command for ctfmt.
package init

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cheetah-fmt/internal/batch"
	"github.com/open-cli-collective/cheetah-fmt/internal/config"
	"github.com/open-cli-collective/cheetah-fmt/internal/view"
)

// answers holds the raw form input before it is parsed into a config.
type answers struct {
	Extensions string
	Exclude    string
	Jobs       string
	Output     string
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		ans        answers
		noInput    bool
		forceWrite bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize ctfmt configuration",
		Long: `Initialize ctfmt with the defaults used by format and check.

This command will guide you through choosing which file extensions are
treated as templates in recursive mode, which paths to skip, and how many
files to process at once. The configuration will be saved to
~/.config/ctfmt/config.yml.`,
		Example: `  # Interactive setup
  ctfmt init

  # Pre-populate extensions
  ctfmt init --ext .tmpl,.html

  # Write a config without prompting
  ctfmt init --no-input --ext .tmpl --exclude 'vendor/**' --jobs 4`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if ans.Output == "" {
				ans.Output, _ = cmd.Flags().GetString("output")
			}
			return runInit(path, ans, !noInput, forceWrite, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&ans.Extensions, "ext", "", "Comma-separated template extensions (e.g., .tmpl,.inc)")
	cmd.Flags().StringVar(&ans.Exclude, "exclude", "", "Comma-separated glob patterns to skip (e.g., vendor/**)")
	cmd.Flags().StringVar(&ans.Jobs, "jobs", "", "Files to process concurrently")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Skip prompts and save the flag values as given")
	cmd.Flags().BoolVar(&forceWrite, "force", false, "Overwrite an existing config without asking")

	return cmd
}

func runInit(configPath string, ans answers, interactive, force bool, w io.Writer) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !force {
		if !interactive {
			return fmt.Errorf("%w: %s already exists (use --force to overwrite)", batch.ErrConfig, configPath)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, "Initialization cancelled.")
			return nil
		}
	}

	if interactive {
		if ans.Extensions == "" {
			ans.Extensions = strings.Join(batch.DefaultExtensions, ",")
		}
		if err := newForm(&ans).Run(); err != nil {
			return err
		}
	}

	cfg, err := parseAnswers(ans)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(w, "\nYou're all set! Try running:")
	fmt.Fprintln(w, "  ctfmt check -r templates/")
	fmt.Fprintln(w, "  ctfmt format -r templates/")

	return nil
}

func newForm(ans *answers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template extensions").
				Description("Comma-separated extensions matched in recursive mode").
				Placeholder(".tmpl,.inc").
				Value(&ans.Extensions).
				Validate(func(s string) error {
					if len(config.SplitList(s)) == 0 {
						return fmt.Errorf("at least one extension is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Exclude (optional)").
				Description("Comma-separated glob patterns to skip").
				Placeholder("vendor/**,build/**").
				Value(&ans.Exclude),

			huh.NewInput().
				Title("Jobs (optional)").
				Description("Files to process concurrently; empty means one per CPU").
				Value(&ans.Jobs).
				Validate(validateJobs),

			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&ans.Output),
		),
	)
}

func validateJobs(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("jobs must be a non-negative number")
	}
	return nil
}

// parseAnswers turns raw input into a validated config.
func parseAnswers(ans answers) (*config.Config, error) {
	cfg := &config.Config{
		Extensions: config.SplitList(ans.Extensions),
		Exclude:    config.SplitList(ans.Exclude),
	}
	cfg.Normalize()

	if err := validateJobs(ans.Jobs); err != nil {
		return nil, err
	}
	if s := strings.TrimSpace(ans.Jobs); s != "" {
		cfg.Jobs, _ = strconv.Atoi(s)
	}

	if err := view.ValidateFormat(ans.Output); err != nil {
		return nil, err
	}
	// table is the default and is left out of the file
	if ans.Output != string(view.FormatTable) {
		cfg.OutputFormat = ans.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := (batch.Matcher{Exclude: cfg.Exclude}).Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
