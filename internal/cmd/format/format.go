// Package format provides the format and check commands.
package format

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/cheetah-fmt/internal/batch"
	"github.com/open-cli-collective/cheetah-fmt/internal/config"
	"github.com/open-cli-collective/cheetah-fmt/internal/view"
)

type formatOptions struct {
	recursive  bool
	outfile    string
	diff       bool
	check      bool
	jobs       int
	extensions []string
	exclude    []string

	configPath string
	output     string
	noColor    bool
	verbose    bool

	writer io.Writer // defaults to stdout
}

// NewCmdFormat creates the format command.
func NewCmdFormat() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:     "format <source>",
		Aliases: []string{"fmt"},
		Short:   "Re-indent Cheetah template files",
		Long: `Re-indent a Cheetah template, or every template under a directory.

Leading whitespace on each line is rewritten to four spaces per nesting level.
Nesting is driven by HTML tags, #if/#for/#def directives and { [ ( brackets
in embedded script. Nothing but leading whitespace changes, except that runs
of blank lines collapse to one.

Tags whose attributes span several lines are left exactly as written.`,
		Example: `  # Re-indent a file in place
  ctfmt format page.tmpl

  # Write the result somewhere else
  ctfmt format page.tmpl -o page.formatted.tmpl

  # Re-indent every .tmpl and .inc file under a directory
  ctfmt format -r templates/

  # Show what would change without writing
  ctfmt format -r templates/ --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadGlobalFlags(cmd, opts)
			return runFormat(cmd.Context(), args[0], opts)
		},
	}

	addBatchFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.outfile, "outfile", "o", "", "Write to this file instead of the source (single file only)")

	return cmd
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &formatOptions{check: true}

	cmd := &cobra.Command{
		Use:   "check <source>",
		Short: "Report templates that are not formatted",
		Long: `Report Cheetah templates whose indentation differs from what format
would produce. Nothing is written. Exits non-zero if any file would change.`,
		Example: `  # Check a single file
  ctfmt check page.tmpl

  # Check a tree in CI and show the differences
  ctfmt check -r templates/ --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadGlobalFlags(cmd, opts)
			return runFormat(cmd.Context(), args[0], opts)
		},
	}

	addBatchFlags(cmd, opts)

	return cmd
}

func addBatchFlags(cmd *cobra.Command, opts *formatOptions) {
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "Treat source as a directory and process matching files recursively")
	cmd.Flags().BoolVarP(&opts.diff, "diff", "d", false, "Print a unified diff instead of writing")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Files to process concurrently (default: number of CPUs)")
	cmd.Flags().StringSliceVar(&opts.extensions, "ext", nil, "File extensions to process in recursive mode (default: .tmpl,.inc)")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "Glob patterns to skip in recursive mode (e.g. 'vendor/**')")
}

func loadGlobalFlags(cmd *cobra.Command, opts *formatOptions) {
	opts.configPath, _ = cmd.Flags().GetString("config")
	opts.output, _ = cmd.Flags().GetString("output")
	opts.noColor, _ = cmd.Flags().GetBool("no-color")
	opts.verbose, _ = cmd.Flags().GetBool("verbose")
}

func runFormat(ctx context.Context, source string, opts *formatOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	output := opts.output
	if output == "" {
		output = cfg.OutputFormat
	}
	if err := view.ValidateFormat(output); err != nil {
		return err
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	extensions := cfg.Extensions
	if len(opts.extensions) > 0 {
		c := config.Config{Extensions: opts.extensions}
		c.Normalize()
		extensions = c.Extensions
	}
	jobs := opts.jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	req := batch.Request{
		Source:    source,
		Outfile:   opts.outfile,
		Recursive: opts.recursive,
		Matcher: batch.Matcher{
			Extensions: extensions,
			Exclude:    append(append([]string{}, cfg.Exclude...), opts.exclude...),
		},
	}
	planned, err := batch.Plan(ctx, req, logger)
	if err != nil {
		return err
	}

	mode := batch.ModeWrite
	switch {
	case opts.diff:
		mode = batch.ModeDiff
	case opts.check:
		mode = batch.ModeCheck
	}

	results := batch.New(batch.Options{Mode: mode, Jobs: jobs, Logger: logger}).Run(ctx, planned)

	renderer := view.NewRenderer(view.Format(output), opts.noColor)
	if opts.writer != nil {
		renderer.SetWriter(opts.writer)
	}
	summary := batch.Summarize(results)
	if err := renderResults(renderer, results, summary); err != nil {
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", summary.Failed, len(results))
	}
	if opts.check && summary.Changed > 0 {
		return fmt.Errorf("%w: %d file(s) would be reformatted", batch.ErrUnformatted, summary.Changed)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
