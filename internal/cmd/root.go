package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/lookfor/internal/config"
	"github.com/harrison/lookfor/internal/display"
	"github.com/harrison/lookfor/internal/fileutil"
	"github.com/harrison/lookfor/internal/filter"
	"github.com/harrison/lookfor/internal/logger"
	"github.com/harrison/lookfor/internal/search"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is injected at build time via -ldflags
var Version = "dev"

var _ pflag.Value = (*filter.TypeFilter)(nil)

// rootOptions holds the raw flag values of one invocation
type rootOptions struct {
	name       string
	regex      bool
	ext        string
	maxDepth   int
	hidden     bool
	typ        filter.TypeFilter
	logLevel   string
	color      string
	configPath string
}

// NewRootCommand creates and returns the root cobra command for lookfor
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{typ: filter.TypeAny}

	cmd := &cobra.Command{
		Use:   "lookfor [path]",
		Short: "A small, fast alternative to find",
		Long: `lookfor walks a directory tree and prints the paths of entries that
match every given criterion, one per line.

Criteria:
  --name      substring of the base name (a regular expression with --regex)
  --ext       file extension without the dot, compared case-insensitively
  --type      file, dir or any
  --max-depth deepest level listed (the root is 0, its children are 1)
  --hidden    include entries whose name starts with "."

Unreadable entries are skipped silently. Exit code: 0 when the walk
completes (even with no matches), 1 on an invalid pattern or usage error.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runSearch(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.name, "name", "n", "", "match on file/directory name (substring, or regex with --regex)")
	flags.BoolVar(&opts.regex, "regex", false, "treat --name as a regular expression")
	flags.StringVarP(&opts.ext, "ext", "e", "", "match on file extension (e.g. 'go', 'txt')")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "maximum depth to descend (1 = the root's immediate contents)")
	flags.BoolVar(&opts.hidden, "hidden", false, "include hidden files and directories")
	flags.Var(&opts.typ, "type", "filter on type: file, dir, or any")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostic verbosity on stderr: trace, debug, info, warn, error")
	flags.StringVar(&opts.color, "color", "", "colored diagnostics: auto, always, never")
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")

	return cmd
}

// runSearch resolves configuration and the filter spec, then walks root.
// Every configuration error is returned before the walk starts.
func runSearch(cmd *cobra.Command, root string, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
		log.SetColor(true)
	case config.ColorNever:
		color.NoColor = true
		log.SetColor(false)
	}

	filterOpts := filter.Options{
		Name:     opts.name,
		Regex:    opts.regex,
		Type:     opts.typ,
		MaxDepth: fileutil.Unlimited,
		Hidden:   opts.hidden,
	}
	if cmd.Flags().Changed("ext") {
		filterOpts.Ext = &opts.ext
	}
	if cmd.Flags().Changed("max-depth") {
		if opts.maxDepth < 0 {
			return fmt.Errorf("--max-depth must be >= 0, got %d", opts.maxDepth)
		}
		filterOpts.MaxDepth = opts.maxDepth
	}

	spec, err := filter.NewSpec(filterOpts)
	if err != nil {
		return err
	}
	if opts.regex && opts.name == "" {
		log.LogInfo("--regex has no effect without --name")
	}
	log.LogDebug(fmt.Sprintf("searching %s: %s", root, spec))

	out := display.NewPathWriter(cmd.OutOrStdout())
	_, runErr := search.New(spec, log).Run(root, out)
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to write results: %w", err)
	}
	return runErr
}

// loadConfig reads the optional config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.configPath != "" {
		if _, err := os.Stat(opts.configPath); err != nil {
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var logLevel, colorMode *string
	if cmd.Flags().Changed("log-level") {
		logLevel = &opts.logLevel
	}
	if cmd.Flags().Changed("color") {
		colorMode = &opts.color
	}
	cfg.MergeWithFlags(logLevel, colorMode)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
