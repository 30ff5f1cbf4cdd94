package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/idelchi/diskscan/internal/integration"
	"github.com/idelchi/diskscan/internal/scan"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		diskscan inventories a directory tree: every file and folder, per-folder
		aggregate sizes and counts, statistics by extension, and duplicate files
		detected by content digest.

		Usage:

			diskscan [flags] [path]

		Positional Arguments:
		  path                   Directory to inventory. Defaults to current directory if not specified.

		Duplicate detection hashes whole files up to 1 MiB and only the leading
		1 MiB of larger files; files of 100 MiB or more are never hashed and
		never appear in a duplicate group.

		The '-i' flag outputs an integration script for shell usage, piping the
		report into 'fzf' for interactive browsing.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    scan.Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	pflag.StringVar(&minSizeStr, "min-size", "0KB", "Minimum file size (e.g., 1KB)")
	pflag.IntVarP(&options.TopN, "top", "t", 10, "Number of top files and folders to display")
	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	pflag.StringSliceVarP(&options.Excludes, "exclude", "e", nil, "Regex patterns to exclude")
	pflag.BoolVar(&options.Dupes, "dupes", false, "List duplicate groups in the report")
	pflag.BoolVar(&options.Errors, "errors", false, "List scan errors in the report")
	pflag.DurationVar(&options.ProgressInterval, "progress-interval", scan.DefaultProgressInterval,
		"Interval between progress updates")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	pflag.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if options.Integration {
		rendered, err := integration.Render()
		if err != nil {
			return fmt.Errorf("rendering integration script: %w", err)
		}

		//nolint:forbidigo // Integration script output to console
		fmt.Println(rendered)

		return nil
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.TopN <= 0 {
		return errors.New("top must be positive")
	}

	if options.ProgressInterval <= 0 {
		options.ProgressInterval = scan.DefaultProgressInterval
	}

	if pflag.NArg() == 0 {
		options.Path = "."
	} else {
		options.Path = pflag.Args()[0]
	}

	// Parse minSize string to bytes
	if minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return logic(options)
}
