// Package cmd wires the filenorm command line.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/filenorm/internal/config"
	"github.com/harrison/filenorm/internal/dates"
	"github.com/harrison/filenorm/internal/display"
	"github.com/harrison/filenorm/internal/filelock"
	"github.com/harrison/filenorm/internal/fileutil"
	"github.com/harrison/filenorm/internal/normalize"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the filenorm root command. All functionality hangs
// off the root; there are no subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filenorm [path]",
		Short: "Standardize file names with consistent formatting",
		Long: `Filenorm renames files (and optionally directories) to a normalized
convention: lowercase, hyphen separated, with an optional standardized
date prefix taken from a date embedded in the name or from the file's
creation time.

Defaults can be placed in .filenorm.yaml; explicitly set flags win.

Examples:
  filenorm                         # normalize files in the current directory
  filenorm ~/docs -r -n            # recursive dry run
  filenorm ~/docs -d --year-month  # add creation date prefixes as YYYY-MM
  filenorm ~/docs -e pdf -e .txt   # only PDF and text files
  filenorm ~/docs --dirs           # also normalize directory names`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE:         runNormalize,
	}

	cmd.Flags().BoolP("recursive", "r", false, "Process directories recursively")
	cmd.Flags().BoolP("dry-run", "n", false, "Show what would be renamed without doing it")
	cmd.Flags().BoolP("add-date", "d", false, "Add file creation date as prefix (YYYY-MM-DD)")
	cmd.Flags().Bool("year-month", false, "Use YYYY-MM format for dates")
	cmd.Flags().Bool("year-only", false, "Use YYYY format for dates")
	cmd.Flags().StringArrayP("ext", "e", nil, "Only process files with these extensions (can be repeated)")
	cmd.Flags().Bool("dirs", false, "Also normalize directory names")
	cmd.Flags().String("config", "", "Path to config file (default: .filenorm.yaml)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

// runNormalize implements the root command logic.
func runNormalize(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		// An explicit config path must exist; only the default file may be
		// silently absent.
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("config file %s does not exist", configPath)
		}
	} else {
		configPath = config.DefaultFileName
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	root, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", target, err)
	}
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("%s does not exist", root)
	}

	// Renames are serialized per tree; a dry run touches nothing and needs
	// no lock.
	if !cfg.DryRun {
		lock := filelock.ForRoot(root)
		held, err := lock.TryLock()
		if err != nil {
			return err
		}
		if !held {
			return fmt.Errorf("another filenorm run is already processing %s", root)
		}
		defer lock.Unlock()
	}

	reporter := display.NewReporter(cmd.OutOrStdout(), cfg.DryRun, cfg.NoColor)
	opts := normalize.RunOptions{
		AddDate: cfg.AddDate,
		DryRun:  cfg.DryRun,
		Format:  dateFormat(cfg.DateFormat),
	}

	files, err := fileutil.CollectFiles(root, fileutil.CollectOptions{
		Recursive:   cfg.Recursive,
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.ExcludeDirs,
	})
	if err != nil {
		return err
	}

	// A single failed rename is reported and must not stop the batch.
	renamedFiles := 0
	for _, path := range files {
		result, err := normalize.File(path, opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if result == nil {
			continue
		}
		reporter.Rename(result.OldPath, result.NewPath, false)
		renamedFiles++
	}

	renamedDirs := 0
	if cfg.Dirs {
		dirs, err := fileutil.CollectDirs(root, cfg.Recursive, cfg.ExcludeDirs)
		if err != nil {
			return err
		}
		for _, path := range dirs {
			result, err := normalize.Directory(path, cfg.DryRun)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				continue
			}
			if result == nil {
				continue
			}
			reporter.Rename(result.OldPath, result.NewPath, true)
			renamedDirs++
		}
	}

	reporter.FileSummary(renamedFiles)
	if cfg.Dirs {
		reporter.DirSummary(renamedDirs)
	}
	return nil
}

// applyFlagOverrides copies explicitly set flags over the config values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("recursive") {
		cfg.Recursive, _ = flags.GetBool("recursive")
	}
	if flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("add-date") {
		cfg.AddDate, _ = flags.GetBool("add-date")
	}
	if flags.Changed("ext") {
		cfg.Extensions, _ = flags.GetStringArray("ext")
	}
	if flags.Changed("dirs") {
		cfg.Dirs, _ = flags.GetBool("dirs")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	// year-only wins over year-month when both are given.
	yearMonth, _ := flags.GetBool("year-month")
	yearOnly, _ := flags.GetBool("year-only")
	switch {
	case yearOnly:
		cfg.DateFormat = "year"
	case yearMonth:
		cfg.DateFormat = "year-month"
	}
}

// dateFormat maps the config value onto the dates enum. Unknown values are
// handled downstream by FormatDate's fallback to Full.
func dateFormat(value string) dates.DateFormat {
	switch value {
	case "year":
		return dates.Year
	case "year-month":
		return dates.YearMonth
	default:
		return dates.Full
	}
}
