package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/endoflife-date/eolint/pkg/console"
	"github.com/endoflife-date/eolint/pkg/constants"
	"github.com/endoflife-date/eolint/pkg/logger"
	"github.com/endoflife-date/eolint/pkg/parser"
	"github.com/endoflife-date/eolint/pkg/validation"
)

var validateCommandLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]...",
		Short: "Validate product lifecycle records",
		Long: `Validate one or more product record files. Each record runs through the
pre-enrichment schema pass; with URL checking enabled, every outbound URL the
record references is also resolved against the live network.

If no files are specified, all Markdown files in the products directory are
validated. The command exits non-zero when any record has a validation error.

URL checking is expensive and off by default; enable it with --check-urls or
by setting ` + constants.CheckURLsEnvVar + `=true.

Examples:
  ` + constants.CLIName + ` validate                      # Validate all products
  ` + constants.CLIName + ` validate products/python.md   # Validate a specific product
  ` + constants.CLIName + ` validate --check-urls         # Also resolve outbound URLs
  ` + constants.CLIName + ` validate --dir custom/dir     # Validate from a custom directory
  ` + constants.CLIName + ` validate --json               # Output results in JSON format
  ` + constants.CLIName + ` validate --watch              # Re-validate on file changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			checkURLs, _ := cmd.Flags().GetBool("check-urls")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			watch, _ := cmd.Flags().GetBool("watch")
			verbose, _ := cmd.Flags().GetBool("verbose")

			settings, err := LoadSettings()
			if err != nil {
				return err
			}
			if !checkURLs {
				checkURLs = settings.CheckURLs
			}

			validateCommandLog.Printf("Running validate command: files=%v, dir=%s, checkURLs=%v", args, dir, checkURLs)

			files := args
			if len(files) == 0 {
				if dir == "" {
					dir = constants.DefaultProductsDir
				}
				files, err = parser.FindProductFiles(dir)
				if err != nil {
					return err
				}
			}
			if len(files) == 0 {
				console.PrintWarning("No product files found")
				return nil
			}

			config := BuildConfig{
				Files:      files,
				CheckURLs:  checkURLs,
				URLWorkers: settings.URLWorkers,
				Verbose:    verbose,
			}

			if watch {
				return watchAndValidate(cmd.Context(), config)
			}

			return runValidation(cmd.Context(), config, jsonOutput)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Products directory (default: "+constants.DefaultProductsDir+")")
	cmd.Flags().Bool("check-urls", false, "Resolve every outbound URL against the live network")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
	cmd.Flags().BoolP("watch", "w", false, "Watch product files and re-validate on change")

	return cmd
}

// runValidation executes one build and renders its results. Each invocation
// uses a fresh sink: the counter lives for the duration of exactly one build.
func runValidation(ctx context.Context, config BuildConfig, jsonOutput bool) error {
	sink := validation.NewSink()
	results, buildErr := RunBuild(ctx, config, sink)

	if jsonOutput {
		if err := printResultsJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		printResultsSummary(os.Stdout, results)
	}

	if buildErr != nil {
		return fmt.Errorf("validation failed: %w", buildErr)
	}
	console.PrintSuccess("All %d product(s) passed validation", len(results))
	return nil
}
