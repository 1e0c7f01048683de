package cli

import (
	"github.com/spf13/cobra"

	"github.com/endoflife-date/eolint/pkg/constants"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the eolint root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Validate product end-of-life lifecycle records",
		Long: constants.CLIName + ` validates structured product lifecycle records before and
after the derived-data enrichment pass, and blocks publication when any
record is invalid.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(NewValidateCommand())

	return cmd
}
