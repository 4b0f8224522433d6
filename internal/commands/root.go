package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneta-dev/moneta/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "moneta",
		Short:   "Personal account and transaction ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
