package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moneta-dev/moneta/internal/accounts"
	"github.com/moneta-dev/moneta/internal/activity"
	"github.com/moneta-dev/moneta/internal/config"
	"github.com/moneta-dev/moneta/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new moneta data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	dirs := []string{
		"accounts",
		"ledger",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "moneta.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := accounts.NewService(nil).Save(dir); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	if err := ledger.Save(dir, ledger.NewStore()); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	if err := activity.Log(dir, "init", "initialized data dir for "+name, ""); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}

	fmt.Printf("Initialized moneta data directory in %s\n", dir)
	return nil
}
