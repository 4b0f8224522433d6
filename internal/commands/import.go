package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moneta-dev/moneta/internal/accounts"
	"github.com/moneta-dev/moneta/internal/activity"
	"github.com/moneta-dev/moneta/internal/config"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/importer"
	"github.com/moneta-dev/moneta/internal/ledger"
	"github.com/moneta-dev/moneta/internal/model"
)

type importFlags struct {
	dataDir     string
	format      string
	account     string
	category    string
	subcategory string
}

func newImportCommand() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement CSV from the import directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(flags.dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(absDir, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dataDir, "data-dir", "d", ".", "data directory")
	cmd.Flags().StringVar(&flags.format, "format", "chase", "statement format")
	cmd.Flags().StringVar(&flags.account, "account", "", "account number, last 4 digits (required)")
	cmd.Flags().StringVar(&flags.category, "category", "", "main category for imported rows (default from moneta.yaml)")
	cmd.Flags().StringVar(&flags.subcategory, "subcategory", "", "subcategory for imported rows (default from moneta.yaml)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runImport(dir, fileName string, flags importFlags) error {
	cfg, err := config.Load(filepath.Join(dir, "moneta.yaml"))
	if err != nil {
		return err
	}
	category := flags.category
	if category == "" {
		category = cfg.Import.DefaultCategory
	}
	subcategory := flags.subcategory
	if subcategory == "" {
		subcategory = cfg.Import.DefaultSubcategory
	}

	parser := importer.DefaultRegistry().Get(flags.format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", flags.format)
	}

	svc, err := accounts.Load(dir)
	if err != nil {
		return err
	}
	acct, ok := svc.ByNumber(flags.account)
	if !ok {
		return fmt.Errorf("no account with number %s", flags.account)
	}

	f, err := os.Open(filepath.Join(dir, "import", fileName))
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	rows, err := parser.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}

	txs, err := importer.ToTransactions(id.UUID{}, rows, flags.account,
		model.MainCategory(category), model.SubCategory(subcategory))
	if err != nil {
		return fmt.Errorf("converting statement rows: %w", err)
	}

	store, err := ledger.Load(dir)
	if err != nil {
		return err
	}
	for _, tx := range txs {
		store.Add(tx)
		acct.Base().AddTransactionID(tx.ID)
	}

	if err := ledger.Save(dir, store); err != nil {
		return err
	}
	if err := svc.Save(dir); err != nil {
		return err
	}
	if err := importer.MarkProcessed(dir, fileName); err != nil {
		return err
	}
	if err := activity.Log(dir, "import", fmt.Sprintf("%s: %d transactions", fileName, len(txs)), acct.Base().ID); err != nil {
		return err
	}

	fmt.Printf("Imported %d transactions from %s into %s\n", len(txs), fileName, acct.Base().Name)
	return nil
}
