package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneta-dev/moneta/internal/accounts"
	"github.com/moneta-dev/moneta/internal/ledger"
	"github.com/moneta-dev/moneta/internal/model"
)

func newBalanceCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show derived balances for every account",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runBalance(absDir)
		},
	}

	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", ".", "data directory")
	return cmd
}

func runBalance(dir string) error {
	svc, err := accounts.Load(dir)
	if err != nil {
		return err
	}
	store, err := ledger.Load(dir)
	if err != nil {
		return err
	}

	asOf := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tBALANCE")
	for _, a := range svc.All() {
		b := a.Base()
		balance := model.RefreshBalance(a, store, asOf)
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, b.Type, formatAmount(balance, b.Currency))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	total := svc.TotalBalance(store, asOf)
	fmt.Printf("\nTotal: %s\n", formatAmount(total, "USD"))
	return nil
}

// formatAmount renders a decimal amount in the account's currency,
// respecting the currency's minor-unit fraction.
func formatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}
