package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneta-dev/moneta/internal/accounts"
	"github.com/moneta-dev/moneta/internal/activity"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/ledger"
	"github.com/moneta-dev/moneta/internal/model"
)

const txDateFormat = "2006-01-02"

func newTxCommand() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	txCmd.AddCommand(newTxAddCommand())
	return txCmd
}

type txAddFlags struct {
	dataDir        string
	account        string
	txType         string
	category       string
	subcategory    string
	amount         string
	date           string
	counterParty   string
	recurringEvent string
	notes          string
}

func newTxAddCommand() *cobra.Command {
	var flags txAddFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction against an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(flags.dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runTxAdd(absDir, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dataDir, "data-dir", "d", ".", "data directory")
	cmd.Flags().StringVar(&flags.account, "account", "", "account number, last 4 digits (required)")
	cmd.Flags().StringVar(&flags.txType, "type", "debit", "transaction type: debit, credit, transfer")
	cmd.Flags().StringVar(&flags.category, "category", "", "main category (required)")
	cmd.Flags().StringVar(&flags.subcategory, "subcategory", "", "subcategory (required)")
	cmd.Flags().StringVar(&flags.amount, "amount", "", "signed amount (required)")
	cmd.Flags().StringVar(&flags.date, "date", "", "transaction date, YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.counterParty, "counterparty", "", "counterparty")
	cmd.Flags().StringVar(&flags.recurringEvent, "recurring-event", "", "recurring event id")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("subcategory")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runTxAdd(dir string, flags txAddFlags) error {
	svc, err := accounts.Load(dir)
	if err != nil {
		return err
	}
	acct, ok := svc.ByNumber(flags.account)
	if !ok {
		return fmt.Errorf("no account with number %s", flags.account)
	}

	amount, err := decimal.NewFromString(flags.amount)
	if err != nil {
		return fmt.Errorf("parsing amount: %w", err)
	}

	var date time.Time
	if flags.date != "" {
		date, err = time.Parse(txDateFormat, flags.date)
		if err != nil {
			return fmt.Errorf("parsing date: %w", err)
		}
	}

	tx, err := model.NewTransaction(id.UUID{}, model.TransactionParams{
		AccountNumber:    flags.account,
		Type:             model.TransactionType(flags.txType),
		Category:         model.MainCategory(flags.category),
		SubCategory:      model.SubCategory(flags.subcategory),
		Amount:           amount,
		Date:             date,
		RecurringEventID: flags.recurringEvent,
		CounterParty:     flags.counterParty,
		Notes:            flags.notes,
	})
	if err != nil {
		return err
	}

	store, err := ledger.Load(dir)
	if err != nil {
		return err
	}
	store.Add(tx)
	acct.Base().AddTransactionID(tx.ID)
	if flags.recurringEvent != "" {
		acct.Base().AddRecurringEventID(flags.recurringEvent)
	}

	if err := ledger.Save(dir, store); err != nil {
		return err
	}
	if err := svc.Save(dir); err != nil {
		return err
	}
	if err := activity.Log(dir, "tx-add", tx.CounterParty, acct.Base().ID); err != nil {
		return err
	}

	fmt.Printf("Recorded %s of %s against %s (%s)\n", tx.Type, tx.Amount, acct.Base().Name, tx.ID)
	return nil
}
