package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneta-dev/moneta/internal/accounts"
	"github.com/moneta-dev/moneta/internal/activity"
	"github.com/moneta-dev/moneta/internal/config"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/model"
)

func newAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	accountCmd.AddCommand(newAccountAddCommand())
	accountCmd.AddCommand(newAccountListCommand())
	return accountCmd
}

type accountAddFlags struct {
	dataDir     string
	accountType string
	name        string
	number      string
	institution string
	currency    string
	notes       string

	overdraftLimit    string
	interestRate      string
	creditLimit       string
	apr               string
	dueDay            int
	termMonths        int
	principal         string
	planType          string
	taxAdvantaged     bool
	contributionLimit string
}

func newAccountAddCommand() *cobra.Command {
	var flags accountAddFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(flags.dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAccountAdd(absDir, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dataDir, "data-dir", "d", ".", "data directory")
	cmd.Flags().StringVar(&flags.accountType, "type", "", "account type: checking, savings, credit_card, loan, investment, retirement (required)")
	cmd.Flags().StringVar(&flags.name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&flags.number, "number", "", "last 4 digits of the account number (required)")
	cmd.Flags().StringVar(&flags.institution, "institution", "", "financial institution")
	cmd.Flags().StringVar(&flags.currency, "currency", "", "ISO currency code (default from moneta.yaml)")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&flags.overdraftLimit, "overdraft-limit", "", "checking: overdraft limit")
	cmd.Flags().StringVar(&flags.interestRate, "interest-rate", "0", "savings/loan: annual interest rate in percent")
	cmd.Flags().StringVar(&flags.creditLimit, "credit-limit", "0", "credit_card: credit limit")
	cmd.Flags().StringVar(&flags.apr, "apr", "", "credit_card: annual percentage rate")
	cmd.Flags().IntVar(&flags.dueDay, "due-day", 0, "credit_card: day of month payment is due")
	cmd.Flags().IntVar(&flags.termMonths, "term-months", 0, "loan: term in months")
	cmd.Flags().StringVar(&flags.principal, "principal", "0", "loan: original principal")
	cmd.Flags().StringVar(&flags.planType, "plan-type", "", "retirement: plan type (401k, IRA, ...)")
	cmd.Flags().BoolVar(&flags.taxAdvantaged, "tax-advantaged", true, "retirement: tax-advantaged plan")
	cmd.Flags().StringVar(&flags.contributionLimit, "contribution-limit", "0", "retirement: annual contribution limit")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}

func runAccountAdd(dir string, flags accountAddFlags) error {
	cfg, err := config.Load(filepath.Join(dir, "moneta.yaml"))
	if err != nil {
		return err
	}

	currency := flags.currency
	if currency == "" {
		currency = cfg.Profile.Currency
	}
	params := model.AccountParams{
		Name:          flags.name,
		AccountNumber: flags.number,
		Institution:   flags.institution,
		Currency:      currency,
		Notes:         flags.notes,
	}

	acct, err := buildAccount(id.UUID{}, params, flags)
	if err != nil {
		return err
	}

	svc, err := accounts.Load(dir)
	if err != nil {
		return err
	}
	if _, exists := svc.ByNumber(flags.number); exists {
		return fmt.Errorf("an account with number %s already exists", flags.number)
	}
	svc.Add(acct)
	if err := svc.Save(dir); err != nil {
		return err
	}

	base := acct.Base()
	if err := activity.Log(dir, "account-add", base.Name, base.ID); err != nil {
		return err
	}

	fmt.Printf("Added %s account %s (%s)\n", base.Type, base.Name, base.ID)
	return nil
}

func buildAccount(gen id.Generator, params model.AccountParams, flags accountAddFlags) (model.Account, error) {
	switch model.AccountType(flags.accountType) {
	case model.TypeChecking:
		var overdraft *decimal.Decimal
		if flags.overdraftLimit != "" {
			d, err := decimal.NewFromString(flags.overdraftLimit)
			if err != nil {
				return nil, fmt.Errorf("parsing overdraft limit: %w", err)
			}
			overdraft = &d
		}
		return model.NewChecking(gen, params, overdraft)
	case model.TypeSavings:
		rate, err := decimal.NewFromString(flags.interestRate)
		if err != nil {
			return nil, fmt.Errorf("parsing interest rate: %w", err)
		}
		return model.NewSavings(gen, params, rate)
	case model.TypeCreditCard:
		limit, err := decimal.NewFromString(flags.creditLimit)
		if err != nil {
			return nil, fmt.Errorf("parsing credit limit: %w", err)
		}
		card := model.CreditCardParams{CreditLimit: limit}
		if flags.apr != "" {
			apr, err := decimal.NewFromString(flags.apr)
			if err != nil {
				return nil, fmt.Errorf("parsing apr: %w", err)
			}
			card.APR = &apr
		}
		if flags.dueDay != 0 {
			dueDay := flags.dueDay
			card.DueDay = &dueDay
		}
		return model.NewCreditCard(gen, params, card)
	case model.TypeLoan:
		rate, err := decimal.NewFromString(flags.interestRate)
		if err != nil {
			return nil, fmt.Errorf("parsing interest rate: %w", err)
		}
		principal, err := decimal.NewFromString(flags.principal)
		if err != nil {
			return nil, fmt.Errorf("parsing principal: %w", err)
		}
		return model.NewLoan(gen, params, model.LoanParams{
			InterestRate: rate,
			TermMonths:   flags.termMonths,
			Principal:    principal,
		})
	case model.TypeInvestment:
		return model.NewInvestment(gen, params, nil)
	case model.TypeRetirement:
		limit, err := decimal.NewFromString(flags.contributionLimit)
		if err != nil {
			return nil, fmt.Errorf("parsing contribution limit: %w", err)
		}
		return model.NewRetirement(gen, params, model.RetirementParams{
			PlanType:          flags.planType,
			TaxAdvantaged:     flags.taxAdvantaged,
			ContributionLimit: limit,
		})
	default:
		return nil, fmt.Errorf("unknown account type %q", flags.accountType)
	}
}

func newAccountListCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runAccountList(absDir)
		},
	}

	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", ".", "data directory")
	return cmd
}

func runAccountList(dir string) error {
	svc, err := accounts.Load(dir)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tNUMBER\tINSTITUTION\tCURRENCY\tACTIVE")
	for _, a := range svc.All() {
		b := a.Base()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n", b.Name, b.Type, b.AccountNumber, b.Institution, b.Currency, b.IsActive)
	}
	return w.Flush()
}
