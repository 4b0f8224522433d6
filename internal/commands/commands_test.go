package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/accounts"
	"github.com/moneta-dev/moneta/internal/activity"
	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/ledger"
	"github.com/moneta-dev/moneta/internal/model"
)

func initDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Ada"))
	return dir
}

func TestInitCreatesStructure(t *testing.T) {
	dir := initDir(t)

	for _, p := range []string{
		"moneta.yaml",
		"accounts/accounts.json",
		"ledger/transactions.csv",
		"logs/activity.csv",
		"import/processed",
	} {
		_, err := os.Stat(filepath.Join(dir, p))
		assert.NoError(t, err, p)
	}

	entries, err := activity.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "init", entries[0].Action)
}

func TestAccountAddAndList(t *testing.T) {
	dir := initDir(t)

	err := runAccountAdd(dir, accountAddFlags{
		accountType:  "savings",
		name:         "Rainy Day",
		number:       "7788",
		institution:  "First National",
		interestRate: "4.5",
	})
	require.NoError(t, err)

	svc, err := accounts.Load(dir)
	require.NoError(t, err)
	acct, ok := svc.ByNumber("7788")
	require.True(t, ok)
	savings, ok := acct.(*model.SavingsAccount)
	require.True(t, ok)
	assert.Equal(t, "Rainy Day", savings.Name)
	assert.Equal(t, "USD", savings.Currency)

	require.NoError(t, runAccountList(dir))
}

func TestAccountAddRejectsDuplicateNumber(t *testing.T) {
	dir := initDir(t)

	flags := accountAddFlags{accountType: "checking", name: "Everyday", number: "0412"}
	require.NoError(t, runAccountAdd(dir, flags))

	err := runAccountAdd(dir, flags)
	assert.ErrorContains(t, err, "already exists")
}

func TestAccountAddRejectsBadNumber(t *testing.T) {
	dir := initDir(t)

	err := runAccountAdd(dir, accountAddFlags{accountType: "checking", name: "Everyday", number: "12"})
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBuildAccountEachType(t *testing.T) {
	gen := id.NewSequence("acct")
	params := model.AccountParams{Name: "X", AccountNumber: "0412"}

	cases := []struct {
		flags accountAddFlags
		want  model.AccountType
	}{
		{accountAddFlags{accountType: "checking", overdraftLimit: "500"}, model.TypeChecking},
		{accountAddFlags{accountType: "savings", interestRate: "4.5"}, model.TypeSavings},
		{accountAddFlags{accountType: "credit_card", creditLimit: "1000", apr: "24.99", dueDay: 15}, model.TypeCreditCard},
		{accountAddFlags{accountType: "loan", interestRate: "6", termMonths: 60, principal: "12000"}, model.TypeLoan},
		{accountAddFlags{accountType: "investment"}, model.TypeInvestment},
		{accountAddFlags{accountType: "retirement", planType: "IRA", contributionLimit: "7000"}, model.TypeRetirement},
	}

	for _, tc := range cases {
		acct, err := buildAccount(gen, params, tc.flags)
		require.NoError(t, err, "type %s", tc.flags.accountType)
		assert.Equal(t, tc.want, acct.Base().Type)
	}

	_, err := buildAccount(gen, params, accountAddFlags{accountType: "mattress"})
	assert.ErrorContains(t, err, "unknown account type")
}

func TestTxAddLinksAccountAndStore(t *testing.T) {
	dir := initDir(t)
	require.NoError(t, runAccountAdd(dir, accountAddFlags{
		accountType: "checking", name: "Everyday", number: "0412",
	}))

	err := runTxAdd(dir, txAddFlags{
		account:      "0412",
		txType:       "debit",
		category:     "essential",
		subcategory:  "housing",
		amount:       "-1250.00",
		date:         "2026-03-01",
		counterParty: "Maple Street Apartments",
	})
	require.NoError(t, err)

	store, err := ledger.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	svc, err := accounts.Load(dir)
	require.NoError(t, err)
	acct, _ := svc.ByNumber("0412")
	require.Len(t, acct.Base().TransactionIDs(), 1)

	txID := acct.Base().TransactionIDs()[0]
	tx, ok := store.Get(txID)
	require.True(t, ok)
	assert.Equal(t, "Maple Street Apartments", tx.CounterParty)
}

func TestTxAddRejectsUnknownAccount(t *testing.T) {
	dir := initDir(t)

	err := runTxAdd(dir, txAddFlags{
		account: "9999", txType: "debit",
		category: "essential", subcategory: "housing", amount: "10",
	})
	assert.ErrorContains(t, err, "no account with number")
}

func TestTxAddRejectsBadCategoryPair(t *testing.T) {
	dir := initDir(t)
	require.NoError(t, runAccountAdd(dir, accountAddFlags{
		accountType: "checking", name: "Everyday", number: "0412",
	}))

	err := runTxAdd(dir, txAddFlags{
		account: "0412", txType: "debit",
		category: "essential", subcategory: "dining", amount: "10",
	})
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBalanceRuns(t *testing.T) {
	dir := initDir(t)
	require.NoError(t, runAccountAdd(dir, accountAddFlags{
		accountType: "checking", name: "Everyday", number: "0412",
	}))
	require.NoError(t, runTxAdd(dir, txAddFlags{
		account: "0412", txType: "credit",
		category: "gift", subcategory: "personal", amount: "100",
	}))

	require.NoError(t, runBalance(dir))
}

func TestImportStatement(t *testing.T) {
	dir := initDir(t)
	require.NoError(t, runAccountAdd(dir, accountAddFlags{
		accountType: "checking", name: "Everyday", number: "0412",
	}))

	data, err := os.ReadFile("../../testdata/chase_checking.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "jan.csv"), data, 0o644))

	err = runImport(dir, "jan.csv", importFlags{
		format:  "chase",
		account: "0412",
	})
	require.NoError(t, err)

	store, err := ledger.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 6, store.Len())

	svc, err := accounts.Load(dir)
	require.NoError(t, err)
	acct, _ := svc.ByNumber("0412")
	assert.Len(t, acct.Base().TransactionIDs(), 6)

	// The statement moved to processed.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "jan.csv"))
	assert.NoError(t, err)
}

func decAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1,234.50", formatAmount(decAmount(t, "1234.50"), "USD"))
	assert.Equal(t, "123.40 XYZ", formatAmount(decAmount(t, "123.4"), "XYZ"))
}
