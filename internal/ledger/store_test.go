package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTx(t *testing.T, gen id.Generator, amount string) model.Transaction {
	t.Helper()
	tx, err := model.NewTransaction(gen, model.TransactionParams{
		AccountNumber: "0412",
		Type:          model.TypeDebit,
		Category:      model.CategoryDiscretionary,
		SubCategory:   model.SubDining,
		Amount:        dec(amount),
	})
	require.NoError(t, err)
	return tx
}

func TestAddGet(t *testing.T) {
	store := NewStore()
	tx := newTx(t, id.NewSequence("tx"), "12.30")

	store.Add(tx)

	got, ok := store.Get(tx.ID)
	require.True(t, ok)
	assert.Equal(t, tx, got)
}

func TestGetMissing(t *testing.T) {
	store := NewStore()

	_, ok := store.Get("tx-nope")
	assert.False(t, ok)
}

func TestAddReplacesByID(t *testing.T) {
	store := NewStore()
	tx := newTx(t, id.NewSequence("tx"), "10")
	store.Add(tx)

	updated := tx
	updated.Notes = "corrected"
	store.Add(updated)

	assert.Equal(t, 1, store.Len())
	got, ok := store.Get(tx.ID)
	require.True(t, ok)
	assert.Equal(t, "corrected", got.Notes)
}

func TestGetManyPreservesOrderAndDropsMissing(t *testing.T) {
	store := NewStore()
	gen := id.NewSequence("tx")
	a := newTx(t, gen, "1")
	b := newTx(t, gen, "2")
	c := newTx(t, gen, "3")
	store.Add(a)
	store.Add(b)
	store.Add(c)

	got := store.GetMany([]string{c.ID, "tx-pruned", a.ID})

	require.Len(t, got, 2)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
}

func TestGetManyEmpty(t *testing.T) {
	store := NewStore()

	assert.Empty(t, store.GetMany(nil))
	assert.Empty(t, store.GetMany([]string{"tx-1"}))
}

func TestFindByID(t *testing.T) {
	gen := id.NewSequence("tx")
	a := newTx(t, gen, "1")
	b := newTx(t, gen, "2")
	txs := []model.Transaction{a, b}

	got, ok := FindByID(txs, b.ID)
	require.True(t, ok)
	assert.Equal(t, b, got)

	_, ok = FindByID(txs, "tx-nope")
	assert.False(t, ok)
}
