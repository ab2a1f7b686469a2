package ledger

import (
	"testing"

	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTransaction(t *testing.T) {
	f := newFixture(t)

	result, err := f.store.AddTransaction(models.TransactionForm{
		Type:        "income",
		Amount:      "5000",
		Category:    "Salary",
		Description: " March salary ",
		Date:        "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Success("Transaction added"), result.Notification)

	txs := f.store.ActivePortfolio().Transactions
	require.Len(t, txs, 1)
	tx := txs[0]
	assert.Equal(t, "id-2", tx.ID)
	assert.Equal(t, models.TransactionTypeIncome, tx.Type)
	assert.True(t, tx.Amount.Equal(dec("5000")))
	assert.Equal(t, "Salary", tx.Category)
	assert.Equal(t, "March salary", tx.Description)
	assert.Equal(t, "2024-03-01", tx.Date)
}

func TestAddTransaction_PrependsNewestFirst(t *testing.T) {
	f := newFixture(t)

	for _, amount := range []string{"1", "2", "3"} {
		_, err := f.store.AddTransaction(models.TransactionForm{Amount: amount, Category: "Food"})
		require.NoError(t, err)
	}

	txs := f.store.ActivePortfolio().Transactions
	require.Len(t, txs, 3)
	assert.True(t, txs[0].Amount.Equal(dec("3")))
	assert.True(t, txs[2].Amount.Equal(dec("1")))
}

func TestAddTransaction_Defaults(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.AddTransaction(models.TransactionForm{Amount: "12.50", Description: "Taxi home"})
	require.NoError(t, err)

	tx := f.store.ActivePortfolio().Transactions[0]
	assert.Equal(t, models.TransactionTypeExpense, tx.Type)
	assert.Equal(t, "2024-03-15", tx.Date)
	assert.Equal(t, "Transport", tx.Category)
}

func TestAddTransaction_Validation(t *testing.T) {
	tests := []struct {
		name  string
		form  models.TransactionForm
		field string
	}{
		{name: "missing amount", form: models.TransactionForm{Type: "expense"}, field: "amount"},
		{name: "non numeric amount", form: models.TransactionForm{Amount: "abc"}, field: "amount"},
		{name: "zero amount", form: models.TransactionForm{Amount: "0"}, field: "amount"},
		{name: "negative amount", form: models.TransactionForm{Amount: "-5"}, field: "amount"},
		{name: "unknown type", form: models.TransactionForm{Type: "transfer", Amount: "5"}, field: "type"},
		{name: "bad date", form: models.TransactionForm{Amount: "5", Date: "someday"}, field: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			before := f.store.Snapshot()

			_, err := f.store.AddTransaction(tt.form)
			require.Error(t, err)

			var verr *ledgererror.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, before, f.store.Snapshot(), "no state change on validation error")
			assert.Equal(t, 0, f.kv.Saves)
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.AddTransaction(models.TransactionForm{Amount: "10", Category: "Food"})
	require.NoError(t, err)
	_, err = f.store.AddTransaction(models.TransactionForm{Amount: "20", Category: "Food"})
	require.NoError(t, err)

	target := f.store.ActivePortfolio().Transactions[1].ID
	_, err = f.store.DeleteTransaction(target)
	require.NoError(t, err)

	txs := f.store.ActivePortfolio().Transactions
	require.Len(t, txs, 1)
	assert.NotEqual(t, target, txs[0].ID)
}

func TestDeleteTransaction_UnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.AddTransaction(models.TransactionForm{Amount: "10", Category: "Food"})
	require.NoError(t, err)
	before := f.store.ActivePortfolio().Transactions

	_, err = f.store.DeleteTransaction("missing")
	require.NoError(t, err)
	assert.Equal(t, before, f.store.ActivePortfolio().Transactions)
}

func TestTransactionsAreScopedToActivePortfolio(t *testing.T) {
	f := newFixture(t)
	first := f.store.ActivePortfolio().ID

	_, err := f.store.AddTransaction(models.TransactionForm{Amount: "10", Category: "Food"})
	require.NoError(t, err)
	_, err = f.store.CreatePortfolio("Side")
	require.NoError(t, err)
	_, err = f.store.AddTransaction(models.TransactionForm{Amount: "99", Category: "Food"})
	require.NoError(t, err)

	state := f.store.Snapshot()
	mainPortfolio, _ := state.Find(first)
	require.Len(t, mainPortfolio.Transactions, 1)
	assert.True(t, mainPortfolio.Transactions[0].Amount.Equal(dec("10")))
	assert.Len(t, f.store.ActivePortfolio().Transactions, 1)
}

func TestImportTransactions(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.AddTransaction(models.TransactionForm{Amount: "1", Category: "Food", Date: "2024-01-01"})
	require.NoError(t, err)

	result, err := f.store.ImportTransactions([]models.TransactionForm{
		{Type: "income", Amount: "100", Category: "Salary", Date: "2024-03-02"},
		{Type: "expense", Amount: "20", Description: "Bus pass", Date: "2024-03-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Success("Imported 2 transactions"), result.Notification)
	assert.True(t, result.Persisted)

	txs := f.store.ActivePortfolio().Transactions
	require.Len(t, txs, 3)
	assert.Equal(t, "2024-03-02", txs[0].Date)
	assert.Equal(t, "2024-03-01", txs[1].Date)
	assert.Equal(t, "Transport", txs[1].Category)
	assert.Equal(t, "2024-01-01", txs[2].Date)
}

func TestImportTransactions_AllOrNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.ImportTransactions([]models.TransactionForm{
		{Amount: "10", Category: "Food"},
		{Amount: "-5", Category: "Food"},
	})
	require.Error(t, err)
	assert.True(t, ledgererror.IsValidation(err))
	assert.Contains(t, err.Error(), "row 2")
	assert.Empty(t, f.store.ActivePortfolio().Transactions)
	assert.Equal(t, 0, f.kv.Saves)
}
