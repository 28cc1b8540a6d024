package categorize

import (
	"context"
	"testing"
	"time"

	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/pennypilot/pennypilot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReportTransactions(t *testing.T, e *Engine) {
	t.Helper()
	ctx := context.Background()

	groceries := testutil.MakeTransaction("t1", "TESCO STORES 3456", 50.00)
	groceries.Category = model.CategoryGroceries
	groceries.Date = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	dining := testutil.MakeTransaction("t2", "CORNER CAFE", 20.00)
	dining.Category = model.CategoryDining
	dining.Date = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	salary := testutil.MakeTransaction("t3", "ACME CORP SALARY", 2847.33)
	salary.Direction = model.DirectionCredit
	salary.Category = model.CategoryIncome

	transfer := testutil.MakeTransaction("t4", "TRANSFER TO SAVINGS", 500.00)
	transfer.Category = model.CategoryTransfers
	transfer.IsInternalTransfer = true

	ignored := testutil.MakeTransaction("t5", "DUPLICATE ROW", 10.00)
	ignored.Category = model.CategoryDining
	ignored.IsIgnored = true

	savings := testutil.MakeTransaction("t6", "VANGUARD ISA", 200.00)
	savings.Category = model.CategorySavings

	// The user moved this one into dining; the report must follow the
	// user's category, not the automated one.
	recat := testutil.MakeTransaction("t7", "HOTEL BREAKFAST", 15.00)
	recat.Category = model.CategoryOther
	recat.UserCategory = model.CategoryDining
	recat.Date = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	saved, err := e.storage.SaveTransactions(ctx, []model.Transaction{
		groceries, dining, salary, transfer, ignored, savings, recat,
	})
	require.NoError(t, err)
	require.Equal(t, 7, saved)
}

func TestBudgetRelevantTransactions(t *testing.T) {
	e, _ := newTestEngine(t)
	seedReportTransactions(t, e)

	relevant, err := e.BudgetRelevantTransactions(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool, len(relevant))
	for _, txn := range relevant {
		ids[txn.ID] = true
	}
	assert.Equal(t, map[string]bool{"t1": true, "t2": true, "t7": true}, ids)

	for _, txn := range relevant {
		assert.False(t, txn.IsIgnored)
		assert.False(t, txn.IsInternalTransfer)
		assert.Equal(t, model.DirectionDebit, txn.Direction)
	}
}

func TestSpendingByCategory(t *testing.T) {
	e, _ := newTestEngine(t)
	seedReportTransactions(t, e)

	totals, err := e.SpendingByCategory(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 50.00, totals[model.CategoryGroceries], 0.001)
	assert.InDelta(t, 35.00, totals[model.CategoryDining], 0.001)
	assert.NotContains(t, totals, model.CategoryIncome)
	assert.NotContains(t, totals, model.CategoryTransfers)
	assert.NotContains(t, totals, model.CategorySavings)
}

func TestSpendingByCategory_DateWindow(t *testing.T) {
	e, _ := newTestEngine(t)
	seedReportTransactions(t, e)

	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	totals, err := e.SpendingByCategory(context.Background(), &start, &end)
	require.NoError(t, err)

	// Both ends inclusive: the March 20 dining rows are in, the March 10
	// groceries row is out.
	assert.NotContains(t, totals, model.CategoryGroceries)
	assert.InDelta(t, 35.00, totals[model.CategoryDining], 0.001)
}
