package categorize

import (
	"context"
	"fmt"
	"time"

	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/pennypilot/pennypilot/internal/service"
)

// BudgetRelevantTransactions returns the transactions that count toward
// spending totals: not ignored, not internal transfers, debits only, and in
// a budget-relevant category. Income and savings are excluded by category
// definition even when the polarity check would let them through.
func (e *Engine) BudgetRelevantTransactions(ctx context.Context) ([]model.Transaction, error) {
	all, err := e.storage.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var relevant []model.Transaction
	for _, txn := range all {
		if e.isBudgetRelevant(txn) {
			relevant = append(relevant, txn)
		}
	}
	return relevant, nil
}

func (e *Engine) isBudgetRelevant(txn model.Transaction) bool {
	if txn.IsIgnored || txn.IsInternalTransfer {
		return false
	}
	if txn.Direction == model.DirectionCredit {
		return false
	}
	if cat := model.CategoryByID(e.categories, txn.EffectiveCategory()); cat != nil && !cat.BudgetRelevant {
		return false
	}
	return true
}

// SpendingByCategory sums budget-relevant transaction amounts grouped by
// category. The optional date window is inclusive on both ends.
func (e *Engine) SpendingByCategory(ctx context.Context, start, end *time.Time) (map[string]float64, error) {
	relevant, err := e.BudgetRelevantTransactions(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, txn := range relevant {
		if start != nil && txn.Date.Before(*start) {
			continue
		}
		if end != nil && txn.Date.After(*end) {
			continue
		}
		totals[txn.EffectiveCategory()] += txn.Amount
	}
	return totals, nil
}
