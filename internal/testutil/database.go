// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/pennypilot/pennypilot/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite store and registers
// cleanup with the test.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// MakeTransaction builds a debit transaction with sensible defaults for
// tests. The hash is derived from the fields.
func MakeTransaction(id, description string, amount float64) model.Transaction {
	txn := model.Transaction{
		ID:           id,
		Date:         time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:  description,
		MerchantName: description,
		Amount:       amount,
		Direction:    model.DirectionDebit,
	}
	txn.Hash = txn.GenerateHash()
	return txn
}
