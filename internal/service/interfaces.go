// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/pennypilot/pennypilot/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
}

// Storage defines the contract for the transaction persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactionsByIDs(ctx context.Context, ids []string) ([]model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetUncategorizedTransactions(ctx context.Context) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RuleStore is the persistence collaborator for learned category rules.
// Rules are loaded and saved as a whole set per user; callers serialize
// concurrent mutations for the same user.
type RuleStore interface {
	LoadRules(ctx context.Context, userID string) ([]model.CategoryRule, error)
	SaveRules(ctx context.Context, userID string, rules []model.CategoryRule) error
	DeleteRule(ctx context.Context, userID, merchantPattern string) error
}
