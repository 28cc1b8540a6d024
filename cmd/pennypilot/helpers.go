package main

import (
	"context"
	"fmt"

	"github.com/pennypilot/pennypilot/internal/categorize"
	"github.com/pennypilot/pennypilot/internal/config"
	"github.com/pennypilot/pennypilot/internal/storage"
	"github.com/spf13/viper"
)

// initStorage opens the configured database and applies migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// newEngine builds a categorization engine scoped to the configured user.
func newEngine(store *storage.SQLiteStorage) *categorize.Engine {
	cfg := categorize.DefaultConfig()
	if viper.IsSet("categorize.round_amount_transfer_heuristic") {
		cfg.RoundAmountTransferHeuristic = viper.GetBool("categorize.round_amount_transfer_heuristic")
	}
	return categorize.NewWithConfig(store, store, currentUser(), cfg)
}

func currentUser() string {
	user := viper.GetString("user")
	if user == "" {
		user = "default"
	}
	return user
}
