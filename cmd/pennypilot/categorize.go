package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func categorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categorize",
		Short: "Categorize stored transactions that have no category yet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			engine := newEngine(store)

			txns, err := store.GetUncategorizedTransactions(ctx)
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				cmd.Println("Nothing to categorize")
				return nil
			}

			for _, txn := range engine.CategorizeAll(ctx, txns) {
				if err := store.UpdateTransaction(ctx, &txn); err != nil {
					return fmt.Errorf("failed to save categorization for %s: %w", txn.ID, err)
				}
			}

			cmd.Printf("Categorized %d transactions\n", len(txns))
			return nil
		},
	}
}
