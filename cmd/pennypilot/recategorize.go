package main

import (
	"github.com/spf13/cobra"
)

func recategorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recategorize <transaction-id> <category>",
		Short: "Manually assign a category and learn a rule from it",
		Long: `Assign a category to a transaction by hand. The merchant is remembered:
future transactions from the same merchant pick up the category
automatically.

With --similar, the category is also applied to the listed transactions
when they share the merchant and have a comparable amount.`,
		Args: cobra.ExactArgs(2),
		RunE: runRecategorize,
	}

	cmd.Flags().StringSlice("similar", nil, "Additional transaction IDs to apply the category to")

	return cmd
}

func runRecategorize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, category := args[0], args[1]
	similar, _ := cmd.Flags().GetStringSlice("similar")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	engine := newEngine(store)

	if len(similar) > 0 {
		ids := append([]string{id}, similar...)
		updated, err := engine.ApplyCategoryToSimilar(ctx, ids, category)
		if err != nil {
			return err
		}
		cmd.Printf("Applied %q to %d transactions\n", category, updated)
		return nil
	}

	if err := engine.UpdateTransactionCategory(ctx, id, category); err != nil {
		return err
	}
	cmd.Printf("Transaction %s categorized as %q\n", id, category)
	return nil
}
