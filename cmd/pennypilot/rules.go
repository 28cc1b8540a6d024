package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage learned category rules",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesDeleteCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learned rules for the current user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			engine := newEngine(store)

			rules := engine.Rules(ctx)
			if len(rules) == 0 {
				cmd.Println("No learned rules yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "MERCHANT\tCATEGORY\tCONFIDENCE\tUSES\tUPDATED")
			for _, r := range rules {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%s\n",
					r.MerchantPattern, r.Category, r.Confidence,
					r.TransactionCount, r.UpdatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func rulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <merchant-pattern>",
		Short: "Delete a learned rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			engine := newEngine(store)

			if err := engine.DeleteRule(ctx, args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted rule %q\n", args[0])
			return nil
		},
	}
}
