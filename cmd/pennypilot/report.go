package main

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/pennypilot/pennypilot/internal/common"
	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show budget-relevant spending grouped by category",
		Long: `Sum spending by category over budget-relevant transactions. Ignored
transactions, internal transfers, credits, income and savings are excluded.`,
		RunE: runReport,
	}

	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD, inclusive)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	start, err := parseDateFlag(cmd, "from")
	if err != nil {
		return err
	}
	end, err := parseDateFlag(cmd, "to")
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	engine := newEngine(store)

	totals, err := engine.SpendingByCategory(ctx, start, end)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		cmd.Println("No budget-relevant spending found")
		return nil
	}

	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return totals[ids[i]] > totals[ids[j]] })

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "CATEGORY\tSPENT")
	grand := 0.0
	categories := engine.Categories()
	for _, id := range ids {
		name := id
		if cat := model.CategoryByID(categories, id); cat != nil {
			name = cat.Name
		}
		fmt.Fprintf(w, "%s\t%.2f\n", name, totals[id])
		grand += totals[id]
	}
	fmt.Fprintf(w, "TOTAL\t%.2f\n", grand)
	return nil
}

func parseDateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("invalid --%s date %q: expected YYYY-MM-DD", name, raw), err)
	}
	return &t, nil
}
