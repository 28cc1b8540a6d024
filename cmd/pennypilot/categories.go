package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the spending category catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tNAME\tBUDGET\tKEYWORDS")
			for _, cat := range model.DefaultCategories() {
				budget := "yes"
				if !cat.BudgetRelevant {
					budget = "no"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cat.ID, cat.Name, budget, strings.Join(cat.Keywords, ", "))
			}
			return nil
		},
	}
}
