package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pennypilot/pennypilot/internal/bankformat"
	"github.com/pennypilot/pennypilot/internal/common"
	"github.com/pennypilot/pennypilot/internal/csvparse"
	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from bank CSV exports",
		Long: `Import transactions from CSV files exported by your bank. The file layout
is detected automatically; use --bank to force a specific bank profile.

Examples:
  pennypilot import ~/Downloads/statement.csv
  pennypilot import --bank monzo ~/Downloads/monzo_*.csv
  pennypilot import --dry-run ~/Downloads/*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	cmd.Flags().String("bank", "", "Bank profile ID (skips auto-detection)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	bankID, _ := cmd.Flags().GetString("bank")

	var profile *bankformat.Profile
	if bankID != "" {
		profile = bankformat.ProfileByID(bankID)
		if profile == nil {
			return fmt.Errorf("%w: unknown bank profile %q", common.ErrInvalidConfig, bankID)
		}
	}

	files, err := expandFileArgs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	engine := newEngine(store)

	totalImported := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		result := csvparse.ParseCSV(string(data), profile)
		slog.Info("parsed CSV file",
			"file", filepath.Base(file),
			"format", result.FormatLabel,
			"rows", len(result.Rows),
			"errors", len(result.Errors))

		for _, e := range result.Errors {
			cmd.Printf("  warning: %s\n", e)
		}
		if len(result.Rows) == 0 {
			cmd.Printf("%s: no transactions found\n", filepath.Base(file))
			continue
		}

		bar := progressbar.Default(int64(len(result.Rows)), filepath.Base(file))
		txns := make([]model.Transaction, 0, len(result.Rows))
		for _, row := range result.Rows {
			txn := row.ToTransaction(uuid.New().String())
			txns = append(txns, engine.Categorize(ctx, txn))
			_ = bar.Add(1)
		}

		if dryRun {
			cmd.Printf("%s: would import %d transactions (%s)\n",
				filepath.Base(file), len(txns), result.FormatLabel)
			continue
		}

		saved, err := store.SaveTransactions(ctx, txns)
		if err != nil {
			return fmt.Errorf("failed to save transactions from %s: %w", file, err)
		}
		skipped := len(txns) - saved
		cmd.Printf("%s: imported %d transactions (%d duplicates skipped)\n",
			filepath.Base(file), saved, skipped)
		totalImported += saved
	}

	if !dryRun {
		cmd.Printf("Imported %d transactions total\n", totalImported)
	}
	return nil
}

func expandFileArgs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
