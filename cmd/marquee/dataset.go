package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmunix/marquee/internal/dataset"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the SQLite catalog store",
}

var datasetImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace the stored catalog with a JSON array of records",
	Long: `Imports a JSON array of upstream movie records into the SQLite store
used by the "sqlite" catalog source. Existing records are replaced.

Example:
  marquee dataset import movies.json --db ~/.local/share/marquee/catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: runDatasetImport,
}

var datasetCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count stored records",
	Args:  cobra.NoArgs,
	RunE:  runDatasetCount,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetImportCmd, datasetCountCmd)
	datasetCmd.PersistentFlags().String("db", "catalog.db", "SQLite database path")
}

func openStore(cmd *cobra.Command) (*dataset.SQLiteStore, func(), error) {
	path, _ := cmd.Flags().GetString("db")
	db, err := dataset.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	return dataset.NewSQLiteStore(db, newLogger("warn")), func() { _ = db.Close() }, nil
}

func runDatasetImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	store, closeDB, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeDB()

	imported, skipped, err := store.Import(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]int{"imported": imported, "skipped": skipped})
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records", imported)
	if skipped > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (%d skipped)", skipped)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func runDatasetCount(cmd *cobra.Command, _ []string) error {
	store, closeDB, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeDB()

	n, err := store.Count(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]int{"records": n})
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d records\n", n)
	return nil
}
