package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/schemas"
	embedded "github.com/jonathan/placement-suite/schemas"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect job catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a job catalog against the catalog schema",
	Long: "Validates a JSON or YAML job catalog against the embedded schema, then loads it and " +
		"reports every listing that would be skipped. Defaults to the configured catalog.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := app.cfg.Catalog
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no catalog given (pass a file or set --catalog)")
	}
	return validateCatalog(cmd.OutOrStdout(), path)
}

// validateCatalog prints schema violations and rejected listings. It fails when
// either check finds a problem.
func validateCatalog(out io.Writer, path string) error {
	schemaErr := schemas.ValidateFile(embedded.Catalog, path)
	var validationErr *schemas.ValidationError
	switch {
	case schemaErr == nil:
		_, _ = fmt.Fprintln(out, "✅ Schema: valid")
	case errors.As(schemaErr, &validationErr):
		_, _ = fmt.Fprintf(out, "❌ Schema: %d problem(s)\n", len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "   %s: %s\n", fe.Field, fe.Message)
		}
	default:
		return schemaErr
	}

	catalog, rejected, err := jobs.LoadCatalog(path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Listings: %d loaded, %d skipped\n", len(catalog), len(rejected))
	for _, r := range rejected {
		_, _ = fmt.Fprintf(out, "   %v\n", r)
	}

	if schemaErr != nil || len(rejected) > 0 {
		return fmt.Errorf("catalog %s has problems", path)
	}
	return nil
}
