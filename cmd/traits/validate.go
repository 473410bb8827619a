package main

import (
	"fmt"

	"github.com/aretw0/traits/internal/validator"
	"github.com/aretw0/traits/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for invalid traits",
	Long:  `Reads the catalog file and reports every trait with a bad name, unknown distribution or invalid parameters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if err := validator.ValidateCatalog(file.NewLoader(path)); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
