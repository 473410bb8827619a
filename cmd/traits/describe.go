package main

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/traits/internal/presentation/tui"
	"github.com/aretw0/traits/pkg/domain"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [trait]",
	Short: "Describe the traits of the catalog",
	Long:  `Prints the description of one trait, or a table of every trait in the catalog.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(cmd, nil)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			desc, err := cat.Describe(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), desc)
			return nil
		}

		list := make([]domain.Trait, 0, len(cat.Names()))
		for _, name := range cat.Names() {
			t, err := cat.Trait(name)
			if err != nil {
				return err
			}
			list = append(list, t)
		}

		path, _ := cmd.Flags().GetString("file")
		md := tui.CatalogMarkdown(filepath.Base(path), list)

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer("")
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	describeCmd.Flags().Bool("plain", false, "Print raw markdown instead of rendering it")
	rootCmd.AddCommand(describeCmd)
}
