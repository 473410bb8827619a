package main

import (
	"github.com/aretw0/traits/internal/presentation/histogram"
	"github.com/spf13/cobra"
)

var plotCmd = &cobra.Command{
	Use:   "plot <trait>",
	Short: "Render a histogram of sampled trait values",
	Long:  `Samples <trait> for a batch of occupants and prints a text histogram with the sample mean and variance.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(cmd, nil)
		if err != nil {
			return err
		}
		t, err := cat.Trait(args[0])
		if err != nil {
			return err
		}

		samples, _ := cmd.Flags().GetInt("samples")
		bins, _ := cmd.Flags().GetInt("bins")
		width, _ := cmd.Flags().GetInt("width")

		report, err := histogram.Build(t, samples, bins)
		if err != nil {
			return err
		}
		return histogram.Render(cmd.OutOrStdout(), report, width)
	},
}

func init() {
	plotCmd.Flags().Int("samples", histogram.DefaultSamples, "Number of occupants to draw")
	plotCmd.Flags().Int("bins", histogram.DefaultBins, "Number of histogram bins")
	plotCmd.Flags().Int("width", histogram.DefaultWidth, "Width of the longest bar")
	rootCmd.AddCommand(plotCmd)
}
