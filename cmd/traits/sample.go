package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <trait> [slot...]",
	Short: "Sample a trait for an occupancy array",
	Long: `Draws values of <trait> for an occupancy array and prints them as a JSON array.

Slots are given as arguments (e.g. "traits sample infectivity 0 1 0 1 1").
Without slot arguments, occupancy arrays are read from stdin as JSON, one
array per line, and one result line is printed per input line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(cmd, nil)
		if err != nil {
			return err
		}
		name := args[0]
		enc := json.NewEncoder(cmd.OutOrStdout())

		if len(args) > 1 {
			occ, err := parseSlots(args[1:])
			if err != nil {
				return err
			}
			values, err := cat.Sample(name, occ)
			if err != nil {
				return err
			}
			return enc.Encode(values)
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			var input any
			if err := json.Unmarshal([]byte(text), &input); err != nil {
				return fmt.Errorf("line %d: invalid JSON: %w", line, err)
			}
			values, err := cat.SampleAny(name, input)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			if err := enc.Encode(values); err != nil {
				return err
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

// parseSlots accepts space- or comma-separated numbers.
func parseSlots(args []string) ([]float64, error) {
	var occ []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid slot %q: %w", field, err)
			}
			occ = append(occ, v)
		}
	}
	return occ, nil
}
