// Package stats implements the summary command of the active portfolio
package stats

import (
	"fmt"

	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/internal/fileutils"
	"fjacquet/financeos/internal/models"
	"fjacquet/financeos/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the stats command
var Cmd = NewCmd()

// NewCmd builds the stats command.
func NewCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the active portfolio",
		Long: `Print totals, the six-month income and expense flow, the top expense
categories, debt progress and the reminders that need attention.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			summary := report.BuildSummary(
				c.GetLedger().ActivePortfolio(),
				c.GetReminders().List(),
				c.Now(),
				root.Currency(c),
			)
			data, err := c.GetReporter().Generate(summary, format)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := fileutils.WriteFile(output, data, models.PermissionExport); err != nil {
				return fmt.Errorf("error writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format (text, json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when empty)")
	return cmd
}
