// Package debt implements the installment debt commands
package debt

import (
	"fmt"

	"fjacquet/financeos/cmd/common"
	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/internal/amortization"
	"fjacquet/financeos/internal/currencyutils"
	"fjacquet/financeos/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the debt command
var Cmd = NewCmd()

// NewCmd builds the debt command tree.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Track installment debts and their payoff plans",
		Long: `Manage the fixed-payment debts of the active portfolio. Payments are also
recorded as expense transactions.`,
	}
	cmd.AddCommand(
		newAddCmd(),
		newPayCmd(),
		newDeleteCmd(),
		newListCmd(),
		newShowCmd(),
		newPlanExportCmd(),
	)
	return cmd
}

func newAddCmd() *cobra.Command {
	var form models.DebtForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a debt and compute its amortization plan",
		Long: `Add a debt. The monthly payment must cover the first month's interest and
pay the debt off within 600 months, otherwise nothing is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := c.GetLedger().AddDebt(form)
			if err != nil {
				return common.Fail(root.Log, "add_debt", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Name, "name", "n", "", "Debt name")
	cmd.Flags().StringVar(&form.Total, "total", "", "Principal amount")
	cmd.Flags().StringVar(&form.Interest, "interest", "", "Annual interest rate in percent (default 0)")
	cmd.Flags().StringVar(&form.Payment, "payment", "", "Fixed monthly payment")
	cmd.Flags().StringVar(&form.StartDate, "start", "", "Start date (defaults to today)")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}

func newPayCmd() *cobra.Command {
	var amount string
	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Record a payment against a debt",
		Long:  `Record a payment. Amounts above the remaining balance are clipped to it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			if amount == "" {
				d, err := c.GetLedger().Debt(args[0])
				if err != nil {
					return common.Fail(root.Log, "make_payment", err)
				}
				amount = d.Payment.String()
			}
			res, err := c.GetLedger().MakePayment(args[0], amount)
			if err != nil {
				return common.Fail(root.Log, "make_payment", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Payment amount (defaults to the monthly payment)")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt, keeping its payment transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := c.GetLedger().DeleteDebt(args[0])
			if err != nil {
				return common.Fail(root.Log, "delete_debt", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List debts with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			currency := root.Currency(c)

			w := common.NewTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "NAME\tREMAINING\tPAYMENT\tRATE\tPAID\tSTATUS\tID")
			for _, d := range c.GetLedger().ActivePortfolio().Debts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\t%s\t%s\n",
					d.Name,
					common.Money(d.Remaining, currency),
					common.Money(d.Payment, currency),
					d.Interest.String(),
					currencyutils.Percent(d.Paid, d.Total),
					status(d),
					d.ID)
			}
			return w.Flush()
		},
	}
}

func newShowCmd() *cobra.Command {
	var withPlan bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a debt, its progress and its payoff plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			d, err := c.GetLedger().Debt(args[0])
			if err != nil {
				return common.Fail(root.Log, "show_debt", err)
			}
			currency := root.Currency(c)
			progress := amortization.ProgressOf(d)
			out := cmd.OutOrStdout()

			w := common.NewTable(out)
			fmt.Fprintf(w, "Name:\t%s\n", d.Name)
			fmt.Fprintf(w, "Status:\t%s\n", status(d))
			fmt.Fprintf(w, "Total:\t%s\n", common.Money(d.Total, currency))
			fmt.Fprintf(w, "Paid:\t%s (%s%%)\n", common.Money(d.Paid, currency), progress.Percent.StringFixed(1))
			fmt.Fprintf(w, "Remaining:\t%s\n", common.Money(d.Remaining, currency))
			fmt.Fprintf(w, "Monthly payment:\t%s\n", common.Money(d.Payment, currency))
			fmt.Fprintf(w, "Annual interest:\t%s%%\n", d.Interest.String())
			fmt.Fprintf(w, "Start date:\t%s\n", d.StartDate)
			fmt.Fprintf(w, "Plan:\t%d months, %s interest\n", progress.PlanMonths, common.Money(amortization.TotalInterest(d.Plan), currency))
			fmt.Fprintf(w, "Covered:\t%d of %d months\n", progress.CoveredThrough, progress.PlanMonths)
			if d.Notes != "" {
				fmt.Fprintf(w, "Notes:\t%s\n", d.Notes)
			}
			fmt.Fprintf(w, "Payments:\t%d\n", len(d.Payments))
			if err := w.Flush(); err != nil {
				return err
			}

			if !withPlan {
				return nil
			}
			fmt.Fprintln(out)
			w = common.NewTable(out)
			fmt.Fprintln(w, "\tMONTH\tPAYMENT\tPRINCIPAL\tINTEREST\tREMAINING")
			for i, row := range d.Plan {
				marker := ""
				if i < progress.CoveredThrough {
					marker = "x"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", marker, row.Month,
					common.Money(row.Payment, currency),
					common.Money(row.Principal, currency),
					common.Money(row.Interest, currency),
					common.Money(row.Remaining, currency))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&withPlan, "plan", "p", false, "Print the amortization plan")
	return cmd
}

func newPlanExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "plan-export <id>",
		Short: "Export a debt's amortization plan to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			d, err := c.GetLedger().Debt(args[0])
			if err != nil {
				return common.Fail(root.Log, "export_plan", err)
			}
			if output == "" || output == "-" {
				return c.GetExporter().WritePlan(cmd.OutOrStdout(), d.Plan)
			}
			if err := c.GetExporter().ExportPlan(output, d.Plan); err != nil {
				return fmt.Errorf("error exporting plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d plan rows to %s\n", len(d.Plan), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (stdout when empty)")
	return cmd
}

func status(d models.Debt) string {
	if d.IsSettled() {
		return "settled"
	}
	return "open"
}
