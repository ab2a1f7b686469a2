// Package remind implements the upcoming-payment reminder commands
package remind

import (
	"fmt"

	"fjacquet/financeos/cmd/common"
	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/internal/models"
	"fjacquet/financeos/internal/reminders"

	"github.com/spf13/cobra"
)

// Cmd represents the remind command
var Cmd = NewCmd()

// NewCmd builds the remind command tree.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remind",
		Aliases: []string{"reminder"},
		Short:   "Manage upcoming-payment reminders",
		Long: `Reminders are standalone due dates shared by all portfolios. A reminder is
active when it is not dismissed and due within its lead days.`,
	}
	cmd.AddCommand(
		newAddCmd(),
		newStateCmd("dismiss", "Silence a reminder", (*reminders.Book).Dismiss),
		newStateCmd("reactivate", "Clear a reminder's dismissed flag", (*reminders.Book).Reactivate),
		newStateCmd("delete", "Delete a reminder", (*reminders.Book).Delete),
		newListCmd(),
	)
	return cmd
}

func newAddCmd() *cobra.Command {
	var form models.ReminderForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := c.GetReminders().Add(form)
			if err != nil {
				return common.Fail(root.Log, "add_reminder", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Name, "name", "n", "", "Reminder name")
	cmd.Flags().StringVar(&form.DueDate, "due", "", "Due date")
	cmd.Flags().StringVarP(&form.Amount, "amount", "a", "", "Expected amount (optional)")
	cmd.Flags().StringVarP(&form.Type, "type", "t", "", "Type: bill, subscription, debt or other")
	cmd.Flags().StringVar(&form.ReminderDays, "lead-days", "", "Days before the due date to start reminding (default from config)")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func newStateCmd(use, short string, apply func(*reminders.Book, string) (reminders.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := apply(c.GetReminders(), args[0])
			if err != nil {
				return common.Fail(root.Log, use+"_reminder", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List overdue reminders, then active ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			book := c.GetReminders()
			evaluations := append(book.Overdue(), book.Active()...)
			if all {
				evaluations = book.Evaluate()
			}
			currency := root.Currency(c)

			w := common.NewTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "DUE\tIN\tURGENCY\tNAME\tTYPE\tAMOUNT\tID")
			for _, e := range evaluations {
				r := e.Reminder
				amount := ""
				if r.Amount != nil {
					amount = common.Money(*r.Amount, currency)
				}
				urgency := string(e.Urgency)
				if r.Dismissed {
					urgency += " (dismissed)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.DueDate, daysLabel(e.DaysUntil), urgency, r.Name, r.Type, amount, r.ID)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include quiet and dismissed reminders")
	return cmd
}

func daysLabel(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%dd late", -days)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("%dd", days)
	}
}
