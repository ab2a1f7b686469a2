// Package tx implements the transaction commands of the active portfolio
package tx

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/financeos/cmd/common"
	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the tx command
var Cmd = NewCmd()

// NewCmd builds the tx command tree.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction"},
		Short:   "Record, list, export and import transactions",
		Long:    `Manage the income and expense transactions of the active portfolio.`,
	}
	cmd.AddCommand(
		newAddCmd(),
		newDeleteCmd(),
		newListCmd(),
		newExportCmd(),
		newImportCmd(),
		newCategoriesCmd(),
	)
	return cmd
}

func newAddCmd() *cobra.Command {
	var form models.TransactionForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Long: `Add an income or expense transaction. The type defaults to expense, the
date to today, and a blank category is suggested from the description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := c.GetLedger().AddTransaction(form)
			if err != nil {
				return common.Fail(root.Log, "add_transaction", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Type, "type", "t", "", "Transaction type (income or expense)")
	cmd.Flags().StringVarP(&form.Amount, "amount", "a", "", "Amount, greater than zero")
	cmd.Flags().StringVarP(&form.Category, "category", "k", "", "Category (suggested when empty)")
	cmd.Flags().StringVarP(&form.Description, "description", "d", "", "Description")
	cmd.Flags().StringVar(&form.Date, "date", "", "Date (defaults to today)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := c.GetLedger().DeleteTransaction(args[0])
			if err != nil {
				return common.Fail(root.Log, "delete_transaction", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var txType string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			filter := strings.ToLower(strings.TrimSpace(txType))
			if filter != "" && !models.IsValidTransactionType(filter) {
				return fmt.Errorf("invalid type filter %q (must be income or expense)", txType)
			}
			currency := root.Currency(c)

			w := common.NewTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tDESCRIPTION\tAMOUNT\tID")
			shown := 0
			for _, t := range c.GetLedger().ActivePortfolio().Transactions {
				if filter != "" && string(t.Type) != filter {
					continue
				}
				if limit > 0 && shown == limit {
					break
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Date, t.Type, t.Category, t.Description, common.Money(t.SignedAmount(), currency), t.ID)
				shown++
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&txType, "type", "t", "", "Only show income or expense")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n transactions (0 for all)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			txs := c.GetLedger().ActivePortfolio().Transactions
			if output == "" || output == "-" {
				return c.GetExporter().WriteTransactions(cmd.OutOrStdout(), txs)
			}
			if err := c.GetExporter().ExportTransactions(output, txs); err != nil {
				return fmt.Errorf("error exporting transactions: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", len(txs), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (stdout when empty)")
	return cmd
}

func newImportCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions from a CSV export",
		Long: `Import transactions from a CSV file with the export headers
(Date, Type, Category, Description, Amount). Ids are assigned anew, and
nothing is imported when any row is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			file, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("error opening %s: %w", input, err)
			}
			defer func() {
				if cerr := file.Close(); cerr != nil {
					root.Log.WithError(cerr).Warn("Failed to close input file", logging.F(logging.FieldFile, input))
				}
			}()

			forms, err := c.GetExporter().ReadTransactionForms(file)
			if err != nil {
				return fmt.Errorf("error reading %s: %w", input, err)
			}
			res, err := c.GetLedger().ImportTransactions(forms)
			if err != nil {
				return common.Fail(root.Log, "import_transactions", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	var txType string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories of a transaction type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			kind := models.TransactionType(strings.ToLower(txType))
			if !models.IsValidTransactionType(string(kind)) {
				return fmt.Errorf("invalid type %q (must be income or expense)", txType)
			}
			for _, name := range c.GetCatalog().Names(kind) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&txType, "type", "t", string(models.TransactionTypeExpense), "Transaction type (income or expense)")
	return cmd
}
