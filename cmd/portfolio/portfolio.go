// Package portfolio implements the commands that manage portfolios
package portfolio

import (
	"fmt"
	"strings"

	"fjacquet/financeos/cmd/common"
	"fjacquet/financeos/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the portfolio command
var Cmd = NewCmd()

// NewCmd builds the portfolio command tree.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Create, switch and list portfolios",
		Long:  `Portfolios are isolated ledgers. Transaction and debt commands always act on the active portfolio.`,
	}
	cmd.AddCommand(newCreateCmd(), newSwitchCmd(), newListCmd())
	return cmd
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a portfolio and make it active",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := c.GetLedger().CreatePortfolio(strings.Join(args, " "))
			if err != nil {
				return common.Fail(root.Log, "create_portfolio", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
}

func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Make another portfolio active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			res, err := c.GetLedger().SwitchPortfolio(args[0])
			if err != nil {
				return common.Fail(root.Log, "switch_portfolio", err)
			}
			common.PrintResult(cmd.OutOrStdout(), res.Notification, res.Persisted, res.PersistErr)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List portfolios, marking the active one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			active := c.GetLedger().ActivePortfolio()

			w := common.NewTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "\tID\tNAME\tCREATED\tTRANSACTIONS\tDEBTS")
			for _, p := range c.GetLedger().Portfolios() {
				marker := ""
				if p.ID == active.ID {
					marker = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
					marker, p.ID, p.Name, p.CreatedAt, len(p.Transactions), len(p.Debts))
			}
			return w.Flush()
		},
	}
}
