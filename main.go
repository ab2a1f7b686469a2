package main

import (
	"fmt"
	"os"

	"fjacquet/financeos/cmd/debt"
	"fjacquet/financeos/cmd/portfolio"
	"fjacquet/financeos/cmd/remind"
	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/cmd/stats"
	"fjacquet/financeos/cmd/tx"
)

func init() {
	// 1. Initialize root command flags
	root.Init()

	// 2. Add all subcommands
	root.Cmd.AddCommand(portfolio.Cmd)
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(debt.Cmd)
	root.Cmd.AddCommand(remind.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
