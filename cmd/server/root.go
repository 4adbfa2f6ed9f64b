package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smartbudget",
	Short: "SmartBudget - personal finance tracker",
	Long: `SmartBudget is a personal finance tracking web application.

Users register with email verification, keep named accounts with
balances, categorize income and expenses, and transfer funds between
accounts.

Run 'smartbudget serve' to start the server, or 'smartbudget import' to
bulk-import accounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}
