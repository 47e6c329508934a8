package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry to the current period",
}

var addIncomeCmd = &cobra.Command{
	Use:     "income <name> <amount>",
	Short:   "Add an income source",
	Example: `  tagihan add income "Gaji Bulanan" 13923161 -e user@example.com`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		session, err := requireSession()
		if err != nil {
			return err
		}
		if err := appClient.Ledger.AddIncome(session, args[0], amount); err != nil {
			return err
		}
		printSuccess("Income source added")
		return nil
	},
}

var addSavingCmd = &cobra.Command{
	Use:   "saving <name> <amount>",
	Short: "Add a saving",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		session, err := requireSession()
		if err != nil {
			return err
		}
		if err := appClient.Ledger.AddSaving(session, args[0], amount); err != nil {
			return err
		}
		printSuccess("Saving added")
		return nil
	},
}

var addBudgetCategory string

var addBudgetCmd = &cobra.Command{
	Use:     "budget <name> <allocation>",
	Short:   "Add a budget item",
	Example: `  tagihan add budget "Sewa Rumah" 500000 --category Housing`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		allocation, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		session, err := requireSession()
		if err != nil {
			return err
		}
		if err := appClient.Ledger.AddBudgetItem(session, args[0], allocation, addBudgetCategory); err != nil {
			return err
		}
		printSuccess("Budget item added")
		return nil
	},
}

func init() {
	addBudgetCmd.Flags().StringVar(&addBudgetCategory, "category", "",
		"Budget item category")

	addCmd.AddCommand(addIncomeCmd)
	addCmd.AddCommand(addSavingCmd)
	addCmd.AddCommand(addBudgetCmd)
	rootCmd.AddCommand(addCmd)
}

func parseAmount(raw string) (int, error) {
	amount, err := strconv.Atoi(raw)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("amount must be a non-negative whole number: %q", raw)
	}
	return amount, nil
}
