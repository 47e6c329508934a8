package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <income|saving|budget> <item-number>",
	Short: "Delete an entry from the current period",
	Example: `  tagihan rm income 1
  tagihan rm budget 3`,
	Args: cobra.ExactArgs(2),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	index, err := parseItemNumber(args[1])
	if err != nil {
		return err
	}

	session, err := requireSession()
	if err != nil {
		return err
	}

	var name string
	switch args[0] {
	case "income":
		item, err := appClient.Ledger.DeleteIncome(session, index)
		if err != nil {
			return err
		}
		name = item.Name
	case "saving":
		item, err := appClient.Ledger.DeleteSaving(session, index)
		if err != nil {
			return err
		}
		name = item.Name
	case "budget":
		item, err := appClient.Ledger.DeleteBudgetItem(session, index)
		if err != nil {
			return err
		}
		name = item.Name
	default:
		return fmt.Errorf("unknown entry kind: %s (expected income, saving, or budget)", args[0])
	}

	printSuccess("%s deleted", name)
	return nil
}
