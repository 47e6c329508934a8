package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bramasto/tagihan/internal/models"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current period's ledger and totals",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	doc := session.Ledger
	entry := appClient.Ledger.CurrentPeriod(session)
	totals := appClient.Ledger.Totals(session)

	if jsonOutput {
		printJSON(map[string]interface{}{
			"period": models.PeriodKey(doc.CurrentYear, doc.CurrentMonth),
			"ledger": entry,
			"totals": totals,
		})
		return nil
	}

	printInfo("%s", models.PeriodLabel(doc.Language, doc.CurrentYear, doc.CurrentMonth))
	fmt.Println()

	fmt.Println("Income sources:")
	for i, item := range entry.IncomeSources {
		fmt.Printf("  %d. %s: %s\n", i+1, item.Name, formatAmount(item.Amount))
	}
	fmt.Println("Savings:")
	for i, item := range entry.Savings {
		fmt.Printf("  %d. %s: %s\n", i+1, item.Name, formatAmount(item.Amount))
	}
	fmt.Println("Budget items:")
	for i, item := range entry.BudgetItems {
		fmt.Printf("  %d. %s [%s]: allocation %s, realization %s\n",
			i+1, item.Name, item.Category,
			formatAmount(item.Allocation), formatAmount(item.Realization))
	}

	fmt.Println()
	fmt.Printf("Total income:      %s\n", formatAmount(totals.TotalIncome))
	fmt.Printf("Budgeted expenses: %s\n", formatAmount(totals.TotalBudgeted))
	fmt.Printf("Spending:          %s\n", formatAmount(totals.TotalSpending))
	fmt.Printf("Savings:           %s\n", formatAmount(totals.Savings))
	return nil
}

func formatAmount(amount int) string {
	if amount < 0 {
		return fmt.Sprintf("-Rp%d", -amount)
	}
	return fmt.Sprintf("Rp%d", amount)
}
