package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bramasto/tagihan/internal/models"
)

var periodCmd = &cobra.Command{
	Use:   "period <year> <month>",
	Short: "Switch the current budgeting period",
	Long: `Period changes the ledger's active (year, month) pair, creating the
period if it does not exist yet. The month may be a number 1-12 or a
month name in a supported language.`,
	Example: `  tagihan period 2025 5
  tagihan period 2025 Mei`,
	Args: cobra.ExactArgs(2),
	RunE: runPeriod,
}

func init() {
	rootCmd.AddCommand(periodCmd)
}

func runPeriod(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1 {
		return fmt.Errorf("year must be a positive whole number: %q", args[0])
	}

	month, ok := models.ParseMonth(args[1])
	if !ok {
		return fmt.Errorf("unrecognized month: %q", args[1])
	}

	session, err := requireSession()
	if err != nil {
		return err
	}

	if err := appClient.Ledger.ChangePeriod(session, year, int(month)); err != nil {
		return err
	}

	doc := session.Ledger
	printSuccess("Period changed to %s", models.PeriodLabel(doc.Language, year, month))
	return nil
}

var copyPrevCmd = &cobra.Command{
	Use:   "copy-prev",
	Short: "Copy the previous period's data into the current period",
	Long: `Copy-prev replaces the current period's lists with a deep copy of the
previous month's data. The source period is left untouched.`,
	RunE: runCopyPrev,
}

func init() {
	rootCmd.AddCommand(copyPrevCmd)
}

func runCopyPrev(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	snapshot, err := appClient.Ledger.CopyPreviousPeriod(session)
	if err != nil {
		return err
	}

	doc := session.Ledger
	prevYear, prevMonth := models.PreviousPeriod(doc.CurrentYear, doc.CurrentMonth)
	printSuccess("Copied %d income, %d saving, and %d budget entries from %s",
		len(snapshot.IncomeSources), len(snapshot.Savings), len(snapshot.BudgetItems),
		models.PeriodLabel(doc.Language, prevYear, prevMonth))
	return nil
}
