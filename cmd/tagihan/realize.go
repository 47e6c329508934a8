package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	realizeAmount   int
	realizePercent  int
	realizeComplete bool
)

var realizeCmd = &cobra.Command{
	Use:   "realize <item-number>",
	Short: "Update a budget item's realization",
	Long: `Realize records spending against a budget item, identified by its
number in 'tagihan show'. Exactly one of --amount, --percent, or
--complete must be given.`,
	Example: `  tagihan realize 2 --amount 150000
  tagihan realize 2 --percent 50
  tagihan realize 2 --complete`,
	Args: cobra.ExactArgs(1),
	RunE: runRealize,
}

func init() {
	realizeCmd.Flags().IntVar(&realizeAmount, "amount", -1,
		"Realized amount")
	realizeCmd.Flags().IntVar(&realizePercent, "percent", 0,
		"Realization as a percentage of the allocation (1-100)")
	realizeCmd.Flags().BoolVar(&realizeComplete, "complete", false,
		"Mark the item fully realized")

	rootCmd.AddCommand(realizeCmd)
}

func runRealize(cmd *cobra.Command, args []string) error {
	index, err := parseItemNumber(args[0])
	if err != nil {
		return err
	}

	modes := 0
	if realizeAmount >= 0 {
		modes++
	}
	if realizePercent > 0 {
		modes++
	}
	if realizeComplete {
		modes++
	}
	if modes != 1 {
		return fmt.Errorf("specify exactly one of --amount, --percent, or --complete")
	}

	session, err := requireSession()
	if err != nil {
		return err
	}

	switch {
	case realizeComplete:
		err = appClient.Ledger.CompleteRealization(session, index)
	case realizePercent > 0:
		err = appClient.Ledger.SetRealizationPercent(session, index, realizePercent)
	default:
		err = appClient.Ledger.SetRealization(session, index, realizeAmount)
	}
	if err != nil {
		return err
	}

	printSuccess("Realization updated")
	return nil
}

// parseItemNumber converts a 1-based display number to a 0-based index.
func parseItemNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("item number must be a positive whole number: %q", raw)
	}
	return n - 1, nil
}
