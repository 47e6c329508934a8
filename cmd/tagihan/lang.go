package main

import (
	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:     "lang <code>",
	Short:   "Change the ledger language",
	Example: `  tagihan lang en`,
	Args:    cobra.ExactArgs(1),
	RunE:    runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLang(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	if err := appClient.Ledger.ChangeLanguage(session, args[0]); err != nil {
		return err
	}

	printSuccess("Language updated to %s", args[0])
	return nil
}
