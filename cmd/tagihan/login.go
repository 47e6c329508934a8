package main

import (
	"github.com/spf13/cobra"

	"github.com/bramasto/tagihan/internal/models"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify credentials and open the ledger",
	Example: `  tagihan login --email user@example.com
  tagihan login --creds-file ~/.tagihan/creds.json`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		if jsonOutput {
			printJSON(map[string]interface{}{
				"success": false,
				"error":   err.Error(),
			})
		}
		return err
	}

	doc := session.Ledger
	label := models.PeriodLabel(doc.Language, doc.CurrentYear, doc.CurrentMonth)

	if jsonOutput {
		printJSON(map[string]interface{}{
			"success": true,
			"email":   session.Email,
			"period":  models.PeriodKey(doc.CurrentYear, doc.CurrentMonth),
		})
		return nil
	}

	printSuccess("Logged in as %s", session.Email)
	printInfo("Current period: %s", label)
	return nil
}
