package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long: `Signup registers an email and password. The first account created in a
fresh vault receives the seeded starter ledger.`,
	Example: `  tagihan signup --email user@example.com`,
	RunE:    runSignup,
}

func init() {
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	if credsFile != "" || password != "" {
		signupEmail, signupPassword, err := resolveCredentials()
		if err != nil {
			return err
		}
		return finishSignup(signupEmail, signupPassword)
	}

	if email == "" {
		return fmt.Errorf("email required (use --email)")
	}

	pw, err := promptPassword("Password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if pw != confirm {
		return fmt.Errorf("passwords do not match")
	}

	return finishSignup(email, pw)
}

func finishSignup(signupEmail, signupPassword string) error {
	session, err := appClient.Auth.SignUp(appClient.Data, signupEmail, signupPassword)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"success": true,
			"email":   session.Email,
		})
		return nil
	}

	printSuccess("Account created for %s", session.Email)
	return nil
}
