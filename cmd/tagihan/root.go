package main

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bramasto/tagihan/internal/client"
	"github.com/bramasto/tagihan/internal/config"
	"github.com/bramasto/tagihan/internal/creds"
	"github.com/bramasto/tagihan/internal/events"
	"github.com/bramasto/tagihan/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "tagihan",
	Short: "Encrypted personal budget ledger",
	Long: `Tagihan keeps a local, password-protected ledger of income, savings,
and budget items per month. Every account's ledger is sealed with a key
derived from its password; nothing readable leaves the vault file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initClient()
	},
}

var (
	cfgPath    string
	storePath  string
	jsonOutput bool
	verbose    bool

	credsFile string
	email     string
	password  string

	cfg       *config.Config
	appClient *client.Client
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"Config file path")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "",
		"Vault file path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.PersistentFlags().StringVarP(&email, "email", "e", "",
		"Account email")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "",
		"Account password (will prompt if not provided)")
	rootCmd.PersistentFlags().StringVar(&credsFile, "creds-file", "",
		"JSON credentials file with email and password")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("%v", err)
	}
	return err
}

func initClient() error {
	loaded, err := config.NewLoader(cfgPath).Load()
	if err != nil {
		return err
	}
	cfg = loaded

	if storePath != "" {
		cfg.Store.Path = storePath
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := events.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}

	appClient, err = client.New(cfg, logger)
	if err != nil {
		return err
	}

	if appClient.Recovered {
		printWarn("Vault file was corrupt and has been recreated with defaults; prior data is gone.")
	}
	return nil
}

// resolveCredentials merges flags and the optional credentials file, then
// prompts for whatever is still missing.
func resolveCredentials() (string, string, error) {
	if credsFile != "" {
		c, err := creds.LoadFromFile(credsFile)
		if err != nil {
			return "", "", fmt.Errorf("load credentials file %s: %w", credsFile, err)
		}
		if email == "" {
			email = c.Auth.Email
		}
		if password == "" {
			password = c.Auth.Password
		}
	}

	if email == "" {
		return "", "", fmt.Errorf("email required (use --email or --creds-file)")
	}

	if password == "" {
		var err error
		password, err = promptPassword("Password: ")
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
	}

	return email, password, nil
}

// requireSession authenticates against the loaded vault.
func requireSession() (*models.Session, error) {
	loginEmail, loginPassword, err := resolveCredentials()
	if err != nil {
		return nil, err
	}
	return appClient.Auth.Login(appClient.Data, loginEmail, loginPassword)
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	// Read password without echo
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func printSuccess(format string, args ...interface{}) {
	color.Green(format, args...)
}

func printInfo(format string, args ...interface{}) {
	color.Cyan(format, args...)
}

func printWarn(format string, args ...interface{}) {
	color.Yellow(format, args...)
}

func printError(format string, args ...interface{}) {
	color.Red("Error: "+format, args...)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		printError("marshal output: %v", err)
		return
	}
	fmt.Println(string(data))
}
