// Package client assembles the vault store and services into one handle for
// the CLI.
package client

import (
	"github.com/bramasto/tagihan/internal/config"
	"github.com/bramasto/tagihan/internal/events"
	"github.com/bramasto/tagihan/internal/models"
	"github.com/bramasto/tagihan/internal/services/auth"
	"github.com/bramasto/tagihan/internal/services/ledger"
	"github.com/bramasto/tagihan/internal/store"
)

// Client provides the high-level API for vault operations.
type Client struct {
	Auth   *auth.Service
	Ledger *ledger.Service
	Store  *store.JSONStore

	// Data is the loaded vault; Recovered is set when a corrupt file was
	// replaced with defaults during load, so callers can warn loudly.
	Data      *models.VaultStore
	Recovered bool

	config *config.Config
	logger *events.Logger
}

// New loads the vault store and wires up the services.
func New(cfg *config.Config, logger *events.Logger) (*Client, error) {
	vaultStore := store.NewJSONStore(cfg.Store.Path, logger)

	data, recovered, err := vaultStore.Load()
	if err != nil {
		return nil, err
	}

	// A vault with no accounts yet picks up the configured language.
	if len(data.Users) == 0 && models.SupportedLanguage(cfg.Store.Language) {
		data.DefaultLanguage = cfg.Store.Language
		if data.PendingProfile != nil {
			data.PendingProfile.Language = cfg.Store.Language
		}
	}

	return &Client{
		Auth:      auth.NewService(vaultStore, logger),
		Ledger:    ledger.NewService(vaultStore, logger),
		Store:     vaultStore,
		Data:      data,
		Recovered: recovered,
		config:    cfg,
		logger:    logger,
	}, nil
}
