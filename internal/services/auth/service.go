// Package auth implements account sign-up and login against the vault store.
package auth

import (
	"errors"
	"fmt"

	"github.com/bramasto/tagihan/internal/crypto"
	"github.com/bramasto/tagihan/internal/events"
	"github.com/bramasto/tagihan/internal/models"
	"github.com/bramasto/tagihan/internal/store"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a password
	// mismatch; callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("email or password is incorrect")

	// ErrEmailTaken is returned when signing up an existing account.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrEmailRequired is returned for a blank email.
	ErrEmailRequired = errors.New("email is required")
)

// Service handles account creation and login.
type Service struct {
	store  *store.JSONStore
	logger *events.Logger
}

// NewService creates an auth service.
func NewService(vaultStore *store.JSONStore, logger *events.Logger) *Service {
	return &Service{
		store:  vaultStore,
		logger: logger.WithField("service", "auth"),
	}
}

// SignUp creates a new account, consuming the store's pending ledger if one
// is waiting, and persists the sealed ledger immediately.
func (s *Service) SignUp(data *models.VaultStore, email, password string) (*models.Session, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if data.FindUser(email) != nil {
		return nil, ErrEmailTaken
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	key := crypto.DeriveKey(password, salt)

	cred := models.Credential{
		Email:        email,
		PasswordHash: crypto.HashPassword(password),
	}
	cred.SetSalt(salt)
	data.Users = append(data.Users, cred)

	ledger := data.PendingProfile
	if ledger == nil {
		ledger = models.DefaultLedgerDocument()
	}
	data.PendingProfile = nil
	ledger.EnsureDefaults()

	session := &models.Session{
		Email:  email,
		Key:    key,
		Ledger: ledger,
		Data:   data,
	}
	if err := s.persist(session); err != nil {
		return nil, err
	}

	s.logger.WithField("email", email).Info("Account created")
	return session, nil
}

// Login verifies the password, derives the encryption key, and opens the
// account's sealed ledger. A failed open surfaces as a typed error and is
// never treated as an empty ledger; only a genuinely missing payload yields
// the seeded default. The opened ledger is resealed and persisted right
// away, so legacy plaintext profiles become encrypted on first login.
func (s *Service) Login(data *models.VaultStore, email, password string) (*models.Session, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	cred := data.FindUser(email)
	if cred == nil {
		return nil, ErrInvalidCredentials
	}
	if !crypto.VerifyPassword(cred.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	salt, err := s.ensureSalt(cred)
	if err != nil {
		return nil, err
	}
	key := crypto.DeriveKey(password, salt)

	var ledger *models.LedgerDocument
	if record, ok := data.Profiles[email]; ok && record != nil {
		ledger, err = store.DecryptProfile(key, record)
		if err != nil {
			s.logger.WithError(err).WithField("email", email).Error("Failed to open ledger")
			return nil, fmt.Errorf("open ledger: %w", err)
		}
	} else {
		ledger = models.DefaultLedgerDocument()
	}
	ledger.EnsureDefaults()

	session := &models.Session{
		Email:  email,
		Key:    key,
		Ledger: ledger,
		Data:   data,
	}
	if err := s.persist(session); err != nil {
		return nil, err
	}

	s.logger.WithField("email", email).Info("Login successful")
	return session, nil
}

// ensureSalt returns the credential's salt, generating and storing a fresh
// one when the stored value is missing or undecodable.
func (s *Service) ensureSalt(cred *models.Credential) ([]byte, error) {
	if salt, err := cred.DecodeSalt(); err == nil {
		return salt, nil
	}

	s.logger.WithField("email", cred.Email).Warn("Regenerating missing or invalid salt")
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	cred.SetSalt(salt)
	return salt, nil
}

func (s *Service) persist(session *models.Session) error {
	payload, err := store.EncryptProfile(session.Key, session.Ledger)
	if err != nil {
		return err
	}
	session.Data.SetProfile(session.Email, payload)
	return s.store.Save(session.Data)
}
