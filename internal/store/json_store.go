package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bramasto/tagihan/internal/events"
	"github.com/bramasto/tagihan/internal/models"
)

// ErrStoreCorrupt marks a vault file that could not be read or parsed at the
// top level.
var ErrStoreCorrupt = errors.New("store file is corrupt")

// JSONStore persists the vault as a single JSON file. The file is replaced
// wholesale on every save; concurrent writers are not supported.
type JSONStore struct {
	path   string
	logger *events.Logger
}

// NewJSONStore creates a vault store at path.
func NewJSONStore(path string, logger *events.Logger) *JSONStore {
	return &JSONStore{
		path:   path,
		logger: logger.WithField("component", "json_store"),
	}
}

// Path returns the vault file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads, migrates, and normalizes the vault file, persisting the
// normalized result. A missing file yields a fresh seeded store. An
// unreadable or unparseable file also yields a fresh store, with recovered
// set so callers can warn the user that prior data was lost; that loss is
// deliberate policy, not an accident to hide.
func (s *JSONStore) Load() (data *models.VaultStore, recovered bool, err error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("path", s.path).Info("Store file missing, creating default")
			data = models.NewVaultStore()
			Normalize(data)
			if err := s.Save(data); err != nil {
				return nil, false, err
			}
			return data, false, nil
		}
		s.logger.WithError(err).Error("Store file unreadable, recreating with defaults")
		data = models.NewVaultStore()
		Normalize(data)
		if err := s.Save(data); err != nil {
			return nil, false, err
		}
		return data, true, nil
	}

	data, err = Migrate(raw)
	if err != nil {
		s.logger.WithError(err).Error("Store file corrupt, recreating with defaults")
		data = models.NewVaultStore()
		Normalize(data)
		if err := s.Save(data); err != nil {
			return nil, false, err
		}
		return data, true, nil
	}

	Normalize(data)
	if err := s.Save(data); err != nil {
		return nil, false, err
	}
	return data, false, nil
}

// Save serializes the whole store and replaces the file in one operation,
// writing to a temp file first and renaming it into place.
func (s *JSONStore) Save(data *models.VaultStore) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tempPath := fmt.Sprintf("%s.tmp.%d", s.path, time.Now().UnixNano())
	if err := os.WriteFile(tempPath, payload, 0o600); err != nil {
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace store file: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"path":  s.path,
		"users": len(data.Users),
	}).Debug("Store saved")
	return nil
}
