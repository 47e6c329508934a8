package store

import "github.com/bramasto/tagihan/internal/models"

// Normalize repairs a decoded store in place: containers become non-nil,
// the default language is coerced to a supported code, and every plaintext
// ledger (pending or legacy profile entry) gets its defaults filled.
// Encrypted payload bytes are never touched. Idempotent.
func Normalize(data *models.VaultStore) {
	if data.Users == nil {
		data.Users = []models.Credential{}
	}
	if data.Profiles == nil {
		data.Profiles = make(map[string]*models.ProfileRecord)
	}

	data.DefaultLanguage = models.NormalizeLanguage(data.DefaultLanguage)

	if data.PendingProfile != nil {
		data.PendingProfile.EnsureDefaults()
	}

	for email, record := range data.Profiles {
		if record == nil || (record.Encrypted == nil && record.Plain == nil) {
			delete(data.Profiles, email)
			continue
		}
		if record.Plain != nil {
			record.Plain.EnsureDefaults()
		}
	}
}
