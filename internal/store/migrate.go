package store

import (
	"encoding/json"
	"fmt"

	"github.com/bramasto/tagihan/internal/models"
)

// Migrate decodes a raw vault file into the current store shape. Records
// already in the current shape pass through; anything else is treated as a
// legacy flat ledger and wrapped into a fresh store's pending profile, ready
// for the next sign-up. Migrating an already-migrated record is a no-op.
func Migrate(raw []byte) (*models.VaultStore, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}

	_, hasUsers := fields["users"]
	_, hasProfiles := fields["profiles"]
	if hasUsers && hasProfiles {
		return decodeCurrent(fields), nil
	}
	return wrapLegacy(fields), nil
}

// decodeCurrent decodes the current shape field by field, so a single
// malformed field degrades to its default instead of rejecting the file.
func decodeCurrent(fields map[string]json.RawMessage) *models.VaultStore {
	data := &models.VaultStore{
		Users:    []models.Credential{},
		Profiles: make(map[string]*models.ProfileRecord),
	}

	if raw, ok := fields["users"]; ok {
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err == nil {
			for _, entry := range entries {
				var cred models.Credential
				if err := json.Unmarshal(entry, &cred); err != nil {
					// Not a well-formed credential; dropped. The rest
					// of the array is kept, since losing a credential
					// loses the salt its payload was sealed under.
					continue
				}
				data.Users = append(data.Users, cred)
			}
		}
	}

	if raw, ok := fields["profiles"]; ok {
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err == nil {
			for email, entry := range entries {
				var record models.ProfileRecord
				if err := json.Unmarshal(entry, &record); err != nil {
					// Not a well-formed record; dropped.
					continue
				}
				data.Profiles[email] = &record
			}
		}
	}

	if raw, ok := fields["pending_profile"]; ok {
		data.PendingProfile = decodePending(raw)
	}

	if raw, ok := fields["default_language"]; ok {
		var lang string
		if err := json.Unmarshal(raw, &lang); err == nil {
			data.DefaultLanguage = lang
		}
	}

	return data
}

// decodePending decodes the pending ledger. When the document only partially
// decodes, it is salvaged field by field instead of discarded, since the
// pending ledger is the seed data the next sign-up consumes.
func decodePending(raw json.RawMessage) *models.LedgerDocument {
	var pending *models.LedgerDocument
	if err := json.Unmarshal(raw, &pending); err == nil {
		return pending
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	doc := &models.LedgerDocument{Months: make(map[string]*models.PeriodLedger)}

	if raw, ok := fields["months"]; ok {
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err == nil {
			for key, entry := range entries {
				var period models.PeriodLedger
				if err := json.Unmarshal(entry, &period); err != nil {
					// Not a well-formed period; dropped.
					continue
				}
				doc.Months[key] = &period
			}
		}
	}
	if raw, ok := fields["current_year"]; ok {
		var year int
		if err := json.Unmarshal(raw, &year); err == nil {
			doc.CurrentYear = year
		}
	}
	if raw, ok := fields["current_month"]; ok {
		_ = json.Unmarshal(raw, &doc.CurrentMonth)
	}
	if raw, ok := fields["language"]; ok {
		var lang string
		if err := json.Unmarshal(raw, &lang); err == nil {
			doc.Language = lang
		}
	}
	if raw, ok := fields["income_sources"]; ok {
		_ = json.Unmarshal(raw, &doc.LegacyIncome)
	}
	if raw, ok := fields["saving_list"]; ok {
		_ = json.Unmarshal(raw, &doc.LegacySavings)
	}
	if raw, ok := fields["budgeting_list"]; ok {
		_ = json.Unmarshal(raw, &doc.LegacyBudget)
	}

	return doc
}

// wrapLegacy builds a fresh store whose pending profile carries the legacy
// flat ledger fields, nested under their period.
func wrapLegacy(fields map[string]json.RawMessage) *models.VaultStore {
	doc := &models.LedgerDocument{
		CurrentYear:  models.DefaultYear,
		CurrentMonth: models.DefaultMonth,
	}

	if raw, ok := fields["current_year"]; ok {
		var year int
		if err := json.Unmarshal(raw, &year); err == nil && year != 0 {
			doc.CurrentYear = year
		}
	}
	if raw, ok := fields["current_month"]; ok {
		// Month unmarshals leniently and never fails.
		_ = json.Unmarshal(raw, &doc.CurrentMonth)
	}
	if raw, ok := fields["income_sources"]; ok {
		_ = json.Unmarshal(raw, &doc.LegacyIncome)
	}
	if raw, ok := fields["saving_list"]; ok {
		_ = json.Unmarshal(raw, &doc.LegacySavings)
	}
	if raw, ok := fields["budgeting_list"]; ok {
		_ = json.Unmarshal(raw, &doc.LegacyBudget)
	}

	doc.Language = models.DefaultLanguage
	for _, key := range []string{"language", "default_language"} {
		if raw, ok := fields[key]; ok {
			var lang string
			if err := json.Unmarshal(raw, &lang); err == nil && lang != "" {
				doc.Language = lang
				break
			}
		}
	}

	doc.EnsureDefaults()

	data := models.NewVaultStore()
	data.PendingProfile = doc
	return data
}
